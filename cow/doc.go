package cow

/*

# What this package is

A copy-on-write, transactional, notifying value holder. Many readers
cheaply share an immutable snapshot of a value while a single writer
performs an exclusive, all-or-nothing mutation that either commits
(publishing a new snapshot and notifying the broadcaster) or discards
(leaving the prior snapshot untouched).

The pieces, leaves first:

  - Node / OptNode: the mutable handles. Each tracks a private
    "unique" claim: am I the only handle this writer can reach that
    holds this payload? Mutable access (Mut) on a non-unique handle
    forks first - replaces the payload with a fresh value copy - so a
    previously shared payload is never edited in place. That fork is
    the single point in the package where shared becomes owned.
  - Detached / OptDetached: immutable snapshots decoupled from any
    live tree. They carry no uniqueness state because they can never
    mutate. They are the safe currency for handing a value to the rest
    of the system, across goroutines, for as long as the holder likes.
  - Root: the canonical, last-committed payload for a type, plus the
    transaction protocol that stages a successor. BeginTransaction
    forks the canonical payload into a uniquely owned working copy;
    EndTransaction either swaps it in wholesale (and broadcasts, once)
    or drops it.
  - Tx: the scoped guard over an open transaction, with Cancel and
    End. Root.Update is the complete scoped form: it resolves the
    transaction on every exit path, including error returns and
    panics.

# Sharing and uniqueness

There is no reference count: the garbage collector owns payload
lifetime, and a payload pointer doubles as the identity of the
snapshot it belongs to. Comparing the pointers returned by the
non-forking read accessors is a shallow, object-identity test - the
cheap way to ask "did this subtree change across that commit?".

The unique flag is not "share count == 1". Detaching a unique node
hands the payload out, and the node stays unique, because detached
snapshots never write. Unique means unique among the mutable handles
the current writer can reach. It is established on fresh
construction, cleared on both sides of a Share (two live mutable
handles, neither may edit in place), and restored when a fork
installs an exclusively owned copy.

Values that contain child nodes implement Forker so a fork rebuilds
them from Share calls; plain values fork by assignment. See Forker.

# Concurrency

Reads are safe from any goroutine with no locking: snapshots are
observationally immutable forever, and the root only ever replaces its
canonical payload wholesale, never edits it. Writes follow a
single-writer discipline: one transaction open per root at a time, a
second open is rejected with ErrTransactionOpen. Broadcast happens
after the canonical swap, so a subscriber that detaches from its
callback observes the committed value.
*/
