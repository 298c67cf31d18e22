package cow

import "errors"

var (
	ErrTransactionOpen = errors.New("a transaction is already open on this root")
	ErrNoTransaction   = errors.New("no transaction is open on this root")
	ErrTxDone          = errors.New("the transaction guard has already ended")
)
