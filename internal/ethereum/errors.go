package ethereum

import (
	"errors"
	"fmt"
)

var ErrCampaignEventMissing error = errors.New("campaign created but could not retrieve campaign ID")
var ErrTxReverted error = errors.New("transaction reverted")

// LedgerError is returned by every Gateway operation that fails.
type LedgerError struct {
	Op  string
	Err error
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}

func ledgerErr(op string, err error) error {
	return &LedgerError{Op: op, Err: err}
}
