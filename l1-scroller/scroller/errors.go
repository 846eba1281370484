package scroller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var (
	// ErrConnectivity is returned by NewReader when the endpoint cannot be
	// dialed or fails the liveness check.
	ErrConnectivity = errors.New("connectivity failure")

	// ErrRemoteCall is matched by every error returned from a read.
	ErrRemoteCall = errors.New("remote call failure")

	ErrNilSlot          = errors.New("nil slot")
	ErrUnexpectedResult = errors.New("unexpected result")
	ErrValueOutOfRange  = errors.New("value exceeds declared width")
	ErrInvalidUTF8      = errors.New("string is not valid utf-8")
)

// CallError describes a failed read. It unwraps to both ErrRemoteCall and
// the underlying transport or codec error.
type CallError struct {
	Method   string
	Contract common.Address
	Slots    []*uint256.Int
	Err      error
}

func (e *CallError) Error() string {
	slots := make([]string, len(e.Slots))
	for i, s := range e.Slots {
		if s == nil {
			slots[i] = "<nil>"
		} else {
			slots[i] = s.Dec()
		}
	}
	return fmt.Sprintf("%s(%s, %s): %v", e.Method, e.Contract, strings.Join(slots, ","), e.Err)
}

func (e *CallError) Unwrap() []error {
	return []error{ErrRemoteCall, e.Err}
}
