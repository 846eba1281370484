package scroller

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/l1sload/l1scroller/l1-scroller/bindings"
	"github.com/l1sload/l1scroller/op-service/dial"
)

const (
	DefaultRPCUrl = "https://l1sload-rpc.scroll.io"

	// DefaultScrollerAddress is the deployed L1Scroller view contract.
	DefaultScrollerAddress = "0xfA75fa50f36bb87669d0D4B8382BeC1C1C9570eC"
)

var (
	ErrMissingRPCUrl          = errors.New("missing rpc url")
	ErrMissingScrollerAddress = errors.New("missing scroller contract address")
	ErrMissingSchema          = errors.New("missing scroller contract schema")
)

// Config binds a Reader to one endpoint and one scroller contract.
type Config struct {
	RPCUrl          string
	ScrollerAddress common.Address
	Schema          *bind.MetaData
	DialTimeout     time.Duration
}

func DefaultConfig() Config {
	return Config{
		RPCUrl:          DefaultRPCUrl,
		ScrollerAddress: common.HexToAddress(DefaultScrollerAddress),
		Schema:          bindings.L1ScrollerMetaData,
		DialTimeout:     dial.DefaultDialTimeout,
	}
}

// Check validates the contract binding. The endpoint is validated when
// dialing.
func (c Config) Check() error {
	if c.ScrollerAddress == (common.Address{}) {
		return ErrMissingScrollerAddress
	}
	if c.Schema == nil {
		return ErrMissingSchema
	}
	return nil
}
