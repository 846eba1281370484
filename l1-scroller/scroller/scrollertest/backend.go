// Package scrollertest provides an in-memory scroller contract for tests.
package scrollertest

import (
	"context"
	"fmt"
	"math/big"
	"net/http/httptest"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"

	"github.com/l1sload/l1scroller/l1-scroller/bindings"
)

type Testing interface {
	require.TestingT
	Cleanup(func())
}

// RawOutput is returned to the caller without ABI encoding.
type RawOutput []byte

// Backend is an in-memory scroller contract implementing
// bind.ContractCaller. It decodes calldata with the L1Scroller schema and
// answers with ABI-packed values keyed by (method, l1 contract, slot).
// Unset values produce empty return data.
type Backend struct {
	t        Testing
	abi      *abi.ABI
	scroller common.Address

	mu     sync.Mutex
	code   []byte
	values map[string]any
	calls  int
	err    error
}

func NewBackend(t Testing, scroller common.Address) *Backend {
	parsed, err := bindings.L1ScrollerMetaData.GetAbi()
	require.NoError(t, err)
	return &Backend{
		t:        t,
		abi:      parsed,
		scroller: scroller,
		code:     []byte{0x60, 0x80, 0x60, 0x40},
		values:   make(map[string]any),
	}
}

func key(method string, l1Contract common.Address, slot any) string {
	return fmt.Sprintf("%s/%s/%v", method, l1Contract.Hex(), slot)
}

// Set stores the value returned by method for (l1Contract, slot). v must
// have the Go type the ABI codec uses for the method's output, or be a
// RawOutput.
func (b *Backend) Set(method string, l1Contract common.Address, slot uint64, v any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[key(method, l1Contract, new(big.Int).SetUint64(slot))] = v
}

func (b *Backend) SetMulti(l1Contract common.Address, slots []uint64, v any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	k := make([]*big.Int, len(slots))
	for i, s := range slots {
		k[i] = new(big.Int).SetUint64(s)
	}
	b.values[key("readMultipleSlots", l1Contract, k)] = v
}

// SetErr makes every following call fail with err.
func (b *Backend) SetErr(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.err = err
}

func (b *Backend) SetCode(code []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.code = code
}

func (b *Backend) CallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func (b *Backend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if contract != b.scroller {
		return nil, nil
	}
	return b.code, nil
}

func (b *Backend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	if b.err != nil {
		return nil, b.err
	}
	if call.To == nil || *call.To != b.scroller {
		return nil, fmt.Errorf("call to %v, expected scroller %s", call.To, b.scroller)
	}
	if blockNumber != nil {
		return nil, fmt.Errorf("call at block %s, expected latest", blockNumber)
	}
	if len(call.Data) < 4 {
		return nil, fmt.Errorf("short calldata: %x", call.Data)
	}
	method, err := b.abi.MethodById(call.Data[:4])
	if err != nil {
		return nil, err
	}
	args, err := method.Inputs.Unpack(call.Data[4:])
	if err != nil {
		return nil, err
	}
	v, ok := b.values[key(method.Name, args[0].(common.Address), args[1])]
	if !ok {
		return nil, nil
	}
	if raw, ok := v.(RawOutput); ok {
		return raw, nil
	}
	return method.Outputs.Pack(v)
}

// EthAPI serves a Backend over JSON-RPC in the eth namespace.
type EthAPI struct {
	Backend  *Backend
	ChainID  *big.Int
	ChainErr error
}

type callArgs struct {
	From  *common.Address `json:"from"`
	To    *common.Address `json:"to"`
	Data  *hexutil.Bytes  `json:"data"`
	Input *hexutil.Bytes  `json:"input"`
}

func (api *EthAPI) ChainId() (*hexutil.Big, error) {
	if api.ChainErr != nil {
		return nil, api.ChainErr
	}
	return (*hexutil.Big)(api.ChainID), nil
}

func (api *EthAPI) Call(ctx context.Context, args callArgs, block string) (hexutil.Bytes, error) {
	data := args.Input
	if data == nil {
		data = args.Data
	}
	if data == nil {
		return nil, fmt.Errorf("missing calldata")
	}
	return api.Backend.CallContract(ctx, ethereum.CallMsg{To: args.To, Data: *data}, nil)
}

func (api *EthAPI) GetCode(ctx context.Context, addr common.Address, block string) (hexutil.Bytes, error) {
	return api.Backend.CodeAt(ctx, addr, nil)
}

// NewRPCServer serves api over HTTP until the test ends and returns its URL.
func NewRPCServer(t Testing, api *EthAPI) string {
	srv := rpc.NewServer()
	require.NoError(t, srv.RegisterName("eth", api))
	hs := httptest.NewServer(srv)
	t.Cleanup(func() {
		hs.Close()
		srv.Stop()
	})
	return hs.URL
}
