package scroller

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"

	"github.com/l1sload/l1scroller/op-service/dial"
)

const (
	methodReadUint          = "readUint"
	methodReadUint160       = "readUint160"
	methodReadUint128       = "readUint128"
	methodReadUint96        = "readUint96"
	methodReadUint64        = "readUint64"
	methodReadUint48        = "readUint48"
	methodReadUint32        = "readUint32"
	methodReadUint24        = "readUint24"
	methodReadUint8         = "readUint8"
	methodReadAddress       = "readAddress"
	methodReadString        = "readString"
	methodReadSlot          = "readSlot"
	methodReadMultipleSlots = "readMultipleSlots"
)

type Metricer interface {
	RecordRead(method string, dur time.Duration, err error)
}

type noopMetricer struct{}

func (noopMetricer) RecordRead(string, time.Duration, error) {}

type Option func(r *Reader)

// WithMetrics records the outcome and latency of every read.
func WithMetrics(m Metricer) Option {
	return func(r *Reader) {
		r.metr = m
	}
}

// Reader reads L1 storage slots through the scroller contract. Every read is
// a single eth_call against the latest block. It holds no mutable state and
// is safe for concurrent use.
type Reader struct {
	log      log.Logger
	metr     Metricer
	address  common.Address
	contract *bind.BoundContract
	closer   func()
}

// NewReader dials cfg.RPCUrl and checks that the endpoint answers
// eth_chainId. Any failure is returned as ErrConnectivity, without retrying.
func NewReader(ctx context.Context, l log.Logger, cfg Config, opts ...Option) (*Reader, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	if cfg.RPCUrl == "" {
		return nil, fmt.Errorf("%w: %w", ErrConnectivity, ErrMissingRPCUrl)
	}
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = dial.DefaultDialTimeout
	}

	client, err := dial.DialEthClientWithTimeout(ctx, timeout, l, cfg.RPCUrl)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectivity, err)
	}

	cCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	chainID, err := client.ChainID(cCtx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: liveness check failed: %w", ErrConnectivity, err)
	}

	r, err := NewReaderFromCaller(l, client, cfg, opts...)
	if err != nil {
		client.Close()
		return nil, err
	}
	r.closer = client.Close
	l.Info("Connected to L2 endpoint", "chain_id", chainID, "scroller", cfg.ScrollerAddress)
	return r, nil
}

// NewReaderFromCaller binds the scroller contract to an established backend.
// No liveness check is made and Close leaves the backend open.
func NewReaderFromCaller(l log.Logger, caller bind.ContractCaller, cfg Config, opts ...Option) (*Reader, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	parsed, err := cfg.Schema.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse scroller contract schema: %w", err)
	}
	r := &Reader{
		log:      l,
		metr:     noopMetricer{},
		address:  cfg.ScrollerAddress,
		contract: bind.NewBoundContract(cfg.ScrollerAddress, *parsed, caller, nil, nil),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Address returns the scroller contract the reader is bound to.
func (r *Reader) Address() common.Address {
	return r.address
}

func (r *Reader) Close() {
	if r.closer != nil {
		r.closer()
	}
}

func (r *Reader) ReadUint(ctx context.Context, l1Contract common.Address, slot *uint256.Int) (*uint256.Int, error) {
	return readWide(ctx, r, methodReadUint, 256, l1Contract, slot)
}

func (r *Reader) ReadUint160(ctx context.Context, l1Contract common.Address, slot *uint256.Int) (*uint256.Int, error) {
	return readWide(ctx, r, methodReadUint160, 160, l1Contract, slot)
}

func (r *Reader) ReadUint128(ctx context.Context, l1Contract common.Address, slot *uint256.Int) (*uint256.Int, error) {
	return readWide(ctx, r, methodReadUint128, 128, l1Contract, slot)
}

func (r *Reader) ReadUint96(ctx context.Context, l1Contract common.Address, slot *uint256.Int) (*uint256.Int, error) {
	return readWide(ctx, r, methodReadUint96, 96, l1Contract, slot)
}

func (r *Reader) ReadUint64(ctx context.Context, l1Contract common.Address, slot *uint256.Int) (uint64, error) {
	return read[uint64](ctx, r, methodReadUint64, l1Contract, slot)
}

func (r *Reader) ReadUint48(ctx context.Context, l1Contract common.Address, slot *uint256.Int) (uint64, error) {
	v, err := readWide(ctx, r, methodReadUint48, 48, l1Contract, slot)
	if err != nil {
		return 0, err
	}
	return v.Uint64(), nil
}

func (r *Reader) ReadUint32(ctx context.Context, l1Contract common.Address, slot *uint256.Int) (uint32, error) {
	return read[uint32](ctx, r, methodReadUint32, l1Contract, slot)
}

func (r *Reader) ReadUint24(ctx context.Context, l1Contract common.Address, slot *uint256.Int) (uint32, error) {
	v, err := readWide(ctx, r, methodReadUint24, 24, l1Contract, slot)
	if err != nil {
		return 0, err
	}
	return uint32(v.Uint64()), nil
}

func (r *Reader) ReadUint8(ctx context.Context, l1Contract common.Address, slot *uint256.Int) (uint8, error) {
	return read[uint8](ctx, r, methodReadUint8, l1Contract, slot)
}

func (r *Reader) ReadAddress(ctx context.Context, l1Contract common.Address, slot *uint256.Int) (common.Address, error) {
	return read[common.Address](ctx, r, methodReadAddress, l1Contract, slot)
}

// ReadString reads a short string slot. Solidity pads short strings with
// zero bytes, so every NUL is removed, wherever it occurs. The remaining
// bytes must be valid UTF-8.
func (r *Reader) ReadString(ctx context.Context, l1Contract common.Address, slot *uint256.Int) (string, error) {
	s, err := read[string](ctx, r, methodReadString, l1Contract, slot)
	if err != nil {
		return "", err
	}
	s = stripNulls(s)
	if !utf8.ValidString(s) {
		return "", &CallError{
			Method:   methodReadString,
			Contract: l1Contract,
			Slots:    []*uint256.Int{slot},
			Err:      fmt.Errorf("%w: %q", ErrInvalidUTF8, s),
		}
	}
	return s, nil
}

// ReadSlot returns the raw bytes the scroller loaded for the slot.
func (r *Reader) ReadSlot(ctx context.Context, l1Contract common.Address, slot *uint256.Int) ([]byte, error) {
	return read[[]byte](ctx, r, methodReadSlot, l1Contract, slot)
}

// ReadMultipleSlots asks the scroller to load all slots in one contract
// call and returns the concatenated raw bytes.
func (r *Reader) ReadMultipleSlots(ctx context.Context, l1Contract common.Address, slots []*uint256.Int) ([]byte, error) {
	return read[[]byte](ctx, r, methodReadMultipleSlots, l1Contract, slots...)
}

func stripNulls(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// readWide reads a result the ABI codec decodes as *big.Int, and checks that
// it fits the declared width.
func readWide(ctx context.Context, r *Reader, method string, bits int, l1Contract common.Address, slot *uint256.Int) (*uint256.Int, error) {
	v, err := read[*big.Int](ctx, r, method, l1Contract, slot)
	if err != nil {
		return nil, err
	}
	if v.Sign() < 0 || v.BitLen() > bits {
		return nil, &CallError{
			Method:   method,
			Contract: l1Contract,
			Slots:    []*uint256.Int{slot},
			Err:      fmt.Errorf("%w: %d bits into uint%d", ErrValueOutOfRange, v.BitLen(), bits),
		}
	}
	return uint256.MustFromBig(v), nil
}

func read[T any](ctx context.Context, r *Reader, method string, l1Contract common.Address, slots ...*uint256.Int) (T, error) {
	start := time.Now()
	out, err := r.call(ctx, method, l1Contract, slots)
	var res T
	if err == nil {
		var ok bool
		if res, ok = out.(T); !ok {
			err = fmt.Errorf("%w: %s returned %T", ErrUnexpectedResult, method, out)
		}
	}
	r.metr.RecordRead(method, time.Since(start), err)
	if err != nil {
		r.log.Debug("Slot read failed", "method", method, "contract", l1Contract, "err", err)
		return *new(T), &CallError{Method: method, Contract: l1Contract, Slots: slots, Err: err}
	}
	r.log.Trace("Read slot", "method", method, "contract", l1Contract, "slots", len(slots))
	return res, nil
}

func (r *Reader) call(ctx context.Context, method string, l1Contract common.Address, slots []*uint256.Int) (any, error) {
	args := make([]*big.Int, len(slots))
	for i, s := range slots {
		if s == nil {
			return nil, ErrNilSlot
		}
		args[i] = s.ToBig()
	}

	var param any = args
	if method != methodReadMultipleSlots {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s takes exactly one slot, got %d", method, len(args))
		}
		param = args[0]
	}

	var out []any
	if err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, l1Contract, param); err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("%w: %s returned %d values", ErrUnexpectedResult, method, len(out))
	}
	return out[0], nil
}
