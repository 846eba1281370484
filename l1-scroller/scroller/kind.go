package scroller

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// Kind names the type a slot is decoded as.
type Kind string

const (
	KindUint    Kind = "uint"
	KindUint160 Kind = "uint160"
	KindUint128 Kind = "uint128"
	KindUint96  Kind = "uint96"
	KindUint64  Kind = "uint64"
	KindUint48  Kind = "uint48"
	KindUint32  Kind = "uint32"
	KindUint24  Kind = "uint24"
	KindUint8   Kind = "uint8"
	KindAddress Kind = "address"
	KindString  Kind = "string"
	KindSlot    Kind = "slot"
)

var Kinds = []Kind{
	KindUint, KindUint160, KindUint128, KindUint96, KindUint64, KindUint48,
	KindUint32, KindUint24, KindUint8, KindAddress, KindString, KindSlot,
}

func (k Kind) String() string {
	return string(k)
}

// Numeric reports whether values of this kind decode to an integer.
func (k Kind) Numeric() bool {
	switch k {
	case KindAddress, KindString, KindSlot:
		return false
	}
	return true
}

func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "uint256" {
		return KindUint, nil
	}
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown kind %q, expected one of %v", s, Kinds)
}

// Value is a decoded slot. Exactly one of the fields matching Kind is set.
type Value struct {
	Kind    Kind
	Uint    *uint256.Int
	Address common.Address
	Text    string
	Raw     []byte
}

func (v Value) String() string {
	switch {
	case v.Kind.Numeric():
		if v.Uint == nil {
			return "<nil>"
		}
		return v.Uint.Dec()
	case v.Kind == KindAddress:
		return v.Address.Hex()
	case v.Kind == KindString:
		return v.Text
	default:
		return hexutil.Encode(v.Raw)
	}
}

// Float64 returns the numeric value, possibly rounded. ok is false for
// kinds without a numeric value.
func (v Value) Float64() (f float64, ok bool) {
	if !v.Kind.Numeric() || v.Uint == nil {
		return 0, false
	}
	f, _ = new(big.Float).SetInt(v.Uint.ToBig()).Float64()
	return f, true
}

// ReadKind dispatches to the read operation of the given kind.
func (r *Reader) ReadKind(ctx context.Context, kind Kind, l1Contract common.Address, slot *uint256.Int) (Value, error) {
	out := Value{Kind: kind}
	var err error
	switch kind {
	case KindUint:
		out.Uint, err = r.ReadUint(ctx, l1Contract, slot)
	case KindUint160:
		out.Uint, err = r.ReadUint160(ctx, l1Contract, slot)
	case KindUint128:
		out.Uint, err = r.ReadUint128(ctx, l1Contract, slot)
	case KindUint96:
		out.Uint, err = r.ReadUint96(ctx, l1Contract, slot)
	case KindUint64:
		var v uint64
		v, err = r.ReadUint64(ctx, l1Contract, slot)
		out.Uint = uint256.NewInt(v)
	case KindUint48:
		var v uint64
		v, err = r.ReadUint48(ctx, l1Contract, slot)
		out.Uint = uint256.NewInt(v)
	case KindUint32:
		var v uint32
		v, err = r.ReadUint32(ctx, l1Contract, slot)
		out.Uint = uint256.NewInt(uint64(v))
	case KindUint24:
		var v uint32
		v, err = r.ReadUint24(ctx, l1Contract, slot)
		out.Uint = uint256.NewInt(uint64(v))
	case KindUint8:
		var v uint8
		v, err = r.ReadUint8(ctx, l1Contract, slot)
		out.Uint = uint256.NewInt(uint64(v))
	case KindAddress:
		out.Address, err = r.ReadAddress(ctx, l1Contract, slot)
	case KindString:
		out.Text, err = r.ReadString(ctx, l1Contract, slot)
	case KindSlot:
		out.Raw, err = r.ReadSlot(ctx, l1Contract, slot)
	default:
		return Value{}, fmt.Errorf("unknown kind %q", kind)
	}
	if err != nil {
		return Value{}, err
	}
	return out, nil
}
