package cliutil

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"
)

var (
	ErrFlagBlank      = errors.New("cannot parse blank flag")
	ErrNegative       = errors.New("negative value")
	ErrOverflow       = errors.New("value overflows 256 bits")
	ErrInvalidAddress = errors.New("invalid address")
)

// ParseUint256 parses a decimal or 0x-prefixed hexadecimal number.
// Leading zeros are accepted in both forms.
func ParseUint256(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrFlagBlank
	}
	base := 10
	digits := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		digits = s[2:]
	}
	out, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("error parsing number '%s'", s)
	}
	if out.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNegative, s)
	}
	v, overflow := uint256.FromBig(out)
	if overflow {
		return nil, fmt.Errorf("%w: %s", ErrOverflow, s)
	}
	return v, nil
}

func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

func Uint256Flag(cliCtx *cli.Context, flagName string) (*uint256.Int, error) {
	v, err := ParseUint256(cliCtx.String(flagName))
	if err != nil {
		return nil, fmt.Errorf("flag %s: %w", flagName, err)
	}
	return v, nil
}

func AddressFlag(cliCtx *cli.Context, flagName string) (common.Address, error) {
	v, err := ParseAddress(cliCtx.String(flagName))
	if err != nil {
		return common.Address{}, fmt.Errorf("flag %s: %w", flagName, err)
	}
	return v, nil
}
