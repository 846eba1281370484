package main

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"

	"github.com/l1sload/l1scroller/l1-scroller/flags"
	"github.com/l1sload/l1scroller/l1-scroller/scroller"
	"github.com/l1sload/l1scroller/op-service/cliutil"
)

var slotCommands = cli.Commands{
	{
		Name:   "mapping",
		Usage:  "Slot of mapping[key] for a mapping declared at --base",
		Flags:  []cli.Flag{flags.KeyFlag, flags.BaseFlag},
		Action: slotAction(mappingSlot),
	},
	{
		Name:   "erc721-owner",
		Usage:  "Slot holding the owner of --token-id",
		Flags:  []cli.Flag{flags.TokenIDFlag},
		Action: slotAction(tokenSlot(scroller.ERC721OwnerSlot)),
	},
	{
		Name:   "erc721-balance",
		Usage:  "Slot holding the token balance of --account",
		Flags:  []cli.Flag{flags.AccountFlag},
		Action: slotAction(balanceSlot),
	},
	{
		Name:   "erc721-approval",
		Usage:  "Slot holding the approved address of --token-id",
		Flags:  []cli.Flag{flags.TokenIDFlag},
		Action: slotAction(tokenSlot(scroller.ERC721TokenApprovalSlot)),
	},
	{
		Name:   "erc721-operator",
		Usage:  "Slot holding whether --operator may manage all tokens of --account",
		Flags:  []cli.Flag{flags.AccountFlag, flags.OperatorFlag},
		Action: slotAction(operatorSlot),
	},
}

func slotAction(derive func(*cli.Context) (*uint256.Int, error)) cli.ActionFunc {
	return func(cliCtx *cli.Context) error {
		slot, err := derive(cliCtx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cliCtx.App.Writer, slot.Hex())
		return err
	}
}

// mappingSlot reads the key as a number. An 0x-prefixed address parses to
// the same left-padded word Solidity hashes for address keys.
func mappingSlot(cliCtx *cli.Context) (*uint256.Int, error) {
	base, err := cliutil.Uint256Flag(cliCtx, flags.BaseFlag.Name)
	if err != nil {
		return nil, err
	}
	key, err := cliutil.Uint256Flag(cliCtx, flags.KeyFlag.Name)
	if err != nil {
		return nil, err
	}
	return scroller.MappingSlot(key.Bytes32(), base), nil
}

func tokenSlot(fn func(*uint256.Int) *uint256.Int) func(*cli.Context) (*uint256.Int, error) {
	return func(cliCtx *cli.Context) (*uint256.Int, error) {
		id, err := cliutil.Uint256Flag(cliCtx, flags.TokenIDFlag.Name)
		if err != nil {
			return nil, err
		}
		return fn(id), nil
	}
}

func balanceSlot(cliCtx *cli.Context) (*uint256.Int, error) {
	account, err := cliutil.AddressFlag(cliCtx, flags.AccountFlag.Name)
	if err != nil {
		return nil, err
	}
	return scroller.ERC721BalanceSlot(account), nil
}

func operatorSlot(cliCtx *cli.Context) (*uint256.Int, error) {
	owner, err := cliutil.AddressFlag(cliCtx, flags.AccountFlag.Name)
	if err != nil {
		return nil, err
	}
	operator, err := cliutil.AddressFlag(cliCtx, flags.OperatorFlag.Name)
	if err != nil {
		return nil, err
	}
	return scroller.ERC721OperatorApprovalSlot(owner, operator), nil
}
