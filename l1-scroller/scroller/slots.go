package scroller

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// Storage slots of the OpenZeppelin ERC721 mappings.
const (
	ERC721OwnersBase            uint64 = 2
	ERC721BalancesBase          uint64 = 3
	ERC721TokenApprovalsBase    uint64 = 4
	ERC721OperatorApprovalsBase uint64 = 5
)

// MappingSlot returns the slot of key in a mapping declared at base:
// keccak256(key . base), both 32-byte words.
func MappingSlot(key common.Hash, base *uint256.Int) *uint256.Int {
	b := base.Bytes32()
	return new(uint256.Int).SetBytes(crypto.Keccak256(key[:], b[:]))
}

func AddressMappingSlot(key common.Address, base *uint256.Int) *uint256.Int {
	return MappingSlot(common.BytesToHash(key.Bytes()), base)
}

// NestedMappingSlot returns the slot of m[outer][inner] for a mapping m
// declared at base.
func NestedMappingSlot(outer, inner common.Hash, base *uint256.Int) *uint256.Int {
	return MappingSlot(inner, MappingSlot(outer, base))
}

func ERC721OwnerSlot(tokenID *uint256.Int) *uint256.Int {
	return MappingSlot(tokenID.Bytes32(), uint256.NewInt(ERC721OwnersBase))
}

func ERC721BalanceSlot(account common.Address) *uint256.Int {
	return AddressMappingSlot(account, uint256.NewInt(ERC721BalancesBase))
}

func ERC721TokenApprovalSlot(tokenID *uint256.Int) *uint256.Int {
	return MappingSlot(tokenID.Bytes32(), uint256.NewInt(ERC721TokenApprovalsBase))
}

func ERC721OperatorApprovalSlot(owner, operator common.Address) *uint256.Int {
	return NestedMappingSlot(common.BytesToHash(owner.Bytes()), common.BytesToHash(operator.Bytes()), uint256.NewInt(ERC721OperatorApprovalsBase))
}
