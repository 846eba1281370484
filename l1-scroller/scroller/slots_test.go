package scroller

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func hexSlot(t *testing.T, s string) *uint256.Int {
	v, err := uint256.FromHex(s)
	require.NoError(t, err)
	return v
}

func TestMappingSlot(t *testing.T) {
	// keccak256(abi.encode(1, 2))
	require.Equal(t,
		hexSlot(t, "0xe90b7bceb6e7df5418fb78d8ee546e97c83a08bbccc01a0644d599ccd2a7c2e0"),
		MappingSlot(common.BigToHash(common.Big1), uint256.NewInt(2)))

	key := common.HexToHash("0xdeadbeef")
	base := uint256.NewInt(9)
	baseWord := base.Bytes32()
	want := new(uint256.Int).SetBytes(crypto.Keccak256(common.LeftPadBytes(key.Bytes(), 32), baseWord[:]))
	require.Equal(t, want, MappingSlot(key, base))
}

func TestERC721Slots(t *testing.T) {
	require.Equal(t,
		hexSlot(t, "0xe90b7bceb6e7df5418fb78d8ee546e97c83a08bbccc01a0644d599ccd2a7c2e0"),
		ERC721OwnerSlot(uint256.NewInt(1)))
	require.Equal(t,
		hexSlot(t, "0x4921876acba9eabcee77b83b128ea9445a655f94530616fe82904da1cf0c5250"),
		ERC721BalanceSlot(testOwner))
	require.Equal(t,
		hexSlot(t, "0x1e6043a6c86e5742fd0ac32eaf3561055f8c2118434b49aa0ab8fd83ab4175fc"),
		ERC721OperatorApprovalSlot(testOwner, testScroller))

	require.Equal(t,
		MappingSlot(common.BigToHash(common.Big1), uint256.NewInt(ERC721TokenApprovalsBase)),
		ERC721TokenApprovalSlot(uint256.NewInt(1)))
	require.NotEqual(t, ERC721OwnerSlot(uint256.NewInt(1)), ERC721TokenApprovalSlot(uint256.NewInt(1)))
}

func TestNestedMappingSlot(t *testing.T) {
	outer := common.BytesToHash(testOwner.Bytes())
	inner := common.BytesToHash(testScroller.Bytes())
	base := uint256.NewInt(ERC721OperatorApprovalsBase)
	require.Equal(t, MappingSlot(inner, MappingSlot(outer, base)), NestedMappingSlot(outer, inner, base))
	require.NotEqual(t, NestedMappingSlot(outer, inner, base), NestedMappingSlot(inner, outer, base))
}
