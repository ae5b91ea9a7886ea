package domain

import (
	"fmt"
	"strings"
)

// MintState mirrors the token's mint state enum
type MintState uint8

const (
	MintPermanentlyDisabled MintState = iota
	MintDisabled
	MintOnlyOwner
	MintPublicPendingBlockTimestamp
	MintPublic
)

func (s MintState) String() string {
	switch s {
	case MintPermanentlyDisabled:
		return "PERMANENTLY_DISABLED"
	case MintDisabled:
		return "DISABLED"
	case MintOnlyOwner:
		return "ONLY_OWNER"
	case MintPublicPendingBlockTimestamp:
		return "PUBLIC_PENDING_BLOCK_TIMESTAMP"
	case MintPublic:
		return "PUBLIC"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(s))
	}
}

// PublicMintSupply is the supply soft cap opened for the public mint
const PublicMintSupply uint16 = 8192

// PublicMintPriceEther is the public mint price in ether
const PublicMintPriceEther = "0.1"

// ParseMintState accepts the states an owner may switch the mint to
func ParseMintState(s string) (MintState, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "_", "-")) {
	case "disabled":
		return MintDisabled, nil
	case "only-owner", "owner":
		return MintOnlyOwner, nil
	case "public":
		return MintPublic, nil
	default:
		return 0, fmt.Errorf("invalid mint state: %s (valid: disabled, only-owner, public)", s)
	}
}
