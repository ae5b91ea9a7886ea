package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for domain operations
var (
	// ErrUnknownContract is returned when a name is outside the contract set
	ErrUnknownContract = errors.New("unknown contract")

	// ErrIncompleteConfig is returned when a deployment config misses a contract
	ErrIncompleteConfig = errors.New("deployment config is incomplete")

	// ErrDuplicateAddress is returned when two contracts share a configured address
	ErrDuplicateAddress = errors.New("duplicate address in deployment config")

	// ErrBootstrapAddressMismatch is returned when the OwnerProxy CREATE2 address
	// differs from the configured one. Every other address depends on it.
	ErrBootstrapAddressMismatch = errors.New("OwnerProxy address mismatch")

	// ErrCreate2NotDeployed is returned when the factory still reports a free
	// address after a CREATE2 deployment
	ErrCreate2NotDeployed = errors.New("findCreate2Address should be zero after deployed with salt")

	// ErrItemExceedsGasLimit is returned when a single upload item cannot fit under the gas ceiling
	ErrItemExceedsGasLimit = errors.New("single batch exceeds gas limit")

	// ErrNetworkUnavailable is returned when the node does not respond in time
	ErrNetworkUnavailable = errors.New("network did not come up within the allotted time")

	// ErrConfirmationRequired is returned when a public network write is declined
	ErrConfirmationRequired = errors.New("confirmation required for public network")

	// ErrNotOwner is returned when the signer does not own a contract it must administer
	ErrNotOwner = errors.New("signer is not the contract owner")

	// ErrContractNotDeployed is returned when a configured address has no code
	ErrContractNotDeployed = errors.New("contract not deployed")

	// ErrArtifactsMissing is returned when only part of the artifacts are on disk
	ErrArtifactsMissing = errors.New("missing contract artifacts")

	// ErrBlankPattern is returned when a primary pose pattern has no pixel data
	ErrBlankPattern = errors.New("pattern has no pixel data")

	// ErrNoPrivateKey is returned when no signing key is configured
	ErrNoPrivateKey = errors.New("no deployer private key configured")

	// ErrPaletteIndexOverflow is returned when a palette upload would start past index 255
	ErrPaletteIndexOverflow = errors.New("palette index does not fit in uint8")
)

// AddressMismatch records a contract whose computed address differs from the configured one
type AddressMismatch struct {
	Contract   ContractName
	Configured common.Address
	Computed   common.Address
}

// AddressMismatchError aggregates every mismatch found in one run
type AddressMismatchError struct {
	Mismatches []AddressMismatch
	ScriptPath string
}

func (e *AddressMismatchError) Error() string {
	lines := make([]string, 0, len(e.Mismatches)+1)
	lines = append(lines, fmt.Sprintf("contract address mismatch (%d)", len(e.Mismatches)))
	for _, m := range e.Mismatches {
		lines = append(lines, fmt.Sprintf("  %s: configured %s, computed %s", m.Contract, m.Configured.Hex(), m.Computed.Hex()))
	}
	if e.ScriptPath != "" {
		lines = append(lines, fmt.Sprintf("run %s to update the hard-coded addresses", e.ScriptPath))
	}
	return strings.Join(lines, "\n")
}

// DeployerMismatchError is returned when the signer is not the configured deployer
type DeployerMismatchError struct {
	Signer   common.Address
	Expected common.Address
}

func (e *DeployerMismatchError) Error() string {
	return fmt.Sprintf("deployer address %s does not match expected deployer address %s", e.Signer.Hex(), e.Expected.Hex())
}

// DependencyMismatchError is returned when an already-wired pointer holds an unexpected address
type DependencyMismatchError struct {
	Contract   ContractName
	Dependency ContractName
	Existing   common.Address
	Expected   common.Address
}

func (e *DependencyMismatchError) Error() string {
	return fmt.Sprintf("%s: existing %s %s does not match %s", e.Contract, e.Dependency, e.Existing.Hex(), e.Expected.Hex())
}

// UnexpectedEventCountError is returned when a state transition emits the wrong number of events
type UnexpectedEventCountError struct {
	Contract ContractName
	Method   string
	Expected int
	Actual   int
}

func (e *UnexpectedEventCountError) Error() string {
	return fmt.Sprintf("%s.%s: expected %d event(s), got %d", e.Contract, e.Method, e.Expected, e.Actual)
}

// TransactionRevertedError is returned when a mined transaction has a failed status
type TransactionRevertedError struct {
	TxHash common.Hash
	Action string
}

func (e *TransactionRevertedError) Error() string {
	return fmt.Sprintf("transaction %s reverted (%s)", e.TxHash.Hex(), e.Action)
}
