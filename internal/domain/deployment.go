package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Well-known hardhat/anvil development account 0
var (
	HardhatDefaultDeployer   = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	HardhatDefaultPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
)

// FixScriptTargets are the files holding hard-coded contract addresses
var FixScriptTargets = []string{"contracts/src/abi/config/*.ts", "web/abi/ABI.ts"}

// Registry keys of the renderers added during deployment
const (
	RendererKeyBase = "base"
	RendererKeyPfp  = "pfp"
)

// DeploymentStep is one numbered step of the deployment sequence
type DeploymentStep struct {
	Number      int
	Description string
}

// DeploymentSteps lists the deployment sequence in order. The last two
// steps only run on local networks with the development signer.
var DeploymentSteps = []DeploymentStep{
	{1, "deploy ImmutableCreate2Factory"},
	{2, "deploy OwnerProxy"},
	{3, "transfer OwnerProxy ownership"},
	{4, "deploy OpenAvatarGen0Assets"},
	{5, "deploy OpenAvatarGen0RendererRegistry"},
	{6, "deploy OpenAvatarGen0Renderer"},
	{7, "deploy OpenAvatarGen0Token"},
	{8, "deploy OpenAvatarGen0TextRecords"},
	{9, "deploy OpenAvatarGen0ProfilePictureRenderer"},
	{10, "initialize OpenAvatarGen0Renderer"},
	{11, "initialize OpenAvatarGen0TextRecords"},
	{12, "initialize OpenAvatarGen0RendererRegistry"},
	{13, "initialize OpenAvatarGen0Token"},
	{14, "initialize OpenAvatarGen0ProfilePictureRenderer"},
	{15, "register base renderer"},
	{16, "register pfp renderer"},
	{17, "set default renderer"},
	{18, "deploy OpenAvatarGen0ExampleMutableCanvasRenderer"},
	{19, "initialize OpenAvatarGen0ExampleMutableCanvasRenderer"},
}

// TotalDeploymentSteps is the length of the full sequence
var TotalDeploymentSteps = len(DeploymentSteps)

// DeployedContract records where a contract lives after a run
type DeployedContract struct {
	Name     ContractName
	Address  common.Address
	Deployed bool // false when it was already on chain
	TxHash   common.Hash
	GasUsed  uint64
}

// Create2Record is the audit record written next to the artifacts
type Create2Record struct {
	Input   *Create2Input   `json:"input"`
	Address *Create2Address `json:"address"`
	Signer  common.Address  `json:"signer"`
}

// PartialDeployment is the result of running a prefix of the deployment steps
type PartialDeployment struct {
	StepsRun   int
	Contracts  []DeployedContract
	Create2    map[ContractName]*Create2Record
	Mismatches []AddressMismatch
	GasUsed    uint64
	Spent      *big.Int
}

// NewPartialDeployment returns an empty result
func NewPartialDeployment() *PartialDeployment {
	return &PartialDeployment{
		Create2: make(map[ContractName]*Create2Record),
		Spent:   new(big.Int),
	}
}

// Address returns the deployed address of name and whether it was reached
func (p *PartialDeployment) Address(name ContractName) (common.Address, bool) {
	for _, c := range p.Contracts {
		if c.Name == name {
			return c.Address, true
		}
	}
	return common.Address{}, false
}
