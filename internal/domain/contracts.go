package domain

import (
	"fmt"
	"strings"
)

// ContractName identifies one of the contracts in the OpenAvatar Gen0 suite
type ContractName string

const (
	ImmutableCreate2Factory                    ContractName = "ImmutableCreate2Factory"
	OwnerProxy                                 ContractName = "OwnerProxy"
	OpenAvatarGen0Assets                       ContractName = "OpenAvatarGen0Assets"
	OpenAvatarGen0Renderer                     ContractName = "OpenAvatarGen0Renderer"
	OpenAvatarGen0RendererRegistry             ContractName = "OpenAvatarGen0RendererRegistry"
	OpenAvatarGen0Token                        ContractName = "OpenAvatarGen0Token"
	OpenAvatarGen0TextRecords                  ContractName = "OpenAvatarGen0TextRecords"
	OpenAvatarGen0ProfilePictureRenderer       ContractName = "OpenAvatarGen0ProfilePictureRenderer"
	OpenAvatarGen0ExampleMutableCanvasRenderer ContractName = "OpenAvatarGen0ExampleMutableCanvasRenderer"
)

// AllContracts lists every contract in canonical order. Deployment
// configs must carry an entry for each of them.
var AllContracts = []ContractName{
	ImmutableCreate2Factory,
	OwnerProxy,
	OpenAvatarGen0Assets,
	OpenAvatarGen0Renderer,
	OpenAvatarGen0RendererRegistry,
	OpenAvatarGen0Token,
	OpenAvatarGen0TextRecords,
	OpenAvatarGen0ProfilePictureRenderer,
	OpenAvatarGen0ExampleMutableCanvasRenderer,
}

// artifactSubdirs maps each contract to its directory under artifacts/contracts
var artifactSubdirs = map[ContractName]string{
	ImmutableCreate2Factory:                    "core/dependencies/",
	OwnerProxy:                                 "core/lib/",
	OpenAvatarGen0Assets:                       "",
	OpenAvatarGen0Renderer:                     "",
	OpenAvatarGen0RendererRegistry:             "",
	OpenAvatarGen0Token:                        "",
	OpenAvatarGen0TextRecords:                  "",
	OpenAvatarGen0ProfilePictureRenderer:       "extensions/",
	OpenAvatarGen0ExampleMutableCanvasRenderer: "extensions/example/",
}

// ArtifactPath returns the hardhat artifact path relative to the artifacts dir
func (c ContractName) ArtifactPath() string {
	return fmt.Sprintf("contracts/%s%s.sol/%s.json", artifactSubdirs[c], c, c)
}

// IsValid reports whether c is a member of the contract set
func (c ContractName) IsValid() bool {
	_, ok := artifactSubdirs[c]
	return ok
}

func (c ContractName) String() string {
	return string(c)
}

// ParseContractName resolves a name case-insensitively
func ParseContractName(s string) (ContractName, error) {
	for _, name := range AllContracts {
		if strings.EqualFold(string(name), s) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownContract, s)
}
