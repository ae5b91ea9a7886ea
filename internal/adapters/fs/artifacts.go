package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/openavatar/openavatar-deploy/internal/domain"
)

// hardhatArtifact is the subset of a hardhat build artifact we read
type hardhatArtifact struct {
	ContractName     string          `json:"contractName"`
	ABI              json.RawMessage `json:"abi"`
	Bytecode         string          `json:"bytecode"`
	DeployedBytecode string          `json:"deployedBytecode"`
}

// Artifact is a compiled contract
type Artifact struct {
	ABI              *abi.ABI
	Bytecode         []byte
	DeployedBytecode []byte
}

// ArtifactLoader reads hardhat artifacts from <artifacts>/contracts
type ArtifactLoader struct {
	dir string
}

// NewArtifactLoader creates a loader rooted at the artifacts directory
func NewArtifactLoader(dir string) *ArtifactLoader {
	return &ArtifactLoader{dir: dir}
}

// Load reads the artifact of a single contract
func (l *ArtifactLoader) Load(name domain.ContractName) (*Artifact, error) {
	path := filepath.Join(l.dir, name.ArtifactPath())
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", name, err)
	}

	var raw hardhatArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", name, err)
	}

	parsed, err := abi.JSON(bytes.NewReader(raw.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", name, err)
	}
	bytecode, err := decodeBytecode(raw.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode in artifact %s: %w", name, err)
	}
	deployed, err := decodeBytecode(raw.DeployedBytecode)
	if err != nil {
		return nil, fmt.Errorf("invalid deployedBytecode in artifact %s: %w", name, err)
	}

	return &Artifact{ABI: &parsed, Bytecode: bytecode, DeployedBytecode: deployed}, nil
}

// LoadAll reads the artifacts of every contract. When none exist (a fresh
// checkout before compilation) it returns an empty map; a partial set is an
// error.
func (l *ArtifactLoader) LoadAll() (map[domain.ContractName]*Artifact, error) {
	out := make(map[domain.ContractName]*Artifact, len(domain.AllContracts))
	var missing []domain.ContractName
	for _, name := range domain.AllContracts {
		artifact, err := l.Load(name)
		if errors.Is(err, os.ErrNotExist) {
			missing = append(missing, name)
			continue
		}
		if err != nil {
			return nil, err
		}
		out[name] = artifact
	}

	switch {
	case len(missing) == len(domain.AllContracts):
		return map[domain.ContractName]*Artifact{}, nil
	case len(missing) > 0:
		return nil, fmt.Errorf("missing artifacts for %v in %s", missing, l.dir)
	}
	return out, nil
}

func decodeBytecode(s string) ([]byte, error) {
	if s == "" || s == "0x" {
		return nil, nil
	}
	return hexutil.Decode(s)
}
