package config

// ProjectConfig is the content of oadeploy.toml
type ProjectConfig struct {
	Paths    PathsConfig              `toml:"paths"`
	Networks map[string]NetworkConfig `toml:"networks"`
	Local    LocalConfig              `toml:"local"`
	Upload   UploadConfig             `toml:"upload"`
}

// PathsConfig locates inputs and outputs relative to the project root
type PathsConfig struct {
	Artifacts   string `toml:"artifacts"`
	Deployments string `toml:"deployments"`
	Corpus      string `toml:"corpus"`
}

// NetworkConfig is one [networks.<name>] table
type NetworkConfig struct {
	RPCURL      string `toml:"rpc_url"`
	ChainID     uint64 `toml:"chain_id"`
	ExplorerURL string `toml:"explorer_url"`
}

// LocalConfig overrides the local network allow-list
type LocalConfig struct {
	Networks []string `toml:"networks"`
	ChainIDs []uint64 `toml:"chain_ids"`
}

// UploadConfig holds upload defaults
type UploadConfig struct {
	GasLimit uint64 `toml:"gas_limit"`
	Pose     string `toml:"pose"`
}

// DefaultProjectConfig returns the configuration used when oadeploy.toml leaves fields unset
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Artifacts:   "artifacts",
			Deployments: "deployments",
			Corpus:      "corpus",
		},
		Networks: map[string]NetworkConfig{
			"localhost": {RPCURL: "http://127.0.0.1:8545", ChainID: 31337},
		},
		Upload: UploadConfig{
			GasLimit: 15_000_000,
			Pose:     "IdleDown0",
		},
	}
}
