package fs

import (
	"context"
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCreate2Record(t *testing.T) {
	cfg := testRuntimeConfig(t)
	w := NewAuditWriterAdapter(cfg)

	input, err := domain.NewCreate2Input(domain.OwnerProxy, nil, []byte{0x60, 0x80}, nil)
	require.NoError(t, err)
	factory := common.HexToAddress("0x0000000000FFe8B47B3e2130213B802212439497")
	addr, err := domain.NewCreate2Address(domain.OwnerProxy, factory, big.NewInt(7), input.InitCodeHash)
	require.NoError(t, err)

	record := &domain.Create2Record{Input: input, Address: addr, Signer: domain.HardhatDefaultDeployer}
	require.NoError(t, w.WriteCreate2Record(context.Background(), domain.OwnerProxy, record))

	data, err := os.ReadFile(filepath.Join(cfg.ArtifactsDir, "OwnerProxy.create2.json"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "input")
	assert.Contains(t, decoded, "address")
	assert.Equal(t, strings.ToLower(domain.HardhatDefaultDeployer.Hex()), decoded["signer"])

	address := decoded["address"].(map[string]any)
	assert.Equal(t, strings.ToLower(addr.Address.Hex()), address["address"])
	assert.Equal(t, float64(7), address["salt"])
}

func TestWriteFixScript(t *testing.T) {
	cfg := testRuntimeConfig(t)
	w := NewAuditWriterAdapter(cfg)

	a := common.HexToAddress("0x00000000000000000000000000000000000000a1")
	b := common.HexToAddress("0x00000000000000000000000000000000000000b2")
	c := common.HexToAddress("0x00000000000000000000000000000000000000c3")
	d := common.HexToAddress("0x00000000000000000000000000000000000000d4")
	mismatches := []domain.AddressMismatch{
		{Contract: domain.OwnerProxy, Configured: a, Computed: b},
		{Contract: domain.OpenAvatarGen0Token, Configured: c, Computed: d},
	}

	path, err := w.WriteFixScript(context.Background(), mismatches)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.ArtifactsDir, "fix_abi.sh"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "#!/bin/bash\n"))
	for _, line := range []string{"set -e", "set -o pipefail", "set -x"} {
		assert.Contains(t, content, line+"\n")
	}
	assert.Contains(t, content, "-e s/"+a.Hex()+"/"+b.Hex()+"/g")
	assert.Contains(t, content, "-e s/"+c.Hex()+"/"+d.Hex()+"/g")
	assert.Contains(t, content, "contracts/src/abi/config/*.ts web/abi/ABI.ts")
}

func TestWriteFixScriptOverwritesMode(t *testing.T) {
	cfg := testRuntimeConfig(t)
	path := filepath.Join(cfg.ArtifactsDir, "fix_abi.sh")
	writeFile(t, path, "old")

	_, err := NewAuditWriterAdapter(cfg).WriteFixScript(context.Background(), nil)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestFixCommand(t *testing.T) {
	a := common.HexToAddress("0x01")
	b := common.HexToAddress("0x02")
	got := FixCommand([]domain.AddressMismatch{{Configured: a, Computed: b}})
	assert.Equal(t, "sed -i -e s/"+a.Hex()+"/"+b.Hex()+"/g contracts/src/abi/config/*.ts web/abi/ABI.ts", got)
}
