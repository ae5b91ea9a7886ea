package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/domain/config"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
)

const fixScriptHeader = "#!/bin/bash\n\nset -e\nset -o pipefail\nset -x\n\n"

// AuditWriterAdapter writes CREATE2 records and the address fix script into the artifacts dir
type AuditWriterAdapter struct {
	dir string
}

// NewAuditWriterAdapter creates a new AuditWriterAdapter
func NewAuditWriterAdapter(cfg *config.RuntimeConfig) *AuditWriterAdapter {
	return &AuditWriterAdapter{dir: cfg.ArtifactsDir}
}

// WriteCreate2Record writes <artifacts>/<Name>.create2.json
func (w *AuditWriterAdapter) WriteCreate2Record(ctx context.Context, name domain.ContractName, record *domain.Create2Record) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("failed to create artifacts directory: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal create2 record: %w", err)
	}

	path := filepath.Join(w.dir, string(name)+".create2.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write create2 record: %w", err)
	}
	return nil
}

// WriteFixScript writes an executable sed script replacing every configured
// address with the computed one and returns its path
func (w *AuditWriterAdapter) WriteFixScript(ctx context.Context, mismatches []domain.AddressMismatch) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create artifacts directory: %w", err)
	}

	path := filepath.Join(w.dir, "fix_abi.sh")
	content := fixScriptHeader + FixCommand(mismatches) + "\n"
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		return "", fmt.Errorf("failed to write fix script: %w", err)
	}
	// WriteFile keeps the mode of an existing file
	if err := os.Chmod(path, 0755); err != nil {
		return "", fmt.Errorf("failed to make fix script executable: %w", err)
	}
	return path, nil
}

// FixCommand builds a single sed invocation with one -e clause per mismatch
func FixCommand(mismatches []domain.AddressMismatch) string {
	var b strings.Builder
	b.WriteString("sed -i")
	for _, m := range mismatches {
		fmt.Fprintf(&b, " -e s/%s/%s/g", m.Configured.Hex(), m.Computed.Hex())
	}
	b.WriteString(" ")
	b.WriteString(strings.Join(domain.FixScriptTargets, " "))
	return b.String()
}

// Ensure the adapter implements the interface
var _ usecase.AuditWriter = (*AuditWriterAdapter)(nil)
