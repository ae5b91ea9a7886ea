package fs

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/domain/config"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
	"gopkg.in/yaml.v3"
)

// corpusFile is <corpus>/corpus.yaml
type corpusFile struct {
	Layers []domain.Layer `yaml:"layers"`
	Poses  []domain.Pose  `yaml:"poses"`
}

// paletteFile is <corpus>/palettes.yaml
type paletteFile struct {
	Codes []struct {
		Code     uint8 `yaml:"code"`
		Palettes []struct {
			Name   string   `yaml:"name"`
			Colors []string `yaml:"colors"`
		} `yaml:"palettes"`
	} `yaml:"codes"`
}

// patternFile is <corpus>/patterns/<Pose>.yaml
type patternFile struct {
	Patterns []struct {
		Layer       uint8  `yaml:"layer"`
		Index       uint8  `yaml:"index"`
		Name        string `yaml:"name"`
		Width       uint8  `yaml:"width"`
		Height      uint8  `yaml:"height"`
		OffsetX     uint8  `yaml:"offsetX"`
		OffsetY     uint8  `yaml:"offsetY"`
		PaletteCode uint8  `yaml:"paletteCode"`
		Data        string `yaml:"data"`
	} `yaml:"patterns"`
}

// CorpusLoaderAdapter reads the encoded asset corpus from YAML files
type CorpusLoaderAdapter struct {
	dir string
}

// NewCorpusLoaderAdapter creates a new CorpusLoaderAdapter
func NewCorpusLoaderAdapter(cfg *config.RuntimeConfig) *CorpusLoaderAdapter {
	return &CorpusLoaderAdapter{dir: cfg.CorpusDir}
}

// LoadCorpus reads layers, poses and palettes
func (c *CorpusLoaderAdapter) LoadCorpus(ctx context.Context) (*domain.Corpus, error) {
	var cf corpusFile
	if err := readYAML(filepath.Join(c.dir, "corpus.yaml"), &cf); err != nil {
		return nil, err
	}
	var pf paletteFile
	if err := readYAML(filepath.Join(c.dir, "palettes.yaml"), &pf); err != nil {
		return nil, err
	}

	corpus := &domain.Corpus{Layers: cf.Layers, Poses: cf.Poses}
	sort.Slice(corpus.Layers, func(i, j int) bool { return corpus.Layers[i].Index < corpus.Layers[j].Index })
	for i, layer := range corpus.Layers {
		if int(layer.Index) != i {
			return nil, fmt.Errorf("layer indices must be contiguous from 0, found %d at position %d", layer.Index, i)
		}
	}

	seen := make(map[uint8]bool, len(pf.Codes))
	for _, code := range pf.Codes {
		if seen[code.Code] {
			return nil, fmt.Errorf("duplicate palette code %d", code.Code)
		}
		seen[code.Code] = true

		pc := domain.PaletteCode{Code: code.Code}
		for _, p := range code.Palettes {
			colors := make([][4]byte, len(p.Colors))
			for i, s := range p.Colors {
				rgba, err := parseColor(s)
				if err != nil {
					return nil, fmt.Errorf("palette %s (code %d) color %d: %w", p.Name, code.Code, i, err)
				}
				colors[i] = rgba
			}
			pc.Palettes = append(pc.Palettes, domain.Palette{Name: p.Name, Colors: colors})
		}
		corpus.Palettes = append(corpus.Palettes, pc)
	}
	return corpus, nil
}

// LoadPatterns reads the patterns of a pose ordered by layer and index
func (c *CorpusLoaderAdapter) LoadPatterns(ctx context.Context, pose string) ([]domain.Pattern, error) {
	var pf patternFile
	if err := readYAML(filepath.Join(c.dir, "patterns", pose+".yaml"), &pf); err != nil {
		return nil, err
	}

	patterns := make([]domain.Pattern, 0, len(pf.Patterns))
	for _, p := range pf.Patterns {
		data, err := hexutil.Decode(p.Data)
		if err != nil {
			return nil, fmt.Errorf("pattern %s (layer %d, index %d): invalid data: %w", p.Name, p.Layer, p.Index, err)
		}
		patterns = append(patterns, domain.Pattern{
			Layer:       p.Layer,
			Index:       p.Index,
			Name:        p.Name,
			Width:       p.Width,
			Height:      p.Height,
			OffsetX:     p.OffsetX,
			OffsetY:     p.OffsetY,
			PaletteCode: p.PaletteCode,
			Data:        data,
		})
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		if patterns[i].Layer != patterns[j].Layer {
			return patterns[i].Layer < patterns[j].Layer
		}
		return patterns[i].Index < patterns[j].Index
	})
	for i := 1; i < len(patterns); i++ {
		if patterns[i].Layer == patterns[i-1].Layer && patterns[i].Index == patterns[i-1].Index {
			return nil, fmt.Errorf("duplicate pattern at layer %d index %d", patterns[i].Layer, patterns[i].Index)
		}
	}
	return patterns, nil
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read corpus file: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// parseColor parses an rrggbbaa hex color, with or without a leading #
func parseColor(s string) ([4]byte, error) {
	var rgba [4]byte
	s = strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if len(s) != 8 {
		return rgba, fmt.Errorf("expected rrggbbaa, got %q", s)
	}
	if _, err := hex.Decode(rgba[:], []byte(s)); err != nil {
		return rgba, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return rgba, nil
}

// Ensure the adapter implements the interface
var _ usecase.CorpusLoader = (*CorpusLoaderAdapter)(nil)
