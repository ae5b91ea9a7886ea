package fs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCorpus = `
layers:
  - index: 1
    name: skin
  - index: 0
    name: body
poses:
  - name: IdleDown0
    canvasId: 0
  - name: IdleLeft0
    canvasId: 1
`

const testPalettes = `
codes:
  - code: 0
    palettes:
      - name: transparent
        colors: ["00000000"]
  - code: 1
    palettes:
      - name: skin
        colors: ["#ff8800ff", "0x112233ff"]
`

const testPatterns = `
patterns:
  - layer: 1
    index: 0
    name: skin0
    width: 32
    height: 32
    paletteCode: 1
    data: "0x0102"
  - layer: 0
    index: 1
    name: body1
    width: 4
    height: 2
    offsetX: 3
    offsetY: 5
    data: "0x00"
  - layer: 0
    index: 0
    name: body0
    width: 32
    height: 32
    data: "0x01"
`

func writeCorpus(t *testing.T, dir string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, "corpus.yaml"), testCorpus)
	writeFile(t, filepath.Join(dir, "palettes.yaml"), testPalettes)
	writeFile(t, filepath.Join(dir, "patterns", "IdleDown0.yaml"), testPatterns)
}

func TestCorpusLoaderLoadCorpus(t *testing.T) {
	cfg := testRuntimeConfig(t)
	writeCorpus(t, cfg.CorpusDir)

	corpus, err := NewCorpusLoaderAdapter(cfg).LoadCorpus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Layer{{Index: 0, Name: "body"}, {Index: 1, Name: "skin"}}, corpus.Layers)
	pose, ok := corpus.Pose("IdleLeft0")
	require.True(t, ok)
	assert.Equal(t, uint8(1), pose.CanvasID)

	require.Len(t, corpus.Palettes, 2)
	assert.Equal(t, [][4]byte{{0, 0, 0, 0}}, corpus.Palettes[0].Palettes[0].Colors)
	assert.Equal(t, [][4]byte{{0xff, 0x88, 0x00, 0xff}, {0x11, 0x22, 0x33, 0xff}}, corpus.Palettes[1].Palettes[0].Colors)
}

func TestCorpusLoaderLoadPatterns(t *testing.T) {
	cfg := testRuntimeConfig(t)
	writeCorpus(t, cfg.CorpusDir)

	patterns, err := NewCorpusLoaderAdapter(cfg).LoadPatterns(context.Background(), "IdleDown0")
	require.NoError(t, err)
	require.Len(t, patterns, 3)

	names := []string{patterns[0].Name, patterns[1].Name, patterns[2].Name}
	assert.Equal(t, []string{"body0", "body1", "skin0"}, names)
	assert.Equal(t, domain.Pattern{
		Layer: 0, Index: 1, Name: "body1", Width: 4, Height: 2, OffsetX: 3, OffsetY: 5, Data: []byte{0x00},
	}, patterns[1])
	assert.Equal(t, uint8(1), patterns[2].PaletteCode)
}

func TestCorpusLoaderErrors(t *testing.T) {
	tests := []struct {
		name     string
		corpus   string
		palettes string
		wantErr  string
	}{
		{
			name:     "bad color",
			corpus:   testCorpus,
			palettes: "codes:\n  - code: 0\n    palettes:\n      - name: x\n        colors: [\"fff\"]\n",
			wantErr:  "expected rrggbbaa",
		},
		{
			name:     "duplicate code",
			corpus:   testCorpus,
			palettes: "codes:\n  - code: 2\n  - code: 2\n",
			wantErr:  "duplicate palette code 2",
		},
		{
			name:     "layer gap",
			corpus:   "layers:\n  - index: 0\n    name: a\n  - index: 2\n    name: c\n",
			palettes: testPalettes,
			wantErr:  "contiguous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testRuntimeConfig(t)
			writeFile(t, filepath.Join(cfg.CorpusDir, "corpus.yaml"), tt.corpus)
			writeFile(t, filepath.Join(cfg.CorpusDir, "palettes.yaml"), tt.palettes)

			_, err := NewCorpusLoaderAdapter(cfg).LoadCorpus(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCorpusLoaderMissingPose(t *testing.T) {
	cfg := testRuntimeConfig(t)
	writeCorpus(t, cfg.CorpusDir)

	_, err := NewCorpusLoaderAdapter(cfg).LoadPatterns(context.Background(), "Nope")
	assert.ErrorContains(t, err, "failed to read corpus file")
}
