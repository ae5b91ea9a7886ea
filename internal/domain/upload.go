package domain

// CanvasSize is the width and height of every Gen0 canvas
const CanvasSize = 32

// DefaultUploadGasLimit is the per-transaction gas ceiling for upload batches
const DefaultUploadGasLimit uint64 = 15_000_000

// PrimaryCanvasID is the canvas of the primary pose. Blank patterns on it are rejected.
const PrimaryCanvasID uint8 = 0

// CanvasHeader describes a canvas to add to the asset store
type CanvasHeader struct {
	Id     uint8
	Width  uint8
	Height uint8
}

// UploadPaletteBatchInput uploads palettes of one code starting at FromIndex
type UploadPaletteBatchInput struct {
	Code      uint8
	FromIndex uint8
	Palettes  [][][4]byte
}

// UploadPatternInput uploads a single encoded pattern
type UploadPatternInput struct {
	CanvasId    uint8
	Layer       uint8
	Index       uint8
	Width       uint8
	Height      uint8
	OffsetX     uint8
	OffsetY     uint8
	PaletteCode uint8
	Data        []byte
}

// IsBlank reports whether the pattern carries no visible pixels
func (p UploadPatternInput) IsBlank() bool {
	for _, b := range p.Data {
		if b != 0 {
			return false
		}
	}
	return true
}

// BatchWithGasEstimate is a batch of upload items and its simulated cost
type BatchWithGasEstimate[T any] struct {
	Items       []T
	GasEstimate uint64
}

// Layer is a named layer of a canvas
type Layer struct {
	Index uint8  `yaml:"index"`
	Name  string `yaml:"name"`
}

// Pose maps a pose name to its canvas
type Pose struct {
	Name     string `yaml:"name"`
	CanvasID uint8  `yaml:"canvasId"`
}

// Palette is a named list of RGBA colors
type Palette struct {
	Name   string
	Colors [][4]byte
}

// PaletteCode groups the palettes sharing one code
type PaletteCode struct {
	Code     uint8
	Palettes []Palette
}

// Pattern is one encoded pattern of a layer
type Pattern struct {
	Layer       uint8
	Index       uint8
	Name        string
	Width       uint8
	Height      uint8
	OffsetX     uint8
	OffsetY     uint8
	PaletteCode uint8
	Data        []byte
}

// Corpus is the locally encoded asset set
type Corpus struct {
	Layers   []Layer
	Poses    []Pose
	Palettes []PaletteCode
}

// Pose looks up a pose by name
func (c *Corpus) Pose(name string) (Pose, bool) {
	for _, p := range c.Poses {
		if p.Name == name {
			return p, true
		}
	}
	return Pose{}, false
}
