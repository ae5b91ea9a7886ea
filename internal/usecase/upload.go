package usecase

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"sort"
	"strings"

	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/samber/lo"
)

// UploadParams contains parameters for uploading the asset corpus
type UploadParams struct {
	DeployType domain.DeploymentType
	Create2    bool
	Pose       string
	// OneEach uploads only the next pattern of layers holding at most one
	OneEach  bool
	GasLimit uint64
}

// UploadResult summarises an upload run
type UploadResult struct {
	Pose             string
	CanvasID         uint8
	PalettesUploaded int
	LayersAdded      int
	PatternsUploaded int
	PatternsSkipped  int
	Batches          int
	Transactions     int
	GasUsed          uint64
	Spent            *big.Int
	BalanceBefore    *big.Int
	BalanceAfter     *big.Int
	CanvasAdded      bool
	AlreadyUpToDate  bool
}

// UploadAssets uploads palettes, the pose canvas, its layers and patterns
// to the asset store. Only what the chain does not hold yet is sent.
type UploadAssets struct {
	env    *Environment
	corpus CorpusLoader
}

// NewUploadAssets creates a new UploadAssets use case
func NewUploadAssets(env *Environment, corpus CorpusLoader) *UploadAssets {
	return &UploadAssets{env: env, corpus: corpus}
}

// Run executes the upload
func (uc *UploadAssets) Run(ctx context.Context, params UploadParams) (*UploadResult, error) {
	if params.GasLimit == 0 {
		params.GasLimit = domain.DefaultUploadGasLimit
	}

	corpus, err := uc.corpus.LoadCorpus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}
	pose, ok := corpus.Pose(params.Pose)
	if !ok {
		return nil, fmt.Errorf("unknown pose %q (available: %s)", params.Pose,
			strings.Join(lo.Map(corpus.Poses, func(p domain.Pose, _ int) string { return p.Name }), ", "))
	}

	session, err := uc.env.Open(ctx, params.DeployType)
	if err != nil {
		return nil, err
	}
	if _, err := verifyDeployed(ctx, uc.env.Chain, session.Deployment, params.Create2, uc.env.Log); err != nil {
		return nil, err
	}

	assets := session.Contract(domain.OpenAvatarGen0Assets, params.Create2)
	if err := session.RequireOwner(ctx, assets); err != nil {
		return nil, err
	}

	up := &uploadRun{
		env:      uc.env,
		session:  session,
		assets:   assets,
		gasLimit: params.GasLimit,
		result:   &UploadResult{Pose: pose.Name, CanvasID: pose.CanvasID},
	}

	if err := up.uploadPalettes(ctx, corpus.Palettes); err != nil {
		return nil, err
	}
	if err := up.ensureCanvas(ctx, pose.CanvasID); err != nil {
		return nil, err
	}
	if err := up.ensureLayers(ctx, pose.CanvasID, corpus.Layers); err != nil {
		return nil, err
	}

	patterns, err := uc.corpus.LoadPatterns(ctx, pose.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to load patterns for %s: %w", pose.Name, err)
	}
	if params.OneEach {
		err = up.uploadOneEach(ctx, pose.CanvasID, corpus.Layers, patterns)
	} else {
		err = up.uploadPatterns(ctx, pose.CanvasID, corpus.Layers, patterns)
	}
	if err != nil {
		return nil, err
	}

	totals, err := session.Close(ctx)
	if err != nil {
		return nil, err
	}
	res := up.result
	res.Transactions = totals.Transactions
	res.GasUsed = totals.GasUsed
	res.Spent = totals.Spent
	res.BalanceBefore = totals.BalanceBefore
	res.BalanceAfter = totals.BalanceAfter
	res.AlreadyUpToDate = totals.Transactions == 0
	return res, nil
}

type uploadRun struct {
	env      *Environment
	session  *Session
	assets   *boundContract
	gasLimit uint64
	result   *UploadResult
}

func (u *uploadRun) estimator(method string) func(ctx context.Context, items any) (uint64, error) {
	return func(ctx context.Context, items any) (uint64, error) {
		data, err := u.assets.pack(method, items)
		if err != nil {
			return 0, err
		}
		return u.session.Tx.Estimate(ctx, &u.assets.address, data)
	}
}

// sendBatch sends one batch with its estimate as the gas limit
func (u *uploadRun) sendBatch(ctx context.Context, action, method string, items any, gas uint64) error {
	data, err := u.assets.pack(method, items)
	if err != nil {
		return err
	}
	u.env.Log.Info(fmt.Sprintf("Processing batch: %s", action))
	if _, err := u.session.Tx.TransactWithGasLimit(ctx, action, &u.assets.address, data, gas); err != nil {
		return err
	}
	u.result.Batches++
	return nil
}

func (u *uploadRun) uploadPalettes(ctx context.Context, codes []domain.PaletteCode) error {
	log := u.env.Log
	onchainCodes, err := u.assets.callUint(ctx, "getNumPaletteCodes")
	if err != nil {
		return err
	}
	log.Info(fmt.Sprintf("Current number of palette codes: %d", onchainCodes))

	sorted := append([]domain.PaletteCode(nil), codes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Code < sorted[j].Code })

	var inputs []domain.UploadPaletteBatchInput
	for _, code := range sorted {
		var from uint64
		if uint64(code.Code) < onchainCodes {
			if from, err = u.assets.callUint(ctx, "getNumPalettes", code.Code); err != nil {
				return err
			}
		}
		if from >= uint64(len(code.Palettes)) {
			log.Info(fmt.Sprintf("Contract already has ALL %d palettes for code %d", len(code.Palettes), code.Code))
			continue
		}
		if from > math.MaxUint8 {
			return fmt.Errorf("%w: code %d already holds %d palettes", domain.ErrPaletteIndexOverflow, code.Code, from)
		}
		if from > 0 {
			log.Info(fmt.Sprintf("Contract already has %d palettes for code %d", from, code.Code))
		}
		inputs = append(inputs, domain.UploadPaletteBatchInput{
			Code:      code.Code,
			FromIndex: uint8(from),
			Palettes: lo.Map(code.Palettes[from:], func(p domain.Palette, _ int) [][4]byte {
				return p.Colors
			}),
		})
	}
	if len(inputs) == 0 {
		return nil
	}

	estimate := u.estimator("uploadPaletteBatches")
	batcher := NewBatcher(inputs, u.gasLimit, func(ctx context.Context, items []domain.UploadPaletteBatchInput) (uint64, error) {
		return estimate(ctx, items)
	}, log).WithDescribe(describePalettes)

	for {
		batch, err := batcher.Next(ctx)
		if err != nil {
			return err
		}
		if batch == nil {
			return nil
		}
		if err := u.sendBatch(ctx, describePalettes(batch.Items), "uploadPaletteBatches", batch.Items, batch.GasEstimate); err != nil {
			return err
		}
		for _, in := range batch.Items {
			u.result.PalettesUploaded += len(in.Palettes)
		}
	}
}

func describePalettes(items []domain.UploadPaletteBatchInput) string {
	codes := lo.Map(items, func(in domain.UploadPaletteBatchInput, _ int) string { return fmt.Sprint(in.Code) })
	return fmt.Sprintf("(codes %s)", strings.Join(codes, ", "))
}

func (u *uploadRun) ensureCanvas(ctx context.Context, canvasID uint8) error {
	has, err := u.assets.callBool(ctx, "hasCanvas", canvasID)
	if err != nil {
		return err
	}
	if has {
		u.env.Log.Info(fmt.Sprintf("Canvas %d already exists", canvasID))
		return nil
	}

	header := domain.CanvasHeader{Id: canvasID, Width: domain.CanvasSize, Height: domain.CanvasSize}
	if _, err := u.assets.transact(ctx, u.session.Tx, "addCanvas", header); err != nil {
		return err
	}
	if has, err = u.assets.callBool(ctx, "hasCanvas", canvasID); err != nil {
		return err
	}
	if !has {
		return fmt.Errorf("canvas %d does not exist even after adding it", canvasID)
	}
	u.result.CanvasAdded = true
	return nil
}

func (u *uploadRun) ensureLayers(ctx context.Context, canvasID uint8, layers []domain.Layer) error {
	if len(layers) == 0 {
		return nil
	}
	onchain, err := u.assets.callUint(ctx, "getNumLayers", canvasID)
	if err != nil {
		return err
	}

	indices := lo.Uniq(lo.Map(layers, func(l domain.Layer, _ int) uint8 { return l.Index }))
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	missing := lo.Filter(indices, func(i uint8, _ int) bool { return uint64(i) >= onchain })
	top := uint64(indices[len(indices)-1])

	if len(missing) == 0 {
		u.env.Log.Info(fmt.Sprintf("Canvas %d already has %d layers", canvasID, onchain))
		return nil
	}

	u.env.Log.Info(fmt.Sprintf("Adding %d layers to canvas %d", len(missing), canvasID))
	if _, err := u.assets.transact(ctx, u.session.Tx, "addLayers", canvasID, missing); err != nil {
		return err
	}
	if onchain, err = u.assets.callUint(ctx, "getNumLayers", canvasID); err != nil {
		return err
	}
	if onchain != top+1 {
		return fmt.Errorf("canvas %d has %d layers after adding, expected %d", canvasID, onchain, top+1)
	}
	u.result.LayersAdded = len(missing)
	return nil
}

func toPatternInput(canvasID uint8, p domain.Pattern) domain.UploadPatternInput {
	return domain.UploadPatternInput{
		CanvasId:    canvasID,
		Layer:       p.Layer,
		Index:       p.Index,
		Width:       p.Width,
		Height:      p.Height,
		OffsetX:     p.OffsetX,
		OffsetY:     p.OffsetY,
		PaletteCode: p.PaletteCode,
		Data:        p.Data,
	}
}

func (u *uploadRun) checkBlank(in domain.UploadPatternInput, name string) error {
	if !in.IsBlank() {
		return nil
	}
	if in.CanvasId == domain.PrimaryCanvasID {
		return fmt.Errorf("%w: layer %d pattern %d (%s)", domain.ErrBlankPattern, in.Layer, in.Index, name)
	}
	u.env.Log.Warn("Uploading blank pattern", "layer", in.Layer, "index", in.Index, "name", name)
	return nil
}

// pending returns the patterns of layer not yet on chain, ordered by index
func (u *uploadRun) pending(ctx context.Context, canvasID uint8, layer domain.Layer, patterns []domain.Pattern) ([]domain.Pattern, uint64, error) {
	onchain, err := u.assets.callUint(ctx, "getNumPatterns", canvasID, layer.Index)
	if err != nil {
		return nil, 0, err
	}
	ofLayer := lo.Filter(patterns, func(p domain.Pattern, _ int) bool { return p.Layer == layer.Index })
	sort.Slice(ofLayer, func(i, j int) bool { return ofLayer[i].Index < ofLayer[j].Index })
	todo := lo.Filter(ofLayer, func(p domain.Pattern, _ int) bool { return uint64(p.Index) >= onchain })
	return todo, onchain, nil
}

func (u *uploadRun) uploadPatterns(ctx context.Context, canvasID uint8, layers []domain.Layer, patterns []domain.Pattern) error {
	log := u.env.Log
	var inputs []domain.UploadPatternInput
	for _, layer := range layers {
		todo, _, err := u.pending(ctx, canvasID, layer, patterns)
		if err != nil {
			return err
		}
		log.Info(fmt.Sprintf("Found %d patterns available to upload for layer: %s.", len(todo), layer.Name))
		if skipped := uint64(lo.CountBy(patterns, func(p domain.Pattern) bool { return p.Layer == layer.Index })) - uint64(len(todo)); skipped > 0 {
			log.Info(fmt.Sprintf("\tSkipping %d patterns already uploaded.", skipped))
			u.result.PatternsSkipped += int(skipped)
		}
		for _, p := range todo {
			in := toPatternInput(canvasID, p)
			if err := u.checkBlank(in, p.Name); err != nil {
				return err
			}
			inputs = append(inputs, in)
		}
	}
	return u.sendPatterns(ctx, inputs)
}

func (u *uploadRun) uploadOneEach(ctx context.Context, canvasID uint8, layers []domain.Layer, patterns []domain.Pattern) error {
	var inputs []domain.UploadPatternInput
	for _, layer := range layers {
		todo, onchain, err := u.pending(ctx, canvasID, layer, patterns)
		if err != nil {
			return err
		}
		if onchain > 1 {
			u.env.Log.Info(fmt.Sprintf("Layer %s already has %d patterns, skipping", layer.Name, onchain))
			continue
		}
		next, ok := lo.Find(todo, func(p domain.Pattern) bool { return uint64(p.Index) == onchain })
		if !ok {
			continue
		}
		in := toPatternInput(canvasID, next)
		if err := u.checkBlank(in, next.Name); err != nil {
			return err
		}
		inputs = append(inputs, in)
	}
	return u.sendPatterns(ctx, inputs)
}

func (u *uploadRun) sendPatterns(ctx context.Context, inputs []domain.UploadPatternInput) error {
	if len(inputs) == 0 {
		return nil
	}
	estimate := u.estimator("uploadPatterns")
	batcher := NewBatcher(inputs, u.gasLimit, func(ctx context.Context, items []domain.UploadPatternInput) (uint64, error) {
		return estimate(ctx, items)
	}, u.env.Log).WithDescribe(describePatterns)

	for {
		batch, err := batcher.Next(ctx)
		if err != nil {
			return err
		}
		if batch == nil {
			return nil
		}
		if err := u.sendBatch(ctx, describePatterns(batch.Items), "uploadPatterns", batch.Items, batch.GasEstimate); err != nil {
			return err
		}
		u.result.PatternsUploaded += len(batch.Items)
	}
}

func describePatterns(items []domain.UploadPatternInput) string {
	if len(items) == 0 {
		return "(no patterns)"
	}
	first, last := items[0], items[len(items)-1]
	return fmt.Sprintf("(%d patterns, layer %d #%d .. layer %d #%d)", len(items), first.Layer, first.Index, last.Layer, last.Index)
}
