package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openavatar/openavatar-deploy/internal/domain"
)

// overLimitEstimate stands in for a failed multi-item estimate so the
// current batch is closed
const overLimitEstimate uint64 = 69_420_000_000

// EstimateFunc estimates the gas of one transaction carrying items
type EstimateFunc[T any] func(ctx context.Context, items []T) (uint64, error)

// Batcher groups items greedily into batches whose estimated gas stays
// under a limit. It is a single forward pass: Next yields batches in order
// and returns nil once every item has been batched.
type Batcher[T any] struct {
	items    []T
	pos      int
	gasLimit uint64
	estimate EstimateFunc[T]
	describe func([]T) string
	log      *slog.Logger
}

// NewBatcher creates a Batcher over items
func NewBatcher[T any](items []T, gasLimit uint64, estimate EstimateFunc[T], log *slog.Logger) *Batcher[T] {
	return &Batcher[T]{
		items:    items,
		gasLimit: gasLimit,
		estimate: estimate,
		describe: func(batch []T) string { return fmt.Sprintf("%d items", len(batch)) },
		log:      log,
	}
}

// WithDescribe sets how a batch is named in log and error messages
func (b *Batcher[T]) WithDescribe(describe func([]T) string) *Batcher[T] {
	b.describe = describe
	return b
}

// Next returns the next batch, or nil when the items are exhausted
func (b *Batcher[T]) Next(ctx context.Context) (*domain.BatchWithGasEstimate[T], error) {
	var (
		current    []T
		currentGas uint64
	)
	for b.pos < len(b.items) {
		candidate := make([]T, len(current), len(current)+1)
		copy(candidate, current)
		candidate = append(candidate, b.items[b.pos])

		gas, err := b.estimate(ctx, candidate)
		if err != nil {
			if len(candidate) == 1 {
				return nil, fmt.Errorf("failed to estimate gas for %s: %w", b.describe(candidate), err)
			}
			b.log.Warn("Gas estimation failed, closing batch", "batch", b.describe(candidate), "error", err)
			gas = overLimitEstimate
		}

		if gas <= b.gasLimit {
			current, currentGas = candidate, gas
			b.pos++
			continue
		}

		if len(current) == 0 {
			return nil, fmt.Errorf("%w: single batch with %s needs %s gas, limit is %s",
				domain.ErrItemExceedsGasLimit, b.describe(candidate), domain.FmtCommas(gas), domain.FmtCommas(b.gasLimit))
		}
		return b.yield(current, currentGas), nil
	}

	if len(current) == 0 {
		return nil, nil
	}
	return b.yield(current, currentGas), nil
}

func (b *Batcher[T]) yield(items []T, gas uint64) *domain.BatchWithGasEstimate[T] {
	b.log.Debug("Batch ready", "batch", b.describe(items), "gas", domain.FmtCommas(gas))
	return &domain.BatchWithGasEstimate[T]{Items: items, GasEstimate: gas}
}

// Collect drains b into a slice
func Collect[T any](ctx context.Context, b *Batcher[T]) ([]*domain.BatchWithGasEstimate[T], error) {
	var out []*domain.BatchWithGasEstimate[T]
	for {
		batch, err := b.Next(ctx)
		if err != nil {
			return out, err
		}
		if batch == nil {
			return out, nil
		}
		out = append(out, batch)
	}
}
