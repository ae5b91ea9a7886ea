package usecase

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/openavatar/openavatar-deploy/internal/domain/config"
)

// ResolveGasParams fills unset fee caps from the node: the suggested tip,
// and a max fee of twice the latest base fee plus the tip.
func ResolveGasParams(ctx context.Context, chain ChainClient, configured config.GasParams) (config.GasParams, error) {
	out := configured
	if out.MaxPriorityFeePerGas == nil {
		tip, err := chain.SuggestGasTipCap(ctx)
		if err != nil {
			return out, fmt.Errorf("failed to suggest gas tip: %w", err)
		}
		out.MaxPriorityFeePerGas = tip
	}
	if out.MaxFeePerGas == nil {
		head, err := chain.HeaderByNumber(ctx, nil)
		if err != nil {
			return out, fmt.Errorf("failed to get latest header: %w", err)
		}
		baseFee := new(big.Int)
		if head.BaseFee != nil {
			baseFee.Set(head.BaseFee)
		}
		out.MaxFeePerGas = new(big.Int).Add(new(big.Int).Mul(baseFee, big.NewInt(2)), out.MaxPriorityFeePerGas)
	}
	if out.MaxFeePerGas.Cmp(out.MaxPriorityFeePerGas) < 0 {
		return out, fmt.Errorf("maxFeePerGas %s is below maxPriorityFeePerGas %s", out.MaxFeePerGas, out.MaxPriorityFeePerGas)
	}
	return out, nil
}

// GasSpentAccumulator sums the gas and wei spent by observed receipts
type GasSpentAccumulator struct {
	mu           sync.Mutex
	gasUsed      uint64
	spent        *big.Int
	transactions int
}

// NewGasSpentAccumulator creates an empty accumulator
func NewGasSpentAccumulator() *GasSpentAccumulator {
	return &GasSpentAccumulator{spent: new(big.Int)}
}

// OnReceipt adds gasUsed and gasUsed * effectiveGasPrice
func (a *GasSpentAccumulator) OnReceipt(_ context.Context, receipt *types.Receipt) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gasUsed += receipt.GasUsed
	a.transactions++
	if receipt.EffectiveGasPrice != nil {
		cost := new(big.Int).Mul(new(big.Int).SetUint64(receipt.GasUsed), receipt.EffectiveGasPrice)
		a.spent.Add(a.spent, cost)
	}
}

// GasUsed returns the total gas used
func (a *GasSpentAccumulator) GasUsed() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gasUsed
}

// Spent returns the total wei spent
func (a *GasSpentAccumulator) Spent() *big.Int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return new(big.Int).Set(a.spent)
}

// Transactions returns the number of receipts seen
func (a *GasSpentAccumulator) Transactions() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.transactions
}

var _ CostObserver = (*GasSpentAccumulator)(nil)
