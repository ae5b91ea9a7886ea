package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/domain/config"
)

// Transactor estimates, confirms, sends and waits for transactions from one sender
type Transactor struct {
	chain     ChainClient
	sender    TransactionSender
	guard     *NetworkGuard
	gas       config.GasParams
	sink      ProgressSink
	log       *slog.Logger
	observers []CostObserver
}

// NewTransactor creates a Transactor. Observers are notified once per mined transaction.
func NewTransactor(chain ChainClient, sender TransactionSender, guard *NetworkGuard, gas config.GasParams, sink ProgressSink, log *slog.Logger, observers ...CostObserver) *Transactor {
	return &Transactor{
		chain:     chain,
		sender:    sender,
		guard:     guard,
		gas:       gas,
		sink:      sink,
		log:       log,
		observers: observers,
	}
}

// WithSender returns a copy of t that sends from another account
func (t *Transactor) WithSender(sender TransactionSender) *Transactor {
	cp := *t
	cp.sender = sender
	return &cp
}

// From returns the sending address
func (t *Transactor) From() common.Address {
	return t.sender.Address()
}

// Estimate simulates a call and returns its gas estimate
func (t *Transactor) Estimate(ctx context.Context, to *common.Address, data []byte) (uint64, error) {
	return t.chain.EstimateGas(ctx, ethereum.CallMsg{
		From:      t.sender.Address(),
		To:        to,
		Data:      data,
		GasFeeCap: t.gas.MaxFeePerGas,
		GasTipCap: t.gas.MaxPriorityFeePerGas,
	})
}

// Transact estimates gas and then sends the transaction
func (t *Transactor) Transact(ctx context.Context, action string, to *common.Address, data []byte) (*types.Receipt, error) {
	gasLimit, err := t.Estimate(ctx, to, data)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas for %s: %w", action, err)
	}
	return t.TransactWithGasLimit(ctx, action, to, data, gasLimit)
}

// TransactWithGasLimit sends a transaction with a precomputed gas limit and waits for it to be mined
func (t *Transactor) TransactWithGasLimit(ctx context.Context, action string, to *common.Address, data []byte, gasLimit uint64) (*types.Receipt, error) {
	maxCost := new(big.Int).Add(t.gas.MaxFeePerGas, t.gas.MaxPriorityFeePerGas)
	maxCost.Mul(maxCost, new(big.Int).SetUint64(gasLimit))
	t.log.Info(action,
		"gas limit", domain.FmtCommas(gasLimit),
		"gas fees", fmt.Sprintf("%s ETH", domain.FormatEther(maxCost)),
	)

	if err := t.guard.ConfirmIfPublic(ctx, t.sender.Address(), action); err != nil {
		return nil, err
	}

	tx, err := t.sender.SendTransaction(ctx, TxRequest{
		To:       to,
		Data:     data,
		GasLimit: gasLimit,
		Gas:      t.gas,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send %s: %w", action, err)
	}

	if url := t.guard.TxURL(tx.Hash()); url != "" {
		t.log.Info("    tx: "+tx.Hash().Hex(), "explorer", url)
	} else {
		t.log.Info("    tx: " + tx.Hash().Hex())
	}

	t.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "waiting",
		Message: fmt.Sprintf("Waiting for %s", tx.Hash().Hex()),
		Spinner: true,
	})
	receipt, err := t.chain.WaitMined(ctx, tx)
	t.sink.OnProgress(ctx, ProgressEvent{Stage: "mined", Message: action})
	if err != nil {
		return nil, fmt.Errorf("failed to wait for %s: %w", action, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, &domain.TransactionRevertedError{TxHash: tx.Hash(), Action: action}
	}

	if receipt.EffectiveGasPrice != nil {
		cost := new(big.Int).Mul(new(big.Int).SetUint64(receipt.GasUsed), receipt.EffectiveGasPrice)
		t.log.Info("    mined",
			"block", receipt.BlockNumber,
			"gas used", domain.FmtCommas(receipt.GasUsed),
			"gas price", domain.FormatGwei(receipt.EffectiveGasPrice)+" gwei",
			"spent", domain.FormatEther(cost)+" ETH",
		)
	}

	for _, o := range t.observers {
		o.OnReceipt(ctx, receipt)
	}
	return receipt, nil
}
