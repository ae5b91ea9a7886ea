package blockchain

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/domain/config"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	nonce   uint64
	chainID uint64
	sent    []*types.Transaction
	sendErr error
}

func (b *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return b.nonce, nil
}

func (b *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	if b.sendErr != nil {
		return b.sendErr
	}
	b.sent = append(b.sent, tx)
	return nil
}

func (b *fakeBackend) VerifyChainID(context.Context) (uint64, error) {
	return b.chainID, nil
}

func TestKeySenderSignsForChain(t *testing.T) {
	backend := &fakeBackend{nonce: 7}
	sender, err := NewKeySender(backend, "0x"+domain.HardhatDefaultPrivateKey, 31337)
	require.NoError(t, err)
	assert.Equal(t, domain.HardhatDefaultDeployer, sender.Address())

	to := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	tx, err := sender.SendTransaction(context.Background(), usecase.TxRequest{
		To:       &to,
		Data:     []byte{0x01, 0x02},
		GasLimit: 50_000,
		Gas: config.GasParams{
			MaxFeePerGas:         big.NewInt(3_000_000_000),
			MaxPriorityFeePerGas: big.NewInt(1_000_000_000),
		},
	})
	require.NoError(t, err)
	require.Len(t, backend.sent, 1)

	assert.Equal(t, uint64(7), tx.Nonce())
	assert.Equal(t, uint64(50_000), tx.Gas())
	assert.Equal(t, &to, tx.To())
	assert.Zero(t, tx.Value().Sign())
	assert.Equal(t, uint8(types.DynamicFeeTxType), tx.Type())
	assert.Equal(t, int64(31337), tx.ChainId().Int64())

	from, err := types.Sender(types.LatestSignerForChainID(big.NewInt(31337)), tx)
	require.NoError(t, err)
	assert.Equal(t, domain.HardhatDefaultDeployer, from)
}

func TestKeySenderInvalidKey(t *testing.T) {
	_, err := NewKeySender(&fakeBackend{}, "not-a-key", 1)
	assert.Error(t, err)
}

func TestKeySenderPropagatesSendError(t *testing.T) {
	backend := &fakeBackend{sendErr: errors.New("nonce too low")}
	sender, err := NewKeySender(backend, domain.HardhatDefaultPrivateKey, 1)
	require.NoError(t, err)

	_, err = sender.SendTransaction(context.Background(), usecase.TxRequest{Gas: config.GasParams{
		MaxFeePerGas:         big.NewInt(2),
		MaxPriorityFeePerGas: big.NewInt(1),
	}})
	assert.ErrorContains(t, err, "nonce too low")
}

func TestSenderFactoryDeployer(t *testing.T) {
	localhost := &config.Network{Name: "localhost", ChainID: 31337}
	sepolia := &config.Network{Name: "sepolia", ChainID: 11155111}

	tests := []struct {
		name    string
		key     string
		network *config.Network
		wantErr error
	}{
		{name: "configured key", key: domain.HardhatDefaultPrivateKey, network: sepolia},
		{name: "no key on local network", network: localhost},
		{name: "no key on public network", network: sepolia, wantErr: domain.ErrNoPrivateKey},
		{name: "no key without network", wantErr: domain.ErrNoPrivateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{chainID: 31337}
			cfg := &config.RuntimeConfig{
				PrivateKey: tt.key,
				Network:    tt.network,
				Local:      config.DefaultLocalNetworks(),
			}
			factory := &SenderFactory{backend: backend, chain: backend, config: cfg}

			sender, err := factory.Deployer(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.HardhatDefaultDeployer, sender.Address())
		})
	}
}
