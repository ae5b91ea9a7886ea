package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/domain/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfirmer struct {
	err     error
	details []ConfirmDetails
}

func (c *fakeConfirmer) Confirm(_ context.Context, details ConfirmDetails) error {
	c.details = append(c.details, details)
	return c.err
}

type fakePriceFeed struct {
	price decimal.Decimal
	err   error
}

func (f *fakePriceFeed) EthUSD(context.Context) (decimal.Decimal, error) {
	return f.price, f.err
}

func newTestGuard(network *config.Network, nonInteractive bool, prices PriceFeed, confirmer Confirmer) (*NetworkGuard, *fakeChain) {
	chain := newFakeChain()
	cfg := &config.RuntimeConfig{
		Network:        network,
		NonInteractive: nonInteractive,
		Local:          config.DefaultLocalNetworks(),
	}
	guard := NewNetworkGuard(cfg, chain, prices, confirmer, testLogger())
	guard.delay = 0
	return guard, chain
}

func TestNetworkGuardWaitForNetwork(t *testing.T) {
	tests := []struct {
		name     string
		failures int
		wantErr  bool
		wantHits int
	}{
		{name: "up at once", failures: 0, wantHits: 1},
		{name: "up on the last retry", failures: networkRetries - 1, wantHits: networkRetries},
		{name: "never up", failures: networkRetries, wantErr: true, wantHits: networkRetries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard, chain := newTestGuard(&config.Network{Name: "localhost"}, false, nil, nil)
			chain.blockNumberErrs = tt.failures

			err := guard.WaitForNetwork(context.Background())
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrNetworkUnavailable)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantHits, chain.blockNumberHits)
		})
	}
}

func TestNetworkGuardConfirmIfPublic(t *testing.T) {
	signer := common.HexToAddress("0x00000000000000000000000000000000000000dd")
	mainnet := &config.Network{Name: "mainnet", ChainID: 1}
	declined := errors.New("declined")

	tests := []struct {
		name           string
		network        *config.Network
		nonInteractive bool
		prices         *fakePriceFeed
		confirmErr     error
		wantErr        error
		wantPrompts    int
		wantPrice      string
	}{
		{name: "local by name", network: &config.Network{Name: "hardhat", ChainID: 5}},
		{name: "local by chain id", network: &config.Network{Name: "devnet", ChainID: 1337}},
		{
			name:           "public without a terminal",
			network:        mainnet,
			nonInteractive: true,
			wantErr:        domain.ErrConfirmationRequired,
		},
		{
			name:        "public confirmed",
			network:     mainnet,
			prices:      &fakePriceFeed{price: decimal.NewFromInt(1800)},
			wantPrompts: 1,
			wantPrice:   "1800",
		},
		{
			name:        "public declined",
			network:     mainnet,
			prices:      &fakePriceFeed{price: decimal.NewFromInt(1800)},
			confirmErr:  declined,
			wantErr:     declined,
			wantPrompts: 1,
		},
		{
			name:        "price feed failure still prompts",
			network:     mainnet,
			prices:      &fakePriceFeed{err: errors.New("rate limited")},
			wantPrompts: 1,
			wantPrice:   "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confirmer := &fakeConfirmer{err: tt.confirmErr}
			var prices PriceFeed
			if tt.prices != nil {
				prices = tt.prices
			}
			guard, _ := newTestGuard(tt.network, tt.nonInteractive, prices, confirmer)

			err := guard.ConfirmIfPublic(context.Background(), signer, "deploy")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			require.Len(t, confirmer.details, tt.wantPrompts)
			if tt.wantPrompts == 0 {
				return
			}
			d := confirmer.details[0]
			assert.Equal(t, "mainnet", d.Network)
			assert.Equal(t, uint64(1), d.ChainID)
			assert.Equal(t, signer, d.Signer)
			assert.Equal(t, "ETH", d.Ticker)
			assert.NotNil(t, d.Balance)
			assert.NotNil(t, d.Block)
			if tt.wantPrice != "" {
				assert.Equal(t, tt.wantPrice, d.EthUSD.String())
			}
		})
	}
}

func TestNetworkGuardTxURL(t *testing.T) {
	hash := common.HexToHash("0x01")

	tests := []struct {
		name    string
		network *config.Network
		want    string
	}{
		{name: "default explorer", network: &config.Network{Name: "mainnet", ChainID: 1}, want: "https://etherscan.io/tx/" + hash.Hex()},
		{name: "sepolia", network: &config.Network{Name: "sepolia", ChainID: 11155111}, want: "https://sepolia.etherscan.io/tx/" + hash.Hex()},
		{name: "configured explorer", network: &config.Network{Name: "x", ChainID: 1, ExplorerURL: "https://scan.example/"}, want: "https://scan.example/tx/" + hash.Hex()},
		{name: "local network", network: &config.Network{Name: "localhost", ChainID: 31337}},
		{name: "no network"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard, _ := newTestGuard(tt.network, false, nil, nil)
			assert.Equal(t, tt.want, guard.TxURL(hash))
		})
	}
}

func TestTicker(t *testing.T) {
	assert.Equal(t, "GoerliETH", Ticker("goerli"))
	assert.Equal(t, "SepoliaETH", Ticker("Sepolia"))
	assert.Equal(t, "ETH", Ticker("mainnet"))
}
