package domain

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFmtCommas(t *testing.T) {
	assert.Equal(t, "0", FmtCommas(0))
	assert.Equal(t, "999", FmtCommas(999))
	assert.Equal(t, "1,234,567", FmtCommas(1234567))
	assert.Equal(t, "15,000,000", FmtCommas(uint64(15_000_000)))
	assert.Equal(t, "1,000", FmtBigCommas(big.NewInt(1000)))
}

func TestEtherFormatting(t *testing.T) {
	oneEth := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	assert.Equal(t, "1", FormatEther(oneEth))
	assert.Equal(t, "0.000000001", FormatEther(big.NewInt(1_000_000_000)))
	assert.Equal(t, "1.5", FormatGwei(big.NewInt(1_500_000_000)))
	assert.Equal(t, "1,234", FormatGwei(big.NewInt(1_234_000_000_000)))
	assert.Equal(t, "0", FormatEther(nil))
}

func TestParseUnits(t *testing.T) {
	tests := []struct {
		name     string
		parse    func(string) (*big.Int, error)
		input    string
		expected string
		wantErr  bool
	}{
		{"gwei whole", ParseGwei, "30", "30000000000", false},
		{"gwei fraction", ParseGwei, "1.5", "1500000000", false},
		{"gwei too precise", ParseGwei, "0.0000000001", "", true},
		{"ether", ParseEther, "0.1", "100000000000000000", false},
		{"negative", ParseEther, "-1", "", true},
		{"garbage", ParseEther, "x", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestEtherToUSD(t *testing.T) {
	halfEth := new(big.Int).Exp(big.NewInt(10), big.NewInt(17), nil)
	halfEth.Mul(halfEth, big.NewInt(5))
	got := EtherToUSD(halfEth, decimal.NewFromInt(2000))
	assert.True(t, got.Equal(decimal.NewFromInt(1000)), got.String())
}
