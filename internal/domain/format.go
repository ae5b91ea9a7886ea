package domain

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FmtCommas formats an integer with thousands separators
func FmtCommas[T ~int | ~int64 | ~uint64 | ~uint | ~int32 | ~uint32](n T) string {
	return printer.Sprintf("%d", n)
}

// FmtBigCommas formats a big integer with thousands separators
func FmtBigCommas(n *big.Int) string {
	if n == nil {
		return "0"
	}
	if n.IsInt64() {
		return printer.Sprintf("%d", n.Int64())
	}
	return n.String()
}

// WeiToEther converts wei into an ether decimal
func WeiToEther(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -18)
}

// WeiToGwei converts wei into a gwei decimal
func WeiToGwei(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -9)
}

// FormatEther renders wei as ether
func FormatEther(wei *big.Int) string {
	return WeiToEther(wei).String()
}

// FormatGwei renders wei as gwei with thousands separators on the integer part
func FormatGwei(wei *big.Int) string {
	g := WeiToGwei(wei)
	whole := g.Truncate(0)
	frac := g.Sub(whole)
	out := FmtBigCommas(whole.BigInt())
	if !frac.IsZero() {
		out += frac.String()[1:]
	}
	return out
}

// ParseGwei converts a gwei amount such as "1.5" into wei
func ParseGwei(s string) (*big.Int, error) {
	return parseUnits(s, 9)
}

// ParseEther converts an ether amount such as "0.1" into wei
func ParseEther(s string) (*big.Int, error) {
	return parseUnits(s, 18)
}

func parseUnits(s string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("invalid amount %q: negative", s)
	}
	shifted := d.Shift(decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, fmt.Errorf("invalid amount %q: too many decimals", s)
	}
	return shifted.BigInt(), nil
}

// EtherToUSD prices a wei amount at usdPerEth
func EtherToUSD(wei *big.Int, usdPerEth decimal.Decimal) decimal.Decimal {
	return WeiToEther(wei).Mul(usdPerEth).Round(2)
}
