package render

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
)

// SaltRenderer renders the result of a salt search
type SaltRenderer struct {
	out io.Writer
}

// NewSaltRenderer creates a new salt renderer
func NewSaltRenderer(out io.Writer) *SaltRenderer {
	return &SaltRenderer{out: out}
}

// Render prints the best salt found and the values to paste into the deployment config
func (r *SaltRenderer) Render(result *usecase.SearchSaltResult) error {
	found := result.Search.Found
	if found == nil {
		fmt.Fprintln(r.out, FormatWarning("No salt tested"))
		return nil
	}

	sectionHeaderStyle.Fprintf(r.out, "%s\n", result.Contract)
	fmt.Fprintf(r.out, "  initCodeHash:  %s\n", result.Input.InitCodeHash.Hex())
	fmt.Fprintf(r.out, "  factory:       %s\n", found.FactoryAddress.Hex())
	fmt.Fprintf(r.out, "  attempts:      %s\n", domain.FmtCommas(result.Search.Attempts))
	fmt.Fprintf(r.out, "  bestKnownSalt: %s\n", found.Salt.String())
	fmt.Fprintf(r.out, "  saltBytes32:   %s\n", found.SaltBytes32.Hex())
	fmt.Fprintf(r.out, "  address:       %s (%d leading zeros)\n", addressStyle.Sprint(found.Address.Hex()), found.LeadingZeros())

	if expected := result.Search.Expected; expected != (common.Address{}) && expected != found.Address {
		fmt.Fprintf(r.out, "  configured:    %s\n", expected.Hex())
	}
	return nil
}
