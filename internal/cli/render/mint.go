package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
)

// MintRenderer renders the token mint configuration
type MintRenderer struct {
	out io.Writer
}

// NewMintRenderer creates a new mint renderer
func NewMintRenderer(out io.Writer) *MintRenderer {
	return &MintRenderer{out: out}
}

// Render prints the current mint settings and which were changed
func (r *MintRenderer) Render(status *usecase.MintStatus) error {
	sectionHeaderStyle.Fprintln(r.out, "Mint")
	fmt.Fprintf(r.out, "  state:        %s\n", status.State)
	fmt.Fprintf(r.out, "  soft cap:     %s\n", domain.FmtCommas(status.SoftCap))
	fmt.Fprintf(r.out, "  price:        %s ETH\n", domain.FormatEther(status.Price))
	fmt.Fprintf(r.out, "  total supply: %s\n", domain.FmtCommas(status.TotalSupply))

	if len(status.Changed) == 0 {
		fmt.Fprintln(r.out, FormatSuccess("Mint settings already in place"))
	} else {
		fmt.Fprintln(r.out, FormatSuccess("Updated "+strings.Join(status.Changed, ", ")))
	}
	return nil
}
