package render

import (
	"fmt"
	"io"

	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
)

// UploadRenderer renders the outcome of an upload run
type UploadRenderer struct {
	out io.Writer
}

// NewUploadRenderer creates a new upload renderer
func NewUploadRenderer(out io.Writer) *UploadRenderer {
	return &UploadRenderer{out: out}
}

// Render prints what was uploaded and what it cost
func (r *UploadRenderer) Render(result *usecase.UploadResult) error {
	if result.AlreadyUpToDate {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Assets for %s (canvas %d) already up to date", result.Pose, result.CanvasID)))
		return nil
	}

	sectionHeaderStyle.Fprintf(r.out, "Upload %s (canvas %d)\n", result.Pose, result.CanvasID)
	if result.CanvasAdded {
		fmt.Fprintf(r.out, "  canvas added:      %dx%d\n", domain.CanvasSize, domain.CanvasSize)
	}
	fmt.Fprintf(r.out, "  palettes uploaded: %d\n", result.PalettesUploaded)
	fmt.Fprintf(r.out, "  layers added:      %d\n", result.LayersAdded)
	fmt.Fprintf(r.out, "  patterns uploaded: %d (%d already on chain)\n", result.PatternsUploaded, result.PatternsSkipped)
	fmt.Fprintf(r.out, "  batches:           %d in %d transactions\n", result.Batches, result.Transactions)

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Gas used: %s\n", domain.FmtCommas(result.GasUsed))
	fmt.Fprintf(r.out, "Spent:    %s ETH\n", domain.FormatEther(result.Spent))
	if result.BalanceBefore != nil && result.BalanceAfter != nil {
		fmt.Fprintf(r.out, "Balance:  %s -> %s ETH\n", domain.FormatEther(result.BalanceBefore), domain.FormatEther(result.BalanceAfter))
	}
	return nil
}
