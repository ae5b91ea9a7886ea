package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
)

// ContractsRenderer renders the resolved contract set
type ContractsRenderer struct {
	out io.Writer
}

// NewContractsRenderer creates a new contracts renderer
func NewContractsRenderer(out io.Writer) *ContractsRenderer {
	return &ContractsRenderer{out: out}
}

// Render prints one row per contract with its address and code presence
func (r *ContractsRenderer) Render(view *usecase.ContractsView) error {
	mode := "legacy"
	if view.Create2 {
		mode = "create2"
	}
	sectionHeaderStyle.Fprintf(r.out, "%s deployment on %s (%s)\n", view.DeployType, view.Network, mode)
	fmt.Fprintf(r.out, "Deployer: %s\n\n", view.Deployer.Hex())

	t := newTable(r.out, table.Row{"Contract", "Address", "Code"})
	for _, c := range view.Contracts {
		code := deployedStyle.Sprint("yes")
		if !c.HasCode {
			if c.Required {
				code = missingStyle.Sprint("missing")
			} else {
				code = warningStyle.Sprint("missing (optional)")
			}
		}
		t.AppendRow(table.Row{nameStyle.Sprint(c.Name), addressStyle.Sprint(c.Address.Hex()), code})
	}
	t.Render()
	return nil
}
