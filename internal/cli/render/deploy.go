package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/openavatar/openavatar-deploy/internal/domain"
)

// DeployRenderer renders the outcome of a deploy run
type DeployRenderer struct {
	out   io.Writer
	txURL func(domain.DeployedContract) string
}

// NewDeployRenderer creates a new deploy renderer. txURL may be nil.
func NewDeployRenderer(out io.Writer, txURL func(domain.DeployedContract) string) *DeployRenderer {
	return &DeployRenderer{out: out, txURL: txURL}
}

// Render prints the contracts reached by the run, any address mismatches and the cost
func (r *DeployRenderer) Render(result *domain.PartialDeployment) error {
	if result.StepsRun == 0 {
		fmt.Fprintln(r.out, "No deployment steps were run")
		return nil
	}

	sectionHeaderStyle.Fprintf(r.out, "Deployment (%d/%d steps)\n", result.StepsRun, domain.TotalDeploymentSteps)

	t := newTable(r.out, table.Row{"Contract", "Address", "Status", "Gas"})
	deployed := 0
	for _, c := range result.Contracts {
		status := existingStyle.Sprint("existing")
		gas := ""
		if c.Deployed {
			deployed++
			status = deployedStyle.Sprint("deployed")
			gas = domain.FmtCommas(c.GasUsed)
		}
		t.AppendRow(table.Row{nameStyle.Sprint(c.Name), addressStyle.Sprint(c.Address.Hex()), status, gas})
	}
	t.Render()

	if r.txURL != nil {
		for _, c := range result.Contracts {
			if url := r.txURL(c); c.Deployed && url != "" {
				fmt.Fprintf(r.out, "  %s: %s\n", c.Name, url)
			}
		}
	}

	for _, m := range result.Mismatches {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s configured at %s but computed %s", m.Contract, m.Configured.Hex(), m.Computed.Hex())))
	}

	fmt.Fprintln(r.out)
	if result.GasUsed > 0 {
		fmt.Fprintf(r.out, "Gas used: %s\n", domain.FmtCommas(result.GasUsed))
		fmt.Fprintf(r.out, "Spent:    %s ETH\n", domain.FormatEther(result.Spent))
	}
	if len(result.Mismatches) == 0 {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%d contracts deployed, %d already on chain", deployed, len(result.Contracts)-deployed)))
	}
	return nil
}
