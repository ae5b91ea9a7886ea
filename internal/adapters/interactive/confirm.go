package interactive

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/manifoldco/promptui"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/domain/config"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
)

// ConfirmerAdapter shows the network summary and asks before a public network write
type ConfirmerAdapter struct {
	config *config.RuntimeConfig
	out    io.Writer
	now    func() time.Time
	prompt func(label string) error
}

// NewConfirmerAdapter creates a new confirmer adapter
func NewConfirmerAdapter(cfg *config.RuntimeConfig) *ConfirmerAdapter {
	return &ConfirmerAdapter{
		config: cfg,
		out:    os.Stderr,
		now:    time.Now,
		prompt: func(label string) error {
			p := promptui.Prompt{Label: label, IsConfirm: true}
			_, err := p.Run()
			return err
		},
	}
}

// Confirm prints the summary and blocks until the user answers
func (c *ConfirmerAdapter) Confirm(ctx context.Context, details usecase.ConfirmDetails) error {
	if c.config.NonInteractive {
		return fmt.Errorf("%w: %s on %s", domain.ErrConfirmationRequired, details.Action, details.Network)
	}

	fmt.Fprintln(c.out)
	color.New(color.FgYellow, color.Bold).Fprintf(c.out, "You are about to %s on %s\n", details.Action, details.Network)
	fmt.Fprintln(c.out, c.summary(details))

	if err := c.prompt(fmt.Sprintf("Proceed on %s", details.Network)); err != nil {
		return fmt.Errorf("%w: %s declined", domain.ErrConfirmationRequired, details.Action)
	}
	return nil
}

// summary renders the deployer, network, price, balance and latest block
func (c *ConfirmerAdapter) summary(d usecase.ConfirmDetails) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	t.AppendRow(table.Row{"Deployer", d.Signer.Hex()})
	t.AppendRow(table.Row{"Network", d.Network})
	t.AppendRow(table.Row{"Chain ID", d.ChainID})
	t.AppendRow(table.Row{"ETH price", "$" + d.EthUSD.StringFixed(2)})

	balance := fmt.Sprintf("%s %s", domain.FormatEther(d.Balance), d.Ticker)
	if d.Balance != nil && d.EthUSD.IsPositive() {
		balance += fmt.Sprintf(" ($%s)", domain.EtherToUSD(d.Balance, d.EthUSD).StringFixed(2))
	}
	t.AppendRow(table.Row{"Balance", balance})

	if d.Block != nil {
		ts := time.Unix(int64(d.Block.Time), 0).UTC()
		t.AppendSeparator()
		t.AppendRow(table.Row{"Block", domain.FmtBigCommas(d.Block.Number)})
		t.AppendRow(table.Row{"Timestamp", ts.Format(time.RFC3339)})
		t.AppendRow(table.Row{"Age", c.now().Sub(ts).Round(time.Second).String()})
		if d.Block.BaseFee != nil {
			t.AppendRow(table.Row{"BASEFEE", domain.FormatGwei(d.Block.BaseFee) + " gwei"})
		}
	}
	return t.Render()
}

// Ensure the adapter implements the interface
var _ usecase.Confirmer = (*ConfirmerAdapter)(nil)
