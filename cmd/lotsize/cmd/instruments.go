package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/lotsize/config"
)

var instrumentsCmd = &cobra.Command{
	Use:   "instruments",
	Short: "List the configured instruments",
	Args:  cobra.NoArgs,
	RunE:  runInstruments,
}

func init() {
	rootCmd.AddCommand(instrumentsCmd)
}

func runInstruments(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Key", "Name", "Pip value / std lot"})
	for _, k := range cfg.Instruments.Keys() {
		spec := cfg.Instruments[k]
		t.AppendRow(table.Row{k, spec.Name, spec.PipValuePerStandardLot})
	}
	t.Render()
	return nil
}
