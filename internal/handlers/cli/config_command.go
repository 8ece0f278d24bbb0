package cli

import (
	"fmt"
	"strconv"

	"github.com/AntonioJCosta/tsh/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the 'config' subcommand.
func NewConfigCommand(loadConfig ConfigLoaderFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective settings and where they were loaded from.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigCmd(cmd, args, loadConfig)
		},
	}
	return cmd
}

func runConfigCmd(cmd *cobra.Command, _ []string, loadConfig ConfigLoaderFactory) error {
	if loadConfig == nil {
		return fmt.Errorf("config loader not initialized for config command")
	}
	cfg, source, err := loadEffectiveConfig(cmd, loadConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.HeaderColor("Effective settings:"))
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Source: %s (flags override file values)", source)))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Setting", "Value"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.Append([]string{"prompt", strconv.Quote(cfg.Prompt)})
	table.Append([]string{"quit_keyword", cfg.QuitKeyword})
	table.Append([]string{"exit_on_resource_error", strconv.FormatBool(cfg.ExitOnResourceError)})
	table.Append([]string{"color", strconv.FormatBool(cfg.Color)})
	table.Render()
	return nil
}
