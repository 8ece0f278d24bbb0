package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/tsh/internal/core/domain/command"
	"github.com/AntonioJCosta/tsh/internal/core/ports"
	"github.com/AntonioJCosta/tsh/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewParseCommand creates the 'parse' subcommand.
func NewParseCommand(parser ports.CommandParser) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <line...>",
		Short: "Show how a command line is split into commands without running it.",
		Long: `Prints the commands a line parses to, with their arguments and
whether each one reads from or writes to a pipe. Quote the line so your
current shell does not interpret ';' and '|' itself:

  tsh parse 'ls -l | wc -l ; echo done'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParseCmd(cmd, args, parser)
		},
	}
	return cmd
}

// runParseCmd contains the core logic for the 'parse' command.
func runParseCmd(
	cmd *cobra.Command,
	args []string,
	parser ports.CommandParser,
) error {
	if parser == nil {
		return fmt.Errorf("command parser not initialized for parse command")
	}
	ui.SetEnabled(!parseConfigOverrides(cmd).noColor)

	line := parser.Sanitize(strings.Join(args, " "))
	pipeline := parser.Parse(line)

	out := cmd.OutOrStdout()
	if len(pipeline) == 0 {
		fmt.Fprintln(out, ui.InfoColor("The line contains no commands."))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Parsed %d command(s):", len(pipeline))))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Command", "Arguments", "Reads Pipe", "Writes Pipe"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for i, c := range pipeline {
		table.Append(pipelineRow(i, c))
	}
	table.Render()
	return nil
}

func pipelineRow(i int, c command.Command) []string {
	args := ""
	if len(c.Args) > 1 {
		args = strings.Join(c.Args[1:], " ")
	}
	return []string{
		strconv.Itoa(i + 1),
		ui.CommandNameColor(c.Name()),
		args,
		pipeFlag(c.ReadsFromPipe),
		pipeFlag(c.WritesToPipe),
	}
}

func pipeFlag(set bool) string {
	if set {
		return ui.PipeFlagColor("yes")
	}
	return "no"
}
