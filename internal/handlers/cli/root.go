package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/tsh/internal/core/domain/shellconfig"
	"github.com/AntonioJCosta/tsh/internal/core/ports"
	"github.com/AntonioJCosta/tsh/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// ConfigLoaderFactory returns the loader for an explicit config path,
// or for the default locations when path is empty.
type ConfigLoaderFactory func(path string) (ports.ShellConfigLoader, error)

// ShellFactory builds the interpreter for the effective configuration.
// interactive is false when a single line is run with --command.
// The returned closer releases the input once the session ends.
type ShellFactory func(cfg shellconfig.Config, interactive bool) (ports.ShellService, io.Closer, error)

func NewRootCommand(
	version string,
	loadConfig ConfigLoaderFactory,
	newShell ShellFactory,
	parser ports.CommandParser,
) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tsh",
		Short: "tsh is a tiny interactive command interpreter.",
		Long: `tsh reads command lines, splits them on spaces, ';' and '|',
and runs each command as a child process. Commands separated by '|' are
connected with pipes; commands separated by ';' run one after another.
Type the quit keyword (default "quit") or send end of input to leave.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, args, loadConfig, newShell)
		},
	}

	rootCmd.Flags().StringP("command", "c", "", "Execute a single command line and exit.")
	rootCmd.PersistentFlags().String("prompt", "", fmt.Sprintf("Prompt shown before each line (default %q).", shellconfig.DefaultPrompt))
	rootCmd.PersistentFlags().String("quit-keyword", "", fmt.Sprintf("Command name that ends the session (default %q).", shellconfig.DefaultQuitKeyword))
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default $TSH_CONFIG or ~/.tsh/config.yaml).")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output.")

	rootCmd.AddCommand(NewParseCommand(parser))
	rootCmd.AddCommand(NewConfigCommand(loadConfig))

	return rootCmd
}

// runRootCmd contains the core logic for the interpreter itself.
func runRootCmd(
	cmd *cobra.Command,
	_ []string,
	loadConfig ConfigLoaderFactory,
	newShell ShellFactory,
) error {
	flags := parseRootCommandFlags(cmd)

	cfg, _, err := loadEffectiveConfig(cmd, loadConfig)
	if err != nil {
		return err
	}

	interactive := !flags.hasCommand
	if interactive && cfg.Color {
		cfg.Prompt = ui.PromptColor(cfg.Prompt)
	}

	shell, closer, err := newShell(cfg, interactive)
	if err != nil {
		return fmt.Errorf("could not start the shell: %w", err)
	}
	defer closer.Close()

	if flags.hasCommand {
		_, err = shell.RunLine(flags.command)
		return err
	}
	return shell.Run()
}
