package main

import (
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/tsh/internal/adapters/commandparser"
	"github.com/AntonioJCosta/tsh/internal/adapters/linereader"
	"github.com/AntonioJCosta/tsh/internal/adapters/oscommand"
	"github.com/AntonioJCosta/tsh/internal/core/domain/shellconfig"
	"github.com/AntonioJCosta/tsh/internal/core/ports"
	"github.com/AntonioJCosta/tsh/internal/core/services/shell"
	"github.com/AntonioJCosta/tsh/internal/handlers/cli"
	"github.com/AntonioJCosta/tsh/internal/handlers/ui"
	configrepo "github.com/AntonioJCosta/tsh/internal/repositories/shellconfig"
	"github.com/mattn/go-isatty"
)

// Version is set at build time
var Version = "dev"

func main() {
	parser := commandparser.NewBasicParser()

	loadConfig := func(path string) (ports.ShellConfigLoader, error) {
		if path == "" {
			return configrepo.NewShellConfigLoader(configrepo.NewDefaultConfigFileFinder()), nil
		}
		finder := &configrepo.StaticConfigFileFinder{Path: path}
		// An explicit path must exist; the loader alone would fall back to defaults.
		if _, err := finder.Find(); err != nil {
			return nil, err
		}
		return configrepo.NewShellConfigLoader(finder), nil
	}

	newShell := func(cfg shellconfig.Config, interactive bool) (ports.ShellService, io.Closer, error) {
		reader, err := newLineReader(cfg.Prompt, interactive)
		if err != nil {
			return nil, nil, err
		}
		executor := oscommand.NewOSPipelineExecutor(cfg.QuitKeyword, os.Stdin, os.Stdout, os.Stderr)
		return shell.NewService(reader, parser, executor, ui.NewErrorWriter(os.Stderr), cfg.ExitOnResourceError), reader, nil
	}

	rootCmd := cli.NewRootCommand(Version, loadConfig, newShell, parser)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLineReader uses the line editor only when stdin is a terminal.
// Piped input is read as is, and the prompt is still written to stdout.
func newLineReader(prompt string, interactive bool) (ports.LineReader, error) {
	if interactive && isatty.IsTerminal(os.Stdin.Fd()) {
		reader, err := linereader.NewInteractiveReader(prompt)
		if err == nil {
			return reader, nil
		}
		fmt.Fprintln(os.Stderr, ui.WarningColor(fmt.Sprintf("Warning: %v. Falling back to plain input.", err)))
	}
	return linereader.NewBufferedReader(os.Stdin, os.Stdout, prompt), nil
}
