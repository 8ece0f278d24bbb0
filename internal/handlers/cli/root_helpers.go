package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AntonioJCosta/tsh/internal/core/domain/shellconfig"
	"github.com/AntonioJCosta/tsh/internal/handlers/ui"
	"github.com/spf13/cobra"
)

type rootCommandFlags struct {
	command    string
	hasCommand bool
}

func parseRootCommandFlags(cmd *cobra.Command) rootCommandFlags {
	command, _ := cmd.Flags().GetString("command")
	return rootCommandFlags{
		command:    command,
		hasCommand: cmd.Flags().Changed("command"),
	}
}

// configOverrides holds the persistent flags that take precedence over the config file.
type configOverrides struct {
	configPath  string
	prompt      *string
	quitKeyword *string
	noColor     bool
}

func parseConfigOverrides(cmd *cobra.Command) configOverrides {
	var o configOverrides
	o.configPath, _ = cmd.Flags().GetString("config")
	o.noColor, _ = cmd.Flags().GetBool("no-color")
	if cmd.Flags().Changed("prompt") {
		p, _ := cmd.Flags().GetString("prompt")
		o.prompt = &p
	}
	if cmd.Flags().Changed("quit-keyword") {
		q, _ := cmd.Flags().GetString("quit-keyword")
		o.quitKeyword = &q
	}
	return o
}

// apply returns cfg with the flag values given on the command line.
// An empty prompt is allowed; an empty quit keyword is not.
func (o configOverrides) apply(cfg shellconfig.Config) (shellconfig.Config, error) {
	if o.prompt != nil {
		cfg.Prompt = *o.prompt
	}
	if o.quitKeyword != nil {
		if *o.quitKeyword == "" {
			return cfg, errors.New("--quit-keyword cannot be empty")
		}
		if strings.ContainsAny(*o.quitKeyword, " \t;|") {
			return cfg, errors.New("--quit-keyword must be a single word")
		}
		cfg.QuitKeyword = *o.quitKeyword
	}
	if o.noColor {
		cfg.Color = false
	}
	return cfg, nil
}

// loadEffectiveConfig loads the config file, applies flag overrides and
// switches color output accordingly. It also returns the config source.
func loadEffectiveConfig(cmd *cobra.Command, loadConfig ConfigLoaderFactory) (shellconfig.Config, string, error) {
	overrides := parseConfigOverrides(cmd)

	loader, err := loadConfig(overrides.configPath)
	if err != nil {
		return shellconfig.Default(), "", fmt.Errorf("could not open config: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return cfg, loader.Source(), fmt.Errorf("could not load config: %w", err)
	}
	cfg, err = overrides.apply(cfg)
	if err != nil {
		return cfg, loader.Source(), err
	}

	ui.SetEnabled(cfg.Color)
	return cfg, loader.Source(), nil
}
