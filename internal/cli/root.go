package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/ontaste/internal/clock"
	"github.com/roach88/ontaste/internal/config"
	"github.com/roach88/ontaste/internal/ids"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	DBPath   string
	MenuPath string // empty means the built-in menu

	Env       string
	LogLevel  string
	LogFormat string

	// Clock and IDs override the storefront's time and id sources (for
	// testing). nil means the system clock and UUIDv7 ids.
	Clock clock.Clock
	IDs   ids.Generator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// OptionsFromConfig seeds RootOptions from the environment configuration.
func OptionsFromConfig(cfg config.Config) *RootOptions {
	return &RootOptions{
		Format:    cfg.Output,
		DBPath:    cfg.DBPath,
		MenuPath:  cfg.MenuPath,
		Env:       cfg.Env,
		LogLevel:  cfg.LogLevel,
		LogFormat: cfg.LogFormat,
	}
}

// NewRootCommand creates the root command. Flag defaults come from cfg.
func NewRootCommand(cfg config.Config) *cobra.Command {
	return NewRootCommandWithOptions(OptionsFromConfig(cfg))
}

// NewRootCommandWithOptions creates the root command over opts. Current
// field values become flag defaults.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	if opts.Format == "" {
		opts.Format = "text"
	}

	cmd := &cobra.Command{
		Use:   "ontaste",
		Short: "ontaste - café storefront",
		Long: `Browse the café menu, keep a cart and place pickup orders.

State (users, session, cart and orders) is kept in a local SQLite file,
so "ontaste login" signs you in for the following commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", opts.Format, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", opts.DBPath, "path to SQLite state file")
	cmd.PersistentFlags().StringVar(&opts.MenuPath, "menu", opts.MenuPath, "path to a YAML menu (default: built-in menu)")

	// Add subcommands
	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewWhoamiCommand(opts))
	cmd.AddCommand(NewMenuCommand(opts))
	cmd.AddCommand(NewCartCommand(opts))
	cmd.AddCommand(NewOrderCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}
