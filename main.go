package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"smart-library/library"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

func main() {
	cfg, err := library.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := newRootCmd(&cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *library.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "smartlib",
		Short:        "Menu-driven library catalog with request queue and action log",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, err := newManager(cfg)
			if err != nil {
				return err
			}
			if cfg.SeedFile != "" {
				report, err := mgr.ImportCatalogFile(cfg.SeedFile)
				if err != nil {
					return fmt.Errorf("seed catalog: %w", err)
				}
				for _, e := range report.Errors {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipped %v\n", e)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d book(s) from %s\n", report.Added, cfg.SeedFile)
			}

			in := cmd.InOrStdin()
			newREPL(in, cmd.OutOrStdout(), mgr, isTerminal(in)).run()
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.IntVar(&cfg.MaxBooks, "max-books", cfg.MaxBooks, "catalog capacity (0 = unlimited)")
	flags.IntVar(&cfg.MaxRequests, "max-requests", cfg.MaxRequests, "request queue capacity (0 = unlimited)")
	flags.IntVar(&cfg.MaxActions, "max-actions", cfg.MaxActions, "action log capacity (0 = unlimited)")
	flags.IntVar(&cfg.MaxIssued, "max-issued", cfg.MaxIssued, "issued records capacity (0 = unlimited)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flags.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "catalog file to preload (id|title|copies per line)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "smartlib %s\n", version)
		},
	})
	return root
}

// isTerminal reports whether in is a file attached to a terminal.
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// newManager builds a manager from cfg, logging to stderr.
func newManager(cfg *library.Config) (*library.LibraryManager, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return library.NewLibraryManager(
		library.WithLogger(logger),
		library.WithLimits(cfg.Limits()),
	)
}
