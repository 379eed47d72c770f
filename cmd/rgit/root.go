package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"rgit/internal/args"
	"rgit/internal/command"
	"rgit/internal/config"
	"rgit/internal/ctxlog"
	"rgit/internal/dispatch"
	"rgit/internal/failure"
	"rgit/internal/outcome"
	"rgit/internal/repo"
	"rgit/internal/ui"
)

type app struct {
	dispatcher *dispatch.Dispatcher
	printer    *ui.Printer
	logOut     io.Writer

	logLevel  string
	colorMode string
}

func newApp() *app {
	return &app{
		dispatcher: dispatch.Default(),
		printer:    ui.NewPrinter(),
		logOut:     os.Stderr,
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rgit",
		Short: "rgit - a small version control tool",
		Long: `rgit tracks the history of a working directory. Every command runs as a
pipeline of fallible steps; the first failing step ends the pipeline and its
error is reported here.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, tokens []string) error {
			if len(tokens) == 0 {
				return cmd.Help()
			}
			// not a catalog subcommand; let the dispatcher report it
			return a.run(cmd.Context(), tokens)
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error (default from core.logLevel, else warn)")
	root.PersistentFlags().StringVar(&a.colorMode, "color", "", "Colour output: auto, always or never (default from color.ui, else auto)")

	for _, id := range command.All() {
		root.AddCommand(a.catalogCmd(id))
	}
	root.AddCommand(a.configCmd())
	return root
}

// setup configures logging and colour. A bad --log-level or --color flag
// fails the command. A bad or unreadable config value is logged and the
// default (warn, auto) is used instead, so `config set` can still repair it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	root, _ := repo.FindRoot(".")
	var ignored []error

	level := slog.LevelWarn
	if a.logLevel != "" {
		l, err := ctxlog.ParseLevel(a.logLevel)
		if err != nil {
			return err
		}
		level = l
	} else if name, err := config.Lookup(root, config.KeyLogLevel); err != nil {
		ignored = append(ignored, err)
	} else if name != "" {
		if l, err := ctxlog.ParseLevel(name); err != nil {
			ignored = append(ignored, fmt.Errorf("%s: %w", config.KeyLogLevel, err))
		} else {
			level = l
		}
	}

	if a.colorMode != "" {
		if err := ui.Configure(a.colorMode); err != nil {
			return err
		}
	} else if mode, err := config.Lookup(root, config.KeyColor); err != nil {
		ignored = append(ignored, err)
		_ = ui.Configure(ui.ColorAuto)
	} else if err := ui.Configure(mode); err != nil {
		ignored = append(ignored, fmt.Errorf("%s: %w", config.KeyColor, err))
		_ = ui.Configure(ui.ColorAuto)
	}

	logger := ctxlog.New(a.logOut, level)
	for _, err := range ignored {
		logger.Warn("ignoring config value", "err", err)
	}
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
	return nil
}

// run dispatches tokens and reports the outcome. Informational failures are
// printed and do not fail the process.
func (a *app) run(ctx context.Context, tokens []string) error {
	res, err := a.dispatcher.Dispatch(ctx, args.New(tokens)).Await(ctx)
	if err != nil {
		return err
	}
	return outcome.Match(res,
		func(r command.Report) error {
			a.printer.Success(r.Message)
			return nil
		},
		func(err error) error {
			if !failure.IsInformational(err) {
				return err
			}
			a.printer.Info(describe(err))
			return nil
		},
	)
}

func describe(err error) string {
	var fe *failure.Error
	if errors.Is(err, failure.ErrAlreadyInitialized) && errors.As(err, &fe) && fe.Path != "" {
		return "rgit repository already exists at " + fe.Path
	}
	return err.Error()
}

// Execute runs the CLI and returns the process exit code.
func (a *app) Execute(ctx context.Context, argv []string) int {
	root := a.rootCmd()
	root.SetArgs(argv)
	root.SetOut(a.printer.Out)
	root.SetErr(a.printer.Err)
	if err := root.ExecuteContext(ctx); err != nil {
		a.printer.Error(err)
		return 1
	}
	return 0
}
