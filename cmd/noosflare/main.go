package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/noosflare/internal/bootstrap"
	"github.com/noah-isme/noosflare/internal/console"
	"github.com/noah-isme/noosflare/internal/models"
	"github.com/noah-isme/noosflare/pkg/config"
	"github.com/noah-isme/noosflare/pkg/logger"
	"github.com/noah-isme/noosflare/pkg/plural"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(cfg, logr).ExecuteContext(ctx); err != nil {
		logr.Sugar().Errorw("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCommand(cfg *config.Config, logr *zap.Logger) *cobra.Command {
	shell := &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive student shell",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd.Context(), cfg, logr, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root := &cobra.Command{
		Use:           "noosflare",
		Short:         "Student materials catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          shell.RunE,
	}
	root.AddCommand(shell, newSubjectsCommand(cfg, logr), newMaterialsCommand(cfg, logr), newPluralCommand())
	return root
}

func runShell(ctx context.Context, cfg *config.Config, logr *zap.Logger, in io.Reader, out io.Writer) error {
	app := bootstrap.New(ctx, cfg, logr)
	defer app.Shutdown()

	var readPassword console.PasswordReader
	if in == os.Stdin && console.IsTerminal(int(os.Stdin.Fd())) {
		readPassword = console.TerminalPasswordReader(int(os.Stdin.Fd()), out)
	}

	logr.Sugar().Infow("shell starting", "env", cfg.Env)
	return console.New(app, readPassword, logger.Named(logr, "console")).Run(ctx, in, out)
}

func newSubjectsCommand(cfg *config.Config, logr *zap.Logger) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "subjects",
		Short: "List subjects, optionally filtered by a search query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := bootstrap.New(cmd.Context(), cfg, logr)
			defer app.Shutdown()

			console.RenderSubjectList(cmd.OutOrStdout(), app.Subjects.Search(search))
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "match subject names and descriptions")
	return cmd
}

func newMaterialsCommand(cfg *config.Config, logr *zap.Logger) *cobra.Command {
	var search, topic, source, kind string
	cmd := &cobra.Command{
		Use:   "materials <subject>",
		Short: "List the materials of a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := bootstrap.New(cmd.Context(), cfg, logr)
			defer app.Shutdown()

			screen := app.Materials.Open(args[0])
			screen.SetSearch(search)
			screen.SetTopic(topic)
			screen.SetSource(source)
			if err := screen.SetKind(models.MaterialKind(kind)); err != nil {
				return err
			}
			console.RenderListing(cmd.OutOrStdout(), screen.Listing())
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive title match")
	cmd.Flags().StringVar(&topic, "topic", models.FilterAll, "topic filter")
	cmd.Flags().StringVar(&source, "source", models.FilterAll, "source filter")
	cmd.Flags().StringVar(&kind, "kind", string(models.KindAll), "video, notes or all")
	return cmd
}

func newPluralCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plural <count> [one few many]",
		Short: "Print a count with the matching Russian noun form",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 4 {
				return fmt.Errorf("expected 1 or 4 arguments, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid count %q: %w", args[0], err)
			}
			if len(args) == 4 {
				fmt.Fprintln(cmd.OutOrStdout(), plural.Format(count, args[1], args[2], args[3]))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), plural.Materials(count))
			return nil
		},
	}
}
