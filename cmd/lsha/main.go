package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	internal "github.com/ZanzyTHEbar/lsha/lsha"
	"github.com/ZanzyTHEbar/lsha/lsha/config"
	"github.com/ZanzyTHEbar/lsha/lsha/filesystem"
	"github.com/ZanzyTHEbar/lsha/lsha/filesystem/common"
	"github.com/ZanzyTHEbar/lsha/lsha/report"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

// extra options for every filesystem the command creates
var filesystemOptions []filesystem.Option

const (
	exitOK                = 0
	exitFailure           = 1
	exitCapabilityMissing = 2
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "lsha [flags] path...",
		Short: "List files and folders with checksums, permissions and xattrs",
		Long: `List files and folders together with their metadata. Useful to verify whether
things have changed: run it twice and diff the outputs.`,
		Example:       "  lsha -citxp .     typical non-recursive usage\n  lsha -a -e:x dir  everything except xattrs",
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(v)
			if err != nil {
				return err
			}

			// all good now, no usage on runtime errors
			cmd.SilenceUsage = true

			if cfg.Verbose {
				slog.SetDefault(internal.NewLogger(cmd.ErrOrStderr(), slog.LevelDebug))
			}

			slog.Debug("Configuration resolved",
				"checksum", cfg.ShowChecksum(),
				"algorithm", cfg.Algorithm,
				"recursive", cfg.Recursive(),
				"hidden", cfg.IncludeHidden(),
				"xattrs", cfg.ShowXattrs(),
				"perms", cfg.ShowPermissions())

			fs, err := filesystem.New(cfg, filesystemOptions...)
			if err != nil {
				return err
			}

			reporter := report.NewReporter(cmd.OutOrStdout(), cfg)
			if err := fs.List(cmd.Context(), args, reporter); err != nil {
				return err
			}

			slog.Debug("Report complete", "paths", len(args), "lines", reporter.Lines())
			return nil
		},
	}

	config.RegisterFlags(cmd.Flags())
	cobra.CheckErr(v.BindPFlags(cmd.Flags()))

	return cmd
}

// run executes one invocation and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(normalizeArgs(args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, common.ErrCapabilityMissing):
		fmt.Fprintln(stderr, "please install xattr support to use -x option (can be implied by -a)")
		return exitCapabilityMissing
	default:
		slog.Error("lsha failed", "error", err)
		return exitFailure
	}
}

func main() {
	slog.SetDefault(internal.NewLogger(os.Stderr, internal.DefaultLogLevel))

	// Setup root context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}
