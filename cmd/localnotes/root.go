package main

import (
	"fmt"
	"io"
	"os"

	"github.com/awsl-project/localnotes/internal/config"
	"github.com/awsl-project/localnotes/internal/logging"
	"github.com/awsl-project/localnotes/internal/transfer"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	dataDir  string
	logLevel string
)

// env 命令共享的运行环境，在 PersistentPreRunE 中初始化
type env struct {
	cfg      config.Config
	log      zerolog.Logger
	transfer *transfer.Service
	out      io.Writer
}

var current *env

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "localnotes",
		Short: "Export notes and back up or restore the local notes database",
		Long: `localnotes runs the desktop app's file operations without a window:
markdown export, database backup and database restore with a safety snapshot.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(dataDir)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			log, _, err := logging.New(logging.Options{Level: cfg.LogLevel, Console: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			log = logging.Component(log, "cli")
			current = &env{
				cfg:      cfg,
				log:      log,
				transfer: transfer.NewService(transfer.StaticDataDir(cfg.DataDir), transfer.WithLogger(log)),
				out:      cmd.OutOrStdout(),
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory holding notes.db (default: per-user app data dir)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")

	root.AddCommand(
		newExportCmd(),
		newExportAllCmd(),
		newBackupCmd(),
		newRestoreCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// expandPath 展开命令行参数中的 ~
func expandPath(p string) (string, error) {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", p, err)
	}
	return expanded, nil
}
