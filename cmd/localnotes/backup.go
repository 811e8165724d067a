package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newBackupCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Copy notes.db to a backup file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dst, err := expandPath(out)
			if err != nil {
				return err
			}
			if err := current.transfer.Backup(dst); err != nil {
				return err
			}
			info, err := os.Stat(dst)
			if err != nil {
				return err
			}
			fmt.Fprintf(current.out, "Backed up %s to %s (%s)\n",
				current.cfg.DatabasePath(), dst, humanize.Bytes(uint64(info.Size())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination backup file (overwritten)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newRestoreCmd() *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Replace notes.db with a backup, keeping a snapshot of the current database",
		Long: `Replace notes.db with a backup file. When a database already exists it is
first copied to notes_backup_<YYYYMMDD_HHMMSS>.db in the data directory.
Close the desktop app first: the CLI does not coordinate with a running app.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := expandPath(in)
			if err != nil {
				return err
			}
			if err := current.cfg.EnsureDataDir(); err != nil {
				return err
			}
			snapshot, err := current.transfer.Restore(src)
			if err != nil {
				return err
			}
			fmt.Fprintf(current.out, "Restored %s from %s\n", current.cfg.DatabasePath(), src)
			if snapshot != "" {
				fmt.Fprintf(current.out, "Previous database saved as %s\n", snapshot)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "Backup file to restore from")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
