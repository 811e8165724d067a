package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/awsl-project/localnotes/internal/domain"
	"github.com/awsl-project/localnotes/internal/store"
	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		title       string
		content     string
		contentFile string
		out         string
		preview     bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a single note to a markdown file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if contentFile != "" {
				p, err := expandPath(contentFile)
				if err != nil {
					return err
				}
				data, err := os.ReadFile(p)
				if err != nil {
					return fmt.Errorf("failed to read content: %w", err)
				}
				content = string(data)
			}
			dst, err := expandPath(out)
			if err != nil {
				return err
			}
			if err := current.transfer.ExportNote(title, content, dst); err != nil {
				return err
			}
			return reportExport(dst, preview)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Note title")
	cmd.Flags().StringVar(&content, "content", "", "Note content")
	cmd.Flags().StringVar(&contentFile, "content-file", "", "Read note content from a file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination markdown file (overwritten)")
	cmd.Flags().BoolVar(&preview, "preview", false, "Render the exported markdown to the terminal")
	cmd.MarkFlagsMutuallyExclusive("content", "content-file")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newExportAllCmd() *cobra.Command {
	var (
		in      string
		fromDB  bool
		out     string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "export-all",
		Short: "Export a collection of notes to one markdown file",
		Long: `Export notes to a single markdown file, either from a JSON array of
{"title","content","created_at"} objects (--in, "-" for stdin) or straight
from the notes database (--from-db).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dst, err := expandPath(out)
			if err != nil {
				return err
			}

			if fromDB {
				notes, err := loadNotesFromDB()
				if err != nil {
					return err
				}
				if err := current.transfer.ExportNotes(notes, dst); err != nil {
					return err
				}
				return reportExport(dst, preview)
			}

			var data []byte
			if in == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				var p string
				if p, err = expandPath(in); err == nil {
					data, err = os.ReadFile(p)
				}
			}
			if err != nil {
				return fmt.Errorf("failed to read notes: %w", err)
			}
			if err := current.transfer.ExportAllNotes(string(data), dst); err != nil {
				return err
			}
			return reportExport(dst, preview)
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", `JSON file with the notes array, "-" for stdin`)
	cmd.Flags().BoolVar(&fromDB, "from-db", false, "Read notes from the notes database")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination markdown file (overwritten)")
	cmd.Flags().BoolVar(&preview, "preview", false, "Render the exported markdown to the terminal")
	cmd.MarkFlagsMutuallyExclusive("in", "from-db")
	cmd.MarkFlagsOneRequired("in", "from-db")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func loadNotesFromDB() ([]domain.Note, error) {
	path := current.cfg.DatabasePath()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.NewNotFoundError("数据库文件不存在")
		}
		return nil, err
	}

	db, err := store.Open(path, current.log)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return db.ListNotes()
}

func reportExport(path string, preview bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(current.out, "Exported %s (%s)\n", path, humanize.Bytes(uint64(info.Size())))
	if !preview {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return err
	}
	rendered, err := r.Render(string(data))
	if err != nil {
		return err
	}
	fmt.Fprint(current.out, rendered)
	return nil
}
