package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lucrnz/qakit/internal/logging"
	"github.com/lucrnz/qakit/pkg/fsutil"
)

var (
	maxBytesStr string
	rawRead     bool
	countLines  bool
	humanSize   bool
	listPattern string
	existsDir   bool
	csvHeader   bool
	csvOutput   string
	stripCount  int
)

func readOptions() ([]fsutil.ReadOption, error) {
	var opts []fsutil.ReadOption
	if maxBytesStr != "" {
		n, err := fsutil.ParseSize(maxBytesStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --max-bytes value: %w", err)
		}
		opts = append(opts, fsutil.WithMaxBytes(n))
	}
	if rawRead {
		opts = append(opts, fsutil.WithoutDecompression())
	}
	return opts, nil
}

// content returns args[1], or stdin when it is absent or "-".
func content(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 1 && args[1] != "-" {
		return args[1], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func addReadFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&maxBytesStr, "max-bytes", "M", "", "Fail if the content is larger than this (e.g., \"64MiB\")")
	cmd.Flags().BoolVar(&rawRead, "raw", false, "Do not decompress gzip, zstd, xz or bzip2 files")
}

func newFSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fs",
		Short: "Read, write and inspect files and directories",
	}

	read := &cobra.Command{
		Use:   "read <path>",
		Short: "Print a file's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := readOptions()
			if err != nil {
				return err
			}
			text, err := fsutil.ReadText(args[0], opts...)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), text)
			return err
		},
	}
	addReadFlags(read)

	lines := &cobra.Command{
		Use:   "lines <path>",
		Short: "Print a file line by line, or the line count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := readOptions()
			if err != nil {
				return err
			}
			ls, err := fsutil.ReadLines(args[0], opts...)
			if err != nil {
				return err
			}
			if countLines {
				fmt.Fprintln(cmd.OutOrStdout(), len(ls))
				return nil
			}
			for _, l := range ls {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	}
	addReadFlags(lines)
	lines.Flags().BoolVar(&countLines, "count", false, "Print only the number of lines")

	write := &cobra.Command{
		Use:   "write <path> [content|-]",
		Short: "Replace a file atomically (content from stdin if omitted)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := content(cmd, args)
			if err != nil {
				return err
			}
			if err := fsutil.WriteText(args[0], text); err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Debug("file_written", "path", args[0], "size", fsutil.HumanSize(int64(len(text))))
			return nil
		},
	}

	appendCmd := &cobra.Command{
		Use:   "append <path> [content|-]",
		Short: "Append to a file, creating it if needed",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := content(cmd, args)
			if err != nil {
				return err
			}
			return fsutil.AppendText(args[0], text)
		},
	}

	exists := &cobra.Command{
		Use:   "exists <path>",
		Short: "Check that a file (or with --dir, a directory) exists (exit 1 if not)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if existsDir {
				return check(cmd.OutOrStdout(), fsutil.DirectoryExists(args[0]))
			}
			return check(cmd.OutOrStdout(), fsutil.FileExists(args[0]))
		},
	}
	exists.Flags().BoolVarP(&existsDir, "dir", "d", false, "Check for a directory instead of a file")

	rm := &cobra.Command{
		Use:   "rm <path>",
		Short: "Delete a file; prints whether anything was deleted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deleted, err := fsutil.DeleteFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), deleted)
			return nil
		},
	}

	size := &cobra.Command{
		Use:   "size <path>",
		Short: "Print a file's size in bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := fsutil.FileSize(args[0])
			if err != nil {
				return err
			}
			if humanSize {
				fmt.Fprintln(cmd.OutOrStdout(), fsutil.HumanSize(n))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
	size.Flags().BoolVarP(&humanSize, "human", "H", false, "Print IEC units (e.g., 1.5 MiB)")

	ls := &cobra.Command{
		Use:   "ls [dir]",
		Short: "List regular files in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			files, err := fsutil.ListFiles(dir, listPattern)
			if err != nil {
				return err
			}
			if stripCount < 0 {
				return fmt.Errorf("--strip must be non-negative, got %d", stripCount)
			}
			for _, f := range files {
				if stripCount > 0 {
					f = fsutil.StripComponents(f, stripCount)
				}
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
	ls.Flags().StringVar(&listPattern, "pattern", "*", "Glob matched against file names")
	ls.Flags().IntVar(&stripCount, "strip", 0, "Strip N leading components from printed paths")

	mkdir := &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a directory and its parents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fsutil.CreateDirectory(args[0])
		},
	}

	csvCmd := &cobra.Command{
		Use:   "csv <path>",
		Short: "Print a CSV file as structured records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := readOptions()
			if err != nil {
				return err
			}
			t, err := fsutil.LoadCSV(args[0], csvHeader, opts...)
			if err != nil {
				return err
			}
			if csvHeader {
				return writeStructured(cmd.OutOrStdout(), csvOutput, t.Records())
			}
			return writeStructured(cmd.OutOrStdout(), csvOutput, t.Rows)
		},
	}
	addReadFlags(csvCmd)
	csvCmd.Flags().BoolVar(&csvHeader, "header", true, "Treat the first record as column names")
	csvCmd.Flags().StringVarP(&csvOutput, "output", "o", "json", "Output format: json or yaml")

	cmd.AddCommand(read, lines, write, appendCmd, exists, rm, size, ls, mkdir, csvCmd)
	return cmd
}
