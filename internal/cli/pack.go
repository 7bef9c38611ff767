package cli

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/advent/internal/vsix"
)

// PackOptions holds flags for the pack command.
type PackOptions struct {
	*RootOptions
	Dist string
}

// NewPackCommand creates the pack command.
func NewPackCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PackOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "pack <extension-dir>",
		Short: "Build an editor extension into a .vsix archive",
		Long: `Assemble the extension's static assets into a distributable .vsix
archive and print the archive path.

Identity and metadata come from the extension's package.json
(publisher, name and version are required). A fixed allowlist of
asset files is copied into the archive; files that do not exist are
skipped. The archive is written to <extension-dir>/dist unless
--dist overrides it.

Example:
  advent pack tools/vscode-flux
  advent pack --dist build/out tools/vscode-flux`,
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Dist, "dist", "", "archive output directory (default <extension-dir>/dist)")

	return cmd
}

func runPack(opts *PackOptions, root string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	dist := opts.Dist
	if dist == "" {
		dist = opts.cfg().Pack.Dist
	}
	if dist == "" {
		dist = filepath.Join(root, "dist")
	}

	path, err := vsix.Build(root, dist)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return commandError(formatter, ExitFailure, ErrCodeNotFound, err.Error())
		case errors.Is(err, vsix.ErrBadManifest):
			return commandError(formatter, ExitFailure, ErrCodeManifest, err.Error())
		default:
			return commandError(formatter, ExitFailure, ErrCodeWriteFailed, err.Error())
		}
	}
	formatter.VerboseLog("packed %s", path)

	return formatter.Success(path)
}
