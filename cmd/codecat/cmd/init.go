package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/codecat-dev/codecat/configs"
	"github.com/codecat-dev/codecat/internal/config"
	cerr "github.com/codecat-dev/codecat/internal/errors"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter .codecat.yaml",
		Long: `Write an annotated .codecat.yaml configuration template into the
given directory (default: current directory). Existing files are left
alone unless --force is set.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	info, err := os.Stat(dir)
	if err != nil {
		return cerr.New(cerr.ErrCodeRootMissing, fmt.Sprintf("invalid directory: %s", dir), err)
	}
	if !info.IsDir() {
		return cerr.ValidationError(cerr.ErrCodeRootNotDir, fmt.Sprintf("not a directory: %s", dir))
	}

	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return cerr.ValidationError(cerr.ErrCodeConfigInvalid,
			fmt.Sprintf("%s already exists (use --force to overwrite)", path))
	}

	if err := os.WriteFile(path, []byte(configs.ConfigTemplate), 0o644); err != nil {
		return cerr.New(cerr.ErrCodeOutputCreate, fmt.Sprintf("failed to write %s", path), err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
