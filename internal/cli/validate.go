package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mcaddon-labs/mcaddon/internal/manifest"
	"github.com/mcaddon-labs/mcaddon/internal/project"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "validate [manifest.json...]",
		Short: "Validate pack manifests against the manifest schema",
		Long: `Validate pack manifest files. Without arguments, the behavior and resource
pack manifests of the project in --dir (default: current directory) are checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			files := args
			if len(files) == 0 {
				root, err := projectDir(dir)
				if err != nil {
					return err
				}
				files, err = projectManifests(root)
				if err != nil {
					return err
				}
			}

			failed := 0
			for _, file := range files {
				result, err := manifest.ValidateFile(file)
				if err != nil {
					return err
				}
				if result.Valid {
					printSuccess(out, "%s", file)
					continue
				}
				failed++
				printError(out, "%s", file)
				for _, issue := range result.Issues {
					if issue.Path != "" {
						printDetail(out, "%s: %s", issue.Path, issue.Message)
					} else {
						printDetail(out, "%s", issue.Message)
					}
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d manifests failed validation", failed, len(files))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", "", "Project directory (default: current directory)")
	return cmd
}

// projectManifests lists the manifest files of a saved project.
func projectManifests(root string) ([]string, error) {
	info, err := project.Load(root)
	if err != nil {
		return nil, err
	}
	files := []string{filepath.Join(root, filepath.FromSlash(info.BehPath), "manifest.json")}
	if info.Res {
		files = append(files, filepath.Join(root, filepath.FromSlash(info.ResPath), "manifest.json"))
	}
	return files, nil
}
