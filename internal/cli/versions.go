package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mcaddon-labs/mcaddon/internal/registry"
	"github.com/spf13/cobra"
)

// maxShownVersions caps the versions listed per channel in the table view.
const maxShownVersions = 3

func newVersionsCmd() *cobra.Command {
	var (
		latest  bool
		channel string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "versions <package>",
		Short: "List a package's published versions by release channel",
		Long: `Fetch a package from the npm registry and group its versions into
release channels: stable lines keyed by MAJOR.MINOR.PATCH, and pre-release
lines keyed by <core>-beta or <core>-rc (preview builds count as rc).`,
		Example: `  mcaddon versions @minecraft/server
  mcaddon versions @minecraft/server --channel 1.11.0-beta
  mcaddon versions @minecraft/server-ui --latest`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := args[0]
			out := cmd.OutOrStdout()

			t, err := classify(cmd.Context(), pkg)
			if err != nil {
				return err
			}

			switch {
			case asJSON:
				data, err := json.MarshalIndent(t, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling versions: %w", err)
				}
				fmt.Fprintln(out, string(data))
			case latest:
				ch, v, ok := registry.Latest(t)
				if !ok {
					return fmt.Errorf("no versions available for %s", pkg)
				}
				fmt.Fprintf(out, "%s %s\n", ch, v)
			case channel != "":
				versions, err := registry.Versions(t, channel)
				if err != nil {
					return err
				}
				for _, v := range versions {
					fmt.Fprintln(out, v)
				}
			default:
				if t.Len() == 0 {
					printWarning(out, "No qualifying versions for %s", pkg)
					return nil
				}
				fmt.Fprintln(out, renderVersionTable(t))
				printDetail(out, "%d channels, %d versions", len(t), t.Len())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&latest, "latest", false, "Print only the newest channel and version")
	cmd.Flags().StringVar(&channel, "channel", "", "List every version in one channel")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the channel table as JSON")
	cmd.MarkFlagsMutuallyExclusive("latest", "channel", "json")
	return cmd
}

func renderVersionTable(t registry.VersionTable) string {
	var rows [][]string
	for _, ch := range registry.Channels(t) {
		versions, _ := registry.Versions(t, ch)
		shown := versions
		if len(shown) > maxShownVersions {
			shown = shown[:maxShownVersions]
		}
		list := strings.Join(shown, ", ")
		if more := len(versions) - len(shown); more > 0 {
			list += fmt.Sprintf(" (+%d)", more)
		}
		rows = append(rows, []string{ch, strconv.Itoa(len(versions)), list})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Channel", "Count", "Versions").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return styleHeader.Padding(0, 1)
			case col == 0:
				return base.Foreground(colorCyan)
			case col == 1:
				return base.Foreground(colorGray)
			}
			return base
		}).
		String()
}
