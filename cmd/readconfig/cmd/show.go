package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/listenupapp/readconfig/internal/service"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Width(20)
	valueStyle = lipgloss.NewStyle().Bold(true)
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current reading preferences",
	Long: `Display the stored preferences, the active theme and a swatch of the
current reading colors.

Examples:
  readconfig show
  readconfig show --theme dark
  readconfig show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		view := preferencesService().Get(cmd.Context())
		if showJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(view)
		}
		renderView(cmd.OutOrStdout(), view)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print as JSON")
}

// renderView prints view as a styled summary.
func renderView(w io.Writer, view service.PreferencesView) {
	fmt.Fprintln(w, titleStyle.Render("Reading preferences"))
	printKV(w, "Theme", string(view.ThemeMode))
	printKV(w, "Color index", fmt.Sprintf("%d (light %d, dark %d)", view.CurrentColorIndex, view.LightColorIndex, view.DarkColorIndex))
	printKV(w, "Font size", strconv.Itoa(view.FontSize))
	printKV(w, "Line spacing", strconv.FormatFloat(view.LineSpacing, 'f', -1, 64))
	printKV(w, "Paragraph spacing", strconv.FormatFloat(view.ParagraphSpacing, 'f', -1, 64))
	printKV(w, "Page type", string(view.PageType))
	printKV(w, "Auto-read", fmt.Sprintf("%t (%s, speed %d)", view.IsAutoRead, view.AutoReadMode, view.AutoReadSpeed))

	fmt.Fprintln(w)
	fmt.Fprintln(w, swatch(view))
}

func printKV(w io.Writer, key, value string) {
	fmt.Fprintln(w, keyStyle.Render(key)+valueStyle.Render(value))
}

// swatch renders a sample paragraph in the current reading colors.
func swatch(view service.PreferencesView) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(view.BackgroundColor)).
		Foreground(lipgloss.Color(view.TextColor)).
		Padding(1, 4).
		Render(fmt.Sprintf("The quick brown fox\n%s on %s", view.TextColor, view.BackgroundColor))
}
