package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nahw-app/nahw/internal/tui/styles"
)

var (
	resolveDark    bool
	resolveOpacity float64
)

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeListCmd, themeResolveCmd, themeFontsCmd)

	themeResolveCmd.Flags().BoolVar(&resolveDark, "dark", false, "resolve against the dark palette")
	themeResolveCmd.Flags().Float64Var(&resolveOpacity, "opacity", 1, "opacity in [0,1]; values below 1 also print the color flattened onto the background")
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect themes, colors and fonts",
}

type themeSummary struct {
	Name    string `json:"name"`
	Current bool   `json:"current"`
	Tokens  int    `json:"tokens"`
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current := styles.DefaultTheme.Name
		if cfg := GetConfig(); cfg != nil && cfg.Theme != "" {
			current = cfg.Theme
		}

		var summaries []themeSummary
		for _, name := range styles.ThemeNames() {
			theme, err := styles.LookupTheme(name)
			if err != nil {
				return err
			}
			summaries = append(summaries, themeSummary{
				Name:    name,
				Current: name == current,
				Tokens:  len(theme.Light),
			})
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, summaries)
		}
		rows := make([][]string, 0, len(summaries))
		for _, s := range summaries {
			rows = append(rows, []string{s.Name, formatYesNo(s.Current), fmt.Sprintf("%d", s.Tokens)})
		}
		return writeTable(out, []string{"THEME", "CURRENT", "TOKENS"}, rows)
	},
}

type resolvedToken struct {
	Token     string  `json:"token"`
	Kind      string  `json:"kind"`
	Color     string  `json:"color"`
	Known     bool    `json:"known"`
	Opacity   float64 `json:"opacity"`
	Flattened string  `json:"flattened,omitempty"`
}

var themeResolveCmd = &cobra.Command{
	Use:   "resolve <token>...",
	Short: "Resolve color tokens to concrete colors",
	Long: `Resolve semantic roles ("primary"), palette classes ("orange-600") and
literals ("#EA580C", "214") against the configured theme.
Unknown tokens resolve to the fallback color.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		theme, err := loadTheme(GetConfig())
		if err != nil {
			return err
		}
		results := resolveTokens(styles.NewResolver(theme), args, resolveDark, resolveOpacity)

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, results)
		}
		rows := make([][]string, 0, len(results))
		for _, r := range results {
			rows = append(rows, []string{r.Token, r.Kind, r.Color, formatYesNo(r.Known), orDash(r.Flattened)})
		}
		return writeTable(out, []string{"TOKEN", "KIND", "COLOR", "KNOWN", "FLATTENED"}, rows)
	},
}

func resolveTokens(resolver *styles.Resolver, raw []string, dark bool, opacity float64) []resolvedToken {
	background := resolver.Resolve(styles.Semantic(styles.TokenBackground), dark)
	results := make([]resolvedToken, 0, len(raw))
	for _, value := range raw {
		token := styles.ParseToken(value)
		alpha := resolver.ResolveWithOpacity(token, dark, opacity)
		result := resolvedToken{
			Token:   strings.TrimSpace(value),
			Kind:    token.Kind.String(),
			Color:   alpha.Color,
			Known:   resolver.Known(token, dark),
			Opacity: alpha.Alpha,
		}
		if alpha.Alpha < 1 {
			result.Flattened = alpha.Over(background)
		}
		results = append(results, result)
	}
	return results
}

type fontReport struct {
	Family     string   `json:"family"`
	Resolved   string   `json:"resolved"`
	Candidates []string `json:"candidates"`
}

var themeFontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "Show which installed font each lesson font family resolves to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, dirs := newFontResolver(GetConfig())
		reports := make([]fontReport, 0, len(styles.FontFamilies))
		for _, family := range styles.FontFamilies {
			reports = append(reports, fontReport{
				Family:     string(family),
				Resolved:   resolver.Resolve(family),
				Candidates: resolver.Candidates(family),
			})
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, reports)
		}
		rows := make([][]string, 0, len(reports))
		for _, r := range reports {
			rows = append(rows, []string{r.Family, orDash(r.Resolved), strings.Join(r.Candidates, ", ")})
		}
		if err := writeTable(out, []string{"FAMILY", "RESOLVED", "CANDIDATES"}, rows); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nScanned: %s\n", strings.Join(dirs, ", "))
		return nil
	},
}
