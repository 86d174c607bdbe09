package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/latestcomment/truthlens/internal/models"
	"github.com/spf13/cobra"
)

var (
	modelType  string
	jsonOutput bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze text from the command line",
	Long: `Runs the same pipeline as POST /api/predict and prints the verdict.

Example:
  truthlens analyze --model classic "Officials confirmed the new budget according to the statement"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&modelType, "model", "m", "deep_learning", "scorer: classic or deep_learning")
	analyzeCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the raw JSON response")
	rootCmd.AddCommand(analyzeCmd)
}

var verdictColors = map[string]lipgloss.Color{
	"green":  lipgloss.Color("#10B981"),
	"amber":  lipgloss.Color("#F59E0B"),
	"yellow": lipgloss.Color("#EAB308"),
	"red":    lipgloss.Color("#EF4444"),
	"gray":   lipgloss.Color("#6B7280"),
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	d, err := buildServices(cfg, logger)
	if err != nil {
		return err
	}

	result, err := d.analyzer.Analyze(cmd.Context(), strings.Join(args, " "), models.ParseModelType(modelType))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	fmt.Fprintln(out, renderAnalysis(result))
	return nil
}

func renderAnalysis(a models.Analysis) string {
	color := verdictColors[a.UIColor]
	title := lipgloss.NewStyle().Bold(true).Foreground(color).
		Border(lipgloss.RoundedBorder()).BorderForeground(color).Padding(0, 2)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))

	var b strings.Builder
	b.WriteString(title.Render(string(a.FinalVerdict)))
	b.WriteString("\n")
	if a.Description != "" {
		b.WriteString(dim.Render(a.Description))
		return b.String()
	}
	b.WriteString(dim.Render(a.VerdictExplanation))
	fmt.Fprintf(&b, "\nFake probability: %d%% (%s)\nTrusted sources: %d of %d\n",
		int(a.AIScore*100+0.5), a.AILabel, a.EvidenceCount, len(a.Evidence))
	for _, e := range a.Evidence {
		tag := ""
		switch {
		case e.IsGovt:
			tag = " [GOVT]"
		case e.IsTrusted:
			tag = " [TRUSTED]"
		}
		fmt.Fprintf(&b, "  - %s%s\n    %s\n", e.Title, tag, dim.Render(e.Link))
	}
	return b.String()
}
