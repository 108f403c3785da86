package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/formsense/formsense/internal/cli"
	"github.com/formsense/formsense/internal/model"
)

func analyzeCmd() *cobra.Command {
	var (
		jsonOut  bool
		company  string
		position string
	)

	cmd := &cobra.Command{
		Use:   "analyze <question>",
		Short: "Analyze a free-text application question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, cleanup, err := buildOrchestrator(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			question := strings.Join(args, " ")
			pageCtx := model.Context{
				Company:  company,
				Position: position,
				Platform: model.PlatformUnknown,
			}

			analysis := orch.AnalyzeQuestion(cmd.Context(), question, pageCtx)

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(analysis)
			}

			printAnalysis(question, analysis)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit raw JSON analysis")
	cmd.Flags().StringVar(&company, "company", "", "company name for prompt context")
	cmd.Flags().StringVar(&position, "position", "", "position title for prompt context")

	return cmd
}

func printAnalysis(question string, analysis model.QuestionAnalysis) {
	fmt.Println(cli.TitleStyle.Render(question))
	fmt.Printf("  %s %s  %s %s  %s %.2f\n",
		cli.BoldStyle.Render("category:"), analysis.Category,
		cli.BoldStyle.Render("source:"), analysis.Source,
		cli.BoldStyle.Render("confidence:"), analysis.Confidence)

	if len(analysis.KeyPoints) > 0 {
		fmt.Println(cli.BoldStyle.Render("  key points:"))
		for _, p := range analysis.KeyPoints {
			fmt.Printf("    - %s\n", p)
		}
	}

	if analysis.ResponseStructure != (model.ResponseStructure{}) {
		fmt.Println(cli.BoldStyle.Render("  structure:"))
		fmt.Printf("    opening: %s\n", analysis.ResponseStructure.Opening)
		fmt.Printf("    body:    %s\n", analysis.ResponseStructure.Body)
		fmt.Printf("    closing: %s\n", analysis.ResponseStructure.Closing)
	}

	if len(analysis.Advice) > 0 {
		fmt.Println(cli.BoldStyle.Render("  advice:"))
		for _, a := range analysis.Advice {
			fmt.Printf("    - %s\n", a)
		}
	}

	fmt.Printf("  %s %s\n", cli.SubtleStyle.Render("suggested length:"), analysis.SuggestedLength)
}
