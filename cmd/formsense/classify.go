package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/formsense/formsense/internal/cli"
	"github.com/formsense/formsense/internal/model"
)

// classifyInput is the on-disk shape of a captured form: the extracted
// field descriptors plus whatever page context the capturer had.
type classifyInput struct {
	Context model.Context           `json:"context"`
	Fields  []model.FieldDescriptor `json:"fields"`
}

func classifyCmd() *cobra.Command {
	var (
		jsonOut  bool
		url      string
		company  string
		position string
		platform string
	)

	cmd := &cobra.Command{
		Use:   "classify <fields.json> [more.json...]",
		Short: "Classify form fields from captured descriptor files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, cleanup, err := buildOrchestrator(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			var bar *progressbar.ProgressBar
			if len(args) > 1 && !jsonOut {
				bar = progressbar.Default(int64(len(args)), "classifying")
			}

			for _, path := range args {
				input, err := readInput(path)
				if err != nil {
					return err
				}

				overlayContext(&input.Context, url, company, position, platform)

				results := orch.ClassifyFields(cmd.Context(), input.Fields, input.Context)

				if jsonOut {
					if err := json.NewEncoder(os.Stdout).Encode(results); err != nil {
						return fmt.Errorf("failed to encode results: %w", err)
					}
				} else {
					printResults(path, input.Fields, results)
				}

				if bar != nil {
					_ = bar.Add(1)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit raw JSON results")
	cmd.Flags().StringVar(&url, "url", "", "page URL (used for platform detection)")
	cmd.Flags().StringVar(&company, "company", "", "company name for prompt context")
	cmd.Flags().StringVar(&position, "position", "", "position title for prompt context")
	cmd.Flags().StringVar(&platform, "platform", "", "override detected platform (greenhouse, lever, workday, icims, taleo)")

	return cmd
}

func readInput(path string) (*classifyInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var input classifyInput
	if err := json.Unmarshal(data, &input); err != nil {
		// Tolerate a bare field array with no context wrapper.
		var fields []model.FieldDescriptor
		if arrErr := json.Unmarshal(data, &fields); arrErr != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		input = classifyInput{Fields: fields}
	}

	return &input, nil
}

func overlayContext(ctx *model.Context, url, company, position, platform string) {
	if url != "" {
		ctx.URL = url
	}
	if company != "" {
		ctx.Company = company
	}
	if position != "" {
		ctx.Position = position
	}
	if platform != "" {
		ctx.Platform = model.PlatformType(platform)
	}
	if ctx.Platform == "" {
		ctx.Platform = model.DetectPlatform(ctx.URL)
	}
}

func printResults(path string, fields []model.FieldDescriptor, results []model.ClassificationResult) {
	fmt.Println(cli.TitleStyle.Render(path))
	for i, r := range results {
		label := fields[i].Label
		if label == "" {
			label = fields[i].Name
		}
		if label == "" {
			label = fields[i].DomID
		}

		tag := cli.MethodStyle(string(r.Method)).Render(string(r.Method))
		fmt.Printf("  %-30s %-20s %s %.2f\n",
			cli.BoldStyle.Render(label),
			r.Purpose,
			tag,
			r.Confidence)
	}
	fmt.Println()
}
