package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felixgeelhaar/skillmap/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var (
	generateJSON  bool
	generateFresh bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the learning roadmap from catalog and profile",
	Long: `Generate computes the minimal ordered set of modules needed to reach the
target role, sequenced by prerequisites, grouped into phases, with a
projected completion date.

When a roadmap already exists, module progress is preserved across the
regeneration. Use --fresh to discard tracked progress instead.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cwd, _ := os.Getwd()
	services, err := wiring.BuildAppServices(cwd)
	if err != nil {
		return MapError(err)
	}

	previous, err := services.Repo.LoadRoadmap()
	if err != nil {
		return MapError(err)
	}

	if previous == nil || generateFresh {
		r, err := services.Roadmap.Generate()
		if err != nil {
			return MapError(err)
		}
		if generateJSON {
			return printJSON(r)
		}
		fmt.Print(renderRoadmap(r, nil))
		return nil
	}

	result, err := services.Roadmap.Regenerate()
	if err != nil {
		return MapError(err)
	}
	if generateJSON {
		return printJSON(result)
	}

	fmt.Print(renderRoadmap(result.Roadmap, nil))
	if len(result.Preserved) > 0 {
		fmt.Printf("Preserved progress on %d module(s)\n", len(result.Preserved))
	}
	if len(result.Added) > 0 {
		fmt.Printf("Added: %v\n", result.Added)
	}
	if len(result.Dropped) > 0 {
		fmt.Printf("Dropped: %v\n", result.Dropped)
	}
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func init() {
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "output in JSON format")
	generateCmd.Flags().BoolVar(&generateFresh, "fresh", false, "discard tracked progress and regenerate from scratch")
	RootCmd.AddCommand(generateCmd)
}
