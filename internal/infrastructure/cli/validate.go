package cli

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/skillmap/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var validateJSON bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Audit the skill catalog for structural errors",
	Long: `Validate checks the catalog document shape against its schema, rebuilds
the prerequisite graph, and audits phase ordering across every edge.
Findings are catalog data-quality incidents for the content curators, not
user errors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, _ := os.Getwd()
		services, err := wiring.BuildAppServices(cwd)
		if err != nil {
			return MapError(err)
		}

		report, err := services.Catalog.Validate()
		if err != nil {
			return MapError(err)
		}

		if validateJSON {
			return printJSON(report)
		}

		fmt.Printf("Skills: %d  Edges: %d  Roles: %d\n", report.SkillCount, report.EdgeCount, report.RoleCount)
		for _, e := range report.SchemaErrors {
			fmt.Printf("  schema: %s\n", e)
		}
		for _, e := range report.GraphErrors {
			fmt.Printf("  graph:  %s\n", e)
		}

		if !report.Valid {
			return &CLIError{
				Message:  "catalog validation failed",
				Hint:     "Fix the findings above in catalog.yaml",
				ExitCode: ExitCatalogError,
			}
		}

		fmt.Println("Catalog is valid.")
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output in JSON format")
	RootCmd.AddCommand(validateCmd)
}
