package cli

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/skillmap/internal/infrastructure/storage"
	"github.com/felixgeelhaar/skillmap/internal/infrastructure/wiring"
	"github.com/felixgeelhaar/skillmap/pkg/domain/catalog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the skill catalog",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a catalog file into the workspace",
	Long: `Import decodes the given YAML catalog, builds the prerequisite graph to
catch structural errors, and installs it as the workspace catalog. A
catalog that fails validation is never installed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return NewCLIError("failed to read catalog file", "Check the path and permissions", err)
		}

		var doc catalog.Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return newCatalogIncident("catalog file is not valid YAML", "Fix the document syntax and retry", err)
		}

		if _, err := catalog.BuildGraph(doc.Skills, doc.Prerequisites); err != nil {
			return MapError(err)
		}

		cwd, _ := os.Getwd()
		repo := storage.NewFilesystemRepository(cwd)
		if err := repo.SaveCatalog(&doc); err != nil {
			return MapError(err)
		}

		fmt.Printf("Imported catalog: %d skills, %d prerequisites, %d roles\n",
			len(doc.Skills), len(doc.Prerequisites), len(doc.Roles))
		return nil
	},
}

var catalogRolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the roles defined in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, _ := os.Getwd()
		services, err := wiring.BuildAppServices(cwd)
		if err != nil {
			return MapError(err)
		}

		_, doc, err := services.Catalog.LoadGraph()
		if err != nil {
			return MapError(err)
		}

		for _, role := range doc.Roles {
			fmt.Printf("%-20s %s (%d skills)\n", role.ID, role.Name, len(role.RequiredSkillIDs))
		}
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogRolesCmd)
	RootCmd.AddCommand(catalogCmd)
}
