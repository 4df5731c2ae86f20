package cli

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/skillmap/internal/infrastructure/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a skillmap workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, _ := os.Getwd()
		repo := storage.NewFilesystemRepository(cwd)

		if err := repo.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize workspace: %w", err)
		}

		fmt.Println("Initialized skillmap workspace in .skillmap/")
		fmt.Println("Next: add a catalog.yaml, then run 'skillmap profile set'")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
