package cli

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/skillmap/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current roadmap",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, _ := os.Getwd()
		services, err := wiring.BuildAppServices(cwd)
		if err != nil {
			return MapError(err)
		}

		r, err := services.Roadmap.Current()
		if err != nil {
			return MapError(err)
		}

		if showJSON {
			return printJSON(r)
		}

		state, err := services.Repo.LoadState()
		if err != nil {
			return MapError(err)
		}
		fmt.Print(renderRoadmap(r, state))
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output in JSON format")
	RootCmd.AddCommand(showCmd)
}
