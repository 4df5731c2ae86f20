package cli

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/skillmap/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Track module progress on the roadmap",
}

// progressEventCmd builds a subcommand that applies one status event.
func progressEventCmd(use, short, event string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <skill-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, _ := os.Getwd()
			services, err := wiring.BuildAppServices(cwd)
			if err != nil {
				return MapError(err)
			}

			status, err := services.Progress.Apply(args[0], event)
			if err != nil {
				return MapError(err)
			}

			fmt.Printf("%s is now %s\n", args[0], status)
			return nil
		},
	}
}

var progressStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Summarize roadmap progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, _ := os.Getwd()
		services, err := wiring.BuildAppServices(cwd)
		if err != nil {
			return MapError(err)
		}

		sum, err := services.Progress.Summarize()
		if err != nil {
			return MapError(err)
		}

		fmt.Println("Roadmap Progress")
		fmt.Println("----------------")
		fmt.Printf("Modules:     %d total, %d done, %d in progress, %d pending, %d skipped\n",
			sum.Total, sum.Completed, sum.InProgress, sum.Pending, sum.Skipped)
		fmt.Printf("Hours:       %.1f completed, %.1f remaining\n", sum.CompletedHours, sum.RemainingHours)
		fmt.Printf("Completion:  %.1f%%\n", sum.CompletionRate()*100)
		return nil
	},
}

func init() {
	progressCmd.AddCommand(progressEventCmd("start", "Start working on a module", "start"))
	progressCmd.AddCommand(progressEventCmd("complete", "Mark a module completed", "complete"))
	progressCmd.AddCommand(progressEventCmd("stop", "Put an in-progress module back to pending", "stop"))
	progressCmd.AddCommand(progressEventCmd("skip", "Skip a module", "skip"))
	progressCmd.AddCommand(progressEventCmd("reopen", "Reopen a finished module", "reopen"))
	progressCmd.AddCommand(progressStatusCmd)
	RootCmd.AddCommand(progressCmd)
}
