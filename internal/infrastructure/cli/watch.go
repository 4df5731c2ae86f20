package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/felixgeelhaar/skillmap/internal/infrastructure/watch"
	"github.com/felixgeelhaar/skillmap/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the roadmap when catalog or profile change",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, _ := os.Getwd()

		w, err := watch.New(watchDebounce, func(changed []string) {
			fmt.Printf("Changed: %s - regenerating\n", strings.Join(changed, ", "))
			// Rebuild services per change so config edits take effect too.
			services, err := wiring.BuildAppServices(cwd)
			if err != nil {
				fmt.Fprintf(os.Stderr, "regenerate failed: %v\n", MapError(err))
				return
			}
			result, err := services.Roadmap.Regenerate()
			if err != nil {
				fmt.Fprintf(os.Stderr, "regenerate failed: %v\n", MapError(err))
				return
			}
			fmt.Printf("Roadmap updated: %d modules, completion %s\n",
				len(result.Roadmap.Modules),
				result.Roadmap.Projection.ProjectedCompletion.Format("2006-01-02"))
		})
		if err != nil {
			return err
		}

		if err := w.Watch(cwd); err != nil {
			return MapError(err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Println("Watching .skillmap/ for changes. Ctrl-C to stop.")
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "coalesce window for filesystem events")
	RootCmd.AddCommand(watchCmd)
}
