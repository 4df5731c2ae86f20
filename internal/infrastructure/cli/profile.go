package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/felixgeelhaar/skillmap/internal/infrastructure/config"
	"github.com/felixgeelhaar/skillmap/internal/infrastructure/storage"
	"github.com/felixgeelhaar/skillmap/pkg/domain/profile"
	"github.com/spf13/cobra"
)

var (
	profileRole        string
	profileWeeklyHours int
	profileKnown       []string
	profileForget      []string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the learner profile",
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set target role, weekly hours, and known skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, _ := os.Getwd()
		repo := storage.NewFilesystemRepository(cwd)

		p, err := repo.LoadProfile()
		if err != nil {
			return MapError(err)
		}
		if p == nil {
			hours := profileWeeklyHours
			if hours == 0 {
				cfg, err := config.LoadEstimationConfig(cwd)
				if err != nil {
					return MapError(err)
				}
				hours = cfg.WeeklyHoursDefault()
			}
			p = profile.New(profileRole, hours, profileKnown)
		} else {
			if profileRole != "" {
				p.SetTargetRole(profileRole)
			}
			if profileWeeklyHours > 0 {
				p.SetWeeklyHours(profileWeeklyHours)
			}
			if len(profileKnown) > 0 {
				p.AddKnownSkills(profileKnown...)
			}
		}
		if len(profileForget) > 0 {
			p.RemoveKnownSkills(profileForget...)
		}

		if err := p.Validate(); err != nil {
			return NewCLIError("invalid profile", "Provide --role and a positive --weekly-hours", err)
		}

		if err := repo.SaveProfile(p); err != nil {
			return MapError(err)
		}

		fmt.Printf("Profile saved: role=%s weekly-hours=%d known=%d\n",
			p.TargetRole, p.WeeklyHours, len(p.KnownSkillIDs))
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the learner profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, _ := os.Getwd()
		repo := storage.NewFilesystemRepository(cwd)

		p, err := repo.LoadProfile()
		if err != nil {
			return MapError(err)
		}
		if p == nil {
			return NewCLIError("no profile found", "Run 'skillmap profile set' first", nil)
		}

		fmt.Printf("Target role:   %s\n", p.TargetRole)
		fmt.Printf("Weekly hours:  %d\n", p.WeeklyHours)
		fmt.Printf("Known skills:  %s\n", strings.Join(p.KnownSkillIDs, ", "))
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileRole, "role", "", "target role id")
	profileSetCmd.Flags().IntVar(&profileWeeklyHours, "weekly-hours", 0, "hours per week committed to learning")
	profileSetCmd.Flags().StringSliceVar(&profileKnown, "known", nil, "skill ids already known (skip list)")
	profileSetCmd.Flags().StringSliceVar(&profileForget, "forget", nil, "skill ids to remove from the skip list")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	RootCmd.AddCommand(profileCmd)
}
