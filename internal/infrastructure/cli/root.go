package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "skillmap",
	Version: Version,
	Short:   "Generate dependency-aware learning roadmaps",
	Long: `Skillmap turns a skill catalog and your current abilities into an
ordered learning roadmap. It answers:
1. What do I still need to learn for my target role?
2. In what order, respecting prerequisites?
3. How long will it take at my weekly pace?`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}
