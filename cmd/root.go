package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nhlemea",
	Short: "A CLI for Europe-friendly NHL game times",
	Long: `nhlemea filters a season's NHL schedule down to the games whose puck
drop lands in a European evening, converting New York times to Paris time and
rendering the result as a Markdown report or monthly calendar.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
