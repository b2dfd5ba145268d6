// Command composite runs Tsai-Wu failure checks on composite materials,
// either for a directly specified stress state or for beam loads on a
// thin-walled hollow box section.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "composite",
	Short:         "Tsai-Wu failure analysis for composite materials",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
