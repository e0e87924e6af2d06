package cmd

import (
	"fmt"

	"github.com/ThatOtherAndrew/learngl/internal/scene"
	"github.com/spf13/cobra"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List the scenes Tab cycles through",
	Args:  cobra.NoArgs,
	Run:   listScenes,
}

func init() {
	rootCmd.AddCommand(scenesCmd)
}

func listScenes(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Scenes:")
	for i, s := range scene.Catalogue {
		fmt.Fprintf(out, "  %d  %-10s %s\n", i, s.Name, s.Description)
	}
}
