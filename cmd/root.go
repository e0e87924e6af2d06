package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "learngl",
	Short: "A small OpenGL renderer: a triangle, a textured quad and lit cubes",
	Long: `learngl steps through a few classic OpenGL scenes in one window.

Tab cycles scenes, Space toggles wireframe, WASD and the mouse fly the
camera and Escape quits. Keys can be rebound in the settings file.`,
	RunE:         Run,
	SilenceUsage: true,
}

func init() {
	addRunFlags(rootCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
