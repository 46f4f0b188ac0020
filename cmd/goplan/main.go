package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goplan",
	Short: "Interactive wall-sketching engine for floor plans",
	Long: `goplan is the drawing core of a floor-plan sketcher. Walls are drawn as
straight centerlines on a horizontal plane with grid and vertex snapping,
sharp-corner rejection, crossing rejection, and automatic T-junction
splitting. The engine is a library; this binary exposes a scripted demo
and version information.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
