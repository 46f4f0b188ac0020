package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/goplan/internal/editor"
	"github.com/philipparndt/goplan/pkg/geometry"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted sketching session and print the resulting plan",
	Long: `Drives the sketching engine through a fixed pointer-event script:
an initial wall, a crossing wall that splits it into a T-junction, a
too-sharp wall that gets rejected, and an undo/redo round trip.`,
	Run: runDemo,
}

var (
	demoGridSize   float64
	demoSnapRadius float64
	demoVerbose    bool
)

func init() {
	demoCmd.Flags().Float64Var(&demoGridSize, "grid-size", geometry.DefaultGridSize, "snap grid spacing")
	demoCmd.Flags().Float64Var(&demoSnapRadius, "snap-radius", geometry.DefaultSnapRadius, "vertex snap capture distance")
	demoCmd.Flags().BoolVarP(&demoVerbose, "verbose", "v", false, "log engine events")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) {
	cfg := editor.DefaultConfig()
	cfg.GridSize = demoGridSize
	cfg.SnapRadius = demoSnapRadius

	opts := []editor.Option{editor.WithConfig(cfg)}
	if demoVerbose {
		opts = append(opts, editor.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}
	e := editor.New(opts...)

	click := func(x, z float64) {
		p := geometry.NewVector3(x, 0, z)
		e.OnPointerClick(&p)
	}
	move := func(x, z float64) {
		p := geometry.NewVector3(x, 0, z)
		e.OnPointerMove(&p)
	}

	// A first wall along the x axis
	click(0, 0)
	move(4, 0)
	click(4, 0)

	// A crossing wall: ends on the first wall's interior, splitting it
	click(2, -2)
	move(2, 2)
	click(2, 2)

	// A too-sharp wall folding back from the (4,0) endpoint: the preview
	// blocks and the click is ignored
	click(4, 0)
	move(3, 0.2)
	if s := e.Session(); s.Blocked {
		fmt.Println("placement blocked:", formatAngle(s))
	}
	click(3, 0.2)
	e.OnExitDrawingMode()

	// History round trip
	e.Undo()
	e.Redo()

	walls := e.Walls()
	fmt.Printf("\nPlan: %d walls, total length %.2f\n", len(walls), walls.TotalLength())
	for _, w := range walls {
		fmt.Printf("  (%.2f, %.2f) - (%.2f, %.2f)  length %.2f\n",
			w.Start.X, w.Start.Z, w.End.X, w.End.Z, w.Length())
	}
}

func formatAngle(s editor.Session) string {
	if s.AngleDegrees == nil {
		return "crossing an existing wall"
	}
	return fmt.Sprintf("%.1f degrees is below the minimum", *s.AngleDegrees)
}
