package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/hyper4d/internal/hyper4d"
)

var (
	frameShape    string
	frameRot      hyper4d.Rot4
	frameDegrees  bool
	frameDistance float64
	frameColor    string
	frameWSource  string
	frameTicks    int
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Assemble one projected frame and print it",
	Long: `Rotate the selected shape, project it into 3D and print the vertex and edge
lists a renderer needs. --ticks advances the auto-rotation that many frames first.`,
	Args: cobra.NoArgs,
	RunE: runFrame,
}

func init() {
	f := frameCmd.Flags()
	f.StringVar(&frameShape, "shape", hyper4d.KeyTesseract, "Catalog key of the shape")
	f.Float64Var(&frameRot.XY, "xy", 0, "Rotation in the XY plane")
	f.Float64Var(&frameRot.XZ, "xz", 0, "Rotation in the XZ plane")
	f.Float64Var(&frameRot.XW, "xw", 0, "Rotation in the XW plane")
	f.Float64Var(&frameRot.YZ, "yz", 0, "Rotation in the YZ plane")
	f.Float64Var(&frameRot.YW, "yw", 0, "Rotation in the YW plane")
	f.Float64Var(&frameRot.ZW, "zw", 0, "Rotation in the ZW plane")
	f.BoolVar(&frameDegrees, "deg", false, "Interpret rotation angles as degrees")
	f.Float64Var(&frameDistance, "distance", hyper4d.DefaultDistance, "4D camera distance along W")
	f.StringVar(&frameColor, "color", hyper4d.ColorDepth.String(), "Color mode: solid, depth or heat")
	f.StringVar(&frameWSource, "w-source", hyper4d.WRotated.String(), "W used for coloring: rotated or original")
	f.IntVar(&frameTicks, "ticks", 0, "Auto-rotation frames to advance before assembling")
	rootCmd.AddCommand(frameCmd)
}

func runFrame(cmd *cobra.Command, args []string) error {
	shape, err := hyper4d.DefaultCatalog().Lookup(frameShape)
	if err != nil {
		return err
	}
	cfg := hyper4d.DefaultFrameConfig()
	cfg.Distance = frameDistance
	if cfg.Color, err = hyper4d.ParseColorMode(frameColor); err != nil {
		return err
	}
	if cfg.WSource, err = hyper4d.ParseWSource(frameWSource); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	rot := frameRot
	if frameDegrees {
		rot = hyper4d.Rot4Deg(frameRot).Radians()
	}
	anim := hyper4d.NewAnimator(rot, true)
	for i := 0; i < frameTicks; i++ {
		rot = anim.Tick()
	}

	frame := hyper4d.AssembleParallel(shape, rot, cfg, 0)
	out := cmd.OutOrStdout()
	if humanOutput {
		outputHuman(out, "%s rotated by %+v\n", shape.Name, rot)
		for i, v := range frame.Vertices {
			outputHuman(out, "v%-4d (%8.4f, %8.4f, %8.4f)  w=%7.4f  %s\n", i, v.Pos[0], v.Pos[1], v.Pos[2], v.W, v.Color.Hex())
		}
		for _, e := range frame.Edges {
			outputHuman(out, "e%d-%d  %s\n", e.A, e.B, e.Color.Hex())
		}
		return nil
	}
	if err := outputJSON(out, frame); err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	return nil
}
