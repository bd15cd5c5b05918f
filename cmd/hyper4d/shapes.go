package main

import (
	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/hyper4d/internal/hyper4d"
)

// ShapeSummary is one row of the shapes listing.
type ShapeSummary struct {
	Key         string             `json:"key"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Complexity  hyper4d.Complexity `json:"complexity"`
	Vertices    int                `json:"vertices"`
	Edges       int                `json:"edges"`
}

var shapesVerbose bool

var shapesCmd = &cobra.Command{
	Use:   "shapes [key]",
	Short: "List the shape catalog, or dump one shape",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShapes,
}

func init() {
	shapesCmd.Flags().BoolVar(&shapesVerbose, "verbose", false, "Include vertices and edges when dumping one shape")
	rootCmd.AddCommand(shapesCmd)
}

func runShapes(cmd *cobra.Command, args []string) error {
	cat := hyper4d.DefaultCatalog()
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		s, err := cat.Lookup(args[0])
		if err != nil {
			return err
		}
		if humanOutput {
			outputHuman(out, "%s\n%s\n", s, s.Description)
			return nil
		}
		if shapesVerbose {
			return outputJSON(out, s)
		}
		return outputJSON(out, summarize(s))
	}

	keys := cat.Keys()
	rows := make([]ShapeSummary, 0, len(keys))
	for _, k := range keys {
		s, _ := cat.Lookup(k)
		rows = append(rows, summarize(s))
	}
	if humanOutput {
		for _, r := range rows {
			outputHuman(out, "%-17s %-27s %4d vertices %5d edges  %s\n", r.Key, r.Name, r.Vertices, r.Edges, r.Complexity)
		}
		return nil
	}
	return outputJSON(out, rows)
}

func summarize(s *hyper4d.Shape) ShapeSummary {
	return ShapeSummary{
		Key:         s.Key,
		Name:        s.Name,
		Description: s.Description,
		Complexity:  s.Complexity,
		Vertices:    len(s.Vertices),
		Edges:       len(s.Edges),
	}
}
