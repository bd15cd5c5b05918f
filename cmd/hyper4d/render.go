package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/hyper4d/internal/hyper4d"
)

const defaultConfigPath = "scenes/config.yaml"

var renderCmd = &cobra.Command{
	Use:   "render [config.yaml]",
	Short: "Render an auto-rotating animation to GIF (or PNG frames with PNG=1)",
	Long: `Render reads a YAML session config, animates the shape and writes an
animated GIF. The config path defaults to $HYPER4D_CONFIG, then ` + defaultConfigPath + `.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath(args)
		return hyper4d.Run(path)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func configPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if p := os.Getenv("HYPER4D_CONFIG"); p != "" {
		return p
	}
	return defaultConfigPath
}
