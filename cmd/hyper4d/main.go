// Package main provides the hyper4d CLI entry point.
package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/hyper4d/internal/hyper4d"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// ExitError is the process status when a command fails
const ExitError = 1

func main() {
	// .env is optional
	_ = godotenv.Load()

	hyper4d.Debug = os.Getenv("DEBUG") != ""
	hyper4d.PNG = os.Getenv("PNG") != ""
	if os.Getenv("PROFILE") != "" {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hyper4d",
	Short: "Project and render 4D polytopes and 4-manifolds",
	Long: `hyper4d rotates 4D shapes through the six coordinate planes, projects them
into 3D by perspective division along W and colors them by their hidden W
coordinate.

Commands output JSON by default so frames can be fed to any renderer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
