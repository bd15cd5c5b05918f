package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lukaszgryglicki/hyper4d/internal/hyper4d"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	humanOutput = false
	shapesVerbose = false
	frameRot = hyper4d.Rot4{}
	frameDegrees = false
	frameTicks = 0

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestShapesList(t *testing.T) {
	out, err := execute(t, "shapes")
	require.NoError(t, err)

	var rows []ShapeSummary
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 6)
	require.Equal(t, hyper4d.KeyTesseract, rows[0].Key)
	require.Equal(t, 16, rows[0].Vertices)
	require.Equal(t, 32, rows[0].Edges)
}

func TestShapesHuman(t *testing.T) {
	out, err := execute(t, "shapes", "--human")
	require.NoError(t, err)
	require.Contains(t, out, "Icositetrachoron (24-Cell)")
	require.Contains(t, out, "96 edges")
}

func TestShapesUnknown(t *testing.T) {
	_, err := execute(t, "shapes", "moebius")
	require.True(t, errors.Is(err, hyper4d.ErrShapeNotFound))
}

func TestFrameCommand(t *testing.T) {
	out, err := execute(t, "frame", "--shape", "tesseract", "--distance", "3", "--color", "heat")
	require.NoError(t, err)

	var f struct {
		Shape    string `json:"shape"`
		Vertices []struct {
			Pos [3]float64 `json:"pos"`
		} `json:"vertices"`
		Edges []json.RawMessage `json:"edges"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &f))
	require.Equal(t, "tesseract", f.Shape)
	require.Len(t, f.Vertices, 16)
	require.Len(t, f.Edges, 32)
	require.Equal(t, [3]float64{0.5, 0.5, 0.5}, f.Vertices[15].Pos)
}

func TestFrameCommandAngleFlags(t *testing.T) {
	var f struct {
		Vertices []struct {
			Pos [3]float64 `json:"pos"`
		} `json:"vertices"`
	}
	for _, args := range [][]string{
		{"--xy", "180", "--deg"},
		{"--xy", "3.141592653589793"},
	} {
		out, err := execute(t, append([]string{"frame", "--shape", "tesseract", "--distance", "3", "--w-source", "original"}, args...)...)
		require.NoError(t, err, args)
		require.NoError(t, json.Unmarshal([]byte(out), &f))
		require.Len(t, f.Vertices, 16)
		require.InDelta(t, -0.5, f.Vertices[15].Pos[0], 1e-9, args)
		require.InDelta(t, -0.5, f.Vertices[15].Pos[1], 1e-9, args)
		require.InDelta(t, 0.5, f.Vertices[15].Pos[2], 1e-9, args)
	}
}

func TestFrameCommandRejectsBadInput(t *testing.T) {
	_, err := execute(t, "frame", "--color", "sepia")
	require.ErrorIs(t, err, hyper4d.ErrUnknownColorMode)

	_, err = execute(t, "frame", "--color", "depth", "--distance", "0")
	require.ErrorIs(t, err, hyper4d.ErrInvalidDistance)
}

func TestConfigPath(t *testing.T) {
	t.Setenv("HYPER4D_CONFIG", "")
	require.Equal(t, defaultConfigPath, configPath(nil))
	t.Setenv("HYPER4D_CONFIG", filepath.Join("x", "y.yaml"))
	require.Equal(t, filepath.Join("x", "y.yaml"), configPath(nil))
	require.Equal(t, "a.yaml", configPath([]string{"a.yaml"}))
}
