package hyper4d

import "encoding"

var (
	Debug = false // set to true for verbose statistics output
	PNG   = false // set to true to save a PNG sequence instead of an animated GIF
	// Compile time checks for types that round-trip through YAML/JSON as text
	_ encoding.TextMarshaler   = ColorMode(0)
	_ encoding.TextUnmarshaler = (*ColorMode)(nil)
	_ encoding.TextMarshaler   = WSource(0)
	_ encoding.TextUnmarshaler = (*WSource)(nil)
	_ encoding.TextMarshaler   = Complexity(0)
	_ encoding.TextUnmarshaler = (*Complexity)(nil)
	_ encoding.TextMarshaler   = Color{}
)
