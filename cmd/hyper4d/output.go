package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string.
func outputHuman(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
}
