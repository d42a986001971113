package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andresmejia3/frames/internal/frames"
	"github.com/andresmejia3/frames/internal/types"
	"github.com/fxamacker/cbor/v2"
)

// --- 1. Error Reporting ---

// ShowError prints a formatted error box to w without exiting.
func ShowError(w io.Writer, context string, err error) {
	fmt.Fprintf(w, "\n---------------------------------------------------------\n")
	fmt.Fprintf(w, "🚨 FRAMES ERROR: %s\n", context)
	if err != nil {
		fmt.Fprintf(w, "DETAILS: %v\n", err)
	}
	fmt.Fprintf(w, "---------------------------------------------------------\n")
}

// --- 2. Frame Formatting & Export ---

// ErrUnknownFormat is returned by Encode for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the names accepted by Encode.
var Formats = []string{"json", "cbor"}

// FormatWords renders a frame as space-separated, zero-padded hex words.
func FormatWords(f frames.Frame) string {
	parts := make([]string, len(f))
	for i, w := range f {
		parts[i] = fmt.Sprintf("0x%08x", w)
	}
	return strings.Join(parts, " ")
}

// Records returns the whole table in order.
func Records() []types.FrameRecord {
	recs := make([]types.FrameRecord, 0, frames.Count())
	for e := range frames.Entries() {
		recs = append(recs, types.NewFrameRecord(e))
	}
	return recs
}

// Encode writes recs to w as "json" (indented) or "cbor".
func Encode(w io.Writer, format string, recs []types.FrameRecord) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case "cbor":
		// Core deterministic encoding keeps exports byte-stable across runs
		em, err := cbor.CoreDetEncOptions().EncMode()
		if err != nil {
			return err
		}
		return em.NewEncoder(w).Encode(recs)
	default:
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, format, strings.Join(Formats, ", "))
	}
}
