// =============================================================================
// Sales Analytics - Sales File Reader
// =============================================================================
//
// This module reads the raw sales data file into memory. Input files come
// from several legacy export tools, so the encoding is not guaranteed: the
// reader tries UTF-8 first, then Latin-1, then Windows-1252, and uses the
// first decode that succeeds.
//
// The reader returns data lines only: the single header line and any blank
// lines are dropped here, so the parser always sees candidate records. The
// whole file is materialized in memory before parsing begins; input batches
// are expected to fit comfortably in RAM.
//
// =============================================================================

package salesfile

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// ErrUnreadable is returned when the file exists but no supported encoding
// could decode it. Callers treat this as fatal for the run.
var ErrUnreadable = fmt.Errorf("no supported encoding could decode file")

// fallbackEncodings is the prioritized decode order for non-UTF-8 files.
var fallbackEncodings = []encoding.Encoding{
	charmap.ISO8859_1,
	charmap.Windows1252,
}

// ReadSalesData reads a sales data file and returns its data lines.
//
// PARAMETERS:
//   - path: The path to the sales data file.
//
// RETURNS:
//   - The non-blank lines after the header, trimmed, in file order.
//   - An error if the file is absent or cannot be decoded.
func ReadSalesData(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sales data file: %w", err)
	}

	text, err := decodeWithFallback(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreadable, path)
	}

	return splitDataLines(text), nil
}

// decodeWithFallback decodes raw bytes using the documented fallback order:
// UTF-8, then Latin-1, then Windows-1252. The first successful decode wins.
func decodeWithFallback(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}

	for _, enc := range fallbackEncodings {
		decoded, err := enc.NewDecoder().Bytes(raw)
		if err != nil {
			continue
		}
		return string(decoded), nil
	}

	return "", ErrUnreadable
}

// splitDataLines splits decoded text into trimmed, non-blank lines and drops
// the first of them (the column header line).
func splitDataLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return nil
	}
	return lines[1:]
}
