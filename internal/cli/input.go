package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// maxLineBytes bounds one input line; a whole screen may arrive as one CSV row.
const maxLineBytes = 64 << 20

// ErrBadPValue is returned for tokens that are not floating-point numbers.
var ErrBadPValue = errors.New("cli: invalid p-value")

// isSeparator splits on whitespace and commas.
func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// parseArgs reads p-values from command-line arguments. An argument may hold
// several comma-separated values.
func parseArgs(args []string) ([]float64, error) {
	var out []float64
	for i, arg := range args {
		for _, tok := range strings.FieldsFunc(arg, isSeparator) {
			p, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %q: %w", i+1, tok, ErrBadPValue)
			}
			out = append(out, p)
		}
	}

	return out, nil
}

// readPValues reads whitespace/comma separated p-values from r.
// Blank lines and lines starting with '#' are skipped.
func readPValues(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		for _, tok := range strings.FieldsFunc(text, isSeparator) {
			p, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", line, tok, ErrBadPValue)
			}
			out = append(out, p)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading p-values: %w", err)
	}

	return out, nil
}
