package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readNAV parses newline-separated NAV values. Blank lines and '#' comments
// are skipped; values must be positive finite numbers.
func readNAV(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	var nav []float64
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse nav value %q: %w", line, text, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("line %d: nav values must be positive, got %v", line, v)
		}
		nav = append(nav, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read nav: %w", err)
	}
	return nav, nil
}
