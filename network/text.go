package network

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

const (
	fieldSeparator = ","
	recordFields   = 3
)

// ParseText reads the line-oriented format:
//
//	Denver, Omaha, Chicago
//	Denver, Omaha, 4
//	Omaha, Chicago, 4
//
// The first non-blank line lists the cities. Every further line is a
// "from, to, cost" triple. Fields are trimmed. Blank lines are ignored and
// lines that do not have exactly three fields are skipped with a warning.
// A cost that is not a finite, non-negative number is an error.
func ParseText(r io.Reader, logger *slog.Logger) (Network, error) {
	logger = orDiscard(logger)
	sc := bufio.NewScanner(r)

	var (
		cities  []string
		records []Record
		header  bool
		lineNo  int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		// 1) Header: comma-separated city list.
		if !header {
			header = true
			cities = strings.Split(line, fieldSeparator)
			continue
		}

		// 2) Route triple.
		parts := strings.Split(line, fieldSeparator)
		if len(parts) != recordFields {
			logger.Warn("skipping malformed route", "line", lineNo, "fields", len(parts))
			continue
		}
		weight, err := parseWeight(parts[2])
		if err != nil {
			return Network{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		rec, err := Record{Source: parts[0], Destination: parts[1], Weight: weight}.validate()
		if err != nil {
			return Network{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return Network{}, fmt.Errorf("reading network: %w", err)
	}

	return normalize(cities, records, "text network")
}

// parseWeight parses a trimmed decimal cost.
func parseWeight(s string) (float64, error) {
	s = strings.TrimSpace(s)
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("%w: %q", ErrBadWeight, s)
	}

	return w, nil
}

// orDiscard returns logger, or a logger that drops everything if it is nil.
func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return logger
}
