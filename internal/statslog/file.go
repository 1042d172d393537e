package statslog

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FileSink appends observations to a text file, one "<point>, <response>, <weight>" per line.
type FileSink struct {
	path string
	f    *os.File
}

// OpenFile opens path for appending, creating it if needed.
func OpenFile(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open stats file: %w", err)
	}
	return &FileSink{path: path, f: f}, nil
}

func (s *FileSink) Append(obs Observation) error {
	if _, err := s.f.WriteString(obs.String() + "\n"); err != nil {
		return fmt.Errorf("append to %s: %w", s.path, err)
	}
	return nil
}

func (s *FileSink) Close() error { return s.f.Close() }

// ReadFile parses a statistics file written by FileSink. Blank lines are skipped.
func ReadFile(path string) ([]Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []Observation
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		obs, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		out = append(out, obs)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseLine(line string) (Observation, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return Observation{}, fmt.Errorf("expected 3 fields, got %d", len(parts))
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Observation{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		nums[i] = n
	}
	return Observation{PointValue: nums[0], RespondedValue: nums[1], Weight: nums[2]}, nil
}
