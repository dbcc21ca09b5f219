// Package workload reads process sets from CSV or YAML files.
package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	yaml "github.com/goccy/go-yaml"

	"procsim/internal/sched"
)

// ErrMalformed is returned for rows or documents that cannot be turned into processes.
var ErrMalformed = errors.New("malformed workload")

// Load reads the file at path. Files ending in .yml or .yaml are parsed as YAML, anything
// else as CSV. The result is validated with sched.Validate.
func Load(path string) ([]sched.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workload: %w", err)
	}
	defer f.Close()

	var procs []sched.Process
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		procs, err = ReadYAML(f)
	default:
		procs, err = ReadCSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := sched.Validate(procs); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return procs, nil
}

// ReadCSV parses rows of name,arrival,burst. A first row whose arrival column is not a number
// is treated as a header. Lines starting with # are ignored.
func ReadCSV(r io.Reader) ([]sched.Process, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrMalformed, err)
	}

	procs := make([]sched.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want name,arrival,burst", ErrMalformed, i+1, len(row))
		}
		arrival, errA := strconv.Atoi(strings.TrimSpace(row[1]))
		burst, errB := strconv.Atoi(strings.TrimSpace(row[2]))
		if i == 0 && errA != nil {
			continue // header
		}
		if errA != nil || errB != nil {
			return nil, fmt.Errorf("%w: row %d: arrival and burst must be integers", ErrMalformed, i+1)
		}
		procs = append(procs, sched.Process{
			Name:    strings.TrimSpace(row[0]),
			Arrival: arrival,
			Burst:   burst,
		})
	}
	return procs, nil
}

type document struct {
	Processes []sched.Process `yaml:"processes"`
}

// ReadYAML parses a document of the form
//
//	processes:
//	  - {name: P1, arrival: 0, burst: 3}
func ReadYAML(r io.Reader) ([]sched.Process, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return doc.Processes, nil
}
