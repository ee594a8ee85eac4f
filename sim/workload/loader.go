// Package workload loads process tables for the simulator, from the
// ';'-delimited text format or from a YAML workload spec. Loaders validate
// records and hand the core a list pre-sorted ascending by arrival time,
// with ties kept in input order.
package workload

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mlq-sim/mlq-sim/sim"
)

// LoadProcessFile reads a delimited process table from path. Each data line
// has the form
//
//	id;burst;arrival;queue;priority
//
// Lines starting with '#' and blank lines are skipped. Malformed lines are
// logged with a warning and dropped; they never reach the core.
func LoadProcessFile(path string) ([]*sim.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open process file: %w", err)
	}
	defer f.Close()

	var procs []*sim.Process
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := ParseLine(line)
		if err != nil {
			logrus.Warnf("%s:%d: skipping malformed line: %v", path, lineNo, err)
			continue
		}
		procs = append(procs, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read process file: %w", err)
	}

	SortByArrival(procs)
	return procs, nil
}

// ParseLine parses a single ';'-delimited process record.
func ParseLine(line string) (*sim.Process, error) {
	parts := strings.Split(line, ";")
	if len(parts) != 5 {
		return nil, fmt.Errorf("expected 5 fields, got %d", len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	burst, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("burst time %q: %w", parts[1], err)
	}
	arrival, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("arrival time %q: %w", parts[2], err)
	}
	queue, err := strconv.Atoi(parts[3])
	if err != nil {
		return nil, fmt.Errorf("queue %q: %w", parts[3], err)
	}
	priority, err := strconv.Atoi(parts[4])
	if err != nil {
		return nil, fmt.Errorf("priority %q: %w", parts[4], err)
	}

	p := sim.NewProcess(parts[0], burst, arrival, queue, priority)
	if err := ValidateProcess(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ValidateProcess enforces the input record contract: a non-empty identifier,
// a positive burst, a non-negative arrival, and a queue assignment in 1..3.
func ValidateProcess(p *sim.Process) error {
	if p.ID == "" {
		return fmt.Errorf("empty process identifier")
	}
	if p.BurstTime <= 0 {
		return fmt.Errorf("process %s: burst time must be positive, got %d", p.ID, p.BurstTime)
	}
	if p.ArrivalTime < 0 {
		return fmt.Errorf("process %s: arrival time must be non-negative, got %d", p.ID, p.ArrivalTime)
	}
	if p.Queue < 1 || p.Queue > 3 {
		return fmt.Errorf("process %s: queue must be 1, 2 or 3, got %d", p.ID, p.Queue)
	}
	return nil
}

// SortByArrival sorts processes ascending by arrival time, keeping input
// order among equal arrival times.
func SortByArrival(procs []*sim.Process) {
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].ArrivalTime < procs[j].ArrivalTime
	})
}
