package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/katalvlaran/loopchain/pareto"
)

// StampLayout formats the default run stamp.
const StampLayout = "20060102_150405"

// CSVSink writes a frontier as CSV tables under Dir.
type CSVSink struct {
	Dir   string
	Stamp string           // file prefix; a timestamp when empty
	Now   func() time.Time // clock for the default stamp

	written []string
}

// NewCSVSink returns a sink writing into dir with a timestamp prefix.
func NewCSVSink(dir string) *CSVSink {
	return &CSVSink{Dir: dir, Now: time.Now}
}

// Files returns the paths written by the last Consume.
func (s *CSVSink) Files() []string { return append([]string(nil), s.written...) }

// Consume writes every table of f.
func (s *CSVSink) Consume(f pareto.Frontier) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	stamp := s.Stamp
	if stamp == "" {
		now := time.Now
		if s.Now != nil {
			now = s.Now
		}
		stamp = now().Format(StampLayout)
	}
	s.written = s.written[:0]

	tables := []struct {
		name string
		rows [][]string
	}{
		{"payoff", payoffRows(f.Payoff)},
		{"curve_cost_min", curveRows("epsilon_env", f.CostCurve)},
		{"curve_env_min", curveRows("epsilon_cost", f.EnvCurve)},
		{"dropped", droppedRows(f)},
	}
	for _, t := range tables {
		path := filepath.Join(s.Dir, stamp+"_"+t.name+".csv")
		if err := writeCSV(path, t.rows); err != nil {
			return err
		}
		s.written = append(s.written, path)
	}

	return nil
}

func writeCSV(path string, rows [][]string) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("report: close %s: %w", path, cerr))
		}
	}()

	w := csv.NewWriter(fh)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}

	return nil
}

func num(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }

func payoffRows(pt pareto.PayoffTable) [][]string {
	return [][]string{
		{"cost_min", "env_at_cost_min", "env_min", "cost_at_env_min"},
		{num(pt.CostMin), num(pt.EnvAtCostMin), num(pt.EnvMin), num(pt.CostAtEnvMin)},
	}
}

func curveRows(thresholdCol string, c pareto.Curve) [][]string {
	rows := [][]string{{"index", thresholdCol, "bound", "cost", "env"}}
	for _, p := range c.Points {
		rows = append(rows, []string{strconv.Itoa(p.Index), num(p.Threshold), num(p.Bound), num(p.Cost), num(p.Environmental)})
	}

	return rows
}

func droppedRows(f pareto.Frontier) [][]string {
	rows := [][]string{{"curve", "index", "threshold", "bound", "status", "reason"}}
	for _, c := range []pareto.Curve{f.CostCurve, f.EnvCurve} {
		for _, d := range c.Dropped {
			rows = append(rows, []string{c.Kind.String(), strconv.Itoa(d.Index), num(d.Threshold), num(d.Bound), d.Status.String(), d.Reason})
		}
	}

	return rows
}
