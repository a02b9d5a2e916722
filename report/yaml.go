package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/loopchain/pareto"
)

// YAMLSink encodes a frontier as one YAML document to W.
type YAMLSink struct {
	W io.Writer
}

// Consume encodes f.
func (s YAMLSink) Consume(f pareto.Frontier) error {
	enc := yaml.NewEncoder(s.W)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("report: yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: yaml: %w", err)
	}

	return nil
}

// Multi fans one frontier out to several sinks, stopping at the first error.
type Multi []pareto.Sink

// Consume hands f to every sink in order.
func (m Multi) Consume(f pareto.Frontier) error {
	for _, s := range m {
		if err := s.Consume(f); err != nil {
			return err
		}
	}

	return nil
}
