// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/repolens/repolens/internal/contract"
	"github.com/repolens/repolens/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteSpec prints a full spec document using the configured output format.
func (ow *OutWriter) WriteSpec(spec *schema.SpecDocument, cfg *contract.Config, duration time.Duration, refined bool) error {
	return PrintSpecDocument(spec, cfg, duration, refined)
}

// WriteHistory prints history metrics using the configured output format.
func (ow *OutWriter) WriteHistory(metrics *schema.HistoryMetrics, cfg *contract.Config, duration time.Duration, refined bool) error {
	return PrintHistoryMetrics(metrics, cfg, duration, refined)
}

// WriteRunStatus prints run store status using the configured output format.
func (ow *OutWriter) WriteRunStatus(status schema.RunStatus, cfg *contract.Config) error {
	return PrintRunStatus(status, cfg)
}

// WriteRuns prints recorded runs using the configured output format.
func (ow *OutWriter) WriteRuns(runs []schema.RunRecord, cfg *contract.Config) error {
	return PrintRuns(runs, cfg)
}
