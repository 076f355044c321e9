package centrality

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/matchnet/matchnet/pkg/errors"
)

// Metric selects one of the four centrality columns.
type Metric string

// The supported centrality metrics.
const (
	Degree      Metric = "degree"
	Closeness   Metric = "closeness"
	Betweenness Metric = "betweenness"
	Eigenvector Metric = "eigenvector"
)

// Metrics returns all metrics in display order.
func Metrics() []Metric {
	return []Metric{Degree, Closeness, Betweenness, Eigenvector}
}

// ParseMetric maps a user-supplied metric name to a Metric.
// Returns an INVALID_METRIC error for unknown names.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case Degree, Closeness, Betweenness, Eigenvector:
		return Metric(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidMetric,
		"unknown metric %q (must be one of: degree, closeness, betweenness, eigenvector)", s)
}

// Title returns the human-readable column title.
func (m Metric) Title() string {
	switch m {
	case Degree:
		return "Degree"
	case Closeness:
		return "Closeness"
	case Betweenness:
		return "Betweenness"
	case Eigenvector:
		return "Eigenvector"
	}
	return string(m)
}

// Row is one player's centrality scores.
type Row struct {
	Node        string  `json:"node" bson:"node"`
	Degree      float64 `json:"degree" bson:"degree"`
	Closeness   float64 `json:"closeness" bson:"closeness"`
	Betweenness float64 `json:"betweenness" bson:"betweenness"`
	Eigenvector float64 `json:"eigenvector" bson:"eigenvector"`
}

// Score returns the row's value for the given metric.
func (r Row) Score(m Metric) float64 {
	switch m {
	case Degree:
		return r.Degree
	case Closeness:
		return r.Closeness
	case Betweenness:
		return r.Betweenness
	case Eigenvector:
		return r.Eigenvector
	}
	return 0
}

// Table holds one centrality row per player in the full graph.
// Rows follow the projection's sorted node order, no drops, no duplicates.
// A Table is immutable after Compute returns it.
type Table struct {
	rows     []Row
	index    map[string]int
	warnings []error
}

func newTable(rows []Row, warnings []error) *Table {
	index := make(map[string]int, len(rows))
	for i, r := range rows {
		index[r.Node] = i
	}
	return &Table{rows: rows, index: index, warnings: warnings}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns a copy of all rows in table order.
func (t *Table) Rows() []Row { return slices.Clone(t.rows) }

// Row returns the row for the given player and true, or a zero row and
// false when the player is unknown.
func (t *Table) Row(node string) (Row, bool) {
	i, ok := t.index[node]
	if !ok {
		return Row{}, false
	}
	return t.rows[i], true
}

// MaxEigenvector returns the largest eigenvector score in the table, or 0
// for an empty table.
func (t *Table) MaxEigenvector() float64 {
	max := 0.0
	for _, r := range t.rows {
		if r.Eigenvector > max {
			max = r.Eigenvector
		}
	}
	return max
}

// Warnings returns the degradation warnings recorded during computation
// (currently only eigenvector convergence failures). An empty slice means
// every metric was computed exactly as specified.
func (t *Table) Warnings() []error { return slices.Clone(t.warnings) }

// Degraded reports whether any metric fell back to an approximation.
func (t *Table) Degraded() bool { return len(t.warnings) > 0 }

// =============================================================================
// Table Serialization (for caching and API responses)
// =============================================================================

// MarshalTable converts a table to JSON bytes. Only fully converged tables
// should be serialized for caching; see [Table.Degraded].
func MarshalTable(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		Rows []Row `json:"rows"`
	}{Rows: t.rows}); err != nil {
		return nil, fmt.Errorf("encode table: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalTable decodes a table serialized by [MarshalTable].
func UnmarshalTable(data []byte) (*Table, error) {
	var doc struct {
		Rows []Row `json:"rows"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}
	return newTable(doc.Rows, nil), nil
}
