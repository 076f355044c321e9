// Package rank turns a centrality table into top-K leaderboards.
package rank

import (
	"sort"

	"github.com/matchnet/matchnet/pkg/centrality"
	"github.com/matchnet/matchnet/pkg/errors"
)

// Entry is one leaderboard position.
type Entry struct {
	Node  string  `json:"node" bson:"node"`
	Score float64 `json:"score" bson:"score"`
}

// TopK returns at most k players sorted by descending score for the given
// metric. Ties keep the table's row order (stable sort), so equal scores
// rank in sorted node-ID order. If fewer than k players exist, all of them
// are returned.
//
// Returns an INVALID_ARGUMENT error when k < 1 and an INVALID_METRIC error
// for unknown metrics. Pure function: the table is only read.
func TopK(t *centrality.Table, metric centrality.Metric, k int) ([]Entry, error) {
	if k < 1 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "top-k must be at least 1, got %d", k)
	}
	if _, err := centrality.ParseMetric(string(metric)); err != nil {
		return nil, err
	}

	rows := t.Rows()
	entries := make([]Entry, len(rows))
	for i, r := range rows {
		entries[i] = Entry{Node: r.Node, Score: r.Score(metric)}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	if k < len(entries) {
		entries = entries[:k]
	}
	return entries, nil
}
