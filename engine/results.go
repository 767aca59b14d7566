// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"sort"

	"github.com/nguyennhimbth/EVMSimulator/auth"
	"github.com/nguyennhimbth/EVMSimulator/models"
)

// AdminViewResults returns per-candidate counts and percentage of the
// cumulative total, sorted by votes descending. Ties keep registration
// order. Percentages are 0 when no votes have been cast.
func (e *Engine) AdminViewResults(s auth.Session) (models.Results, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.gate.Valid(s) {
		return models.Results{}, auth.ErrUnauthenticated
	}

	candidates := e.reg.List()
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].VoteCount > candidates[j].VoteCount
	})

	res := models.Results{
		TotalVotes: e.totalVotes,
		Rows:       make([]models.CandidateResult, 0, len(candidates)),
	}
	for i, c := range candidates {
		var pct float64
		if e.totalVotes > 0 {
			pct = float64(c.VoteCount) / float64(e.totalVotes) * 100
		}
		res.Rows = append(res.Rows, models.CandidateResult{
			Candidate: c,
			Percent:   pct,
			Rank:      i + 1,
		})
	}
	return res, nil
}
