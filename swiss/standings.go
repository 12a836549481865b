/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "sort"

// StandingRow is one ranked line of a section's standings.
type StandingRow struct {
	Rank            int        `json:"rank"`
	PlayerID        PlayerID   `json:"playerId"`
	Name            string     `json:"name"`
	Score           FixedPoint `json:"score"`
	Buchholz        FixedPoint `json:"buchholz"`
	Median          FixedPoint `json:"median"`
	SonnebornBerger FixedPoint `json:"sonnebornBerger"`
	Cumulative      FixedPoint `json:"cumulative"`
}

// ComputeStandings ranks every non-withdrawn player by score, then by an
// ordered chain of tiebreaks, and finally by name, so the result is a
// total order with no ties left unresolved (spec §4.7).
func ComputeStandings(s *Section) []StandingRow {
	rows := make([]StandingRow, 0, len(s.Players))
	for i := range s.Players {
		p := &s.Players[i]
		if p.Withdrawn {
			continue
		}
		rows = append(rows, StandingRow{
			PlayerID:        p.ID,
			Name:            p.Name,
			Score:           p.Score,
			Buchholz:        buchholz(s, p),
			Median:          median(s, p),
			SonnebornBerger: sonnebornBerger(s, p),
			Cumulative:      cumulative(p),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return standingLess(s, rows[i], rows[j])
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// standingLess implements the ranking chain: score, Buchholz, median,
// Sonneborn-Berger, head-to-head result, cumulative, rating, name (spec
// §4.7). Each level only decides ties left by the levels before it.
func standingLess(s *Section, a, b StandingRow) bool {
	switch {
	case a.Score != b.Score:
		return a.Score > b.Score
	case a.Buchholz != b.Buchholz:
		return a.Buchholz > b.Buchholz
	case a.Median != b.Median:
		return a.Median > b.Median
	case a.SonnebornBerger != b.SonnebornBerger:
		return a.SonnebornBerger > b.SonnebornBerger
	}

	if won, ok := headToHead(s, a.PlayerID, b.PlayerID); ok {
		return won
	}

	if a.Cumulative != b.Cumulative {
		return a.Cumulative > b.Cumulative
	}

	pa, pb := s.Player(a.PlayerID), s.Player(b.PlayerID)
	if pa != nil && pb != nil && pa.Rating != pb.Rating {
		return pa.Rating > pb.Rating
	}
	return a.Name < b.Name
}

// headToHead reports, when a and b played each other, whether a should
// rank above b on the strength of that single result. ok is false when
// they never met or the game was drawn (no direct-encounter signal).
func headToHead(s *Section, a, b PlayerID) (aWon bool, ok bool) {
	pa := s.Player(a)
	if pa == nil {
		return false, false
	}
	for _, entry := range pa.Results {
		if entry.IsBye || entry.OppID == nil || *entry.OppID != b {
			continue
		}
		switch entry.Result {
		case Full:
			return true, true
		case Zero:
			return false, true
		default:
			return false, false
		}
	}
	return false, false
}
