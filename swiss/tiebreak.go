/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "sort"

// buchholz sums the final scores of every opponent a player faced (bye
// rounds contribute nothing, since a bye never adds to Opponents). A
// withdrawn opponent's score is excluded from every remaining player's
// Buchholz, per spec §3.
func buchholz(s *Section, p *Player) FixedPoint {
	var sum FixedPoint
	for _, oppID := range p.Opponents {
		if opp := s.Player(oppID); opp != nil && !opp.Withdrawn {
			sum = sum.Add(opp.Score)
		}
	}
	return sum
}

// median is Buchholz with the single highest and single lowest opponent
// score discarded (the "Solkoff cut-1" variant); with two or fewer
// opponents there is nothing meaningful to discard.
func median(s *Section, p *Player) FixedPoint {
	scores := make([]FixedPoint, 0, len(p.Opponents))
	for _, oppID := range p.Opponents {
		if opp := s.Player(oppID); opp != nil && !opp.Withdrawn {
			scores = append(scores, opp.Score)
		}
	}
	if len(scores) <= 2 {
		var sum FixedPoint
		for _, sc := range scores {
			sum = sum.Add(sc)
		}
		return sum
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i] < scores[j] })
	var sum FixedPoint
	for _, sc := range scores[1 : len(scores)-1] {
		sum = sum.Add(sc)
	}
	return sum
}

// sonnebornBerger credits a player, for each game played, the
// opponent's final score scaled by the fraction of the point earned in
// that game (full credit for a win, half for a draw, none for a loss).
func sonnebornBerger(s *Section, p *Player) FixedPoint {
	var sum FixedPoint
	for _, entry := range p.Results {
		if entry.IsBye || entry.OppID == nil {
			continue
		}
		opp := s.Player(*entry.OppID)
		if opp == nil || opp.Withdrawn {
			continue
		}
		sum = sum.Add(opp.Score.Mul(entry.Result))
	}
	return sum
}

// cumulative is the sum, over every round played, of the player's
// running score total through that round (the "Progressive" score).
func cumulative(p *Player) FixedPoint {
	ordered := append([]ResultEntry(nil), p.Results...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Round < ordered[j].Round })

	var running, total FixedPoint
	for _, entry := range ordered {
		running = running.Add(entry.Result)
		total = total.Add(running)
	}
	return total
}
