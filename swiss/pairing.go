/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "sort"

// buildRound computes every non-bye Pairing for the section's next round,
// mutating each paired player's history immediately as a pair is decided.
// It returns the pairings (unnumbered — board numbers are assigned by the
// caller once byes are known) and the players still unpaired once every
// score group has been processed, in the order they fell out of pairing.
//
// This generalizes a top-half-vs-bottom-half split to arbitrary score
// groups and later rounds: within a group, the higher half plays the lower
// half in seed order, skipping already-played opponents where a fresh
// partner is available.
//
// If allowForcedRematch is false and some group has no rematch-free
// partner left for a player, buildRound returns ErrNoRematchFreePairing
// instead of silently pairing the rematch (spec.md §9 open question).
func buildRound(players []*Player, allowForcedRematch bool) (pairings []Pairing, leftover []*Player, err error) {
	active := make([]*Player, 0, len(players))
	for _, p := range players {
		if !p.Withdrawn {
			active = append(active, p)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return seedLess(active[i], active[j], true)
	})

	groups := scoreGroups(active)

	var floated []*Player
	for _, group := range groups {
		// Floats from a higher score group outrank everyone already in
		// this group, so they join at the front, then the group is
		// reseeded to keep ties in rating/name order.
		combined := append(append([]*Player(nil), floated...), group...)
		sort.SliceStable(combined, func(i, j int) bool {
			return seedLess(combined[i], combined[j], true)
		})

		var paired []Pairing
		paired, floated, err = pairGroup(combined, allowForcedRematch)
		if err != nil {
			return nil, nil, err
		}
		pairings = append(pairings, paired...)
	}

	return pairings, floated, nil
}

// seedLess orders players for pairing. byScore puts higher scores first
// (used for the initial score-group partition and for reseeding a group
// that has taken in floats from a higher group, so the floats stay at
// its front); equal scores, or every pair when byScore is false, are
// ordered by rating, then name.
func seedLess(a, b *Player, byScore bool) bool {
	if byScore && a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Rating != b.Rating {
		return a.Rating > b.Rating
	}
	return a.Name < b.Name
}

// scoreGroups partitions an already score-sorted slice into contiguous
// runs sharing the same Score.
func scoreGroups(sorted []*Player) [][]*Player {
	var groups [][]*Player
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j].Score == sorted[i].Score {
			j++
		}
		groups = append(groups, sorted[i:j])
		i = j
	}
	return groups
}

// pairGroup pairs one (already seeded) score group top-half against
// bottom-half, avoiding rematches where a fresh partner is still
// available. When none is available, it forces the rematch only if
// allowForcedRematch is true; otherwise it returns ErrNoRematchFreePairing.
// Any bottom members left unmatched once the top half is exhausted float
// to the next group.
func pairGroup(group []*Player, allowForcedRematch bool) (pairings []Pairing, floated []*Player, err error) {
	topCount := len(group) / 2
	top := group[:topCount]
	bottom := append([]*Player(nil), group[topCount:]...)

	for _, t := range top {
		if len(bottom) == 0 {
			floated = append(floated, t)
			continue
		}
		idx := -1
		for k, b := range bottom {
			if !t.HasPlayed(b.ID) {
				idx = k
				break
			}
		}
		if idx < 0 {
			if !allowForcedRematch {
				return nil, nil, newErr(ErrKindNoRematchFreePairing, "player %q has no rematch-free partner", t.ID)
			}
			idx = 0
		}
		partner := bottom[idx]
		bottom = append(bottom[:idx], bottom[idx+1:]...)

		whiteID, blackID := selectColors(t, partner)
		white, black := t, partner
		if whiteID != t.ID {
			white, black = partner, t
		}
		white.recordGame(black.ID, White)
		black.recordGame(white.ID, Black)

		blackCopy := blackID
		pairings = append(pairings, Pairing{WhiteID: whiteID, BlackID: &blackCopy})
	}

	floated = append(floated, bottom...)
	return pairings, floated, nil
}
