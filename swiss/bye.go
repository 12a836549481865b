/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "sort"

// resolveLeftover takes the players that fell out of every score group's
// pairing pass and, if there's an odd one out, hands the bye to whichever
// is eligible under spec §4.4 before pairing off the rest (avoiding
// rematches the same way pairGroup does). It returns any additional
// non-bye pairings plus, if applicable, the player who drew the bye.
func resolveLeftover(leftover []*Player, allowForcedRematch bool) (pairings []Pairing, bye *Player, err error) {
	queue := append([]*Player(nil), leftover...)

	if len(queue)%2 == 1 {
		candidates := byeEligible(queue)
		bye = candidates[0]
		for i, p := range queue {
			if p.ID == bye.ID {
				queue = append(queue[:i], queue[i+1:]...)
				break
			}
		}
	}

	for len(queue) >= 2 {
		head := queue[0]
		rest := queue[1:]

		idx := -1
		for k, cand := range rest {
			if !head.HasPlayed(cand.ID) {
				idx = k
				break
			}
		}
		if idx < 0 {
			if !allowForcedRematch {
				return nil, nil, newErr(ErrKindNoRematchFreePairing, "player %q has no rematch-free partner", head.ID)
			}
			idx = 0
		}
		partner := rest[idx]
		rest = append(rest[:idx], rest[idx+1:]...)
		queue = rest

		whiteID, blackID := selectColors(head, partner)
		white, black := head, partner
		if whiteID != head.ID {
			white, black = partner, head
		}
		white.recordGame(black.ID, White)
		black.recordGame(white.ID, Black)

		blackCopy := blackID
		pairings = append(pairings, Pairing{WhiteID: whiteID, BlackID: &blackCopy})
	}

	return pairings, bye, nil
}

// byeEligible orders candidates for the bye by spec §4.4: players who
// have never had a bye rank first, ordered among themselves by lowest
// score, then lowest rating, then earliest name; if every candidate has
// already had a bye, the same ordering applies to the full list instead.
func byeEligible(candidates []*Player) []*Player {
	fresh := make([]*Player, 0, len(candidates))
	for _, p := range candidates {
		if !p.HadBye {
			fresh = append(fresh, p)
		}
	}
	if len(fresh) == 0 {
		fresh = append([]*Player(nil), candidates...)
	}

	sort.SliceStable(fresh, func(i, j int) bool {
		a, b := fresh[i], fresh[j]
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		if a.Rating != b.Rating {
			return a.Rating < b.Rating
		}
		return a.Name < b.Name
	})
	return fresh
}
