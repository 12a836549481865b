/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// PairNextRound computes and commits the pairings for the section's next
// round. The Section must be Locked (spec §4.9: pairing requires a frozen
// roster) and must not already have played PlannedRounds rounds.
//
// On success it returns the newly created Round's pairings plus a delta
// of every player whose record changed (opponents, colors, score, or
// HadBye) so a caller with its own player index doesn't have to diff the
// whole roster.
func PairNextRound(s *Section) (pairings []Pairing, delta map[PlayerID]Player, err error) {
	if !s.Locked {
		return nil, nil, newErr(ErrKindSectionNotLocked, "cannot pair: section %q is not locked", s.Name)
	}
	roundNum := len(s.Rounds) + 1
	if roundNum > s.PlannedRounds {
		return nil, nil, newErr(ErrKindAllRoundsStarted, "section %q has already played its %d planned rounds", s.Name, s.PlannedRounds)
	}

	active := make([]*Player, 0, len(s.Players))
	touched := make(map[PlayerID]struct{})
	for i := range s.Players {
		active = append(active, &s.Players[i])
	}

	groupPairings, leftover, err := buildRound(active, s.AllowForcedRematch)
	if err != nil {
		return nil, nil, err
	}
	leftoverPairings, byePlayer, err := resolveLeftover(leftover, s.AllowForcedRematch)
	if err != nil {
		return nil, nil, err
	}

	all := append(groupPairings, leftoverPairings...)
	for board := range all {
		all[board].Board = board + 1
		touched[all[board].WhiteID] = struct{}{}
		if all[board].BlackID != nil {
			touched[*all[board].BlackID] = struct{}{}
		}
	}

	if byePlayer != nil {
		byePlayer.HadBye = true
		byePlayer.Score = byePlayer.Score.Add(s.ByePointValue)
		byePlayer.Results = append(byePlayer.Results, ResultEntry{
			Round:  roundNum,
			Result: s.ByePointValue,
			IsBye:  true,
		})
		all = append(all, Pairing{
			Board:   len(all) + 1,
			WhiteID: byePlayer.ID,
			IsBye:   true,
		})
		touched[byePlayer.ID] = struct{}{}
	}

	s.Rounds = append(s.Rounds, Round{Number: roundNum, Pairings: all})

	delta = make(map[PlayerID]Player, len(touched))
	for id := range touched {
		if p := s.Player(id); p != nil {
			delta[id] = *p
		}
	}
	return all, delta, nil
}
