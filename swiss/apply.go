/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// ApplyResult records (or corrects) the outcome of one board. Calling it
// a second time for the same round/board retracts the previously
// credited points before applying the new ones, so corrections are
// idempotent and reversible (spec §4.5) rather than double-counted.
func ApplyResult(s *Section, round, board int, token ResultToken) error {
	r := s.round(round)
	if r == nil {
		return newErr(ErrKindRoundNotFound, "round %d not found", round)
	}
	p := r.pairingAt(board)
	if p == nil {
		return newErr(ErrKindBoardNotFound, "round %d board %d not found", round, board)
	}
	if p.IsBye {
		return newErr(ErrKindPairingStateCorrupt, "round %d board %d is a bye, not a game", round, board)
	}

	normalized := NormalizeResultToken(token)
	white, black, err := Points(normalized)
	if err != nil {
		return err
	}

	whiteP := s.Player(p.WhiteID)
	if whiteP == nil {
		return newErr(ErrKindUnknownPlayerID, "white %q not in roster", p.WhiteID)
	}
	blackP := s.Player(*p.BlackID)
	if blackP == nil {
		return newErr(ErrKindUnknownPlayerID, "black %q not in roster", *p.BlackID)
	}

	if p.Result != nil {
		prevWhite, prevBlack, _ := Points(*p.Result)
		whiteP.Score = whiteP.Score.Sub(prevWhite)
		blackP.Score = blackP.Score.Sub(prevBlack)
	}
	whiteP.Score = whiteP.Score.Add(white)
	blackP.Score = blackP.Score.Add(black)

	setResultEntry(whiteP, round, p.BlackID, white)
	setResultEntry(blackP, round, &p.WhiteID, black)

	p.Result = &normalized
	return nil
}

// setResultEntry records the point credit a player earned in a round,
// replacing any existing entry for that round in place rather than
// appending a duplicate.
func setResultEntry(p *Player, round int, opp *PlayerID, credit FixedPoint) {
	for i := range p.Results {
		if p.Results[i].Round == round {
			p.Results[i].Result = credit
			p.Results[i].OppID = opp
			return
		}
	}
	p.Results = append(p.Results, ResultEntry{Round: round, OppID: opp, Result: credit})
}
