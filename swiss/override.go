/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// TDSwap exchanges the White and Black sides of an already-paired board.
// It only ever touches the pairing's side assignment — scores, history,
// and any already-recorded Result are left untouched (spec §4.8: TD
// edits never have score side effects).
func TDSwap(s *Section, round, board int) error {
	p, err := findPairing(s, round, board)
	if err != nil {
		return err
	}
	if p.IsBye || p.BlackID == nil {
		return newErr(ErrKindPairingStateCorrupt, "round %d board %d has no Black side to swap", round, board)
	}
	white := p.WhiteID
	p.WhiteID = *p.BlackID
	p.BlackID = &white
	return nil
}

// TDReplace substitutes newPlayerID in for whichever player currently
// occupies side on the given board. The outgoing player's own history
// is left as-is; correcting it, if desired, is a separate operation.
func TDReplace(s *Section, round, board int, side Side, newPlayerID PlayerID) error {
	p, err := findPairing(s, round, board)
	if err != nil {
		return err
	}
	if p.IsBye {
		return newErr(ErrKindPairingStateCorrupt, "round %d board %d is a bye, nothing to replace", round, board)
	}
	if s.Player(newPlayerID) == nil {
		return newErr(ErrKindUnknownPlayerID, "replacement player %q not in roster", newPlayerID)
	}
	switch side {
	case SideWhite:
		p.WhiteID = newPlayerID
	case SideBlack:
		p.BlackID = &newPlayerID
	default:
		return newErr(ErrKindPairingStateCorrupt, "unknown side %q", side)
	}
	return nil
}

// TDForceColor pins which player plays White on an already-paired
// board, swapping sides only if the requested player is currently Black.
func TDForceColor(s *Section, round, board int, whitePlayerID PlayerID) error {
	p, err := findPairing(s, round, board)
	if err != nil {
		return err
	}
	if p.IsBye || p.BlackID == nil {
		return newErr(ErrKindPairingStateCorrupt, "round %d board %d has no Black side", round, board)
	}
	switch whitePlayerID {
	case p.WhiteID:
		return nil
	case *p.BlackID:
		return TDSwap(s, round, board)
	default:
		return newErr(ErrKindUnknownPlayerID, "player %q is not seated on round %d board %d", whitePlayerID, round, board)
	}
}

// Side names one of the two seats of a game for TDReplace.
type Side string

const (
	SideWhite Side = "white"
	SideBlack Side = "black"
)

func findPairing(s *Section, round, board int) (*Pairing, error) {
	r := s.round(round)
	if r == nil {
		return nil, newErr(ErrKindRoundNotFound, "round %d not found", round)
	}
	p := r.pairingAt(board)
	if p == nil {
		return nil, newErr(ErrKindBoardNotFound, "round %d board %d not found", round, board)
	}
	return p, nil
}
