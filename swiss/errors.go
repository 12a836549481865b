/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates the typed error values the engine returns.
// Per spec the engine never panics, aborts, or logs — every failure
// mode surfaces as an *Error of one of these kinds.
type ErrorKind string

const (
	// Validation
	ErrKindInvalidResultToken ErrorKind = "invalid_result_token"
	ErrKindUnknownPlayerID    ErrorKind = "unknown_player_id"
	ErrKindSectionNotLocked   ErrorKind = "section_not_locked"
	ErrKindAllRoundsStarted   ErrorKind = "all_rounds_started"

	// Lookup
	ErrKindRoundNotFound ErrorKind = "round_not_found"
	ErrKindBoardNotFound ErrorKind = "board_not_found"
	ErrKindPlayerMissing ErrorKind = "player_missing"

	// Invariant
	ErrKindPairingStateCorrupt ErrorKind = "pairing_state_corrupt"

	// Pairing
	ErrKindNoRematchFreePairing ErrorKind = "no_rematch_free_pairing"
)

// Error is the engine's single error type. Kind identifies the
// failure mode; the remaining fields are optional diagnostic context.
// newErr leaves them zero and puts the details in the message text.
type Error struct {
	Kind   ErrorKind
	Round  int
	Board  int
	Player PlayerID
	Token  ResultToken
	msg    string
}

func (e *Error) Error() string {
	if e.msg != "" {
		return fmt.Sprintf("swiss: %s: %s", e.Kind, e.msg)
	}
	return fmt.Sprintf("swiss: %s", e.Kind)
}

// Is supports errors.Is(err, &swiss.Error{Kind: ...}) by comparing Kind,
// so callers can test for a failure class without a type switch.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newErr(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// ErrNoRematchFreePairing is the sentinel PairNextRound returns (wrapped
// with diagnostic context; match with errors.Is) when a score group has
// no rematch-free partner for every player and Section.AllowForcedRematch
// is false (spec.md §9 open question, resolved in SPEC_FULL.md).
var ErrNoRematchFreePairing = &Error{Kind: ErrKindNoRematchFreePairing}

// KindOf returns the ErrorKind of err if it is (or wraps) a *swiss.Error,
// and ok=false otherwise.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
