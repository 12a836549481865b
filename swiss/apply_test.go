/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "testing"

func pairedSection(t *testing.T) *Section {
	t.Helper()
	s := fourFreshPlayers()
	if _, _, err := PairNextRound(s); err != nil {
		t.Fatalf("PairNextRound: %v", err)
	}
	return s
}

func TestApplyResultCreditsBothSides(t *testing.T) {
	s := pairedSection(t)

	if err := ApplyResult(s, 1, 1, WhiteWins); err != nil {
		t.Fatalf("ApplyResult: %v", err)
	}
	a, c := s.Player("A"), s.Player("C")
	if a.Score != Full || c.Score != Zero {
		t.Errorf("after 1-0: A=%v C=%v, want Full/Zero", a.Score, c.Score)
	}
}

func TestApplyResultCorrectionIsNotCumulative(t *testing.T) {
	s := pairedSection(t)

	if err := ApplyResult(s, 1, 1, WhiteWins); err != nil {
		t.Fatalf("first ApplyResult: %v", err)
	}
	if err := ApplyResult(s, 1, 1, Draw); err != nil {
		t.Fatalf("correcting ApplyResult: %v", err)
	}
	a, c := s.Player("A"), s.Player("C")
	if a.Score != Half || c.Score != Half {
		t.Errorf("after correction to draw: A=%v C=%v, want Half/Half", a.Score, c.Score)
	}
	if len(a.Results) != 1 || len(c.Results) != 1 {
		t.Errorf("len(Results) A=%d C=%d, want 1/1 (correction must replace, not append)", len(a.Results), len(c.Results))
	}
}

func TestApplyResultUnknownBoard(t *testing.T) {
	s := pairedSection(t)

	err := ApplyResult(s, 1, 99, WhiteWins)
	if kind, ok := KindOf(err); !ok || kind != ErrKindBoardNotFound {
		t.Fatalf("err kind = %v, want ErrKindBoardNotFound", kind)
	}
}

func TestApplyResultRejectsBadToken(t *testing.T) {
	s := pairedSection(t)

	err := ApplyResult(s, 1, 1, "2-0")
	if kind, ok := KindOf(err); !ok || kind != ErrKindInvalidResultToken {
		t.Fatalf("err kind = %v, want ErrKindInvalidResultToken", kind)
	}
}
