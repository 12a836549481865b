/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "testing"

func TestComputeStandingsOrdersByScoreThenRating(t *testing.T) {
	s := fourFreshPlayers()
	if _, _, err := PairNextRound(s); err != nil {
		t.Fatalf("PairNextRound: %v", err)
	}
	if err := ApplyResult(s, 1, 1, WhiteWins); err != nil { // A beats C
		t.Fatalf("ApplyResult board1: %v", err)
	}
	if err := ApplyResult(s, 1, 2, WhiteWins); err != nil { // B beats D
		t.Fatalf("ApplyResult board2: %v", err)
	}

	rows := ComputeStandings(s)
	want := []PlayerID{"A", "B", "C", "D"}
	if len(rows) != len(want) {
		t.Fatalf("len(rows) = %d, want %d", len(rows), len(want))
	}
	for i, id := range want {
		if rows[i].PlayerID != id {
			t.Errorf("rank %d = %s, want %s", i+1, rows[i].PlayerID, id)
		}
		if rows[i].Rank != i+1 {
			t.Errorf("rows[%d].Rank = %d, want %d", i, rows[i].Rank, i+1)
		}
	}
}

func TestComputeStandingsExcludesWithdrawnPlayers(t *testing.T) {
	s := fourFreshPlayers()
	if err := s.WithdrawPlayer("D"); err != nil {
		t.Fatalf("WithdrawPlayer: %v", err)
	}

	rows := ComputeStandings(s)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	for _, r := range rows {
		if r.PlayerID == "D" {
			t.Error("withdrawn player D appeared in standings")
		}
	}
}
