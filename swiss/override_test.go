/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "testing"

func TestTDSwap(t *testing.T) {
	s := pairedSection(t)

	if err := TDSwap(s, 1, 1); err != nil {
		t.Fatalf("TDSwap: %v", err)
	}
	p := s.round(1).pairingAt(1)
	if p.WhiteID != "C" || *p.BlackID != "A" {
		t.Errorf("after swap: white=%s black=%s, want white=C black=A", p.WhiteID, *p.BlackID)
	}
}

func TestTDForceColorNoopWhenAlreadyCorrect(t *testing.T) {
	s := pairedSection(t)

	if err := TDForceColor(s, 1, 1, "A"); err != nil {
		t.Fatalf("TDForceColor: %v", err)
	}
	p := s.round(1).pairingAt(1)
	if p.WhiteID != "A" {
		t.Errorf("white = %s, want A unchanged", p.WhiteID)
	}
}

func TestTDForceColorSwapsWhenNeeded(t *testing.T) {
	s := pairedSection(t)

	if err := TDForceColor(s, 1, 1, "C"); err != nil {
		t.Fatalf("TDForceColor: %v", err)
	}
	p := s.round(1).pairingAt(1)
	if p.WhiteID != "C" {
		t.Errorf("white = %s, want C after force", p.WhiteID)
	}
}

func TestTDReplace(t *testing.T) {
	s := pairedSection(t)
	if err := s.RegisterPlayer(Player{ID: "Z", Name: "Zed", Rating: 1000}); err == nil {
		t.Fatal("RegisterPlayer on locked section should fail")
	}
	s.Locked = false
	if err := s.RegisterPlayer(Player{ID: "Z", Name: "Zed", Rating: 1000}); err != nil {
		t.Fatalf("RegisterPlayer: %v", err)
	}
	s.Locked = true

	if err := TDReplace(s, 1, 1, SideBlack, "Z"); err != nil {
		t.Fatalf("TDReplace: %v", err)
	}
	p := s.round(1).pairingAt(1)
	if *p.BlackID != "Z" {
		t.Errorf("black = %s, want Z", *p.BlackID)
	}
}

func TestTDSwapUnknownBoard(t *testing.T) {
	s := pairedSection(t)

	err := TDSwap(s, 1, 99)
	if kind, ok := KindOf(err); !ok || kind != ErrKindBoardNotFound {
		t.Fatalf("err kind = %v, want ErrKindBoardNotFound", kind)
	}
}
