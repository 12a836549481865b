/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "testing"

func TestFixedPointString(t *testing.T) {
	tests := []struct {
		in   FixedPoint
		want string
	}{
		{Zero, "0"},
		{Half, "0.5"},
		{Full, "1"},
		{Full.Add(Half), "1.5"},
		{FromFloat(2.5), "2.5"},
	}
	for _, tc := range tests {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("FixedPoint(%d).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFixedPointArithmetic(t *testing.T) {
	if got := Full.Add(Full); got != FixedPoint(2000) {
		t.Errorf("Full+Full = %d, want 2000", got)
	}
	if got := Full.Sub(Half); got != Half {
		t.Errorf("Full-Half = %d, want %d", got, Half)
	}
	if got := Full.Mul(Half); got != Half {
		t.Errorf("Full*Half = %d, want %d", got, Half)
	}
	if !Half.Less(Full) {
		t.Error("Half.Less(Full) = false, want true")
	}
}

func TestPoints(t *testing.T) {
	tests := []struct {
		token           ResultToken
		wantW, wantB    FixedPoint
		wantErr         bool
	}{
		{WhiteWins, Full, Zero, false},
		{BlackWins, Zero, Full, false},
		{Draw, Half, Half, false},
		{"½-½", Half, Half, false},
		{"garbage", 0, 0, true},
	}
	for _, tc := range tests {
		w, b, err := Points(tc.token)
		if (err != nil) != tc.wantErr {
			t.Errorf("Points(%q) err = %v, wantErr %v", tc.token, err, tc.wantErr)
			continue
		}
		if err != nil {
			if kind, ok := KindOf(err); !ok || kind != ErrKindInvalidResultToken {
				t.Errorf("Points(%q) kind = %v, want ErrKindInvalidResultToken", tc.token, kind)
			}
			continue
		}
		if w != tc.wantW || b != tc.wantB {
			t.Errorf("Points(%q) = (%v,%v), want (%v,%v)", tc.token, w, b, tc.wantW, tc.wantB)
		}
	}
}
