/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// selectColors decides which of pA/pB plays White, following spec
// §4.2's ordered rule list verbatim; the first matching rule wins.
// Implementers must preserve this bit-for-bit so pairings match across
// backends — do not "improve" it toward USCF §29E.
func selectColors(pA, pB *Player) (whiteID, blackID PlayerID) {
	aLast2 := pA.lastColors(2)
	bLast2 := pB.lastColors(2)

	// Rule 1: pA's last two are both White, pB's are not -> pB white.
	if len(aLast2) == 2 && allSame(aLast2, White) && !(len(bLast2) == 2 && allSame(bLast2, White)) {
		return pB.ID, pA.ID
	}
	// Rule 2: pA's last two are both Black, pB's are not -> pA white.
	if len(aLast2) == 2 && allSame(aLast2, Black) && !(len(bLast2) == 2 && allSame(bLast2, Black)) {
		return pA.ID, pB.ID
	}
	// Rule 3: symmetric cases of (1) and (2) with pA/pB swapped.
	if len(bLast2) == 2 && allSame(bLast2, White) && !(len(aLast2) == 2 && allSame(aLast2, White)) {
		return pA.ID, pB.ID
	}
	if len(bLast2) == 2 && allSame(bLast2, Black) && !(len(aLast2) == 2 && allSame(aLast2, Black)) {
		return pB.ID, pA.ID
	}

	// Rule 4: color-balance. If pA is at-least-balanced-toward-White and
	// pB has strictly more White than Black, pA plays White (and
	// symmetrically for pB). When both directions hold at once (e.g.
	// both players are equally White-heavy), the rule contradicts
	// itself and is treated as a tie, falling through to rule 5.
	aToB := pA.whiteCount() >= pA.blackCount() && pB.whiteCount() > pB.blackCount()
	bToA := pB.whiteCount() >= pB.blackCount() && pA.whiteCount() > pA.blackCount()
	switch {
	case aToB && !bToA:
		return pA.ID, pB.ID
	case bToA && !aToB:
		return pB.ID, pA.ID
	}

	// Rule 5: higher-rated player plays Black. Only meaningful once
	// there is a "historical disadvantage" to equalize; two players
	// with no games yet fall through to rule 6 instead.
	if (len(pA.Colors) > 0 || len(pB.Colors) > 0) && pA.Rating != pB.Rating {
		if pA.Rating > pB.Rating {
			return pB.ID, pA.ID
		}
		return pA.ID, pB.ID
	}

	// Rule 6: default.
	return pA.ID, pB.ID
}
