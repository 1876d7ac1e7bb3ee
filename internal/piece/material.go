/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package piece

import (
	. "github.com/frankkopp/chesscore/internal/types"
)

// computeMaterialScore derives a material value for Def on a board of
// p.Dims from its movement capabilities alone, per the dimension-aware
// formula of DESIGN.md Open Question 3: riders are worth more on larger
// boards (scaled by height), diagonal riders are discounted relative to
// orthogonal ones, leapers and custom slide-runs add a flat bonus per
// delta/atom, promotion potential adds a flat bonus, and two structural
// penalties apply - colour-bound (every reachable square keeps the same
// square colour) and one-way (some used axis has no return direction).
// Leaders (the piece whose capture ends the game) are scaled up instead
// of valued finitely, and every definition still has a game-playable
// floor value.
func (p *Piece) computeMaterialScore() Value {
	d := p.Def
	height := float64(p.Dims.Height)

	var rayScore float64
	for i, on := range d.AttackSlides {
		if !on {
			continue
		}
		rayScore += attackRayCoeff * height * cardinalFactor(i)
	}
	for i, on := range d.TranslateSlides {
		if !on {
			continue
		}
		rayScore += translateRayCoeff * height * cardinalFactor(i)
	}

	jumpDeltas := uniqueDeltas(d.TranslateJumps, d.AttackJumps)
	leaperScore := float64(len(jumpDeltas)) * jumpDeltaBonus

	var runAtoms int
	for _, run := range d.TranslateSlideRuns {
		runAtoms += len(run)
	}
	for _, run := range d.AttackSlideRuns {
		runAtoms += len(run)
	}
	runScore := float64(runAtoms) * slideAtomBonus

	var promoScore float64
	if d.hasAnyPromoVals() {
		promoScore = promotionBonus
	}

	score := rayScore + leaperScore + runScore + promoScore

	if isColourBound(d) {
		score += colourBoundMalus
	}
	if isOneWay(d) {
		score += oneWayMalus
	}

	if d.IsLeader {
		score *= leaderMultiplier
	}

	if score < materialFloor {
		score = materialFloor
	}
	return Value(score)
}

// cardinalFactor returns diagonalFactor for the 4 diagonal slots of the
// cardinalDirs ordering (indices 4..7: NE, SW, NW, SE) and 1 otherwise.
func cardinalFactor(cardinalIdx int) float64 {
	if cardinalIdx >= 4 {
		return diagonalFactor
	}
	return 1.0
}

func uniqueDeltas(lists ...[]Delta) []Delta {
	var out []Delta
	seen := map[Delta]bool{}
	for _, list := range lists {
		for _, d := range list {
			if seen[d] {
				continue
			}
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}

// isColourBound reports whether every delta/slide direction this
// definition can move along keeps dx+dy even - i.e. the piece can never
// leave squares of one colour, as a classical bishop cannot.
func isColourBound(d *Definition) bool {
	hasAny := false
	for i, on := range d.TranslateSlides {
		if !on {
			continue
		}
		hasAny = true
		if !sameColourDir(cardinalDirs[i]) {
			return false
		}
	}
	for i, on := range d.AttackSlides {
		if !on {
			continue
		}
		hasAny = true
		if !sameColourDir(cardinalDirs[i]) {
			return false
		}
	}
	for _, delta := range uniqueDeltas(d.TranslateJumps, d.AttackJumps) {
		hasAny = true
		if (delta.DX+delta.DY)%2 != 0 {
			return false
		}
	}
	return hasAny
}

// cardinalDeltas mirrors cardinalDirs (piecedef.go) with their (dx,dy)
// offsets, since Direction.Offset only exposes the raw 16-wide square
// stride and not the two axis components needed for colour-parity.
var cardinalDeltas = [8]Delta{
	{DX: 0, DY: 1},   // North
	{DX: 0, DY: -1},  // South
	{DX: 1, DY: 0},   // East
	{DX: -1, DY: 0},  // West
	{DX: 1, DY: 1},   // Northeast
	{DX: -1, DY: -1}, // Southwest
	{DX: -1, DY: 1},  // Northwest
	{DX: 1, DY: -1},  // Southeast
}

func sameColourDir(dir Direction) bool {
	idx := CardinalIndex(dir)
	off := cardinalDeltas[idx]
	return (off.DX+off.DY)%2 == 0
}

// isOneWay reports whether any cardinal axis this definition uses lacks
// its opposite direction - e.g. a pawn that translates North but never
// South.
func isOneWay(d *Definition) bool {
	used := [8]bool{}
	for i := range used {
		used[i] = d.TranslateSlides[i] || d.AttackSlides[i]
	}
	pairs := [4][2]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}} // N/S, E/W, NE/SW, NW/SE
	for _, pair := range pairs {
		a, b := used[pair[0]], used[pair[1]]
		if a != b {
			return true
		}
	}
	deltaSet := map[Delta]bool{}
	for _, delta := range uniqueDeltas(d.TranslateJumps, d.AttackJumps) {
		deltaSet[delta] = true
	}
	for delta := range deltaSet {
		if !deltaSet[Delta{DX: -delta.DX, DY: -delta.DY}] {
			return true
		}
	}
	return false
}
