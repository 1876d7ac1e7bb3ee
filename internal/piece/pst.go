/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package piece

import (
	. "github.com/frankkopp/chesscore/internal/types"
)

// initPst fills in the mid-game and end-game piece-square tables per
// spec.md §4.3: POSITION_BASE_MULT per move landing on a centre square,
// POSITION_EDGE_DIST_MULT per step of distance from the board edge
// (capped at the lesser of the two axis distances), and
// POSITION_PROMOTION_DIST_MULT decaying linearly with distance to the
// nearest promotion square. The endgame table additionally counts attack
// moves towards the centre score; the midgame table counts only
// translate moves.
func (p *Piece) initPst() {
	width, height := p.Dims.Width, p.Dims.Height
	maxPromoDist := float64(width+height) / 4.0

	for sq := Square(0); sq < MaxSquares; sq++ {
		if !p.Dims.InBounds(sq) {
			continue
		}
		empty := Bitboard{} // score against an otherwise empty board
		translate := p.SlideTranslates(sq, empty).Or(p.jumpTranslate[sq])
		attack := p.SlideAttacks(sq, empty).Or(p.jumpCapture[sq])

		midMoves := translate
		endMoves := translate.Or(attack)

		p.pstMid[sq] = centreScore(midMoves, width, height) + edgeDistScore(sq, width, height) + promoDistScore(sq, p, width, height, maxPromoDist)
		p.pstEnd[sq] = centreScore(endMoves, width, height) + edgeDistScore(sq, width, height) + promoDistScore(sq, p, width, height, maxPromoDist)
	}
}

func centreScore(moves Bitboard, width, height int) Value {
	cx, cy := float64(width-1)/2.0, float64(height-1)/2.0
	var score float64
	cur := moves
	for {
		sq, rest := cur.PopLsb()
		if sq == SqNone {
			break
		}
		cur = rest
		dx := float64(int(sq.FileOf())) - cx
		dy := float64(int(sq.RankOf())) - cy
		dist := dx*dx + dy*dy
		maxDist := cx*cx + cy*cy
		if maxDist == 0 {
			maxDist = 1
		}
		closeness := 1.0 - dist/maxDist
		if closeness < 0 {
			closeness = 0
		}
		score += positionBaseMult * closeness
	}
	return Value(score)
}

func edgeDistScore(sq Square, width, height int) Value {
	x := int(sq.FileOf())
	y := int(sq.RankOf())
	distX := min2(x, width-1-x)
	distY := min2(y, height-1-y)
	d := min2(distX, distY)
	return Value(d * positionEdgeDistMult)
}

func promoDistScore(sq Square, p *Piece, width, height int, maxDist float64) Value {
	if p.promotionSquares.BbEmpty() {
		return 0
	}
	best := -1
	cur := p.promotionSquares
	for {
		target, rest := cur.PopLsb()
		if target == SqNone {
			break
		}
		cur = rest
		dx := abs(int(target.FileOf()) - int(sq.FileOf()))
		dy := abs(int(target.RankOf()) - int(sq.RankOf()))
		d := dx
		if dy > d {
			d = dy
		}
		if best == -1 || d < best {
			best = d
		}
	}
	if best == -1 {
		return 0
	}
	decay := maxDist - float64(best)
	if decay < 0 {
		decay = 0
	}
	return Value(decay * positionPromotionMult)
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
