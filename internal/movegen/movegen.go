/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

// Package movegen generates pseudo-legal and legal moves for a
// position, driven entirely by the declarative per-piece movement
// tables of internal/piece - there is no switch on piece type here, per
// spec.md §9.
package movegen

import (
	"github.com/frankkopp/chesscore/internal/moveslice"
	"github.com/frankkopp/chesscore/internal/piece"
	"github.com/frankkopp/chesscore/internal/position"

	. "github.com/frankkopp/chesscore/internal/types"
)

// Movegen holds the reusable move buffers and move-ordering hints of
// one search thread, per spec.md §4.4/§4.6.
type Movegen struct {
	pseudoLegal *moveslice.MoveSlice
	legal       *moveslice.MoveSlice
	KillerMoves [2]Move
	PvMove      Move
}

// NewMoveGen creates a ready-to-use Movegen.
func NewMoveGen() *Movegen {
	return &Movegen{
		pseudoLegal: moveslice.NewMoveSlice(64),
		legal:       moveslice.NewMoveSlice(64),
	}
}

// GeneratePseudoLegalMoves fills and returns mg's pseudo-legal buffer
// for the side to move. When capturesOnly is set, only captures,
// en-passant captures and promotions are generated (quiescence mode):
// no quiet moves, double jumps or castles.
func (mg *Movegen) GeneratePseudoLegalMoves(pos *position.Position, capturesOnly bool) *moveslice.MoveSlice {
	mg.pseudoLegal = moveslice.NewMoveSlice(64)
	mover := pos.Pieces[pos.WhosTurn]
	opp := pos.Pieces[pos.WhosTurn.Flip()]

	for _, p := range mover.Pieces {
		cur := p.Bitboard
		for {
			from, rest := cur.PopLsb()
			if from == SqNone {
				break
			}
			cur = rest
			mg.genSlides(pos, p, from, mover, opp, capturesOnly)
			mg.genJumps(pos, p, from, mover, opp, capturesOnly)
			mg.genDoubleJump(pos, p, from, capturesOnly)
			mg.genEnPassant(pos, p, from)
		}
	}
	if !capturesOnly {
		mg.genCastles(pos, mover)
	}
	return mg.pseudoLegal
}

// GenerateCaptures is the quiescence-search entry point: captures,
// en-passant, and promotions only.
func (mg *Movegen) GenerateCaptures(pos *position.Position) *moveslice.MoveSlice {
	return mg.GeneratePseudoLegalMoves(pos, true)
}

// GenerateLegalMoves filters GeneratePseudoLegalMoves down to moves
// that do not leave the mover's own leader in check, per spec.md §4.4.
func (mg *Movegen) GenerateLegalMoves(pos *position.Position) *moveslice.MoveSlice {
	pseudo := mg.GeneratePseudoLegalMoves(pos, false)
	mover := pos.WhosTurn
	legal := moveslice.NewMoveSlice(pseudo.Len())
	for _, mv := range *pseudo {
		pos.MakeMove(mv)
		if !pos.InCheck(mover) {
			legal.PushBack(mv)
		}
		pos.UnmakeMove()
	}
	mg.legal = legal
	return mg.legal
}

func (mg *Movegen) genSlides(pos *position.Position, p *piece.Piece, from Square, mover, opp *position.PieceSet, capturesOnly bool) {
	occ := pos.OccOrOutBounds
	if !capturesOnly {
		quiet := p.SlideTranslates(from, occ).AndNot(occ)
		mg.emit(from, quiet, Quiet, p, mover)
	} else {
		promoQuiet := p.SlideTranslates(from, occ).AndNot(occ).And(p.PromotionSquares())
		mg.emit(from, promoQuiet, Quiet, p, mover)
	}
	// SlideAttacks returns the full ray up to and including the first
	// blocker in each direction; ANDing with the opponent's occupancy
	// keeps only the blocker squares that are actually capturable.
	capture := p.SlideAttacks(from, occ).And(opp.Occupied)
	mg.emit(from, capture, Capture, p, mover)
}

func (mg *Movegen) genJumps(pos *position.Position, p *piece.Piece, from Square, mover, opp *position.PieceSet, capturesOnly bool) {
	occ := pos.OccOrOutBounds
	if !capturesOnly {
		quiet := p.JumpTranslate(from).AndNot(occ)
		mg.emit(from, quiet, Quiet, p, mover)
	} else {
		promoQuiet := p.JumpTranslate(from).AndNot(occ).And(p.PromotionSquares())
		mg.emit(from, promoQuiet, Quiet, p, mover)
	}
	capture := p.JumpCapture(from).And(opp.Occupied)
	mg.emit(from, capture, Capture, p, mover)
}

// emit pushes one move per target square, expanding into one move per
// promotion choice when the target lands on a promotion square.
func (mg *Movegen) emit(from Square, targets Bitboard, baseKind MoveType, p *piece.Piece, mover *position.PieceSet) {
	cur := targets
	for {
		to, rest := cur.PopLsb()
		if to == SqNone {
			break
		}
		cur = rest
		if p.PromotionSquares().Has(to) {
			kind := Promotion
			if baseKind == Capture {
				kind = PromotionCapture
			}
			for _, promo := range p.Def.PromoVals[mover.Player] {
				mg.pseudoLegal.PushBack(NewMove(from, to, to, kind, promo))
			}
			continue
		}
		mg.pseudoLegal.PushBack(NewMove(from, to, to, baseKind, PidNone))
	}
}

// genDoubleJump handles a pawn-style double advance: applicable only to
// a piece with exactly one translate-jump delta (the "one step forward"
// direction) starting from one of its configured DoubleJumpSquares. The
// move's Target is the square passed over, which MakeMove records as the
// ep square.
func (mg *Movegen) genDoubleJump(pos *position.Position, p *piece.Piece, from Square, capturesOnly bool) {
	if capturesOnly {
		return
	}
	if len(p.Def.TranslateJumps) != 1 {
		return
	}
	if !p.DoubleJumpSquares().Has(from) {
		return
	}
	step := p.Def.TranslateJumps[0]
	mid := from.ToDelta(step)
	to := from.ToDelta(Delta{DX: step.DX * 2, DY: step.DY * 2})
	if mid == SqNone || to == SqNone {
		return
	}
	if !pos.Dims.InBounds(mid) || !pos.Dims.InBounds(to) {
		return
	}
	if pos.OccOrOutBounds.Has(mid) || pos.OccOrOutBounds.Has(to) {
		return
	}
	mg.pseudoLegal.PushBack(NewMove(from, to, mid, DoubleJump, PidNone))
}

// genEnPassant adds the en-passant capture if this piece's capture
// jump table reaches the current ep square.
func (mg *Movegen) genEnPassant(pos *position.Position, p *piece.Piece, from Square) {
	ep := pos.EpSquare()
	if ep == SqNone {
		return
	}
	if !p.JumpCapture(from).Has(ep) {
		return
	}
	mg.pseudoLegal.PushBack(NewMove(from, ep, pos.EpVictim(), Capture, PidNone))
}

// genCastles scans outward from every castle-eligible king to every
// castle-eligible rook on its rank (chess960-style "king takes rook"
// encoding: Target carries the rook's origin square).
func (mg *Movegen) genCastles(pos *position.Position, mover *position.PieceSet) {
	for _, kp := range mover.Pieces {
		if !kp.Def.CanCastle {
			continue
		}
		kingSq := kp.Bitboard.Lsb()
		if kingSq == SqNone || !kp.CastleSquares.Has(kingSq) {
			continue
		}
		for _, rp := range mover.Pieces {
			if !rp.Def.IsCastleRook {
				continue
			}
			eligibleRooks := rp.Bitboard.And(rp.CastleSquares)
			cur := eligibleRooks
			for {
				rookSq, rest := cur.PopLsb()
				if rookSq == SqNone {
					break
				}
				cur = rest
				if rookSq.RankOf() != kingSq.RankOf() {
					continue
				}
				mg.tryCastle(pos, mover, kingSq, rookSq)
			}
		}
	}
}

func (mg *Movegen) tryCastle(pos *position.Position, mover *position.PieceSet, kingSq, rookSq Square) {
	kingside := rookSq.FileOf() > kingSq.FileOf()
	rank := kingSq.RankOf()

	lo, hi := kingSq.FileOf(), rookSq.FileOf()
	if lo > hi {
		lo, hi = hi, lo
	}
	for f := lo + 1; f < hi; f++ {
		if pos.OccOrOutBounds.Has(SquareOf(f, rank)) {
			return
		}
	}

	var kingTo Square
	kind := QueensideCastle
	if kingside {
		kingTo = SquareOf(kingSq.FileOf()+2, rank)
		kind = KingsideCastle
	} else {
		kingTo = SquareOf(kingSq.FileOf()-2, rank)
	}
	if kingTo == SqNone || !pos.Dims.InBounds(kingTo) {
		return
	}

	opp := pos.Pieces[mover.Player.Flip()]
	step := 1
	if kingTo.FileOf() < kingSq.FileOf() {
		step = -1
	}
	for f := int(kingSq.FileOf()); ; f += step {
		sq := SquareOf(File(f), rank)
		if opp.AttacksTo(sq, pos.OccOrOutBounds) {
			return
		}
		if f == int(kingTo.FileOf()) {
			break
		}
	}

	mg.pseudoLegal.PushBack(NewMove(kingSq, kingTo, rookSq, kind, PidNone))
}
