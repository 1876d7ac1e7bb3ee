/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package position

import (
	"github.com/frankkopp/chesscore/internal/piece"
	"github.com/frankkopp/chesscore/internal/variant"

	. "github.com/frankkopp/chesscore/internal/types"
)

// Position is the full mutable board state of spec.md §3: dimensions,
// side to move, both players' PieceSets, the combined occupied-or-wall
// bitboard, the reversible-state and captures stacks, and the active
// variant's rule set.
type Position struct {
	Dims     BDimensions
	WhosTurn Color
	Pieces   [2]*PieceSet

	// OccOrOutBounds = ~bounds | pieces[White].Occupied | pieces[Black].Occupied.
	OccOrOutBounds Bitboard

	propertiesStack []PositionProperties
	capturesStack   []captureRecord

	Rules variant.GlobalRulesInternal

	defsById map[PieceId]*piece.Definition
}

// NewPositionFromPreset builds the starting Position for a variant.Preset,
// placing every Placement and computing the initial zobrist key from
// scratch.
func NewPositionFromPreset(p variant.Preset) *Position {
	pos := &Position{
		Dims:     p.Dims,
		WhosTurn: White,
		Pieces:   [2]*PieceSet{NewPieceSet(White, p.Dims), NewPieceSet(Black, p.Dims)},
		Rules:    p.Rules,
		defsById: map[PieceId]*piece.Definition{},
	}
	for _, def := range p.PieceDefs {
		pos.defsById[def.Id] = def
	}

	var key Key
	for _, placement := range p.Start {
		def := pos.defsById[placement.Id]
		castleEligible := def.CanCastle || def.IsCastleRook
		pos.Pieces[placement.Player].AddPiece(def, placement.Square, castleEligible)
		pc := pos.Pieces[placement.Player].Piece(placement.Id)
		key ^= pc.ZobristHashes[placement.Square]
		if castleEligible {
			key ^= castleRightsKey(pc, placement.Square)
		}
	}

	pos.propertiesStack = []PositionProperties{{
		ZobristKey: key,
		MovePlayed: MoveNone,
		EpSquare:   SqNone,
		EpVictim:   SqNone,
	}}
	pos.recomputeOccupancy()
	return pos
}

func (pos *Position) top() *PositionProperties {
	return &pos.propertiesStack[len(pos.propertiesStack)-1]
}

// ZobristKey returns the current top-of-stack zobrist key (spec.md §6
// zobrist_key()).
func (pos *Position) ZobristKey() Key {
	return pos.top().ZobristKey
}

// EpSquare and EpVictim expose the current frame's en-passant state.
func (pos *Position) EpSquare() Square { return pos.top().EpSquare }
func (pos *Position) EpVictim() Square { return pos.top().EpVictim }

// DefinitionById looks up a registered PieceDefinition by id, used by
// move generation to read movement patterns.
func (pos *Position) DefinitionById(id PieceId) *piece.Definition {
	return pos.defsById[id]
}

func (pos *Position) recomputeOccupancy() {
	pos.OccOrOutBounds = pos.Dims.Walls().Or(pos.Pieces[White].Occupied).Or(pos.Pieces[Black].Occupied)
}

func (pos *Position) removeAndRecord(ps *PieceSet, sq Square, np *PositionProperties) PieceId {
	id, wasCastle := ps.RemovePiece(sq)
	p := ps.Piece(id)
	np.ZobristKey ^= p.ZobristHashes[sq]
	if wasCastle {
		np.ZobristKey ^= castleRightsKey(p, sq)
	}
	pos.capturesStack = append(pos.capturesStack, captureRecord{Id: id, Player: ps.Player, CastleEligible: wasCastle, Square: sq})
	np.NumCaptures++
	return id
}

// MakeMove plays mv, which must have come from this Position's own move
// generator (preconditions are not re-validated), per spec.md §4.5.
func (pos *Position) MakeMove(mv Move) {
	prev := *pos.top()
	np := prev
	np.MovePlayed = mv
	np.NumCaptures = 0
	np.PromoteFrom = PidNone

	sideToMove := pos.WhosTurn
	mover := pos.Pieces[sideToMove]
	opp := pos.Pieces[sideToMove.Flip()]

	// 1. Flip whos_turn; XOR side-to-move bit.
	pos.WhosTurn = sideToMove.Flip()
	np.ZobristKey ^= sideToMoveKey

	if mv.IsNull() {
		if prev.EpSquare != SqNone {
			np.ZobristKey ^= epKeys[prev.EpSquare]
		}
		np.EpSquare, np.EpVictim = SqNone, SqNone
		pos.propertiesStack = append(pos.propertiesStack, np)
		pos.recomputeOccupancy()
		return
	}

	kind := mv.Kind()
	from, to, target := mv.From(), mv.To(), mv.Target()

	// 3. Capture / atomic explosion.
	if kind.IsCapture() {
		pos.removeAndRecord(opp, target, &np)
		moverSlot := mover.PieceAtIndex[from]
		moverDef := mover.Pieces[moverSlot].Def
		if moverDef.ExplodesOnCapture {
			if !moverDef.ImmuneToExplosion {
				pos.removeAndRecord(mover, from, &np)
			}
			moverPiece := mover.Pieces[moverSlot]
			ring := moverPiece.ExplosionSquares(to)
			cur := ring
			for {
				sq, rest := cur.PopLsb()
				if sq == SqNone {
					break
				}
				cur = rest
				for _, side := range pos.Pieces {
					if side.PieceAtIndex[sq] == NoSlot {
						continue
					}
					if side.Pieces[side.PieceAtIndex[sq]].Def.ImmuneToExplosion {
						continue
					}
					pos.removeAndRecord(side, sq, &np)
				}
			}
		}
	}

	// 4. Castling: remove the rook at target (its id is preserved on the
	// captures stack and re-placed in step 7 with a fresh AddPiece).
	var castleRookId PieceId
	if kind == KingsideCastle || kind == QueensideCastle {
		castleRookId = pos.removeAndRecord(mover, target, &np)
	}

	// 5. Move the mover itself, if it is still on the board.
	np.MovedPieceCastle = false
	if slot := mover.PieceAtIndex[from]; slot != NoSlot {
		p := mover.Pieces[slot]
		wasCastle := p.CastleSquares.Has(from)
		np.MovedPieceCastle = wasCastle
		mover.RemovePiece(from)
		np.ZobristKey ^= p.ZobristHashes[from]
		if wasCastle {
			np.ZobristKey ^= castleRightsKey(p, from)
		}
		mover.AddPiece(p.Def, to, false)
		np.ZobristKey ^= p.ZobristHashes[to]
	}

	// 6. Promotion.
	if kind == Promotion || kind == PromotionCapture {
		if slot := mover.PieceAtIndex[to]; slot != NoSlot {
			old := mover.Pieces[slot]
			np.PromoteFrom = old.Def.Id
			np.ZobristKey ^= old.ZobristHashes[to]
			mover.RemovePiece(to)
			promDef := pos.defsById[mv.PromotionId()]
			mover.AddPiece(promDef, to, false)
			newPiece := mover.Piece(mv.PromotionId())
			np.ZobristKey ^= newPiece.ZobristHashes[to]
		}
	}

	// 7. Place the rook at the king's adjacent square.
	if kind == KingsideCastle || kind == QueensideCastle {
		var rookSq Square
		if kind == KingsideCastle {
			rookSq = SquareOf(to.FileOf()-1, to.RankOf())
		} else {
			rookSq = SquareOf(to.FileOf()+1, to.RankOf())
		}
		rookDef := pos.defsById[castleRookId]
		mover.AddPiece(rookDef, rookSq, false)
		newRook := mover.Piece(castleRookId)
		np.ZobristKey ^= newRook.ZobristHashes[rookSq]
		np.CastledPlayers |= uint8(1) << uint(sideToMove)
	}

	// 8. En-passant bookkeeping.
	if prev.EpSquare != SqNone {
		np.ZobristKey ^= epKeys[prev.EpSquare]
	}
	if kind == DoubleJump {
		np.EpSquare, np.EpVictim = target, to
		np.ZobristKey ^= epKeys[target]
	} else {
		np.EpSquare, np.EpVictim = SqNone, SqNone
	}

	// 9. Push frame; recompute occupancy.
	pos.propertiesStack = append(pos.propertiesStack, np)
	pos.recomputeOccupancy()
}

// UnmakeMove is the strict reverse of MakeMove.
func (pos *Position) UnmakeMove() {
	n := len(pos.propertiesStack)
	np := pos.propertiesStack[n-1]
	pos.propertiesStack = pos.propertiesStack[:n-1]

	moverColor := pos.WhosTurn.Flip()
	pos.WhosTurn = moverColor
	mover := pos.Pieces[moverColor]

	mv := np.MovePlayed
	if mv.IsNull() {
		pos.recomputeOccupancy()
		return
	}

	kind := mv.Kind()
	from, to := mv.From(), mv.To()

	// reverse 7
	if kind == KingsideCastle || kind == QueensideCastle {
		var rookSq Square
		if kind == KingsideCastle {
			rookSq = SquareOf(to.FileOf()-1, to.RankOf())
		} else {
			rookSq = SquareOf(to.FileOf()+1, to.RankOf())
		}
		mover.RemovePiece(rookSq)
	}

	// reverse 6
	if kind == Promotion || kind == PromotionCapture {
		if slot := mover.PieceAtIndex[to]; slot != NoSlot {
			mover.RemovePiece(to)
			mover.AddPiece(pos.defsById[np.PromoteFrom], to, false)
		}
	}

	// reverse 5
	if slot := mover.PieceAtIndex[to]; slot != NoSlot {
		p := mover.Pieces[slot]
		mover.RemovePiece(to)
		mover.AddPiece(p.Def, from, np.MovedPieceCastle)
	}

	// reverse 4 + 3: pop capture records, re-placing every removed piece.
	for i := 0; i < np.NumCaptures; i++ {
		m := len(pos.capturesStack)
		rec := pos.capturesStack[m-1]
		pos.capturesStack = pos.capturesStack[:m-1]
		def := pos.defsById[rec.Id]
		pos.Pieces[rec.Player].AddPiece(def, rec.Square, rec.CastleEligible)
	}

	pos.recomputeOccupancy()
}

// LastCaptureSquares returns the squares removed by the most recently
// played move (direct capture, castling's rook removal, or - for an
// atomic explosion - the triggering capture plus every square the blast
// cleared), for callers that report exploded_squares after make_move.
func (pos *Position) LastCaptureSquares() []Square {
	n := pos.top().NumCaptures
	if n == 0 {
		return nil
	}
	m := len(pos.capturesStack)
	squares := make([]Square, n)
	for i := 0; i < n; i++ {
		squares[i] = pos.capturesStack[m-n+i].Square
	}
	return squares
}

// InCheck reports whether player's leader (if any) is attacked by the
// opponent, via PieceSet.AttacksTo (spec.md §4.4 in_check).
func (pos *Position) InCheck(player Color) bool {
	ps := pos.Pieces[player]
	if !ps.HasLeader() {
		return false
	}
	leaderSq := ps.LeaderSquare()
	if leaderSq == SqNone {
		return false
	}
	return pos.Pieces[player.Flip()].AttacksTo(leaderSq, pos.OccOrOutBounds)
}

// RepetitionCount returns how many times the current zobrist key recurs
// on the properties stack, per DESIGN.md's linear-scan decision.
func (pos *Position) RepetitionCount() int {
	key := pos.ZobristKey()
	count := 0
	for _, frame := range pos.propertiesStack {
		if frame.ZobristKey == key {
			count++
		}
	}
	return count
}

// TimesInCheck returns the running in-check counter for player, used by
// the three/five-check variants.
func (pos *Position) TimesInCheck(player Color) uint8 {
	return pos.top().TimesInCheck[player]
}

// BumpTimesInCheck increments the in-check counter for player on the
// current top frame - called by the engine package's MakeMove immediately
// after a move that leaves the opponent in check.
func (pos *Position) BumpTimesInCheck(player Color) {
	pos.top().TimesInCheck[player]++
}

// HasCastled reports whether player has already completed a castling
// move this game, per the CastledPlayers bit of the current frame.
func (pos *Position) HasCastled(player Color) bool {
	return pos.top().CastledPlayers&(uint8(1)<<uint(player)) != 0
}

// CastleEligible reports whether player still has a king/rook pair
// sitting on their castle-eligible squares.
func (pos *Position) CastleEligible(player Color) bool {
	return pos.Pieces[player].CastleEligible()
}

// NonLeaderMaterial sums player's MaterialScore over every piece that
// is not a leader, used for endgame detection (spec.md §4.6) and
// null-move eligibility (§4.6 can_do_null_move).
func (pos *Position) NonLeaderMaterial(player Color) Value {
	var total Value
	for _, p := range pos.Pieces[player].Pieces {
		if p.Def.IsLeader {
			continue
		}
		total += p.MaterialScore * Value(p.Bitboard.PopCount())
	}
	return total
}

// TotalMaterial sums player's MaterialScore over every piece, leaders
// included.
func (pos *Position) TotalMaterial(player Color) Value {
	var total Value
	for _, p := range pos.Pieces[player].Pieces {
		total += p.MaterialScore * Value(p.Bitboard.PopCount())
	}
	return total
}

// PstValue sums player's piece-square values over every occupied
// square, using the endgame table when endgame is set. The leader's
// contribution is subtracted in the mid-game (keep the leader away from
// the centre) and added in the endgame (drive it centrally), per
// spec.md §4.6.
func (pos *Position) PstValue(player Color, endgame bool) Value {
	var total Value
	for _, p := range pos.Pieces[player].Pieces {
		cur := p.Bitboard
		for {
			sq, rest := cur.PopLsb()
			if sq == SqNone {
				break
			}
			cur = rest
			var v Value
			if endgame {
				v = p.PstEnd(sq)
			} else {
				v = p.PstMid(sq)
			}
			if p.Def.IsLeader {
				if endgame {
					total += v
				} else {
					total -= v
				}
				continue
			}
			total += v
		}
	}
	return total
}

// Clone returns an independent Position sharing immutable Piece
// definitions but with its own mutable board/stack state, for hand-off
// to one Lazy SMP search thread (spec.md §5: "each thread owns its own
// Position clone").
func (pos *Position) Clone() *Position {
	out := &Position{
		Dims:           pos.Dims,
		WhosTurn:       pos.WhosTurn,
		Pieces:         [2]*PieceSet{pos.Pieces[White].Clone(), pos.Pieces[Black].Clone()},
		OccOrOutBounds: pos.OccOrOutBounds,
		Rules:          pos.Rules,
		defsById:       pos.defsById,
	}
	out.propertiesStack = append([]PositionProperties(nil), pos.propertiesStack...)
	out.capturesStack = append([]captureRecord(nil), pos.capturesStack...)
	return out
}
