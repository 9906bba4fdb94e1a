package position

import (
	"github.com/frankkopp/xiangqi-go/internal/tables"
	"github.com/frankkopp/xiangqi-go/internal/xq"
)

// LegalMove is a pseudo-legal filter: it does not check whether the move
// leaves the mover's own king in check (MakeMove does that). It verifies
// ownership of the endpoints and the role-specific geometry.
func (b *Board) LegalMove(mv xq.Move) bool {
	src, dst := mv.Src(), mv.Dst()
	pcSrc := b.Squares[src]
	self := xq.SideTag(b.SideToMove)
	if pcSrc&self == 0 {
		return false
	}
	pcDst := b.Squares[dst]
	if pcDst&self != 0 {
		return false
	}

	sd := int(b.SideToMove)
	switch pcSrc.Role() {
	case xq.King:
		return tables.InFort[dst] && tables.KingSpan(int(src), int(dst))
	case xq.Advisor:
		return tables.InFort[dst] && tables.AdvisorSpan(int(src), int(dst))
	case xq.Bishop:
		return tables.SameHalf(int(src), int(dst)) &&
			tables.BishopSpan(int(src), int(dst)) &&
			b.Squares[tables.BishopPin(int(src), int(dst))] == xq.Empty
	case xq.Knight:
		pin := tables.KnightPin(int(src), int(dst))
		return pin != int(src) && b.Squares[pin] == xq.Empty
	case xq.Pawn:
		if tables.AwayHalf(int(dst), sd) && (dst == src-1 || dst == src+1) {
			return true
		}
		return dst == xq.ForwardStep(src, b.SideToMove)
	case xq.Rook, xq.Cannon:
		var delta int
		switch {
		case tables.SameRank(int(src), int(dst)):
			if src > dst {
				delta = -1
			} else {
				delta = 1
			}
		case tables.SameFile(int(src), int(dst)):
			if src > dst {
				delta = -16
			} else {
				delta = 16
			}
		default:
			return false
		}
		blockers := 0
		for p := int(src) + delta; p != int(dst); p += delta {
			if b.Squares[p] != xq.Empty {
				blockers++
				if blockers > 1 {
					return false
				}
			}
		}
		if blockers == 1 {
			return pcSrc.Role() == xq.Cannon && pcDst != xq.Empty
		}
		return pcSrc.Role() == xq.Rook || pcDst == xq.Empty
	default:
		return false
	}
}

// GenerateMoves enumerates moves for the side to move. When capturesOnly is
// false it returns the full pseudo-legal move list (scores is nil); when
// true it returns only captures, paired with their MVV-LVA score, for use
// by quiescence search. Self-check is not filtered here — callers trial
// make/unmake.
func (b *Board) GenerateMoves(capturesOnly bool) ([]xq.Move, []int) {
	self := xq.SideTag(b.SideToMove)
	opp := xq.OppSideTag(b.SideToMove)
	var moves []xq.Move
	var scores []int

	emit := func(src, dst int, lva int) {
		pcDst := b.Squares[dst]
		if capturesOnly {
			if pcDst&opp != 0 {
				moves = append(moves, xq.NewMove(xq.Square(src), xq.Square(dst)))
				scores = append(scores, tables.MvvLva(int(pcDst), lva))
			}
			return
		}
		if pcDst&self == 0 {
			moves = append(moves, xq.NewMove(xq.Square(src), xq.Square(dst)))
		}
	}

	for src := 0; src < 256; src++ {
		pcSrc := b.Squares[src]
		if pcSrc&self == 0 {
			continue
		}
		switch pcSrc.Role() {
		case xq.King:
			for _, d := range tables.KingDelta {
				dst := src + d
				if tables.InFort[dst] {
					emit(src, dst, 5)
				}
			}
		case xq.Advisor:
			for _, d := range tables.AdvisorDelta {
				dst := src + d
				if tables.InFort[dst] {
					emit(src, dst, 1)
				}
			}
		case xq.Bishop:
			for _, d := range tables.AdvisorDelta {
				mid := src + d
				if !tables.InBroad(mid) || !tables.HomeHalf(mid, int(b.SideToMove)) || b.Squares[mid] != xq.Empty {
					continue
				}
				dst := mid + d
				emit(src, dst, 1)
			}
		case xq.Knight:
			for i, legDelta := range tables.KingDelta {
				if b.Squares[src+legDelta] != xq.Empty {
					continue
				}
				for _, d := range tables.KnightDelta[i] {
					dst := src + d
					if tables.InBroad(dst) {
						emit(src, dst, 1)
					}
				}
			}
		case xq.Rook:
			for _, delta := range tables.KingDelta {
				dst := src + delta
				for tables.InBroad(dst) {
					pcDst := b.Squares[dst]
					if pcDst == xq.Empty {
						emit(src, dst, 4)
					} else {
						if pcDst&opp != 0 {
							emit(src, dst, 4)
						}
						break
					}
					dst += delta
				}
			}
		case xq.Cannon:
			for _, delta := range tables.KingDelta {
				dst := src + delta
				for tables.InBroad(dst) {
					if b.Squares[dst] == xq.Empty {
						emit(src, dst, 4)
					} else {
						break
					}
					dst += delta
				}
				dst += delta
				for tables.InBroad(dst) {
					pcDst := b.Squares[dst]
					if pcDst != xq.Empty {
						if pcDst&opp != 0 {
							emit(src, dst, 4)
						}
						break
					}
					dst += delta
				}
			}
		case xq.Pawn:
			dst := int(xq.ForwardStep(xq.Square(src), b.SideToMove))
			if tables.InBroad(dst) {
				emit(src, dst, 2)
			}
			if tables.AwayHalf(src, int(b.SideToMove)) {
				for _, delta := range [2]int{-1, 1} {
					dst := src + delta
					if tables.InBroad(dst) {
						emit(src, dst, 2)
					}
				}
			}
		}
	}

	return moves, scores
}
