package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/frankkopp/xiangqi-go/internal/tables"
	"github.com/frankkopp/xiangqi-go/internal/xq"
)

// FromFEN resets the board and rebuilds it from a standard Xiangqi FEN:
// piece placement (ranks separated by '/', top to bottom), then a side
// field 'w' or 'b'. Castling/en-passant/half-move/full-move fields, if
// present, are accepted and ignored per SPEC_FULL.md section 9.
func (b *Board) FromFEN(fen string) error {
	*b = Board{}
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) == 0 {
		b.setIrreversible()
		return nil
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) > tables.RankBottom-tables.RankTop+1 {
		return fmt.Errorf("position: fen has too many ranks: %q", fen)
	}

	for i, rank := range ranks {
		y := tables.RankTop + i
		x := tables.FileLeft
		for _, c := range []byte(rank) {
			if x > tables.FileRight {
				break
			}
			switch {
			case c >= '1' && c <= '9':
				n, _ := strconv.Atoi(string(c))
				x += n
			case c >= 'A' && c <= 'Z':
				role, ok := xq.PieceFromFenLetter(c)
				if !ok {
					return fmt.Errorf("position: unknown fen piece letter %q", c)
				}
				b.AddPiece(xq.NewSquare(x, y), xq.NewPiece(xq.Red, role), true)
				x++
			case c >= 'a' && c <= 'z':
				role, ok := xq.PieceFromFenLetter(c - ('a' - 'A'))
				if !ok {
					return fmt.Errorf("position: unknown fen piece letter %q", c)
				}
				b.AddPiece(xq.NewSquare(x, y), xq.NewPiece(xq.Black, role), true)
				x++
			default:
				return fmt.Errorf("position: unexpected fen rune %q", c)
			}
		}
	}

	b.SideToMove = xq.Red
	if len(fields) > 1 && fields[1] == "b" {
		b.ChangeSide()
	}

	b.setIrreversible()
	return nil
}

// String renders the board's FEN placement and side field.
func (b *Board) String() string {
	var sb strings.Builder
	for y := tables.RankTop; y <= tables.RankBottom; y++ {
		if y > tables.RankTop {
			sb.WriteByte('/')
		}
		empties := 0
		for x := tables.FileLeft; x <= tables.FileRight; x++ {
			pc := b.Squares[xq.NewSquare(x, y)]
			if pc == xq.Empty {
				empties++
				continue
			}
			if empties > 0 {
				sb.WriteString(strconv.Itoa(empties))
				empties = 0
			}
			sb.WriteByte(xq.FenLetter(pc))
		}
		if empties > 0 {
			sb.WriteString(strconv.Itoa(empties))
		}
	}
	if b.SideToMove == xq.Red {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	return sb.String()
}
