package position

import "github.com/frankkopp/xiangqi-go/internal/xq"

// Repetition status bits returned by RepStatus.
const (
	RepOccurred    = 1
	RepOwnPerpetual = 2
	RepOppPerpetual = 4
)

// RepStatus walks the move stack backwards over reversible, non-capturing
// moves, alternating between "own side" and "opponent side" every ply. It
// tracks whether each side has been giving check on every one of its own
// moves in that span (a candidate perpetual check). When it finds recur
// occurrences of the current Zobrist key, it returns a bitmask: bit 0 set
// (repetition occurred), bit 1 set if the side to move has been
// perpetually checking, bit 2 set if the opponent has. Returns 0 if the
// walk runs out of reversible history before recur repetitions are found.
func (b *Board) RepStatus(recur int) int {
	side := false
	perpCheck := true
	oppPerpCheck := true

	for i := len(b.moves) - 1; i >= 0 && b.moves[i].Move != xq.NoMove && b.moves[i].Captured == xq.Empty; i-- {
		if side {
			perpCheck = perpCheck && b.moves[i].WasCheck
			if b.moves[i].ZobristKey == b.ZobristKey {
				recur--
				if recur == 0 {
					status := 0
					if perpCheck {
						status += RepOwnPerpetual
					}
					if oppPerpCheck {
						status += RepOppPerpetual
					}
					return status + RepOccurred
				}
			}
		} else {
			oppPerpCheck = oppPerpCheck && b.moves[i].WasCheck
		}
		side = !side
	}
	return 0
}

// RepValue maps a RepStatus bitmask to a score: perpetual check by the side
// to move is scored as a loss (BanValue), by the opponent as a win
// (-BanValue); anything else (including a plain repetition with no
// perpetual check by either side) is a draw.
func (b *Board) RepValue(status int) xq.Value {
	var vl xq.Value
	if status&RepOwnPerpetual != 0 {
		vl = b.BanValue()
	}
	if status&RepOppPerpetual != 0 {
		vl -= b.BanValue()
	}
	if vl == 0 {
		return b.DrawValue()
	}
	return vl
}
