package xq

// Value is a centipawn-scale search/evaluation score.
type Value int

// Key and Lock are the two independent 32-bit-signed Zobrist hashes. Using
// distinct types (rather than two plain int32s) keeps callers from
// accidentally comparing or swapping them.
type Key int32
type Lock int32

// Search constants, named exactly as spec.md section 4.5 / SPEC_FULL.md
// section 7.5.
const (
	MateValue  Value = 10000
	BanValue   Value = MateValue - 100
	WinValue   Value = MateValue - 200
	DrawValue  Value = 20
	Advanced   Value = 3
	LimitDepth       = 64
	NullDepth        = 2
	Randomness       = 8

	NullOkayMargin Value = 200
	NullSafeMargin Value = 400
)

// LimitHistory is the size of the flat history-heuristic table, large
// enough to hold every (squares[src]-8, dst) pair history_index can produce
// (squares[src]-8 tops out at 14, dst at 255) rounded up to 16*256.
const LimitHistory = 4096
