/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/xiangqi-go/internal/xq"
)

func TestProbeMissOnEmptyTable(t *testing.T) {
	tt := New(1)
	_, ok := tt.Probe(xq.Key(123), xq.Lock(456), 0)
	assert.False(t, ok)
}

func TestPutThenProbeHits(t *testing.T) {
	tt := New(1)
	key, lock := xq.Key(42), xq.Lock(99)
	tt.Put(key, lock, xq.NewMove(10, 20), 4, 150, FlagPV, 2)

	e, ok := tt.Probe(key, lock, 2)
	require.True(t, ok)
	assert.Equal(t, xq.Value(150), e.Value)
	assert.Equal(t, int8(4), e.Depth)
	assert.Equal(t, FlagPV, e.Flag)
}

func TestProbeMissOnLockMismatchSameSlot(t *testing.T) {
	tt := New(1)
	key := xq.Key(42)
	tt.Put(key, xq.Lock(99), xq.NewMove(10, 20), 4, 150, FlagPV, 0)
	_, ok := tt.Probe(key, xq.Lock(100), 0)
	assert.False(t, ok)
}

func TestMateValueRoundTripsThroughPlyCorrection(t *testing.T) {
	tt := New(1)
	key, lock := xq.Key(7), xq.Lock(8)
	matingValue := xq.MateValue - 3 // mate in 3 plies from the root

	tt.Put(key, lock, xq.NoMove, 10, matingValue, FlagBeta, 5)
	e, ok := tt.Probe(key, lock, 5)
	require.True(t, ok)
	assert.Equal(t, matingValue, e.Value)
}

func TestDeeperEntryOverwritesShallowerOnCollision(t *testing.T) {
	tt := New(1)
	// Force a collision: same masked index, different locks.
	key := xq.Key(0)
	tt.Put(key, xq.Lock(1), xq.NewMove(1, 2), 2, 10, FlagAlpha, 0)
	tt.Put(key, xq.Lock(2), xq.NewMove(3, 4), 8, 20, FlagBeta, 0)

	e, ok := tt.Probe(key, xq.Lock(2), 0)
	require.True(t, ok)
	assert.Equal(t, int8(8), e.Depth)
	assert.Equal(t, xq.Value(20), e.Value)
	assert.EqualValues(t, 1, tt.Stats.Collisions)
	assert.EqualValues(t, 1, tt.Stats.Overwrites)
}

func TestClearEmptiesTable(t *testing.T) {
	tt := New(1)
	tt.Put(xq.Key(1), xq.Lock(2), xq.NewMove(1, 2), 3, 4, FlagPV, 0)
	require.EqualValues(t, 1, tt.Len())
	tt.Clear()
	assert.EqualValues(t, 0, tt.Len())
	_, ok := tt.Probe(xq.Key(1), xq.Lock(2), 0)
	assert.False(t, ok)
}

func TestResizeToZeroDisablesStorage(t *testing.T) {
	tt := New(1)
	tt.Resize(0)
	tt.Put(xq.Key(1), xq.Lock(2), xq.NewMove(1, 2), 3, 4, FlagPV, 0)
	assert.EqualValues(t, 0, tt.Len())
	assert.Equal(t, 0, tt.Hashfull())
}
