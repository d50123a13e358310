package src_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"snake-maze/src"
)

// TestEstimateCoinsSingleDetour covers scenario S2: a single coin sitting
// on the only corridor between start and end is always collectible, so
// the estimator must count it.
func TestEstimateCoinsSingleDetour(t *testing.T) {
	maze := mustParse(t, `7
3
#######
o  $ _#
#######
`)

	require.Equal(t, 1, src.EstimateCoins(maze))

	path := src.Solve(maze, src.DefaultConfig())
	require.Equal(t, 6, len(path))
	require.Equal(t, 1004, src.Score(path))
}

// TestEstimateCoinsTwoIndependentCoins covers two coins that sit right
// next to start and end respectively: reaching either one never forces a
// conflict with reaching the other from the opposite side, so both must
// be counted.
func TestEstimateCoinsTwoIndependentCoins(t *testing.T) {
	maze := mustParse(t, `9
3
#########
o$     $_
#########
`)

	require.Equal(t, 2, src.EstimateCoins(maze))
}

// TestNeedsVerifySharedInterior covers the first rejection path: two
// probes whose interiors overlap can't both be honored, so the coin
// needs the second, stricter check.
func TestNeedsVerifySharedInterior(t *testing.T) {
	shared := src.Point{X: 2, Y: 1}
	a := src.Path{
		{Point: src.Point{X: 0, Y: 1}},
		{Point: shared},
		{Point: src.Point{X: 3, Y: 1}},
	}
	b := src.Path{
		{Point: src.Point{X: 5, Y: 1}},
		{Point: shared},
		{Point: src.Point{X: 3, Y: 1}},
	}

	require.True(t, src.NeedsVerify(a, b, src.Point{X: 3, Y: 1}))
}

// TestNeedsVerifyEmptyPath covers the second rejection path: an overlay
// that forbade the only route leaves one probe empty.
func TestNeedsVerifyEmptyPath(t *testing.T) {
	nonEmpty := src.Path{{Point: src.Point{X: 0, Y: 0}}, {Point: src.Point{X: 1, Y: 0}}}
	require.True(t, src.NeedsVerify(src.Path{}, nonEmpty, src.Point{X: 1, Y: 0}))
	require.True(t, src.NeedsVerify(nonEmpty, src.Path{}, src.Point{X: 1, Y: 0}))
}

// TestNeedsVerifyDangerPenalty covers the third rejection path: either
// probe paid a danger penalty to reach the coin at all, even though both
// probes do terminate at the coin with disjoint interiors.
func TestNeedsVerifyDangerPenalty(t *testing.T) {
	c := src.Point{X: 1, Y: 1}
	a := src.Path{
		{Point: src.Point{X: 0, Y: 1}},
		{Point: c, Dangers: 1},
	}
	b := src.Path{
		{Point: src.Point{X: 5, Y: 1}},
		{Point: src.Point{X: 4, Y: 1}},
		{Point: c},
	}

	require.True(t, src.NeedsVerify(a, b, c))
}

// TestNeedsVerifyDisjointClean covers the accepting case: two nonempty,
// danger-free probes that both actually reach c with no shared interior
// need no further scrutiny.
func TestNeedsVerifyDisjointClean(t *testing.T) {
	c := src.Point{X: 3, Y: 1}
	a := src.Path{
		{Point: src.Point{X: 0, Y: 1}},
		{Point: src.Point{X: 1, Y: 1}},
		{Point: c},
	}
	b := src.Path{
		{Point: src.Point{X: 5, Y: 1}},
		{Point: src.Point{X: 4, Y: 1}},
		{Point: c},
	}

	require.False(t, src.NeedsVerify(a, b, c))
}

// TestNeedsVerifyRejectsPathNotReachingCoin covers solver.c's
// has_end_path/has_start_path check: a probe that terminates somewhere
// other than the coin itself (an overlay-truncated search, say) must
// force the stricter second-phase check even if it happens to be
// otherwise clean.
func TestNeedsVerifyRejectsPathNotReachingCoin(t *testing.T) {
	c := src.Point{X: 3, Y: 1}
	a := src.Path{
		{Point: src.Point{X: 0, Y: 1}},
		{Point: src.Point{X: 1, Y: 1}},
	}
	b := src.Path{
		{Point: src.Point{X: 5, Y: 1}},
		{Point: src.Point{X: 4, Y: 1}},
		{Point: c},
	}

	require.True(t, src.NeedsVerify(a, b, c))
}
