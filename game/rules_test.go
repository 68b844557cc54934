package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardRules(t *testing.T) {
	rules := NewStandardRules()

	t.Run("scoring by stage", func(t *testing.T) {
		require.Equal(t, 29, rules.StageScore(EarlyGame, 1, 70))
		require.Equal(t, 5, rules.StageScore(MiddleGame, 5, 70))
		require.Equal(t, 5, rules.StageScore(LateGame, 5, 10))
		require.Zero(t, rules.StageScore(GameOver, 5, 10))
	})

	t.Run("adding the weight", func(t *testing.T) {
		require.Equal(t, 1030, rules.Combine(30, 1000))
		require.Equal(t, -70, rules.Combine(30, -100))
	})

	t.Run("using the full lookahead", func(t *testing.T) {
		require.Equal(t, LookaheadFull, rules.Lookahead())
	})
}

func TestMultiplicativeRules(t *testing.T) {
	rules := NewMultiplicativeRules()

	require.Equal(t, 30, rules.Combine(30, rules.Weights().Base), "Interior cells keep their score")
	require.Equal(t, 300, rules.Combine(30, rules.Weights().Corner))
	require.Equal(t, -90, rules.Combine(30, rules.Weights().AroundCorner))

	t.Run("keeping the sign of the weight for non-positive scores", func(t *testing.T) {
		require.Equal(t, 10, rules.Combine(-4, rules.Weights().Corner))
		require.Equal(t, 10, rules.Combine(0, rules.Weights().Corner))
		require.Equal(t, -3, rules.Combine(-7, rules.Weights().AroundCorner))
		require.Equal(t, 1, rules.Combine(-1, rules.Weights().Base))
	})
}

func TestLookaheadTerms(t *testing.T) {
	require.True(t, LookaheadFull.mobility())
	require.True(t, LookaheadFull.unlocked())
	require.True(t, LookaheadMobility.mobility())
	require.False(t, LookaheadMobility.unlocked())
	require.False(t, LookaheadUnlocked.mobility())
	require.True(t, LookaheadUnlocked.unlocked())
	require.False(t, LookaheadNone.mobility())
	require.False(t, LookaheadNone.unlocked())
}
