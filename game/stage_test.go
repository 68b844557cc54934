package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStageFor(t *testing.T) {
	t.Run("classifying an 8x8 board", func(t *testing.T) {
		for stones := 0; stones <= 64; stones++ {
			var want Stage
			switch {
			case stones == 64:
				want = GameOver
			case stones >= 48:
				want = LateGame
			case stones >= 32:
				want = MiddleGame
			default:
				want = EarlyGame
			}
			require.Equal(t, want, StageFor(stones, 64), "stones=%d", stones)
		}
	})

	t.Run("never moving backwards as stones are added", func(t *testing.T) {
		for _, cells := range []int{9, 16, 35, 100} {
			prev := EarlyGame
			for stones := 0; stones <= cells; stones++ {
				s := StageFor(stones, cells)
				require.GreaterOrEqual(t, s, prev, "cells=%d stones=%d", cells, stones)
				prev = s
			}
			require.Equal(t, GameOver, prev)
		}
	})
}

func TestStageString(t *testing.T) {
	require.Equal(t, "early", EarlyGame.String())
	require.Equal(t, "over", GameOver.String())
	require.Equal(t, "unknown", Stage(9).String())
}
