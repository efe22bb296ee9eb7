package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrowthTrace(t *testing.T) {
	steps := growthTrace(10, 0)
	require.Equal(t, []growthStep{
		{size: 0, capacity: 0},
		{size: 1, capacity: 2},
		{size: 3, capacity: 6},
		{size: 7, capacity: 14},
	}, steps)
}

func TestGrowthTraceWithHint(t *testing.T) {
	steps := growthTrace(6, 5)
	require.Equal(t, []growthStep{
		{size: 0, capacity: 5},
		{size: 6, capacity: 12},
	}, steps)
}

func TestNewLogger(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		l, err := newLogger(lvl)
		require.NoError(t, err)
		require.NotNil(t, l)
	}
	_, err := newLogger("loud")
	require.Error(t, err)
}
