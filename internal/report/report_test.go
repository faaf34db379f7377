package report

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	collector := NewCollector(zerolog.Nop())

	r := collector.Collect(context.Background())

	require.NotNil(t, r)
	assert.False(t, r.CollectedAt.IsZero())
	assert.NotEmpty(t, r.OS)
	assert.Greater(t, r.LogicalCPUs, 0)
	assert.Greater(t, r.TotalMemory, uint64(0))
}

func TestCollectIsReentrant(t *testing.T) {
	collector := NewCollector(zerolog.Nop())
	ctx := context.Background()

	first := collector.Collect(ctx)
	second := collector.Collect(ctx)

	assert.Equal(t, first.OS, second.OS)
	assert.Equal(t, first.KernelVersion, second.KernelVersion)
}
