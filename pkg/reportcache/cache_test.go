package reportcache_test

import (
	"testing"
	"time"

	"github.com/stackvity/dataingest/pkg/engine"
	"github.com/stackvity/dataingest/pkg/reportcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_PutGet(t *testing.T) {
	c := reportcache.New(time.Hour, time.Hour)
	defer c.Stop()

	id, err := c.Put(engine.ExecutionReport{TotalFiles: 3})
	require.NoError(t, err)
	assert.Len(t, id, 22)

	report, ok := c.Get(id)
	require.True(t, ok)
	assert.Equal(t, 3, report.TotalFiles)
}

func TestCache_MissUnknownID(t *testing.T) {
	c := reportcache.New(time.Hour, time.Hour)
	defer c.Stop()

	_, ok := c.Get("does-not-exist")
	assert.False(t, ok)
}

func TestCache_ExpiredEntryEvictedOnGet(t *testing.T) {
	c := reportcache.New(time.Millisecond, time.Hour)
	defer c.Stop()

	id, err := c.Put(engine.ExecutionReport{TotalFiles: 1})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get(id)
	assert.False(t, ok)

	total, _, _ := c.Stats()
	assert.Equal(t, 0, total)
}

func TestCache_Stats(t *testing.T) {
	c := reportcache.New(time.Hour, time.Hour)
	defer c.Stop()

	_, _ = c.Put(engine.ExecutionReport{})
	_, _ = c.Put(engine.ExecutionReport{})

	total, active, expired := c.Stats()
	assert.Equal(t, 2, total)
	assert.Equal(t, 2, active)
	assert.Equal(t, 0, expired)
}
