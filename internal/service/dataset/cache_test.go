package dataset

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	rows    [][]string
	err     error
	fetches int
}

func (s *stubSource) FetchRows(ctx context.Context) ([][]string, error) {
	s.fetches++
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func (s *stubSource) Name() string { return "stub" }

func sampleRows() [][]string {
	return [][]string{
		header(),
		{"01.02.2024", "Alice", "10:00", "11:00", "1", "30", ""},
		{"02.02.2024", "Bob", "10:00", "11:00", "2", "50", ""},
	}
}

func newTestCache(source RowSource, ttl time.Duration) *Cache {
	return NewCache(source, NewParser(testLogger()), ttl, testLogger())
}

func TestCache_ServesHeldCollectionWithinTTL(t *testing.T) {
	source := &stubSource{rows: sampleRows()}
	c := newTestCache(source, time.Minute)
	ctx := context.Background()

	first, err := c.GetRecords(ctx, false)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := c.GetRecords(ctx, false)
	require.NoError(t, err)

	// Same backing slice, no second fetch.
	assert.Equal(t, 1, source.fetches)
	assert.Same(t, &first[0], &second[0])
}

func TestCache_RefetchesAfterTTLExpiry(t *testing.T) {
	source := &stubSource{rows: sampleRows()}
	c := newTestCache(source, 10*time.Second)
	ctx := context.Background()

	base := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	_, err := c.GetRecords(ctx, false)
	require.NoError(t, err)
	require.Equal(t, 1, source.fetches)

	// Just inside the TTL: still a hit.
	c.now = func() time.Time { return base.Add(10 * time.Second) }
	_, err = c.GetRecords(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, source.fetches)

	// Past the TTL: exactly one more fetch.
	c.now = func() time.Time { return base.Add(11 * time.Second) }
	_, err = c.GetRecords(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 2, source.fetches)
}

func TestCache_ForceBypassesTTL(t *testing.T) {
	source := &stubSource{rows: sampleRows()}
	c := newTestCache(source, time.Hour)
	ctx := context.Background()

	_, err := c.GetRecords(ctx, false)
	require.NoError(t, err)

	_, err = c.GetRecords(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 2, source.fetches)
}

func TestCache_FetchFailureKeepsLastKnownGood(t *testing.T) {
	source := &stubSource{rows: sampleRows()}
	c := newTestCache(source, time.Minute)
	ctx := context.Background()

	good, err := c.GetRecords(ctx, false)
	require.NoError(t, err)
	checksum := c.Checksum()
	require.NotEmpty(t, checksum)

	source.err = errors.New("sheet unreachable")

	_, err = c.GetRecords(ctx, true)
	require.ErrorIs(t, err, types.ErrDataUnavailable)

	// The previous entry survives: a non-forced call within the TTL
	// still serves the old collection.
	again, err := c.GetRecords(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, good, again)
	assert.Equal(t, checksum, c.Checksum())
}

func TestCache_FailedFirstFetch(t *testing.T) {
	source := &stubSource{err: errors.New("boom")}
	c := newTestCache(source, time.Minute)

	_, err := c.GetRecords(context.Background(), false)
	require.ErrorIs(t, err, types.ErrDataUnavailable)
	assert.True(t, c.LastFetched().IsZero())
}

func TestCache_ClearForcesRefetch(t *testing.T) {
	source := &stubSource{rows: sampleRows()}
	c := newTestCache(source, time.Hour)
	ctx := context.Background()

	_, err := c.GetRecords(ctx, false)
	require.NoError(t, err)

	c.Clear()
	assert.Empty(t, c.Checksum())

	_, err = c.GetRecords(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 2, source.fetches)
}

func TestCache_RefreshHookFiresOnChangeOnly(t *testing.T) {
	source := &stubSource{rows: sampleRows()}
	c := newTestCache(source, time.Hour)
	ctx := context.Background()

	var calls int
	var lastCount int
	c.OnRefresh(func(ctx context.Context, count int, checksum string) {
		calls++
		lastCount = count
	})

	_, err := c.GetRecords(ctx, false)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	assert.Equal(t, 2, lastCount)

	// Same rows again: checksum unchanged, no hook.
	_, err = c.GetRecords(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// New row appears: hook fires again.
	source.rows = append(sampleRows(), []string{"03.02.2024", "Cara", "", "", "1", "20", ""})
	_, err = c.GetRecords(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 3, lastCount)
}
