package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/olsfit/internal/harness"
	"github.com/roach88/olsfit/internal/testutil"
)

func testRun(id string, started time.Time, seed uint64) Run {
	return Run{
		ID:        id,
		StartedAt: started,
		Seed:      seed,
		Samples: []harness.Sample{
			harness.NewSample(5000, 500, 120*time.Millisecond, 900*time.Millisecond, 500),
			harness.NewSample(5000, 1000, 250*time.Millisecond, 2*time.Second, 1000),
		},
	}
}

func TestRecordRun_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	run := testRun("run-1", testutil.Epoch, 42)
	require.NoError(t, s.RecordRun(ctx, run))

	got, err := s.ReadRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.True(t, run.StartedAt.Equal(got.StartedAt))
	assert.Equal(t, uint64(42), got.Seed)
	assert.Equal(t, run.Samples, got.Samples)
}

func TestRecordRun_HighBitSeed(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	run := testRun("run-high", testutil.Epoch, ^uint64(0))
	require.NoError(t, s.RecordRun(ctx, run))

	got, err := s.ReadRun(ctx, "run-high")
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), got.Seed)
}

func TestRecordRun_EmptyID(t *testing.T) {
	s := createTestStore(t)

	err := s.RecordRun(context.Background(), testRun("", testutil.Epoch, 1))
	require.ErrorIs(t, err, ErrEmptyRunID)
}

func TestRecordRun_DuplicateIDRollsBack(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordRun(ctx, testRun("dup", testutil.Epoch, 1)))
	err := s.RecordRun(ctx, testRun("dup", testutil.Epoch.Add(time.Hour), 2))
	require.Error(t, err)

	got, err := s.ReadRun(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got.Seed)
	assert.Len(t, got.Samples, 2)
}

func TestRecordRun_InvalidSampleRollsBack(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	run := testRun("bad", testutil.Epoch, 1)
	run.Samples = append(run.Samples, harness.NewSample(0, 3, 0, 0, 0))

	require.Error(t, s.RecordRun(ctx, run))

	_, err := s.ReadRun(ctx, "bad")
	require.ErrorIs(t, err, ErrRunNotFound)
}

func TestReadRun_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadRun(context.Background(), "missing")
	require.ErrorIs(t, err, ErrRunNotFound)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestListRuns_Empty(t *testing.T) {
	s := createTestStore(t)

	runs, err := s.ListRuns(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)
}

func TestListRuns_DeterministicOrder(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	later := testutil.Epoch.Add(time.Minute)
	require.NoError(t, s.RecordRun(ctx, testRun("b", later, 1)))
	require.NoError(t, s.RecordRun(ctx, testRun("c", testutil.Epoch, 2)))
	require.NoError(t, s.RecordRun(ctx, testRun("a", later, 3)))

	empty := Run{ID: "z", StartedAt: later.Add(time.Minute), Seed: 4}
	require.NoError(t, s.RecordRun(ctx, empty))

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 4)

	ids := make([]string, len(runs))
	for i, r := range runs {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"c", "a", "b", "z"}, ids)
	assert.Equal(t, 2, runs[0].SampleCount)
	assert.Equal(t, 0, runs[3].SampleCount)
}

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}

	first := gen.Generate()
	second := gen.Generate()
	assert.NotEqual(t, first, second)

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestSequentialIDsSatisfyGenerator(t *testing.T) {
	var gen IDGenerator = testutil.NewSequentialIDGenerator("bench")
	assert.Equal(t, "bench-1", gen.Generate())
}
