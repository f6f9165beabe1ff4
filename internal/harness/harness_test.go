package harness

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/olsfit/internal/testutil"
)

func newGolden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRun_SinglePairGolden(t *testing.T) {
	cfg := Config{Rows: []int{3}, Cols: []int{2}, Seed: 42}
	h := New(cfg, WithClock(testutil.NewStepClock(time.Millisecond)))

	buf := &bytes.Buffer{}
	samples, err := h.Run(context.Background(), NewTextReporter(buf).Emit)
	require.NoError(t, err)
	require.Len(t, samples, 1)

	newGolden(t).Assert(t, "single_pair", buf.Bytes())
}

func TestRun_GridOrderGolden(t *testing.T) {
	cfg := Config{Rows: []int{4, 6}, Cols: []int{1, 2}, Seed: 7}
	h := New(cfg, WithClock(testutil.NewStepClock(250*time.Millisecond)))

	buf := &bytes.Buffer{}
	samples, err := h.Run(context.Background(), NewTextReporter(buf).Emit)
	require.NoError(t, err)
	require.Len(t, samples, cfg.Pairs())

	newGolden(t).Assert(t, "grid", buf.Bytes())
}

func TestRun_SinglePairEmitsOneDataLineWithFourFields(t *testing.T) {
	// Real clock: only the shape of the output is deterministic.
	cfg := Config{Rows: []int{20}, Cols: []int{3}, Seed: 1}
	buf := &bytes.Buffer{}

	_, err := New(cfg).Run(context.Background(), NewTextReporter(buf).Emit)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, ReportHeader, lines[0])

	fields := strings.Fields(lines[1])
	require.Len(t, fields, 4)
	assert.Equal(t, "20", fields[0])
	assert.Equal(t, "3", fields[1])
	for _, f := range fields[2:] {
		v, err := strconv.ParseFloat(f, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestRun_SamplesCarryRank(t *testing.T) {
	cfg := Config{Rows: []int{30}, Cols: []int{5}, Seed: 3}

	samples, err := New(cfg).Run(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 5, samples[0].Rank)
	assert.Equal(t, samples[0].Generation.Seconds(), samples[0].GenerationSeconds)
}

func TestRun_WideMatrix(t *testing.T) {
	cfg := Config{Rows: []int{2}, Cols: []int{5}, Seed: 3}

	samples, err := New(cfg).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, samples[0].Rank)
}

func TestRun_InvalidConfig(t *testing.T) {
	_, err := New(Config{Rows: []int{10}, Cols: nil}).Run(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cols list is required")
}

func TestRun_EmitErrorStops(t *testing.T) {
	cfg := Config{Rows: []int{4, 5}, Cols: []int{2}, Seed: 1}
	calls := 0

	samples, err := New(cfg).Run(context.Background(), func(Sample) error {
		calls++
		return errors.New("pipe closed")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipe closed")
	assert.Equal(t, 1, calls)
	assert.Len(t, samples, 1)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	samples, err := New(Config{Rows: []int{4}, Cols: []int{2}}).Run(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, samples)
}

func TestRun_SameSeedSameClockReads(t *testing.T) {
	clock := testutil.NewStepClock(time.Millisecond)
	cfg := Config{Rows: []int{5, 6}, Cols: []int{2, 3}, Seed: 9}

	_, err := New(cfg, WithClock(clock)).Run(context.Background(), nil)
	require.NoError(t, err)

	// Four timestamps per pair: generation start/end, solve start/end.
	assert.Equal(t, int64(4*cfg.Pairs()), clock.Reads())
}

func TestGenerate_UniformUnitInterval(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	x, y := Generate(rng, 50, 4)

	r, c := x.Dims()
	assert.Equal(t, 50, r)
	assert.Equal(t, 4, c)
	assert.Equal(t, 50, y.Len())

	for _, v := range x.RawMatrix().Data {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
	for _, v := range y.RawVector().Data {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	x1, y1 := Generate(rand.New(rand.NewPCG(5, 5)), 3, 3)
	x2, y2 := Generate(rand.New(rand.NewPCG(5, 5)), 3, 3)

	assert.Equal(t, x1.RawMatrix().Data, x2.RawMatrix().Data)
	assert.Equal(t, y1.RawVector().Data, y2.RawVector().Data)
}

func TestFormatSample(t *testing.T) {
	s := NewSample(5000, 500, 1500*time.Millisecond, 2*time.Second, 500)
	assert.Equal(t, "5000 500 1.5 2", FormatSample(s))
}

func TestTextReporter_HeaderOnce(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewTextReporter(buf)

	require.NoError(t, r.WriteHeader())
	require.NoError(t, r.WriteHeader())
	require.NoError(t, r.Emit(NewSample(1, 1, 0, 0, 1)))

	assert.Equal(t, ReportHeader+"\n1 1 0 0\n", buf.String())
}
