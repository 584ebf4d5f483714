package runner

import (
	"context"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazeltet845/cmssw/beamspot"
	"github.com/hazeltet845/cmssw/conditions"
	conf "github.com/hazeltet845/cmssw/config"
	"github.com/hazeltet845/cmssw/errors"
	"github.com/hazeltet845/cmssw/lorentz"
	"github.com/hazeltet845/cmssw/test"
	"github.com/hazeltet845/cmssw/units"
	"github.com/hazeltet845/cmssw/vertex"
)

var realistic = beamspot.Raw{
	X0:        0.0322,
	Y0:        0.0,
	Z0:        0.0,
	SigmaZ:    5.3,
	BetaStar:  30,
	Emittance: 3.3e-8,
	Phi:       142.5e-6,
}

type countingSource struct {
	conditions.Source
	gets int
}

func (c *countingSource) Get(ctx context.Context, iov conditions.IOV) (conditions.SimBeamSpot, error) {
	c.gets++
	return c.Source.Get(ctx, iov)
}

func collect(t *testing.T, r *Runner, job Job) []Event {
	t.Helper()
	var events []Event
	require.NoError(t, r.Run(context.Background(), job, func(e Event) {
		events = append(events, e)
	}))
	sort.Slice(events, func(i, j int) bool { return events[i].Index < events[j].Index })
	return events
}

func TestRunStaticParameters(t *testing.T) {
	job := Job{Run: 1, FirstLumi: 1, LumiBlocks: 4, EventsPerLumi: 3, Streams: 2, Seed: 7}
	events := collect(t, NewRunner(conf.GeneratorParams{Raw: realistic}, WithWorkers(2)), job)

	require.Len(t, events, 12)
	for i, e := range events {
		assert.Equal(t, i, e.Index)
		assert.Equal(t, uint32(1+i/3), e.Lumi)
		assert.Equal(t, (i/3)%2, e.Stream)
	}
}

func TestRunStreamIsReproducible(t *testing.T) {
	job := Job{Run: 1, FirstLumi: 1, LumiBlocks: 3, EventsPerLumi: 2, Streams: 3, Seed: 11}
	events := collect(t, NewRunner(conf.GeneratorParams{Raw: realistic}), job)

	generator, err := vertex.NewBetaFunc(conf.GeneratorParams{Raw: realistic}, units.CMS)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(StreamSeed(11, 1)))
	var expected []lorentz.Vector
	for i := 0; i < 2; i++ {
		v, err := generator.Sample(rng)
		require.NoError(t, err)
		expected = append(expected, v)
	}
	assert.Equal(t, expected, []lorentz.Vector{events[2].Vertex, events[3].Vertex})

	again := collect(t, NewRunner(conf.GeneratorParams{Raw: realistic}, WithWorkers(1)), job)
	assert.Equal(t, events, again)
}

func TestRunRefreshesOnlyOnNewInterval(t *testing.T) {
	store := conditions.NewMemoryStore()
	ctx := context.Background()
	first := realistic
	second := realistic
	second.Z0 = 100
	require.NoError(t, store.Put(ctx, conditions.IOV{Run: 1, LumiBlock: 1}, conditions.SimBeamSpot{Raw: first}))
	require.NoError(t, store.Put(ctx, conditions.IOV{Run: 1, LumiBlock: 3}, conditions.SimBeamSpot{Raw: second}))

	source := &countingSource{Source: store}
	r := NewRunner(conf.GeneratorParams{ReadDB: true}, WithSource(source))
	events := collect(t, r, Job{Run: 1, FirstLumi: 1, LumiBlocks: 4, EventsPerLumi: 50, Streams: 1, Seed: 3})

	assert.Equal(t, 2, source.gets)
	for _, e := range events {
		if e.Lumi < 3 {
			assert.Less(t, e.Vertex.Z, 500.0)
		} else {
			assert.Greater(t, e.Vertex.Z, 500.0)
		}
	}
}

func TestRunRejectsGaussianConditions(t *testing.T) {
	store := conditions.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), conditions.IOV{Run: 1, LumiBlock: 1},
		conditions.SimBeamSpot{Raw: realistic, SigmaX: 0.001, SigmaY: 0.001, Gaussian: true}))

	r := NewRunner(conf.GeneratorParams{ReadDB: true}, WithSource(store))
	err := r.Run(context.Background(), Job{Run: 1, FirstLumi: 1, LumiBlocks: 1, EventsPerLumi: 1, Streams: 1}, func(Event) {})
	assert.ErrorIs(t, err, errors.ErrConfiguration)
}

func TestRunMissingConditions(t *testing.T) {
	r := NewRunner(conf.GeneratorParams{ReadDB: true}, WithSource(conditions.NewMemoryStore()))
	err := r.Run(context.Background(), Job{Run: 1, FirstLumi: 1, LumiBlocks: 1, EventsPerLumi: 1, Streams: 1}, func(Event) {})
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestRunChecksJob(t *testing.T) {
	r := NewRunner(conf.GeneratorParams{Raw: realistic})
	for _, job := range []Job{
		{LumiBlocks: 0, EventsPerLumi: 1, Streams: 1},
		{LumiBlocks: 1, EventsPerLumi: 0, Streams: 1},
		{LumiBlocks: 1, EventsPerLumi: 1, Streams: 0},
	} {
		assert.ErrorIs(t, r.Run(context.Background(), job, func(Event) {}), errors.ErrConfiguration)
	}

	readDB := NewRunner(conf.GeneratorParams{ReadDB: true})
	err := readDB.Run(context.Background(), Job{LumiBlocks: 1, EventsPerLumi: 1, Streams: 1}, func(Event) {})
	assert.ErrorIs(t, err, errors.ErrConfiguration)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRunner(conf.GeneratorParams{Raw: realistic})
	err := r.Run(ctx, Job{LumiBlocks: 2, EventsPerLumi: 1, Streams: 1}, func(Event) {})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEventJSON(t *testing.T) {
	test.Marshal(t, test.MarshallingCases{
		{
			Model: Event{Stream: 1, Index: 4, Run: 2, Lumi: 3, Vertex: lorentz.Vector{X: 0.5, Y: -0.25, Z: 12, T: -3}},
			JSON: `{
				"stream": 1, "index": 4, "run": 2, "lumi": 3,
				"vertex": {"x": 0.5, "y": -0.25, "z": 12, "t": -3}
			}`,
		},
	})
}

func TestRunStaticParametersIgnoreSource(t *testing.T) {
	store := conditions.NewMemoryStore()
	moved := realistic
	moved.Z0 = 1000
	require.NoError(t, store.Put(context.Background(), conditions.IOV{Run: 1, LumiBlock: 1}, conditions.SimBeamSpot{Raw: moved}))

	source := &countingSource{Source: store}
	r := NewRunner(conf.GeneratorParams{Raw: realistic}, WithSource(source))
	events := collect(t, r, Job{Run: 1, FirstLumi: 1, LumiBlocks: 2, EventsPerLumi: 20, Streams: 1, Seed: 3})

	require.Len(t, events, 40)
	assert.Equal(t, 0, source.gets)
	for _, e := range events {
		assert.Less(t, e.Vertex.Z, 500.0)
	}

	uncovered := collect(t, r, Job{Run: 9, FirstLumi: 1, LumiBlocks: 1, EventsPerLumi: 1, Streams: 1})
	assert.Len(t, uncovered, 1)
}

func TestRunBoostedFollowsConditions(t *testing.T) {
	store := conditions.NewMemoryStore()
	ctx := context.Background()
	crossing := realistic
	crossing.Alpha, crossing.Phi = 0.7, 0.3
	require.NoError(t, store.Put(ctx, conditions.IOV{Run: 1, LumiBlock: 1}, conditions.SimBeamSpot{Raw: realistic}))
	require.NoError(t, store.Put(ctx, conditions.IOV{Run: 1, LumiBlock: 2}, conditions.SimBeamSpot{Raw: crossing}))

	job := Job{Run: 1, FirstLumi: 1, LumiBlocks: 2, EventsPerLumi: 1, Streams: 1, Seed: 5}
	params := conf.GeneratorParams{ReadDB: true}
	plain := collect(t, NewRunner(params, WithSource(store)), job)
	boosted := collect(t, NewRunner(params, WithSource(store), WithBoostedVertices()), job)
	require.Len(t, plain, 2)
	require.Len(t, boosted, 2)

	assert.Equal(t, plain[0].Vertex, boosted[0].Vertex)

	boost, err := lorentz.BuildBoost(0.7, 0.3)
	require.NoError(t, err)
	assert.Equal(t, boost.Apply(plain[1].Vertex), boosted[1].Vertex)
	assert.NotEqual(t, plain[1].Vertex, boosted[1].Vertex)
}
