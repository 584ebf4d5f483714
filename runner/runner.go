// Package runner drives beta function vertex generators over luminosity
// blocks the way an event processing framework would.
//
// Luminosity blocks of a job are distributed over streams. Every stream owns
// its generator and random engine, so streams never share state. At the
// beginning of every block a stream asks the conditions source for the beam
// spot valid there and refreshes its generator only when the validity
// interval changed.
package runner

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hazeltet845/cmssw/conditions"
	conf "github.com/hazeltet845/cmssw/config"
	"github.com/hazeltet845/cmssw/errors"
	"github.com/hazeltet845/cmssw/lorentz"
	"github.com/hazeltet845/cmssw/units"
	"github.com/hazeltet845/cmssw/vertex"
)

var log = conf.NamedLogger("runner")

const defaultNumberOfWorkers = 2

// Job describes the events to generate.
type Job struct {
	Run           uint32 `json:"run"`
	FirstLumi     uint32 `json:"firstLumi"`
	LumiBlocks    int    `json:"lumiBlocks"`
	EventsPerLumi int    `json:"eventsPerLumi"`
	Streams       int    `json:"streams"`
	Seed          int64  `json:"seed"`
}

func (j Job) check() error {
	if j.LumiBlocks <= 0 || j.EventsPerLumi <= 0 {
		return fmt.Errorf("%w: job needs positive lumiBlocks and eventsPerLumi", errors.ErrConfiguration)
	}
	if j.Streams <= 0 {
		return fmt.Errorf("%w: job needs at least one stream", errors.ErrConfiguration)
	}
	return nil
}

// Event is one smeared vertex.
type Event struct {
	Stream int            `json:"stream"`
	Index  int            `json:"index"`
	Run    uint32         `json:"run"`
	Lumi   uint32         `json:"lumi"`
	Vertex lorentz.Vector `json:"vertex"`
}

// ResultCallback receives generated events. Calls are serialized.
type ResultCallback = func(Event)

// Runner runs jobs with a bounded number of concurrently working streams.
type Runner struct {
	params             conf.GeneratorParams
	source             conditions.Source
	maxNumberOfWorkers int
	boosted            bool
}

// Option ...
type Option func(*Runner)

// WithSource sets the conditions source polled at every luminosity block.
// It is only used when the generator parameters have ReadDB set.
func WithSource(source conditions.Source) Option {
	return func(r *Runner) {
		r.source = source
	}
}

// WithBoostedVertices moves every vertex to the lab frame with the inverse
// Lorentz boost its stream generator holds when the vertex is drawn.
func WithBoostedVertices() Option {
	return func(r *Runner) {
		r.boosted = true
	}
}

// WithWorkers limits the number of streams processed at the same time.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.maxNumberOfWorkers = n
		}
	}
}

// NewRunner is Runner constructor. Static params are given in CMS units.
func NewRunner(params conf.GeneratorParams, opts ...Option) *Runner {
	r := &Runner{
		params:             params,
		maxNumberOfWorkers: defaultNumberOfWorkers,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run generates every event of job. The first error stops all streams.
func (r *Runner) Run(ctx context.Context, job Job, callback ResultCallback) error {
	if err := job.check(); err != nil {
		return err
	}
	if r.params.ReadDB && r.source == nil {
		return fmt.Errorf("%w: readDB requested without conditions source", errors.ErrConfiguration)
	}

	var callbackMu sync.Mutex
	emit := func(e Event) {
		callbackMu.Lock()
		defer callbackMu.Unlock()
		callback(e)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.maxNumberOfWorkers)
	for stream := 0; stream < job.Streams; stream++ {
		stream := stream
		group.Go(func() error {
			return r.runStream(groupCtx, job, stream, emit)
		})
	}
	return group.Wait()
}

func (r *Runner) runStream(ctx context.Context, job Job, stream int, emit ResultCallback) error {
	generator, err := vertex.NewBetaFunc(r.params, units.CMS)
	if err != nil {
		return fmt.Errorf("stream %d: %w", stream, err)
	}
	var watcher *conditions.Watcher
	if r.params.ReadDB {
		watcher = conditions.NewWatcher(r.source)
	}
	rng := rand.New(rand.NewSource(StreamSeed(job.Seed, stream)))

	log.Debugf("Start stream %d", stream)
	for block := stream; block < job.LumiBlocks; block += job.Streams {
		if err := ctx.Err(); err != nil {
			return err
		}
		lumi := job.FirstLumi + uint32(block)
		if watcher != nil {
			if err := beginLumi(ctx, watcher, generator, conditions.IOV{Run: job.Run, LumiBlock: lumi}); err != nil {
				return fmt.Errorf("stream %d: %w", stream, err)
			}
		}
		for i := 0; i < job.EventsPerLumi; i++ {
			v, err := generator.Sample(rng)
			if err != nil {
				return fmt.Errorf("stream %d lumi %d: %w", stream, lumi, err)
			}
			if r.boosted {
				boost, err := generator.InvLorentzBoost()
				if err != nil {
					return fmt.Errorf("stream %d lumi %d: %w", stream, lumi, err)
				}
				v = boost.Apply(v)
			}
			emit(Event{
				Stream: stream,
				Index:  block*job.EventsPerLumi + i,
				Run:    job.Run,
				Lumi:   lumi,
				Vertex: v,
			})
		}
	}
	log.Debugf("Stream %d done", stream)
	return nil
}

func beginLumi(ctx context.Context, watcher *conditions.Watcher, generator *vertex.BetaFunc, at conditions.IOV) error {
	rec, changed, err := watcher.Check(ctx, at)
	if err != nil {
		return fmt.Errorf("lumi %s: %w", at, err)
	}
	if !changed {
		return nil
	}
	if err := generator.Refresh(rec, units.CMS); err != nil {
		return fmt.Errorf("lumi %s: %w", at, err)
	}
	return nil
}

// StreamSeed derives the random engine seed of a stream.
func StreamSeed(seed int64, stream int) int64 {
	return seed + int64(stream)
}
