package conditions

import (
	"context"
	"fmt"

	conf "github.com/hazeltet845/cmssw/config"
)

var log = conf.NamedLogger("conditions")

// Watcher remembers the last interval it handed out and only fetches a
// record again when the interval covering the current event changes.
// It is not safe for concurrent use.
type Watcher struct {
	source Source
	iov    IOV
	seen   bool
}

// NewWatcher ...
func NewWatcher(source Source) *Watcher {
	return &Watcher{source: source}
}

// Check resolves the interval covering at. When it differs from the last one
// the new record is fetched and returned with changed set to true.
func (w *Watcher) Check(ctx context.Context, at IOV) (record SimBeamSpot, changed bool, err error) {
	iov, err := w.source.Lookup(ctx, at)
	if err != nil {
		return SimBeamSpot{}, false, fmt.Errorf("lookup beam spot interval: %w", err)
	}
	if w.seen && iov == w.iov {
		return SimBeamSpot{}, false, nil
	}

	record, err = w.source.Get(ctx, iov)
	if err != nil {
		return SimBeamSpot{}, false, fmt.Errorf("get beam spot %s: %w", iov, err)
	}
	log.Debugf("Beam spot interval changed to %s at %s", iov, at)
	w.iov = iov
	w.seen = true
	return record, true, nil
}

// Current returns the last interval handed out, if any.
func (w *Watcher) Current() (IOV, bool) {
	return w.iov, w.seen
}

// Forget drops the remembered interval so the next Check fetches again.
func (w *Watcher) Forget() {
	w.iov = IOV{}
	w.seen = false
}
