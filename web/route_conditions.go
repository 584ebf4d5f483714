package web

import (
	"context"
	"fmt"

	"github.com/hazeltet845/cmssw/conditions"
	"github.com/hazeltet845/cmssw/errors"
	"github.com/hazeltet845/cmssw/units"
)

func (h *handler) checkStore() error {
	if h.store == nil {
		return fmt.Errorf("%w: no conditions database configured", errors.ErrNotFound)
	}
	return nil
}

type conditionsResponse struct {
	IOV    conditions.IOV         `json:"iov"`
	Record conditions.SimBeamSpot `json:"record"`
}

// getConditionsHandler returns the record valid at the requested position.
func (h *handler) getConditionsHandler(ctx context.Context) (*conditionsResponse, error) {
	if err := h.checkStore(); err != nil {
		return nil, err
	}
	at, err := extractIOV(ctx)
	if err != nil {
		return nil, err
	}
	iov, err := h.store.Lookup(ctx, at)
	if err != nil {
		return nil, err
	}
	record, err := h.store.Get(ctx, iov)
	if err != nil {
		return nil, err
	}
	return &conditionsResponse{IOV: iov, Record: record}, nil
}

func (h *handler) putConditionsHandler(ctx context.Context, input *conditions.SimBeamSpot) error {
	if err := h.checkStore(); err != nil {
		return err
	}
	iov, err := extractIOV(ctx)
	if err != nil {
		return err
	}
	return h.store.Put(ctx, iov, *input)
}

type refreshResponse struct {
	IOV     conditions.IOV    `json:"iov"`
	Changed bool              `json:"changed"`
	Current *beamSpotResponse `json:"beamSpot"`
}

// refreshHandler begins a luminosity block: the generator is refreshed only
// when the interval covering it differs from the previous one. Generators
// built from static parameters never take database values.
func (h *handler) refreshHandler(ctx context.Context) (*refreshResponse, error) {
	if err := h.checkStore(); err != nil {
		return nil, err
	}
	if !h.generator.ReadDB() {
		return nil, fmt.Errorf("%w: generator uses static parameters, readDB is off", errors.ErrConfiguration)
	}
	at, err := extractIOV(ctx)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	record, changed, err := h.watcher.Check(ctx, at)
	if err != nil {
		return nil, err
	}
	if changed {
		if err := h.generator.Refresh(record, units.CMS); err != nil {
			h.watcher.Forget()
			return nil, err
		}
	}
	iov, _ := h.watcher.Current()
	current := h.beamSpotResponse()
	return &refreshResponse{IOV: iov, Changed: changed, Current: &current}, nil
}
