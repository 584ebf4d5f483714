package web

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/hazeltet845/cmssw/beamspot"
	"github.com/hazeltet845/cmssw/errors"
	"github.com/hazeltet845/cmssw/lorentz"
	"github.com/hazeltet845/cmssw/units"
)

const maxVerticesPerRequest = 100000

type beamSpotResponse struct {
	Configured bool                `json:"configured"`
	ReadDB     bool                `json:"readDB"`
	Parameters beamspot.Parameters `json:"parameters"`
	Card       string              `json:"card"`
}

func (h *handler) beamSpotResponse() beamSpotResponse {
	params := h.generator.Parameters()
	return beamSpotResponse{
		Configured: h.generator.Configured(),
		ReadDB:     h.generator.ReadDB(),
		Parameters: params,
		Card:       beamspot.Serialize(params),
	}
}

func (h *handler) getBeamSpotHandler(ctx context.Context) (*beamSpotResponse, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	response := h.beamSpotResponse()
	return &response, nil
}

// configureBeamSpotHandler takes values in cm, ns and rad.
func (h *handler) configureBeamSpotHandler(ctx context.Context, input *beamspot.Raw) (*beamSpotResponse, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.generator.Configure(*input, units.CMS); err != nil {
		return nil, err
	}
	response := h.beamSpotResponse()
	return &response, nil
}

type setSigmaZInput struct {
	// SigmaZ in cm.
	SigmaZ float64 `json:"sigmaZ"`
}

func (h *handler) setSigmaZHandler(ctx context.Context, input *setSigmaZInput) (*beamSpotResponse, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.generator.SetSigmaZ(input.SigmaZ * units.Centimeter); err != nil {
		return nil, err
	}
	response := h.beamSpotResponse()
	return &response, nil
}

func (h *handler) getBoostHandler(ctx context.Context) (*lorentz.Matrix, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	boost, err := h.generator.InvLorentzBoost()
	if err != nil {
		return nil, err
	}
	return &boost, nil
}

type sampleVerticesInput struct {
	N    int   `json:"n"`
	Seed int64 `json:"seed"`
	// Boosted moves every vertex with the inverse Lorentz boost.
	Boosted bool `json:"boosted"`
}

func (h *handler) sampleVerticesHandler(ctx context.Context, input *sampleVerticesInput) ([]lorentz.Vector, error) {
	if input.N <= 0 || input.N > maxVerticesPerRequest {
		formErr := errors.NewFormError()
		formErr["n"] = fmt.Sprintf("should be in range [1, %d]", maxVerticesPerRequest)
		return nil, formErr
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	rng := rand.New(rand.NewSource(input.Seed))
	var boost lorentz.Matrix
	if input.Boosted {
		var err error
		if boost, err = h.generator.InvLorentzBoost(); err != nil {
			return nil, err
		}
	}
	vertices := make([]lorentz.Vector, 0, input.N)
	for i := 0; i < input.N; i++ {
		v, err := h.generator.Sample(rng)
		if err != nil {
			return nil, err
		}
		if input.Boosted {
			v = boost.Apply(v)
		}
		vertices = append(vertices, v)
	}
	return vertices, nil
}
