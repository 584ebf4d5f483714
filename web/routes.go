package web

import (
	"net/http"

	"github.com/go-chi/chi"
)

func setupRoutes(h *handler) http.Handler {
	w := requestWrapper

	router := chi.NewRouter()

	router.Route("/beamspot", func(router chi.Router) {
		router.Get("/", w(h.getBeamSpotHandler))
		router.Put("/", w(h.configureBeamSpotHandler))
		router.Put("/sigmaZ", w(h.setSigmaZHandler))
	})
	router.Get("/boost", w(h.getBoostHandler))
	router.Post("/vertices", w(h.sampleVerticesHandler))

	router.Route("/conditions", func(router chi.Router) {
		router.Get("/{run}/{lumi}", w(h.getConditionsHandler))
		router.Put("/{run}/{lumi}", w(h.putConditionsHandler))
		router.Post("/{run}/{lumi}/refresh", w(h.refreshHandler))
	})
	return router
}
