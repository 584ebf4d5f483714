// Package web exposes a beta function vertex generator over HTTP.
package web

import (
	"net/http"
	"sync"

	"github.com/hazeltet845/cmssw/conditions"
	conf "github.com/hazeltet845/cmssw/config"
	"github.com/hazeltet845/cmssw/vertex"
)

var log = conf.NamedLogger("web")

// handler shares one generator between requests. The generator itself does
// no locking, every handler takes mu around its use.
type handler struct {
	mu        sync.Mutex
	generator *vertex.BetaFunc
	watcher   *conditions.Watcher
	store     conditions.Store
}

// NewRouter creates the api for generator. store may be nil, then the
// conditions endpoints answer with not found.
func NewRouter(generator *vertex.BetaFunc, store conditions.Store) http.Handler {
	h := &handler{generator: generator, store: store}
	if store != nil {
		h.watcher = conditions.NewWatcher(store)
	}
	return setupRoutes(h)
}
