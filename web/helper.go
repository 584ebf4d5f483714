package web

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/hazeltet845/cmssw/conditions"
	"github.com/hazeltet845/cmssw/errors"
)

func extractUint32URLParam(ctx context.Context, name string) (uint32, error) {
	chiContext := chi.RouteContext(ctx)
	value, parseErr := strconv.ParseUint(chiContext.URLParam(name), 10, 32)
	if parseErr != nil {
		return 0, fmt.Errorf("%w: %s", errors.ErrMalformed, name)
	}
	return uint32(value), nil
}

func extractIOV(ctx context.Context) (conditions.IOV, error) {
	run, err := extractUint32URLParam(ctx, "run")
	if err != nil {
		return conditions.IOV{}, err
	}
	lumi, err := extractUint32URLParam(ctx, "lumi")
	if err != nil {
		return conditions.IOV{}, err
	}
	return conditions.IOV{Run: run, LumiBlock: lumi}, nil
}

func writeJSONResponse(w http.ResponseWriter, httpStatus int, body interface{}) error {
	marshaled, marshalingErr := json.Marshal(body)
	if marshalingErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return marshalingErr
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_, writeErr := w.Write(marshaled)
	return writeErr
}

func requestErrStatus(err error) int {
	switch {
	case goerrors.Is(err, errors.ErrNotFound):
		return http.StatusNotFound
	case goerrors.Is(err, errors.ErrConfiguration),
		goerrors.Is(err, errors.ErrLogic),
		goerrors.Is(err, errors.ErrMalformed),
		goerrors.Is(err, errors.ErrInvalidForm):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func handleRequestErr(w http.ResponseWriter, err error) {
	status := requestErrStatus(err)
	if status == http.StatusInternalServerError {
		log.Error(err.Error())
	}
	var formErr errors.FormError
	if goerrors.As(err, &formErr) {
		_ = writeJSONResponse(w, status, formErr)
		return
	}
	_ = writeJSONResponse(w, status, err.Error())
}
