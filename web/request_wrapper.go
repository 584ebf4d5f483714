package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/hazeltet845/cmssw/errors"
)

type webHandler = func(w http.ResponseWriter, r *http.Request)

// requestWrapper adapts func(ctx) (T, error) and func(ctx, *Body) (T, error)
// handlers to http handlers. The body is decoded from JSON.
func requestWrapper(handlerFunc interface{}) webHandler {
	inputType, validateErr := requestWrapperValidateSignature(handlerFunc)
	if validateErr != nil {
		log.Errorf("[ASSERT][INIT] error in web handler [%s]", validateErr.Error())
		panic(validateErr)
	}

	if inputType == nil {
		return requestWrapperCallContextOnly(reflect.ValueOf(handlerFunc))
	}
	return requestWrapperCallWithBody(reflect.ValueOf(handlerFunc), inputType)
}

func requestWrapperValidateSignature(handler interface{}) (reflect.Type, error) {
	handlerValue := reflect.ValueOf(handler)
	if !handlerValue.IsValid() {
		return nil, fmt.Errorf("handler is not valid [%+v]", handler)
	}

	handlerType := handlerValue.Type()
	if handlerValue.Kind() != reflect.Func {
		return nil, fmt.Errorf("handler %v is not a function", handlerType)
	}

	contextType := reflect.TypeOf((*context.Context)(nil)).Elem()
	switch handlerType.NumIn() {
	case 1, 2:
		if !handlerType.In(0).Implements(contextType) {
			return nil, fmt.Errorf("first argument of %v is not of a type context.Context", handlerType)
		}
		if handlerType.NumIn() == 2 && handlerType.In(1).Kind() != reflect.Ptr {
			return nil, fmt.Errorf("second argument of %v is not ptr", handlerType)
		}
	default:
		return nil, fmt.Errorf("handler %v has wrong number of arguments %d", handlerType, handlerType.NumIn())
	}

	errorType := reflect.TypeOf((*error)(nil)).Elem()
	switch handlerType.NumOut() {
	case 1:
		if !handlerType.Out(0).Implements(errorType) {
			return nil, fmt.Errorf("first return value of %v doesn't implement error interface", handlerType)
		}
	case 2:
		if !handlerType.Out(1).Implements(errorType) {
			return nil, fmt.Errorf("second return value of %v doesn't implement error interface", handlerType)
		}
	default:
		return nil, fmt.Errorf("handler %v has wrong number of return values %d", handlerType, handlerType.NumOut())
	}

	if handlerType.NumIn() == 2 {
		return handlerType.In(1).Elem(), nil
	}
	return nil, nil
}

func requestWrapperCallWithBody(handler reflect.Value, inputType reflect.Type) webHandler {
	return func(w http.ResponseWriter, r *http.Request) {
		arg := reflect.New(inputType)
		body, readErr := io.ReadAll(r.Body)
		if readErr != nil {
			handleRequestErr(w, errors.ErrInternalServerError)
			return
		}
		if unmarshalErr := json.Unmarshal(body, arg.Interface()); unmarshalErr != nil {
			handleRequestErr(w, fmt.Errorf("%w: %s", errors.ErrMalformed, unmarshalErr.Error()))
			return
		}
		response := handler.Call([]reflect.Value{
			reflect.ValueOf(r.Context()),
			arg,
		})
		requestWrapperResultHandler(w, response)
	}
}

func requestWrapperCallContextOnly(handler reflect.Value) webHandler {
	return func(w http.ResponseWriter, r *http.Request) {
		response := handler.Call([]reflect.Value{
			reflect.ValueOf(r.Context()),
		})
		requestWrapperResultHandler(w, response)
	}
}

func requestWrapperResultHandler(w http.ResponseWriter, results []reflect.Value) {
	switch len(results) {
	case 1:
		if results[0].IsNil() {
			_ = writeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
		} else {
			handleRequestErr(w, results[0].Interface().(error))
		}
	case 2:
		if results[1].IsNil() {
			_ = writeJSONResponse(w, http.StatusOK, results[0].Interface())
		} else {
			handleRequestErr(w, results[1].Interface().(error))
		}
	}
}
