package controller

import (
	"atsconnect/pkg/logger"
	"atsconnect/pkg/serrors"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// ErrorBody is the JSON body of every API error response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var kindStatus = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrNotFound:      http.StatusNotFound,
	serrors.ErrUnauthorized:  http.StatusUnauthorized,
	serrors.ErrForbidden:     http.StatusForbidden,
	serrors.ErrBadRequest:    http.StatusBadRequest,
	serrors.ErrConflict:      http.StatusConflict,
	serrors.ErrValidation:    http.StatusUnprocessableEntity,
	serrors.ErrConfiguration: http.StatusInternalServerError,
	serrors.ErrTimeout:       http.StatusGatewayTimeout,
	serrors.ErrUnavailable:   http.StatusServiceUnavailable,
	serrors.ErrRateLimited:   http.StatusTooManyRequests,
}

// StatusOf maps the semantic kind of err to an HTTP status. Errors without a
// kind are internal errors.
func StatusOf(err error) int {
	if status, ok := kindStatus[serrors.KindOf(err)]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// WriteJSON writes v as the JSON response body.
func WriteJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// WriteError writes err as an ErrorBody. Server errors are logged and their
// message is replaced, so internals never reach the client.
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	status := StatusOf(err)
	body := ErrorBody{Code: serrors.ErrInternal.Error(), Message: "internal error"}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
		if k := serrors.KindOf(err); k != "" {
			body.Code = k.Error()
		}
	} else {
		body = ErrorBody{Code: serrors.KindOf(err).Error(), Message: err.Error()}
	}

	WriteJSON(ctx, w, status, body)
}

// DecodeJSON reads at most limit bytes of the request body into v.
func DecodeJSON(r *http.Request, v any, limit int64) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, limit))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return serrors.Wrap(serrors.ErrBadRequest, err, "malformed JSON body")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	if dec.More() {
		return serrors.With(serrors.ErrBadRequest, "request body must hold a single JSON value")
	}

	return nil
}

// InvalidParam reports an unparseable path parameter. The addressed resource
// cannot exist, so it is a not found error.
func InvalidParam(name string, err error) error {
	return serrors.Wrap(serrors.ErrNotFound, err, "invalid %s", name)
}
