package api

import (
	"encoding/json"
	goerrors "errors"
	"net/http"

	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/errors"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: err.Error()}

	code := errors.CodeOf(err)
	resp.Code = string(code)

	var details *errors.ErrorDetails
	if goerrors.As(err, &details) {
		resp.Field = details.Field
	}

	var status int
	switch code {
	case errors.OrderValidationError, errors.GeneralBadRequestError:
		status = http.StatusBadRequest
	case errors.OrderNotFound, errors.GeneralNotFoundError:
		status = http.StatusNotFound
	case errors.OrderAlreadyTerminal, errors.OrderConcurrencyConflict:
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
		resp.Error = "internal server error"
	}

	writeJSON(w, status, resp)
}
