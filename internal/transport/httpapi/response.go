package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
)

type response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type apiError struct {
	Code    int
	Message string
}

func (e *apiError) Error() string {
	return e.Message
}

var (
	errBadRequest = &apiError{Code: http.StatusBadRequest, Message: "bad request"}
	errEmpty      = &apiError{Code: http.StatusBadRequest, Message: "message must not be empty"}
	errInvalid    = &apiError{Code: http.StatusBadRequest, Message: "message or session_id too long"}
	errTooLarge   = &apiError{Code: http.StatusRequestEntityTooLarge, Message: "request body too large"}
	errBusy       = &apiError{Code: http.StatusConflict, Message: "a response is already being generated for this session"}
	errNotFound   = &apiError{Code: http.StatusNotFound, Message: "session not found"}
	errUpstream   = &apiError{Code: http.StatusBadGateway, Message: "auralis service unavailable"}
)

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, response{Data: data})
}

func writeError(w http.ResponseWriter, err error) {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		writeJSON(w, apiErr.Code, response{Error: apiErr.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, response{Error: "internal server error"})
}
