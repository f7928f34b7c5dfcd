package http

import (
	"encoding/json"
	"net/http"
)

// API envelope: {success, message, data} on success and
// {success, message, error:{code, details}} on failure.

type apiError struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

type apiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, apiResponse{Success: true, Message: message, Data: data})
}

func writeError(w http.ResponseWriter, status int, message, code, details string) {
	writeJSON(w, status, apiResponse{Success: false, Message: message, Error: &apiError{Code: code, Details: details}})
}
