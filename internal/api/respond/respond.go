// Package respond writes the API's JSON response envelopes. Error bodies are
// {"message": ...} with an optional machine-readable code, the shape the web
// client's interceptors expect.
package respond

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorBody{Message: message})
}

// ErrorCode adds a stable code the client can branch on, used for the
// database availability responses.
func ErrorCode(w http.ResponseWriter, status int, message, code string) {
	JSON(w, status, errorBody{Message: message, Code: code})
}
