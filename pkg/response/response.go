// Package response writes the API's JSON envelope.
//
// Every endpoint answers with the same shape so clients can branch on a
// single flag:
//
//	{"success": true,  "data": ...}
//	{"success": false, "error": "Crop not found"}
package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the wire format shared by all endpoints.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 with data.
func Success(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// Created sends a 201 with data.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, Envelope{Success: true, Data: data})
}

// Message sends a 200 with a human-readable message and no data.
func Message(w http.ResponseWriter, msg string) {
	write(w, http.StatusOK, Envelope{Success: true, Message: msg})
}

// Error sends a failure envelope with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Success: false, Error: message})
}

// ValidationError sends a 422 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusUnprocessableEntity, Envelope{
		Success: false,
		Error:   "Validation failed",
		Errors:  errs,
	})
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

// Forbidden sends a 403.
func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, message)
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}
