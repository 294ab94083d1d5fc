// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"net/http"
)

// Media types written by the handlers.
const (
	contentTypeJSON   = "application/json"
	contentTypeJSONLD = "application/ld+json"
)

// ErrorResponse writes a JSON error body of the form
// {"error": errorCode, "message": message}.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) error {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

// WriteJSON writes data as JSON with the given status.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	return writeEncoded(w, contentTypeJSON, statusCode, data)
}

// WriteJSONLD writes a JSON-LD document.
func WriteJSONLD(w http.ResponseWriter, statusCode int, doc any) error {
	return writeEncoded(w, contentTypeJSONLD, statusCode, doc)
}

func writeEncoded(w http.ResponseWriter, contentType string, statusCode int, data any) error {
	w.Header().Set("Content-Type", contentType)
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(data)
}
