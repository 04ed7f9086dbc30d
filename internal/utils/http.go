package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-pdf-relay/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// It sets the "Content-Type" header to "application/json". If marshaling
// fails, it responds with 500 Internal Server Error and returns a wrapped
// error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
//	WriteJSON(w, models.NewRelayError("not found", nil), http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteBinary writes a relayed payload with its content type, length and,
// when present, content disposition.
func WriteBinary(w http.ResponseWriter, payload models.BinaryPayload, statusCode int) (int, error) {
	contentType := payload.ContentType
	if contentType == "" {
		contentType = models.DefaultBinaryContentType
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(payload.Body)))
	if payload.ContentDisposition != "" {
		w.Header().Set("Content-Disposition", payload.ContentDisposition)
	}
	w.WriteHeader(statusCode)

	return w.Write(payload.Body)
}
