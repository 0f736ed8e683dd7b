package api

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	"syncvault/internal/apperr"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError maps the error taxonomy onto HTTP statuses. Store failures
// are logged but their details are not leaked to the caller.
func respondError(w http.ResponseWriter, err error) {
	var vErr *apperr.ValidationError
	var bErr *apperr.BackendConnectionError
	var sErr *apperr.StoreError

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		http.Error(w, "Project not found", http.StatusNotFound)
	case errors.As(err, &vErr):
		http.Error(w, vErr.Msg, http.StatusBadRequest)
	case errors.As(err, &bErr):
		http.Error(w, bErr.Error(), http.StatusBadGateway)
	case errors.As(err, &sErr):
		log.Printf("ERROR: store failure: %v", sErr.Err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	default:
		log.Printf("ERROR: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// formatBytes renders a byte count for display, log-1024 scaled with
// two-decimal rounding. The stored numeric value is never touched.
func formatBytes(bytes int64) string {
	if bytes == 0 {
		return "0 KB"
	}
	const k = 1024
	sizes := []string{"Bytes", "KB", "MB", "GB"}

	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(k)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}

	value := math.Round(float64(bytes)/math.Pow(k, float64(i))*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizes[i]
}
