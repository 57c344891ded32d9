package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// sendJSON writes data as the JSON response body.
func sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

// sendError renders a logical failure. The status stays 200: clients of
// this API distinguish outcomes by the presence of the error key, not
// by status code.
func sendError(w http.ResponseWriter, message string) {
	sendJSON(w, map[string]string{"error": message})
}

// sendMessage renders a write-path success acknowledgement.
func sendMessage(w http.ResponseWriter, message string) {
	sendJSON(w, map[string]string{"message": message})
}

// bearerCredential extracts the opaque credential from the
// Authorization header, or returns "" when absent.
func bearerCredential(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
