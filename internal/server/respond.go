package server

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/inboxsavings/savings-calculator/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

type validationResponse struct {
	Error  string                  `json:"error"`
	Fields domain.ValidationErrors `json:"fields"`
}

func respondValidation(w http.ResponseWriter, errs domain.ValidationErrors) {
	respondJSON(w, http.StatusUnprocessableEntity, validationResponse{Error: "validation failed", Fields: errs})
}
