package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/linesmerrill/vehicle-check-api/checks"
	"github.com/linesmerrill/vehicle-check-api/config"
	"github.com/linesmerrill/vehicle-check-api/models"
)

// Check exported for testing purposes
type Check struct {
	Checker *checks.Checker
}

// CheckHandler builds the compliance report for the requested plate. Source
// failures surface inside the report body; only a failure composing the
// response itself raises the status above 200.
func (c Check) CheckHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	plate := strings.ToUpper(strings.TrimSpace(req.Plate))
	if plate == "" {
		config.ErrorStatus("plate is required", http.StatusBadRequest, w, errors.New("missing plate"))
		return
	}
	lang := strings.ToLower(req.Lang)
	if lang == "" {
		lang = checks.LangEnglish
	}
	detail := strings.ToLower(req.Type)

	zap.S().Debugw("compliance check requested", "plate", plate, "lang", lang, "type", detail)

	report := c.Checker.Check(r.Context(), plate, lang, detail)

	b, err := json.Marshal(report)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
