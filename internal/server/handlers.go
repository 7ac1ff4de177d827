package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/inboxsavings/savings-calculator/internal/calculation"
	"github.com/inboxsavings/savings-calculator/internal/config"
	"github.com/inboxsavings/savings-calculator/internal/domain"
	"github.com/inboxsavings/savings-calculator/internal/output"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Handlers serves the calculator API.
type Handlers struct {
	engine *calculation.CalculationEngine
	parser *config.InputParser
	log    *zap.Logger
}

// NewHandlers wires the handlers to an engine. A nil logger discards logs.
func NewHandlers(engine *calculation.CalculationEngine, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{engine: engine, parser: config.NewInputParser(), log: log}
}

// HealthCheck returns the health status of the API
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Variants lists the supported calculator variants.
func (h *Handlers) Variants(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"variants": domain.Variants(),
		"default":  domain.DefaultVariant,
	})
}

// Defaults returns the prefilled form of a variant.
func (h *Handlers) Defaults(w http.ResponseWriter, r *http.Request) {
	v, err := domain.ParseVariant(chi.URLParam(r, "variant"))
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, config.NewFormDocument("", config.DefaultForm(v)))
}

// Preview returns the domains needed for a desired daily volume.
func (h *Handlers) Preview(w http.ResponseWriter, r *http.Request) {
	volume, err := h.parser.ParseDesiredVolume(r.URL.Query().Get("desiredDailyVolume"))
	if err != nil {
		h.respondParseError(w, err)
		return
	}
	n, _ := calculation.PreviewDomains(volume)
	respondJSON(w, http.StatusOK, map[string]int64{"domainsNeeded": n})
}

type calculateResponse struct {
	Variant   domain.Variant            `json:"variant"`
	Results   domain.CalculationResults `json:"results"`
	Formatted output.FormattedResults   `json:"formatted"`
	Breakdown domain.CostBreakdown      `json:"breakdown"`
	Headline  output.FormattedHeadline  `json:"headline"`
}

// Calculate validates a form and returns its savings breakdown.
func (h *Handlers) Calculate(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeObject(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	form, err := h.parser.ParseForm(raw)
	if err != nil {
		h.respondParseError(w, err)
		return
	}
	cmp := h.engine.Compare("", form)
	respondJSON(w, http.StatusOK, calculateResponse{
		Variant:   cmp.Variant,
		Results:   cmp.Results,
		Formatted: output.FormatResults(cmp.Results),
		Breakdown: cmp.Breakdown,
		Headline:  output.FormatHeadline(output.HeadlineFor(cmp)),
	})
}

func (h *Handlers) respondParseError(w http.ResponseWriter, err error) {
	if verrs, ok := domain.AsValidationErrors(err); ok {
		h.log.Debug("validation failed", zap.Int("fields", len(verrs)), zap.Error(err))
		respondValidation(w, verrs)
		return
	}
	h.log.Error("unexpected parse error", zap.Error(err))
	respondError(w, http.StatusInternalServerError, "internal error")
}

var errNotObject = errors.New("request body must be a JSON object")

func decodeObject(body io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, errNotObject
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.New("invalid JSON: " + err.Error())
	}
	return raw, nil
}
