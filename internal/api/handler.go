package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/eugenenazirov/wagon-calculator/internal/batch"
	"github.com/eugenenazirov/wagon-calculator/internal/calculator"
	"github.com/eugenenazirov/wagon-calculator/internal/catalog"
	"github.com/eugenenazirov/wagon-calculator/internal/report"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

const maxUploadBytes = 8 << 20

// Handler wires calculator and catalog dependencies into HTTP handlers.
type Handler struct {
	calculator calculator.Calculator
	catalog    catalog.Reader

	clock func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(calc calculator.Calculator, vehicles catalog.Reader, opts ...HandlerOption) *Handler {
	h := &Handler{
		calculator: calc,
		catalog:    vehicles,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListVehicles(w http.ResponseWriter, r *http.Request) {
	_ = r
	vehicles := h.catalog.List()
	writeJSON(w, http.StatusOK, vehiclesResponse{Vehicles: vehicles, Count: len(vehicles)})
}

func (h *Handler) handleGetVehicle(w http.ResponseWriter, r *http.Request) {
	spec, err := h.catalog.Lookup(r.PathValue("name"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spec)
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	spec, in, rep, ok := h.calculateFromRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newCalculateResponse(spec, in, rep))
}

func (h *Handler) handleCalculatePDF(w http.ResponseWriter, r *http.Request) {
	spec, in, rep, ok := h.calculateFromRequest(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	doc := report.Document{
		GeneratedAt: h.clock(),
		Vehicle:     spec,
		Input:       in,
		Result:      rep,
	}
	if err := report.WritePDF(&buf, doc); err != nil {
		writeInternalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"utilisation.pdf\"")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handleCalculateBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "multipart field \"file\" with an XLSX workbook is required")
		return
	}
	defer file.Close()

	rows, err := batch.ParseLoads(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid workbook", err.Error())
		return
	}

	resp := batchResponse{Results: make([]batchResult, 0, len(rows))}
	for _, row := range rows {
		result := batchResult{Line: row.Line, Vehicle: row.Vehicle}
		if row.Err != nil {
			result.Error = row.Err.Error()
			resp.Failed++
			resp.Results = append(resp.Results, result)
			continue
		}

		spec, lookupErr := h.catalog.Lookup(row.Vehicle)
		if lookupErr != nil {
			result.Error = lookupErr.Error()
			resp.Failed++
			resp.Results = append(resp.Results, result)
			continue
		}

		rep, calcErr := h.calculator.Calculate(spec, row.Input)
		if calcErr != nil {
			result.Error = calcErr.Error()
			resp.Failed++
			resp.Results = append(resp.Results, result)
			continue
		}

		calc := newCalculateResponse(spec, row.Input, rep)
		result.Utilisation = &calc
		resp.Succeeded++
		resp.Results = append(resp.Results, result)
	}
	resp.Count = len(resp.Results)

	writeJSON(w, http.StatusOK, resp)
}

// calculateFromRequest decodes and validates a calculate request and runs the
// calculator. It writes the error response itself and reports ok=false on failure.
func (h *Handler) calculateFromRequest(w http.ResponseWriter, r *http.Request) (calculator.VehicleSpec, calculator.LoadInput, calculator.Report, bool) {
	var req calculateRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload; doors must be an integer and pallets a number")
		return calculator.VehicleSpec{}, calculator.LoadInput{}, calculator.Report{}, false
	}

	in := calculator.LoadInput{Doors: req.Doors, Pallets: req.Pallets}
	if err := calculator.ValidateInput(in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", err.Error())
		return calculator.VehicleSpec{}, calculator.LoadInput{}, calculator.Report{}, false
	}

	spec, err := h.catalog.Lookup(req.Vehicle)
	if err != nil {
		writeLookupError(w, err)
		return calculator.VehicleSpec{}, calculator.LoadInput{}, calculator.Report{}, false
	}

	rep, calcErr := h.calculator.Calculate(spec, in)
	if calcErr != nil {
		switch {
		case errors.Is(calcErr, calculator.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Invalid request", calcErr.Error())
		case errors.Is(calcErr, calculator.ErrConfiguration):
			writeError(w, http.StatusUnprocessableEntity, "Calculation unavailable for this vehicle", calcErr.Error(),
				"Check the capacity figures configured for this vehicle in the catalog")
		default:
			writeInternalError(w, calcErr)
		}
		return calculator.VehicleSpec{}, calculator.LoadInput{}, calculator.Report{}, false
	}

	return spec, in, rep, true
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, catalog.ErrVehicleNotFound) {
		writeError(w, http.StatusNotFound, "Unknown vehicle", err.Error(), "List available vehicles with GET /api/vehicles")
		return
	}
	writeInternalError(w, err)
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type calculateRequest struct {
	Vehicle string  `json:"vehicle"`
	Doors   int     `json:"doors"`
	Pallets float64 `json:"pallets"`
}

type metricResponse struct {
	Label string  `json:"label"`
	Pct   float64 `json:"pct"`
}

type calculateResponse struct {
	Vehicle string  `json:"vehicle"`
	Doors   int     `json:"doors"`
	Pallets float64 `json:"pallets"`
	calculator.Report
	Metrics   []metricResponse `json:"metrics"`
	Breakdown []string         `json:"breakdown"`
}

func newCalculateResponse(spec calculator.VehicleSpec, in calculator.LoadInput, rep calculator.Report) calculateResponse {
	metrics := report.Metrics(rep)
	labelled := make([]metricResponse, 0, len(metrics))
	for _, m := range metrics {
		labelled = append(labelled, metricResponse{Label: m.Label, Pct: m.Pct})
	}

	return calculateResponse{
		Vehicle:   spec.Name,
		Doors:     in.Doors,
		Pallets:   in.Pallets,
		Report:    rep,
		Metrics:   labelled,
		Breakdown: report.Breakdown(spec, in, rep),
	}
}

type batchResult struct {
	Line        int                `json:"line"`
	Vehicle     string             `json:"vehicle"`
	Utilisation *calculateResponse `json:"utilisation,omitempty"`
	Error       string             `json:"error,omitempty"`
}

type batchResponse struct {
	Count     int           `json:"count"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Results   []batchResult `json:"results"`
}

type vehiclesResponse struct {
	Vehicles []calculator.VehicleSpec `json:"vehicles"`
	Count    int                      `json:"count"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
