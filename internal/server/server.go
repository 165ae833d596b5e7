// Package server hosts both dashboards over HTTP: server-rendered pages for
// the browser and a JSON API returning the same reports.
package server

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/iwvelando/finance-dashboard/internal/decline"
	"github.com/iwvelando/finance-dashboard/internal/financials"
	"github.com/iwvelando/finance-dashboard/internal/inputs"
	"github.com/iwvelando/finance-dashboard/internal/report"
	"github.com/iwvelando/finance-dashboard/pkg/constants"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

// Options configures the dashboard handler.
type Options struct {
	MaxRequestSize int64
	Version        string
	Currency       string
	Scenarios      []decline.Scenario
}

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
	currency       string
	scenarios      []decline.Scenario
	templates      map[string]*template.Template
	help           template.HTML
}

// NewHandler constructs the HTTP handler that serves the dashboards and API.
func NewHandler(logger *zap.Logger, opts Options) (http.Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	maxRequestSize := opts.MaxRequestSize
	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	currency := strings.TrimSpace(opts.Currency)
	if currency == "" {
		currency = constants.DefaultCurrency
	}

	scenarios := opts.Scenarios
	if len(scenarios) == 0 {
		scenarios = decline.DefaultScenarios()
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	help, err := renderHelp()
	if err != nil {
		return nil, err
	}
	static, err := staticFS()
	if err != nil {
		return nil, fmt.Errorf("failed to prepare embedded static files: %w", err)
	}

	h := &handler{
		logger:         logger,
		maxRequestSize: maxRequestSize,
		version:        version,
		currency:       currency,
		scenarios:      append([]decline.Scenario(nil), scenarios...),
		templates:      templates,
		help:           help,
	}

	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	// Web UI
	r.Get("/", h.handleIndex)
	r.Get("/balance-sheet", h.handleBalanceSheetForm)
	r.Post("/balance-sheet", h.handleBalanceSheetSubmit)
	r.Get("/forecast", h.handleForecastPage)
	r.Get("/help", h.handleHelp)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	// JSON API
	r.Route("/api", func(api chi.Router) {
		api.Get("/fields/{dashboard}", h.handleFields)
		api.Post("/balance-sheet", h.handleBalanceSheetAPI)
		api.Post("/forecast", h.handleForecastAPI)
		api.Get("/version", h.handleVersion)
	})

	return r, nil
}

type valuesRequest struct {
	Values map[string]float64 `json:"values"`
}

type balanceSheetResponse struct {
	RenderID string                    `json:"renderId"`
	Inputs   inputs.Values             `json:"inputs"`
	Report   report.BalanceSheetReport `json:"report"`
	Warnings []string                  `json:"warnings,omitempty"`
	Duration string                    `json:"duration"`
}

type forecastResponse struct {
	RenderID string                `json:"renderId"`
	Inputs   inputs.Values         `json:"inputs"`
	Report   report.ForecastReport `json:"report"`
	Warnings []string              `json:"warnings,omitempty"`
	Duration string                `json:"duration"`
}

func (h *handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, pageIndex, struct{ pageBase }{h.base("Interactive Financial Dashboard")})
}

func (h *handler) handleHelp(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, pageHelp, helpPage{pageBase: h.base("Help"), Body: h.help})
}

func (h *handler) handleBalanceSheetForm(w http.ResponseWriter, r *http.Request) {
	set := inputs.BalanceSheetFields()
	page := balanceSheetPage{
		pageBase: h.base("Interactive Financial Dashboard"),
		Groups:   groupFields(set, set.Defaults(), h.currency, balanceSheetHeading),
	}
	h.renderPage(w, r, http.StatusOK, pageBalanceSheet, page)
}

func (h *handler) handleBalanceSheetSubmit(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleBalanceSheetSubmit"
	set := inputs.BalanceSheetFields()
	page := balanceSheetPage{pageBase: h.base("Interactive Financial Dashboard")}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	if err := r.ParseForm(); err != nil {
		status, msg := h.requestError(err, "failed to parse form")
		h.logFailure(r, op, status, msg)
		page.Groups = groupFields(set, set.Defaults(), h.currency, balanceSheetHeading)
		page.Error = msg
		h.renderPage(w, r, status, pageBalanceSheet, page)
		return
	}

	values, err := set.Collect(r.PostForm)
	if err != nil {
		h.logFailure(r, op, http.StatusBadRequest, err.Error())
		page.Groups = groupFields(set, submittedValues(set, r.PostForm), h.currency, balanceSheetHeading)
		page.Error = err.Error()
		h.renderPage(w, r, http.StatusBadRequest, pageBalanceSheet, page)
		return
	}
	page.Groups = groupFields(set, values, h.currency, balanceSheetHeading)
	page.Submitted = true

	rep := report.BuildBalanceSheetReport(
		set.Snapshot(values, financials.PreviousYear),
		set.Snapshot(values, financials.CurrentYear),
		h.currency,
	)
	page.Table = newTableView(rep.Table)
	page.Charts, err = chartsJSON([]report.Chart{rep.Trends, rep.IncomeVsCost, rep.EPS})
	if err != nil {
		h.respondPageError(w, r, op, err)
		return
	}

	h.logger.Info("balance sheet rendered",
		zap.String("op", op),
		zap.String("renderId", page.RenderID),
		zap.String("requestId", requestID(r.Context())),
	)
	h.renderPage(w, r, http.StatusOK, pageBalanceSheet, page)
}

func (h *handler) handleForecastPage(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleForecastPage"
	set := inputs.BaseYearFields()
	page := forecastPage{pageBase: h.base("5-Year Decline Forecast")}

	query := r.URL.Query()
	values, err := set.Collect(query)
	if err != nil {
		h.logFailure(r, op, http.StatusBadRequest, err.Error())
		page.Groups = groupFields(set, submittedValues(set, query), h.currency, baseYearHeading)
		page.Error = err.Error()
		h.renderPage(w, r, http.StatusBadRequest, pageForecast, page)
		return
	}
	page.Groups = groupFields(set, values, h.currency, baseYearHeading)

	rep := report.BuildForecastReport(set.Snapshot(values, financials.BaseYear), h.scenarios, h.currency)
	charts := make([]report.Chart, 0, 2*len(rep.Scenarios))
	for _, section := range rep.Scenarios {
		page.Scenarios = append(page.Scenarios, scenarioView{
			Heading: section.Table.Title,
			Table:   newTableView(section.Table),
			Decline: section.Decline.ID,
			Trend:   section.Trend.ID,
		})
		charts = append(charts, section.Decline, section.Trend)
	}
	page.Charts, err = chartsJSON(charts)
	if err != nil {
		h.respondPageError(w, r, op, err)
		return
	}

	h.logger.Debug("forecast rendered",
		zap.String("op", op),
		zap.String("renderId", page.RenderID),
		zap.Int("scenarios", len(page.Scenarios)),
	)
	h.renderPage(w, r, http.StatusOK, pageForecast, page)
}

func (h *handler) handleFields(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "dashboard")
	set, ok := inputs.FieldSetByName(name)
	if !ok {
		h.respondErrorWithOp(w, r, http.StatusNotFound, fmt.Sprintf("unknown dashboard %q", name), "server.handleFields")
		return
	}
	h.writeJSON(w, http.StatusOK, set)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleBalanceSheetAPI(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleBalanceSheetAPI"
	start := time.Now()
	set := inputs.BalanceSheetFields()

	values, warnings, ok := h.collectJSON(w, r, set, op)
	if !ok {
		return
	}

	response := balanceSheetResponse{
		RenderID: uuid.NewString(),
		Inputs:   values,
		Report: report.BuildBalanceSheetReport(
			set.Snapshot(values, financials.PreviousYear),
			set.Snapshot(values, financials.CurrentYear),
			h.currency,
		),
		Warnings: warnings,
	}
	elapsed := time.Since(start)
	response.Duration = elapsed.String()

	h.logger.Info("balance sheet computed",
		zap.String("op", op),
		zap.String("renderId", response.RenderID),
		zap.Int("rows", len(response.Report.Table.Rows)),
		zap.Duration("duration", elapsed),
	)
	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleForecastAPI(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleForecastAPI"
	start := time.Now()
	set := inputs.BaseYearFields()

	values, warnings, ok := h.collectJSON(w, r, set, op)
	if !ok {
		return
	}

	response := forecastResponse{
		RenderID: uuid.NewString(),
		Inputs:   values,
		Report:   report.BuildForecastReport(set.Snapshot(values, financials.BaseYear), h.scenarios, h.currency),
		Warnings: warnings,
	}
	elapsed := time.Since(start)
	response.Duration = elapsed.String()

	h.logger.Info("forecast computed",
		zap.String("op", op),
		zap.String("renderId", response.RenderID),
		zap.Int("scenarios", len(response.Report.Scenarios)),
		zap.Duration("duration", elapsed),
	)
	h.writeJSON(w, http.StatusOK, response)
}

// collectJSON decodes a values payload and collects it against set. Unknown
// keys are reported back as warnings rather than rejected.
func (h *handler) collectJSON(w http.ResponseWriter, r *http.Request, set inputs.FieldSet, op string) (inputs.Values, []string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		status, msg := h.requestError(err, "failed to read request")
		h.respondErrorWithOp(w, r, status, msg, op)
		return nil, nil, false
	}

	var payload valuesRequest
	if err := json.Unmarshal(body, &payload); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return nil, nil, false
	}

	values, err := set.Collect(inputs.MapSource(payload.Values))
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return nil, nil, false
	}

	keys := make([]string, 0, len(payload.Values))
	for key := range payload.Values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var warnings []string
	for _, key := range set.UnknownKeys(keys) {
		warnings = append(warnings, fmt.Sprintf("unknown field %q ignored", key))
	}
	return values, warnings, true
}

func (h *handler) requestError(err error, prefix string) (int, string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize)
	}
	return http.StatusBadRequest, fmt.Sprintf("%s: %v", prefix, err)
}

func (h *handler) base(title string) pageBase {
	return pageBase{Title: title, Version: h.version, RenderID: uuid.NewString()}
}

func (h *handler) renderPage(w http.ResponseWriter, r *http.Request, status int, page string, data interface{}) {
	body, err := executePage(h.templates[page], data)
	if err != nil {
		h.respondPageError(w, r, "server.renderPage", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.logger.Warn("failed to write page",
			zap.String("op", "server.renderPage"),
			zap.String("page", page),
			zap.Error(err),
		)
	}
}

func (h *handler) respondPageError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logFailure(r, op, http.StatusInternalServerError, err.Error())
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *handler) logFailure(r *http.Request, op string, status int, msg string) {
	h.logger.Error("dashboard request failed",
		zap.String("op", op),
		zap.String("requestId", requestID(r.Context())),
		zap.Int("status", status),
		zap.String("error", msg),
	)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logFailure(r, op, status, msg)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

// submittedValues keeps whatever numeric values were submitted so a rejected
// form is re-rendered close to what the user entered.
func submittedValues(set inputs.FieldSet, form url.Values) inputs.Values {
	values := set.Defaults()
	for _, field := range set.Fields {
		if parsed, err := set.Collect(singleValue(field.Key, form.Get(field.Key))); err == nil {
			values[field.Key] = parsed[field.Key]
		}
	}
	return values
}

func singleValue(key, raw string) url.Values {
	return url.Values{key: []string{raw}}
}
