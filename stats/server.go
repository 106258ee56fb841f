package stats

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/pterm/pterm"

	"github.com/oarlock/rowflow/internal/models"
	"github.com/oarlock/rowflow/internal/timeutil"
	"github.com/oarlock/rowflow/pace"
	"github.com/oarlock/rowflow/store"
)

//go:embed web/*
var web embed.FS

var tpl = template.Must(
	template.New("index.html").ParseFS(web, "web/index.html"),
)

// TemplateData feeds the dashboard page.
type TemplateData struct {
	Title        string
	Year         int
	SessionTypes []models.SessionType
	Saved        bool
}

type errorHandler func(w http.ResponseWriter, r *http.Request) error

func (h errorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h(w, r)
	if err == nil {
		return
	}

	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, ErrInvalidYear),
		errors.Is(err, pace.ErrInvalidSplitFormat),
		errors.Is(err, pace.ErrUndefinedRate):
		status = http.StatusBadRequest
	default:
		slog.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type handlers struct {
	db      store.DB
	queries *Queries
}

// yearArg returns the year query parameter, defaulting to the current
// year when absent.
func yearArg(r *http.Request) string {
	year := r.URL.Query().Get("year")
	if year == "" {
		year = strconv.Itoa(time.Now().Year())
	}

	return year
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) error {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return nil
	}

	year, err := ParseYear(yearArg(r))
	if err != nil {
		return err
	}

	return tpl.Execute(w, &TemplateData{
		Title:        "RowFlow - Rowing Training Tracker",
		Year:         year,
		SessionTypes: models.SessionTypes,
		Saved:        r.URL.Query().Get("saved") == "1",
	})
}

func (h *handlers) yearlyTable(w http.ResponseWriter, r *http.Request) error {
	queriesServed.WithLabelValues("yearly_table").Inc()

	result, err := h.queries.YearlyTable(yearArg(r))
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, result)

	return nil
}

func (h *handlers) monthlyTotals(w http.ResponseWriter, r *http.Request) error {
	queriesServed.WithLabelValues("monthly_totals").Inc()

	result, err := h.queries.MonthlyTotals(yearArg(r))
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, result)

	return nil
}

func (h *handlers) data(w http.ResponseWriter, r *http.Request) error {
	queriesServed.WithLabelValues("data").Inc()

	result, err := h.queries.AllRecords()
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, result)

	return nil
}

func formFloat(r *http.Request, field string) float64 {
	v, err := strconv.ParseFloat(r.FormValue(field), 64)
	if err != nil {
		return 0
	}

	return v
}

// logSession handles the dashboard form: any two of distance, duration,
// and split derive the third, speed is backfilled, and the record is
// appended to the log.
func (h *handlers) logSession(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed,
			map[string]string{"error": "use POST to log a session"})

		return nil
	}

	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest,
			map[string]string{"error": "unable to parse form"})

		return nil
	}

	date, err := timeutil.ParseDay(r.FormValue("date"))
	if err != nil {
		// An unparseable date falls back to today so a session is
		// never lost to a typo.
		date = timeutil.RoundToStart(time.Now().UTC())
	}

	quantities := pace.Quantities{
		DistanceKM:  formFloat(r, "distance_km"),
		DurationMin: formFloat(r, "duration_min"),
	}

	if split := r.FormValue("split"); split != "" {
		quantities.SplitSec, err = pace.ParseSplit(split)
		if err != nil {
			return err
		}
	}

	quantities = pace.Resolve(quantities)

	speed := formFloat(r, "speed_kmh")
	if speed == 0 && quantities.DistanceKM > 0 && quantities.DurationMin > 0 {
		speed, err = pace.Speed(quantities.DistanceKM, quantities.DurationMin)
		if err != nil {
			return err
		}

		speed = round2(speed)
	}

	sessType := models.SessionType(r.FormValue("session_type"))
	if sessType == "" {
		sessType = models.TypeOther
	}

	record := models.Record{
		Date:        date,
		DistanceKM:  quantities.DistanceKM,
		DurationMin: quantities.DurationMin,
		SpeedKMH:    speed,
		Type:        sessType,
		Notes:       r.FormValue("notes"),
	}

	if err := record.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest,
			map[string]string{"error": err.Error()})

		return nil
	}

	if err := h.db.AddRecord(&record); err != nil {
		return err
	}

	sessionsLogged.WithLabelValues(string(record.Type)).Inc()

	slog.Info("session logged",
		slog.String("date", timeutil.DayKey(record.Date)),
		slog.Float64("distance_km", record.DistanceKM),
		slog.String("session_type", string(record.Type)),
	)

	target := fmt.Sprintf("/?saved=1&year=%d", record.Date.Year())
	http.Redirect(w, r, target, http.StatusSeeOther)

	return nil
}

func (h *handlers) exportCSV(w http.ResponseWriter, r *http.Request) error {
	records, err := h.db.GetRecords(time.Time{}, time.Time{}, nil)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf(
		"rowing_log_%s.csv",
		timeutil.DayKey(time.Now()),
	)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().
		Set("Content-Disposition", "attachment; filename="+filename)

	return store.WriteCSV(w, AllRecords(records))
}

func newMux(db store.DB) *http.ServeMux {
	h := &handlers{
		db:      db,
		queries: NewQueries(db),
	}

	mux := http.NewServeMux()

	mux.Handle("/", errorHandler(h.index))
	mux.Handle("/log", errorHandler(h.logSession))
	mux.Handle("/api/yearly_table", errorHandler(h.yearlyTable))
	mux.Handle("/api/monthly_totals", errorHandler(h.monthlyTotals))
	mux.Handle("/api/data", errorHandler(h.data))
	mux.Handle("/export", errorHandler(h.exportCSV))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

// Server starts the dashboard and API server on the given port, blocking
// until it fails.
func Server(db store.DB, port uint) error {
	pterm.Info.Printfln("starting server on port: %d", port)
	slog.Info("starting stats server", slog.Uint64("port", uint64(port)))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      newMux(db),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return srv.ListenAndServe()
}
