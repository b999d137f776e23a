package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"todayrates/internal/adapters"
	"todayrates/internal/domain"
	"todayrates/internal/history"
	"todayrates/internal/rate"
)

type RateService interface {
	Board(ctx context.Context) (*domain.RateBoard, error)
	History(ctx context.Context, f adapters.RateFilter) ([]history.Group[domain.RateWithChange], error)
	InsertMany(ctx context.Context, rows []domain.ExchangeRate) ([]domain.ExchangeRate, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ExchangeRatePatch, updatedBy uuid.NullUUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GoldService interface {
	Board(ctx context.Context) (*domain.GoldBoard, error)
	History(ctx context.Context, f adapters.GoldFilter) ([]history.Group[domain.GoldWithChange], error)
	InsertMany(ctx context.Context, rows []domain.GoldPrice) ([]domain.GoldPrice, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.GoldPricePatch, updatedBy uuid.NullUUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SettingsStore interface {
	Get() domain.Settings
	Save(candidate domain.Settings) error
	Reset() (domain.Settings, error)
}

type Generator interface {
	Generate(ctx context.Context, date time.Time, updatedBy uuid.NullUUID) (*domain.GenerateReport, error)
	Preview(ctx context.Context) ([]rate.Quote, []rate.GoldQuote, []string, error)
}

type AuthService interface {
	SignIn(ctx context.Context, email, password string) (string, error)
}

type Handler struct {
	rates    RateService
	gold     GoldService
	settings SettingsStore
	gen      Generator
	auth     AuthService
	validate *validator.Validate
}

func New(
	rateService RateService,
	goldService GoldService,
	settingsStore SettingsStore,
	generator Generator,
	authService AuthService,
) *Handler {
	return &Handler{
		rates:    rateService,
		gold:     goldService,
		settings: settingsStore,
		gen:      generator,
		auth:     authService,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// decodeStrict decodes a capped, unknown-field-rejecting JSON body and runs
// struct validation on the result.
func decodeStrict(w http.ResponseWriter, r *http.Request, v *validator.Validate, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := v.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// parseDateRange reads optional from/to query params in YYYY-MM-DD form.
// The to bound is widened to the end of its day so it is inclusive.
func parseDateRange(r *http.Request) (from, to time.Time, err error) {
	if raw := r.URL.Query().Get("from"); raw != "" {
		if from, err = time.Parse(domain.DateLayout, raw); err != nil {
			return from, to, errors.New("invalid from date, expected YYYY-MM-DD")
		}
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		if to, err = time.Parse(domain.DateLayout, raw); err != nil {
			return from, to, errors.New("invalid to date, expected YYYY-MM-DD")
		}
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}
