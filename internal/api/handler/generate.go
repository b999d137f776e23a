package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"todayrates/internal/domain"
)

type outcomeBody struct {
	Inserted int      `json:"inserted"`
	Missing  []string `json:"missing,omitempty"`
	Error    string   `json:"error,omitempty"`
}

type GenerateResponse struct {
	Rates outcomeBody `json:"rates"`
	Gold  outcomeBody `json:"gold"`
}

// Generate godoc
// @Summary Run the derivation pipeline now
// @Description Fetches the spot feeds, derives today's quote set with the current settings and stores it. A gold feed outage degrades to a rates-only run reported per kind.
// @Tags Generate
// @Produce json
// @Success 200 {object} GenerateResponse
// @Success 207 {object} GenerateResponse "one of the two halves failed"
// @Failure 401 {object} errorResponse
// @Failure 422 {object} errorResponse "bad spot data or configuration"
// @Failure 502 {object} errorResponse "rate feed unreachable"
// @Security BearerAuth
// @Router /generate [post]
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	report, err := h.gen.Generate(r.Context(), time.Now(), actingAdmin(r))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFeedUnavailable):
			writeError(w, http.StatusBadGateway, "rate feed unavailable")
		case errors.Is(err, domain.ErrInvalidSpotData), errors.Is(err, domain.ErrInvalidConfiguration):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			msg := "ups, couldn't generate rates this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "Generate"}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	res := GenerateResponse{
		Rates: outcomeBody{Inserted: report.Rates.Inserted, Missing: report.Rates.Missing, Error: report.Rates.Error},
		Gold:  outcomeBody{Inserted: report.Gold.Inserted, Error: report.Gold.Error},
	}
	status := http.StatusOK
	if report.PartialFailure() {
		status = http.StatusMultiStatus
	}
	writeJSON(w, status, res)
}

type previewQuote struct {
	Code    string          `json:"code"`
	Buying  decimal.Decimal `json:"buying"`
	Selling decimal.Decimal `json:"selling"`
}

type previewGoldQuote struct {
	GoldType string              `json:"gold_type"`
	Unit     string              `json:"unit"`
	Price    decimal.NullDecimal `json:"price"`
	Buying   decimal.NullDecimal `json:"buying"`
	Selling  decimal.NullDecimal `json:"selling"`
}

type PreviewResponse struct {
	Rates   []previewQuote     `json:"rates"`
	Gold    []previewGoldQuote `json:"gold"`
	Missing []string           `json:"missing,omitempty"`
}

// Preview godoc
// @Summary Derive today's quote set without storing it
// @Description Prefills the admin form with what a generation run would insert.
// @Tags Generate
// @Produce json
// @Success 200 {object} PreviewResponse
// @Failure 401 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Security BearerAuth
// @Router /generate/preview [get]
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	quotes, goldQuotes, missing, err := h.gen.Preview(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFeedUnavailable):
			writeError(w, http.StatusBadGateway, "rate feed unavailable")
		case errors.Is(err, domain.ErrInvalidSpotData), errors.Is(err, domain.ErrInvalidConfiguration):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			msg := "ups, couldn't preview rates this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "Preview"}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	res := PreviewResponse{
		Rates:   make([]previewQuote, 0, len(quotes)),
		Gold:    make([]previewGoldQuote, 0, len(goldQuotes)),
		Missing: missing,
	}
	for _, q := range quotes {
		res.Rates = append(res.Rates, previewQuote{Code: q.Code, Buying: q.Buying, Selling: q.Selling})
	}
	for _, q := range goldQuotes {
		res.Gold = append(res.Gold, previewGoldQuote{
			GoldType: string(q.Type),
			Unit:     q.Unit,
			Price:    q.Price,
			Buying:   q.Buying,
			Selling:  q.Selling,
		})
	}
	writeJSON(w, http.StatusOK, res)
}
