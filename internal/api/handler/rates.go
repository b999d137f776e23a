package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"todayrates/internal/adapters"
	"todayrates/internal/auth"
	"todayrates/internal/currency"
	"todayrates/internal/domain"
)

type rateRow struct {
	ID         string          `json:"id"`
	Code       string          `json:"code" example:"USD"`
	Name       string          `json:"name" example:"US Dollar"`
	Symbol     string          `json:"symbol" example:"$"`
	Flag       string          `json:"flag" example:"🇺🇸"`
	Buying     decimal.Decimal `json:"buying"`
	Selling    decimal.Decimal `json:"selling"`
	BuyChange  decimal.Decimal `json:"buy_change"`
	SellChange decimal.Decimal `json:"sell_change"`
	Date       string          `json:"date" example:"2025-03-14"`
	CreatedAt  time.Time       `json:"created_at"`
}

type RateBoardResponse struct {
	Date      string    `json:"date" example:"2025-03-14"`
	FellBack  bool      `json:"fell_back"`
	UpdatedAt time.Time `json:"updated_at"`
	Rates     []rateRow `json:"rates"`
}

func toRateRow(r domain.RateWithChange) rateRow {
	meta := currency.MetaFor(r.CurrencyFrom)
	return rateRow{
		ID:         r.ID.String(),
		Code:       r.CurrencyFrom,
		Name:       meta.Name,
		Symbol:     meta.Symbol,
		Flag:       meta.Flag,
		Buying:     r.BuyingRate,
		Selling:    r.SellingRate,
		BuyChange:  r.BuyChange,
		SellChange: r.SellChange,
		Date:       r.Day(),
		CreatedAt:  r.CreatedAt,
	}
}

// GetRateBoard godoc
// @Summary Current exchange-rate board
// @Description Latest quote per currency with deltas against the previous day. Falls back to yesterday when today has no data.
// @Tags Rates
// @Produce json
// @Success 200 {object} RateBoardResponse
// @Failure 500 {object} errorResponse
// @Router /rates/board [get]
func (h *Handler) GetRateBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.rates.Board(r.Context())
	if err != nil {
		msg := "ups, couldn't build the rate board this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetRateBoard"}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := RateBoardResponse{
		Date:      board.Date,
		FellBack:  board.FellBack,
		UpdatedAt: board.UpdatedAt,
		Rates:     make([]rateRow, 0, len(board.Rates)),
	}
	for _, rc := range board.Rates {
		res.Rates = append(res.Rates, toRateRow(rc))
	}
	writeJSON(w, http.StatusOK, res)
}

type rateHistoryGroup struct {
	Date string    `json:"date"`
	Rows []rateRow `json:"rows"`
}

// GetRateHistory godoc
// @Summary Exchange-rate history
// @Description Day-grouped quote history with deltas against the preceding entry.
// @Tags Rates
// @Produce json
// @Param code query string false "Currency code filter"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param limit query int false "Max rows"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} rateHistoryGroup
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /rates/history [get]
func (h *Handler) GetRateHistory(w http.ResponseWriter, r *http.Request) {
	f := adapters.RateFilter{
		Code: strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("code"))),
	}
	var err error
	if f.From, f.To, err = parseDateRange(r); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if f.Limit, f.Offset, err = parsePage(r); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	groups, err := h.rates.History(r.Context(), f)
	if err != nil {
		msg := "ups, couldn't load rate history this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetRateHistory", "code": f.Code}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := make([]rateHistoryGroup, 0, len(groups))
	for _, g := range groups {
		rows := make([]rateRow, 0, len(g.Rows))
		for _, rc := range g.Rows {
			rows = append(rows, toRateRow(rc))
		}
		res = append(res, rateHistoryGroup{Date: g.Date, Rows: rows})
	}
	writeJSON(w, http.StatusOK, res)
}

func parsePage(r *http.Request) (limit, offset int, err error) {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil || limit < 0 {
			return 0, 0, errors.New("invalid limit")
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if offset, err = strconv.Atoi(raw); err != nil || offset < 0 {
			return 0, 0, errors.New("invalid offset")
		}
	}
	return limit, offset, nil
}

type insertRateRequest struct {
	Rates []insertRateEntry `json:"rates" validate:"required,min=1,dive"`
}

type insertRateEntry struct {
	CurrencyFrom string          `json:"currency_from" validate:"required,len=3,alpha"`
	BuyingRate   decimal.Decimal `json:"buying_rate" validate:"required"`
	SellingRate  decimal.Decimal `json:"selling_rate" validate:"required"`
	Date         string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type insertRatesResponse struct {
	Inserted int `json:"inserted"`
}

// InsertRates godoc
// @Summary Insert exchange rates
// @Tags Rates
// @Accept json
// @Produce json
// @Param request body insertRateRequest true "Rates to insert"
// @Success 201 {object} insertRatesResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Security BearerAuth
// @Router /rates [post]
func (h *Handler) InsertRates(w http.ResponseWriter, r *http.Request) {
	var req insertRateRequest
	if !decodeStrict(w, r, h.validate, &req) {
		return
	}

	updatedBy := actingAdmin(r)
	rows := make([]domain.ExchangeRate, 0, len(req.Rates))
	for _, e := range req.Rates {
		row := domain.ExchangeRate{
			CurrencyFrom: strings.ToUpper(strings.TrimSpace(e.CurrencyFrom)),
			BuyingRate:   e.BuyingRate,
			SellingRate:  e.SellingRate,
			UpdatedBy:    updatedBy,
		}
		if e.Date != "" {
			row.Date, _ = time.Parse(domain.DateLayout, e.Date)
		}
		rows = append(rows, row)
	}

	inserted, err := h.rates.InsertMany(r.Context(), rows)
	if err != nil {
		msg := "ups, couldn't insert rates this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "InsertRates", "count": len(rows)}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusCreated, insertRatesResponse{Inserted: len(inserted)})
}

type updateRateRequest struct {
	BuyingRate  *decimal.Decimal `json:"buying_rate"`
	SellingRate *decimal.Decimal `json:"selling_rate"`
	Date        *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateRate godoc
// @Summary Update an exchange rate
// @Tags Rates
// @Accept json
// @Param id path string true "Record ID"
// @Param request body updateRateRequest true "Fields to change"
// @Success 204
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Security BearerAuth
// @Router /rates/{id} [put]
func (h *Handler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record ID format")
		return
	}

	var req updateRateRequest
	if !decodeStrict(w, r, h.validate, &req) {
		return
	}

	patch := domain.ExchangeRatePatch{BuyingRate: req.BuyingRate, SellingRate: req.SellingRate}
	if req.Date != nil {
		d, parseErr := time.Parse(domain.DateLayout, *req.Date)
		if parseErr != nil {
			writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		patch.Date = &d
	}

	if err = h.rates.Update(r.Context(), id, patch, actingAdmin(r)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "rate not found")
			return
		}
		msg := "ups, couldn't update the rate this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "UpdateRate", "id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteRate godoc
// @Summary Delete an exchange rate
// @Tags Rates
// @Param id path string true "Record ID"
// @Success 204
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Security BearerAuth
// @Router /rates/{id} [delete]
func (h *Handler) DeleteRate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record ID format")
		return
	}

	if err = h.rates.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "rate not found")
			return
		}
		msg := "ups, couldn't delete the rate this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "DeleteRate", "id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// actingAdmin lifts the authenticated admin ID from the request context into
// the nullable updated_by stamp.
func actingAdmin(r *http.Request) uuid.NullUUID {
	if id, ok := auth.AdminID(r.Context()); ok {
		return uuid.NullUUID{UUID: id, Valid: true}
	}
	return uuid.NullUUID{}
}
