package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"todayrates/internal/adapters"
	"todayrates/internal/domain"
)

type goldRow struct {
	ID          string              `json:"id"`
	GoldType    string              `json:"gold_type" example:"16peye_new"`
	Unit        string              `json:"unit" example:"kyatthar"`
	Price       decimal.NullDecimal `json:"price"`
	Buying      decimal.NullDecimal `json:"buying"`
	Selling     decimal.NullDecimal `json:"selling"`
	PriceChange decimal.Decimal     `json:"price_change"`
	BuyChange   decimal.Decimal     `json:"buy_change"`
	SellChange  decimal.Decimal     `json:"sell_change"`
	Date        string              `json:"date" example:"2025-03-14"`
	CreatedAt   time.Time           `json:"created_at"`
}

type goldGradeSection struct {
	GoldType string    `json:"gold_type"`
	Unit     string    `json:"unit"`
	Rows     []goldRow `json:"rows"`
}

type GoldBoardResponse struct {
	Date      string             `json:"date" example:"2025-03-14"`
	FellBack  bool               `json:"fell_back"`
	UpdatedAt time.Time          `json:"updated_at"`
	World     *goldRow           `json:"world"`
	Grades    []goldGradeSection `json:"grades"`
}

func toGoldRow(g domain.GoldWithChange) goldRow {
	return goldRow{
		ID:          g.ID.String(),
		GoldType:    string(g.GoldType),
		Unit:        g.Unit,
		Price:       g.Price,
		Buying:      g.BuyingPrice,
		Selling:     g.SellingPrice,
		PriceChange: g.PriceChange,
		BuyChange:   g.BuyChange,
		SellChange:  g.SellChange,
		Date:        g.Day(),
		CreatedAt:   g.CreatedAt,
	}
}

// GetGoldBoard godoc
// @Summary Current gold-price board
// @Description World spot plus Myanmar grade quotes with deltas. Falls back to yesterday when today has no data.
// @Tags Gold
// @Produce json
// @Success 200 {object} GoldBoardResponse
// @Failure 500 {object} errorResponse
// @Router /gold/board [get]
func (h *Handler) GetGoldBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.gold.Board(r.Context())
	if err != nil {
		msg := "ups, couldn't build the gold board this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetGoldBoard"}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := GoldBoardResponse{
		Date:      board.Date,
		FellBack:  board.FellBack,
		UpdatedAt: board.UpdatedAt,
		Grades:    make([]goldGradeSection, 0, len(board.Grades)),
	}
	if board.World != nil {
		world := toGoldRow(*board.World)
		res.World = &world
	}
	for _, g := range board.Grades {
		section := goldGradeSection{GoldType: string(g.GoldType), Unit: g.Unit, Rows: make([]goldRow, 0, len(g.Rows))}
		for _, row := range g.Rows {
			section.Rows = append(section.Rows, toGoldRow(row))
		}
		res.Grades = append(res.Grades, section)
	}
	writeJSON(w, http.StatusOK, res)
}

type goldHistoryGroup struct {
	Date string    `json:"date"`
	Rows []goldRow `json:"rows"`
}

// GetGoldHistory godoc
// @Summary Gold-price history
// @Tags Gold
// @Produce json
// @Param type query string false "Gold type filter"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param limit query int false "Max rows"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} goldHistoryGroup
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /gold/history [get]
func (h *Handler) GetGoldHistory(w http.ResponseWriter, r *http.Request) {
	var f adapters.GoldFilter
	if raw := r.URL.Query().Get("type"); raw != "" {
		t, err := domain.ParseGoldType(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.GoldType = t
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

	groups, err := h.gold.History(r.Context(), f)
	if err != nil {
		msg := "ups, couldn't load gold history this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetGoldHistory", "type": f.GoldType}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := make([]goldHistoryGroup, 0, len(groups))
	for _, g := range groups {
		rows := make([]goldRow, 0, len(g.Rows))
		for _, row := range g.Rows {
			rows = append(rows, toGoldRow(row))
		}
		res = append(res, goldHistoryGroup{Date: g.Date, Rows: rows})
	}
	writeJSON(w, http.StatusOK, res)
}

type insertGoldRequest struct {
	Prices []insertGoldEntry `json:"prices" validate:"required,min=1,dive"`
}

type insertGoldEntry struct {
	GoldType     string           `json:"gold_type" validate:"required"`
	Price        *decimal.Decimal `json:"price"`
	BuyingPrice  *decimal.Decimal `json:"buying_price"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	Date         string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type insertGoldResponse struct {
	Inserted int `json:"inserted"`
}

// InsertGold godoc
// @Summary Insert gold prices
// @Tags Gold
// @Accept json
// @Produce json
// @Param request body insertGoldRequest true "Prices to insert"
// @Success 201 {object} insertGoldResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Security BearerAuth
// @Router /gold [post]
func (h *Handler) InsertGold(w http.ResponseWriter, r *http.Request) {
	var req insertGoldRequest
	if !decodeStrict(w, r, h.validate, &req) {
		return
	}

	updatedBy := actingAdmin(r)
	rows := make([]domain.GoldPrice, 0, len(req.Prices))
	for _, e := range req.Prices {
		t, parseErr := domain.ParseGoldType(e.GoldType)
		if parseErr != nil {
			writeError(w, http.StatusBadRequest, parseErr.Error())
			return
		}
		row := domain.GoldPrice{
			GoldType:     t,
			Price:        toNull(e.Price),
			BuyingPrice:  toNull(e.BuyingPrice),
			SellingPrice: toNull(e.SellingPrice),
			UpdatedBy:    updatedBy,
		}
		if e.Date != "" {
			row.Date, _ = time.Parse(domain.DateLayout, e.Date)
		}
		rows = append(rows, row)
	}

	inserted, err := h.gold.InsertMany(r.Context(), rows)
	if err != nil {
		msg := "ups, couldn't insert gold prices this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "InsertGold", "count": len(rows)}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusCreated, insertGoldResponse{Inserted: len(inserted)})
}

func toNull(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

type updateGoldRequest struct {
	Price        *decimal.Decimal `json:"price"`
	BuyingPrice  *decimal.Decimal `json:"buying_price"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	Date         *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateGold godoc
// @Summary Update a gold price
// @Tags Gold
// @Accept json
// @Param id path string true "Record ID"
// @Param request body updateGoldRequest true "Fields to change"
// @Success 204
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Security BearerAuth
// @Router /gold/{id} [put]
func (h *Handler) UpdateGold(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record ID format")
		return
	}

	var req updateGoldRequest
	if !decodeStrict(w, r, h.validate, &req) {
		return
	}

	patch := domain.GoldPricePatch{
		Price:        req.Price,
		BuyingPrice:  req.BuyingPrice,
		SellingPrice: req.SellingPrice,
	}
	if req.Date != nil {
		d, parseErr := time.Parse(domain.DateLayout, *req.Date)
		if parseErr != nil {
			writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		patch.Date = &d
	}

	if err = h.gold.Update(r.Context(), id, patch, actingAdmin(r)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "gold price not found")
			return
		}
		msg := "ups, couldn't update the gold price this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "UpdateGold", "id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteGold godoc
// @Summary Delete a gold price
// @Tags Gold
// @Param id path string true "Record ID"
// @Success 204
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Security BearerAuth
// @Router /gold/{id} [delete]
func (h *Handler) DeleteGold(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record ID format")
		return
	}

	if err = h.gold.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "gold price not found")
			return
		}
		msg := "ups, couldn't delete the gold price this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "DeleteGold", "id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
