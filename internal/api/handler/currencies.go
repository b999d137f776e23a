package handler

import (
	"net/http"

	"todayrates/internal/currency"
)

type currencyEntry struct {
	Code   string `json:"code" example:"USD"`
	Name   string `json:"name" example:"US Dollar"`
	Symbol string `json:"symbol" example:"$"`
	Flag   string `json:"flag" example:"🇺🇸"`
}

// GetCurrencies godoc
// @Summary Supported currencies
// @Description The tracked currency catalog in display order.
// @Tags Currencies
// @Produce json
// @Success 200 {array} currencyEntry
// @Router /currencies [get]
func (h *Handler) GetCurrencies(w http.ResponseWriter, r *http.Request) {
	codes := currency.CanonicalOrder()
	res := make([]currencyEntry, 0, len(codes))
	for _, code := range codes {
		meta := currency.MetaFor(code)
		res = append(res, currencyEntry{Code: code, Name: meta.Name, Symbol: meta.Symbol, Flag: meta.Flag})
	}
	writeJSON(w, http.StatusOK, res)
}
