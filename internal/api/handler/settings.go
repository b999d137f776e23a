package handler

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"todayrates/internal/domain"
)

type settingsBody struct {
	BlackMarketBuyMultiplier  decimal.Decimal `json:"blackMarketBuyMultiplier" validate:"required"`
	BlackMarketSellMultiplier decimal.Decimal `json:"blackMarketSellMultiplier" validate:"required"`
	Gold16PeyeOldMultiplier   decimal.Decimal `json:"gold16PeyeOldMultiplier" validate:"required"`
	Gold16PeyeNewMultiplier   decimal.Decimal `json:"gold16PeyeNewMultiplier" validate:"required"`
}

func toSettingsBody(s domain.Settings) settingsBody {
	return settingsBody{
		BlackMarketBuyMultiplier:  s.BlackMarketBuyMultiplier,
		BlackMarketSellMultiplier: s.BlackMarketSellMultiplier,
		Gold16PeyeOldMultiplier:   s.Gold16PeyeOldMultiplier,
		Gold16PeyeNewMultiplier:   s.Gold16PeyeNewMultiplier,
	}
}

// GetSettings godoc
// @Summary Current derivation settings
// @Tags Settings
// @Produce json
// @Success 200 {object} settingsBody
// @Failure 401 {object} errorResponse
// @Security BearerAuth
// @Router /settings [get]
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toSettingsBody(h.settings.Get()))
}

// SaveSettings godoc
// @Summary Save derivation settings
// @Description All four multipliers must be positive and the buy multiplier below the sell multiplier.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body settingsBody true "New settings"
// @Success 200 {object} settingsBody
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Security BearerAuth
// @Router /settings [put]
func (h *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsBody
	if !decodeStrict(w, r, h.validate, &req) {
		return
	}

	candidate := domain.Settings{
		BlackMarketBuyMultiplier:  req.BlackMarketBuyMultiplier,
		BlackMarketSellMultiplier: req.BlackMarketSellMultiplier,
		Gold16PeyeOldMultiplier:   req.Gold16PeyeOldMultiplier,
		Gold16PeyeNewMultiplier:   req.Gold16PeyeNewMultiplier,
	}
	if err := h.settings.Save(candidate); err != nil {
		if errors.Is(err, domain.ErrInvalidConfiguration) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		msg := "ups, couldn't save settings this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "SaveSettings"}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsBody(candidate))
}

// ResetSettings godoc
// @Summary Reset derivation settings to defaults
// @Tags Settings
// @Produce json
// @Success 200 {object} settingsBody
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Security BearerAuth
// @Router /settings [delete]
func (h *Handler) ResetSettings(w http.ResponseWriter, r *http.Request) {
	defaults, err := h.settings.Reset()
	if err != nil {
		msg := "ups, couldn't reset settings this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ResetSettings"}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsBody(defaults))
}
