package v1

import (
	"net/http"

	"github.com/doum4811/startbeyond-backend/internal/auth"
	"github.com/doum4811/startbeyond-backend/internal/categories"
	"github.com/doum4811/startbeyond-backend/internal/httputil"
	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/doum4811/startbeyond-backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterStatsRoutes registers the stats routes with the RouterGroup
// that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetStats)
}

// CategoryStats is the aggregate for one category over the requested
// range.
type CategoryStats struct {
	CategoryCode string          `json:"categoryCode" example:"EX"`         // The category code
	Label        string          `json:"label" example:"Exercise"`          // Label from the effective category list, the code itself for codes no longer in the list
	IsCustom     bool            `json:"isCustom" example:"false"`          // Whether the label comes from a custom category
	Records      int64           `json:"records" example:"12"`              // Number of records
	TotalMinutes int64           `json:"totalMinutes" example:"540"`        // Summed duration in minutes
	Share        decimal.Decimal `json:"share" example:"0.2553"`            // Fraction of the range's total minutes, 4 decimal places
}

type Stats struct {
	From         types.Date      `json:"from" example:"2026-08-01"`  // Start of the range, zero when unbounded
	To           types.Date      `json:"to" example:"2026-08-31"`    // End of the range, zero when unbounded
	Records      int64           `json:"records" example:"47"`       // Number of records in the range
	TotalMinutes int64           `json:"totalMinutes" example:"2115"` // Summed duration in minutes
	Categories   []CategoryStats `json:"categories"`                 // Per-category aggregates, largest first
}

type StatsResponse struct {
	Data  *Stats  `json:"data"`                                                         // The stats
	Error *string `json:"error" example:"the 'from' date must not be after the 'to' date"` // The error, if any occurred
}

type StatsQueryFilter struct {
	From types.Date `form:"from"` // Records on or after this date
	To   types.Date `form:"to"`   // Records on or before this date
}

// @Summary		Get stats
// @Description	Returns per-category aggregates of the profile's daily records over a date range
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	StatsResponse
// @Failure		400	{object}	StatsResponse
// @Failure		500	{object}	StatsResponse
// @Router			/v1/stats [get]
// @Param			from	query	string	false	"Records on or after this date"
// @Param			to		query	string	false	"Records on or before this date"
func GetStats(c *gin.Context) {
	var filter StatsQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, StatsResponse{
			Error: &e,
		})
		return
	}

	if !filter.From.IsZero() && !filter.To.IsZero() && filter.From.After(filter.To) {
		e := errStatsRange.Error()
		c.JSON(http.StatusBadRequest, StatsResponse{
			Error: &e,
		})
		return
	}

	profileID := auth.ProfileID(c)

	totals, err := models.CategoryTotals(models.DB, profileID, filter.From, filter.To)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StatsResponse{
			Error: &e,
		})
		return
	}

	effective, err := models.ResolveEffective(models.DB, profileID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StatsResponse{
			Error: &e,
		})
		return
	}

	labels := make(map[string]categories.Effective, len(effective))
	for _, category := range effective {
		labels[category.Code] = category
	}

	stats := Stats{
		From:       filter.From,
		To:         filter.To,
		Categories: make([]CategoryStats, 0, len(totals)),
	}

	for _, total := range totals {
		stats.Records += total.Records
		stats.TotalMinutes += total.TotalMinutes
	}

	grandTotal := decimal.NewFromInt(stats.TotalMinutes)

	for _, total := range totals {
		entry := CategoryStats{
			CategoryCode: total.CategoryCode,
			Label:        total.CategoryCode,
			Records:      total.Records,
			TotalMinutes: total.TotalMinutes,
		}

		// Records keep their code when the category disappears from the
		// effective list, those fall back to the raw code as label
		if category, ok := labels[total.CategoryCode]; ok {
			entry.Label = category.Label
			entry.IsCustom = category.IsCustom
		}

		if grandTotal.IsPositive() {
			entry.Share = decimal.NewFromInt(total.TotalMinutes).DivRound(grandTotal, 4)
		}

		stats.Categories = append(stats.Categories, entry)
	}

	c.JSON(http.StatusOK, StatsResponse{Data: &stats})
}
