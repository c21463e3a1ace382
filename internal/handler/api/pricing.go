package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "parkpricer/internal/handler/dto/request"
	resdto "parkpricer/internal/handler/dto/response"
	"parkpricer/internal/handler/httperr"
	"parkpricer/internal/pkg/errs"
	"parkpricer/internal/usecase/commands"
	"parkpricer/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PricingHandler struct {
	pricingQueries queries.PricingQueries
	ruleCommands   commands.RuleCommands
}

func NewPricingHandler(pricingQueries queries.PricingQueries, ruleCommands commands.RuleCommands) *PricingHandler {
	return &PricingHandler{
		pricingQueries: pricingQueries,
		ruleCommands:   ruleCommands,
	}
}

// @Summary Calculate price quote
// @Description Calculate a dynamic price quote for a listing and time interval
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.CalculateQuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Router /pricing/calculate [post]
func (h *PricingHandler) Calculate(c *gin.Context) {
	var req reqdto.CalculateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	quote, err := h.pricingQueries.Quote(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidInterval):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "End time must be after start time", nil)
		case errs.Is(err, errs.ErrInvalidBasePrice):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Base price must be positive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary List pricing rules
// @Description List pricing rules, optionally evaluated against a booking context
// @Tags pricing
// @Produce json
// @Param hour query int false "Hour of day for rule evaluation"
// @Param day_of_week query int false "Day of week (0=Sunday) for rule evaluation"
// @Param duration_hours query number false "Stay duration in hours"
// @Param occupancy_rate query number false "Known occupancy rate in [0,1]"
// @Success 200 {object} resdto.RulesResponse
// @Failure 400 {object} map[string]string
// @Router /pricing/rules [get]
func (h *PricingHandler) Rules(c *gin.Context) {
	probe, probed, err := parseRuleProbe(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rule evaluation parameters", nil)
		return
	}

	eval := h.pricingQueries.EvaluateRules(c.Request.Context(), probe)
	c.JSON(http.StatusOK, resdto.FromRuleEvaluation(eval, probed))
}

// @Summary Update pricing rule
// @Description Patch a stored pricing rule's fields
// @Tags pricing
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Param request body reqdto.UpdateRuleRequest true "Rule patch"
// @Success 200 {object} resdto.RuleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /pricing/rules/{id} [put]
func (h *PricingHandler) UpdateRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rule ID format", nil)
		return
	}

	var req reqdto.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rule, err := h.ruleCommands.UpdateRule(c.Request.Context(), id, req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrRuleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Pricing rule not found", nil)
		case errs.Is(err, errs.ErrInvalidRule),
			errs.Is(err, errs.ErrInvalidMultiplier),
			errs.Is(err, errs.ErrInvalidCondition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid pricing rule", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRule(*rule))
}

// @Summary Demand forecast
// @Description Forecast hourly occupancy for a listing over a date range
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.DemandForecastRequest true "Forecast request"
// @Success 200 {object} resdto.ForecastResponse
// @Failure 400 {object} map[string]string
// @Router /pricing/demand-forecast [post]
func (h *PricingHandler) DemandForecast(c *gin.Context) {
	var req reqdto.DemandForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	points, err := h.pricingQueries.Forecast(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidDateRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "End date must be after start date", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromForecast(req.ListingID, points))
}

// parseRuleProbe builds the optional evaluation context from query
// parameters. A probe exists once hour or day_of_week is supplied.
func parseRuleProbe(c *gin.Context) (*queries.RuleProbe, bool, error) {
	hourStr := c.Query("hour")
	dayStr := c.Query("day_of_week")
	if hourStr == "" && dayStr == "" {
		return nil, false, nil
	}

	probe := &queries.RuleProbe{}

	if hourStr != "" {
		hour, err := strconv.Atoi(hourStr)
		if err != nil || hour < 0 || hour > 23 {
			return nil, false, errs.New("invalid hour")
		}
		probe.Hour = hour
	}
	if dayStr != "" {
		day, err := strconv.Atoi(dayStr)
		if err != nil || day < 0 || day > 6 {
			return nil, false, errs.New("invalid day_of_week")
		}
		probe.DayOfWeek = time.Weekday(day)
	}
	if durStr := c.Query("duration_hours"); durStr != "" {
		dur, err := strconv.ParseFloat(durStr, 64)
		if err != nil || dur < 0 {
			return nil, false, errs.New("invalid duration_hours")
		}
		probe.DurationHours = dur
	}
	if occStr := c.Query("occupancy_rate"); occStr != "" {
		occ, err := strconv.ParseFloat(occStr, 64)
		if err != nil || occ < 0 || occ > 1 {
			return nil, false, errs.New("invalid occupancy_rate")
		}
		probe.OccupancyRate = &occ
	}

	return probe, true, nil
}
