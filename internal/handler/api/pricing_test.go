//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"parkpricer/internal/domain/pricing"
	"parkpricer/internal/handler/api"
	resdto "parkpricer/internal/handler/dto/response"
	"parkpricer/internal/pkg/errs"
	"parkpricer/internal/usecase/commands"
	"parkpricer/internal/usecase/queries"
	"parkpricer/tests/common/httptest"
	"parkpricer/tests/common/testutil"
	commandsmock "parkpricer/tests/mock/commands"
	queriesmock "parkpricer/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockPricingQueries
	mockCommands *commandsmock.MockRuleCommands
	handler      *api.PricingHandler
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockRuleCommands(s.mockCtrl)
	s.handler = api.NewPricingHandler(s.mockQueries, s.mockCommands)

	s.router.POST("/pricing/calculate", s.handler.Calculate)
	s.router.GET("/pricing/rules", s.handler.Rules)
	s.router.PUT("/pricing/rules/:id", s.handler.UpdateRule)
	s.router.POST("/pricing/demand-forecast", s.handler.DemandForecast)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

func quoteRequestBody() map[string]any {
	return map[string]any{
		"listing_id": uuid.New().String(),
		"start_time": "2025-03-15T18:00:00Z",
		"end_time":   "2025-03-15T20:00:00Z",
		"base_price": 10.0,
	}
}

// ================================================================================
// TestCalculate
// ================================================================================

func (s *PricingHandlerTestSuite) TestCalculate() {
	url := "/pricing/calculate"

	s.Run("returns the quote on success", func() {
		quote := &pricing.Quote{
			BasePrice:       10,
			TotalMultiplier: 1.95,
			FinalPrice:      39,
			SurgeActive:     false,
		}
		s.mockQueries.EXPECT().
			Quote(gomock.Any(), gomock.Any()).
			Return(quote, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, quoteRequestBody())

		var got resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal(10.0, got.BasePrice)
		s.Equal(1.95, got.TotalMultiplier)
		s.Equal(39.0, got.FinalPrice)
		s.False(got.SurgeActive)
	})

	s.Run("rejects invalid interval with 400", func() {
		s.mockQueries.EXPECT().
			Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidInterval)

		body := testutil.DtoMap(s.T(), quoteRequestBody(),
			testutil.Field("end_time", "2025-03-15T17:00:00Z"))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "End time must be after start time")
	})

	s.Run("rejects invalid base price with 400", func() {
		s.mockQueries.EXPECT().
			Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidBasePrice)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, quoteRequestBody())

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Base price must be positive")
	})

	// Binding boundary cases never reach the use case.
	bindingCases := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing field: listing_id", mutate: testutil.Field("listing_id", nil)},
		{name: "missing field: start_time", mutate: testutil.Field("start_time", nil)},
		{name: "missing field: end_time", mutate: testutil.Field("end_time", nil)},
		{name: "missing field: base_price", mutate: testutil.Field("base_price", nil)},
		{name: "zero base_price", mutate: testutil.Field("base_price", 0)},
		{name: "negative base_price", mutate: testutil.Field("base_price", -5)},
		{name: "malformed start_time", mutate: testutil.Field("start_time", "not-a-time")},
	}
	for _, tc := range bindingCases {
		s.Run(tc.name, func() {
			body := testutil.DtoMap(s.T(), quoteRequestBody(), tc.mutate)
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
		})
	}
}

// ================================================================================
// TestRules
// ================================================================================

func (s *PricingHandlerTestSuite) TestRules() {
	url := "/pricing/rules"

	s.Run("lists rules without a probe", func() {
		eval := &queries.RuleEvaluation{Rules: pricing.DefaultRules()}
		s.mockQueries.EXPECT().
			EvaluateRules(gomock.Any(), gomock.Nil()).
			Return(eval)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var got resdto.RulesResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Len(got.Rules, 3)
		s.Nil(got.CombinedMultiplier)
		s.Empty(got.Matched)
	})

	s.Run("evaluates rules against a probe context", func() {
		rules := pricing.DefaultRules()
		eval := &queries.RuleEvaluation{
			Rules:              rules,
			Matched:            rules[:1],
			CombinedMultiplier: 1.5,
		}
		s.mockQueries.EXPECT().
			EvaluateRules(gomock.Any(), gomock.Not(gomock.Nil())).
			Return(eval)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?hour=8&day_of_week=1&duration_hours=2", nil)

		var got resdto.RulesResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Len(got.Matched, 1)
		if s.NotNil(got.CombinedMultiplier) {
			s.Equal(1.5, *got.CombinedMultiplier)
		}
	})

	s.Run("rejects malformed probe parameters", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?hour=abc", nil)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid rule evaluation parameters")
	})

	s.Run("rejects out-of-range hour", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?hour=24", nil)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid rule evaluation parameters")
	})
}

// ================================================================================
// TestUpdateRule
// ================================================================================

func (s *PricingHandlerTestSuite) TestUpdateRule() {
	ruleID := uuid.New()
	url := "/pricing/rules/" + ruleID.String()

	s.Run("patches a rule", func() {
		updated := pricing.Rule{
			ID:         ruleID,
			Name:       "weekend_surge",
			Multiplier: 1.4,
			Priority:   5,
			Active:     true,
		}
		s.mockCommands.EXPECT().
			UpdateRule(gomock.Any(), ruleID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, params commands.UpdateRuleParams) (*pricing.Rule, error) {
				s.Require().NotNil(params.Multiplier)
				s.Equal(1.4, *params.Multiplier)
				s.Nil(params.Name)
				return &updated, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"multiplier": 1.4})

		var got resdto.RuleResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal(ruleID, got.ID)
		s.Equal(1.4, got.Multiplier)
	})

	s.Run("returns 404 for an unknown rule", func() {
		s.mockCommands.EXPECT().
			UpdateRule(gomock.Any(), ruleID, gomock.Any()).
			Return(nil, errs.ErrRuleNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"active": false})

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Pricing rule not found")
	})

	s.Run("returns 422 when the patch produces an invalid rule", func() {
		s.mockCommands.EXPECT().
			UpdateRule(gomock.Any(), ruleID, gomock.Any()).
			Return(nil, errs.ErrInvalidCondition)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{
			"conditions": []map[string]any{{"field": "hour", "operator": "unknown"}},
		})

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Invalid pricing rule")
	})

	s.Run("rejects a malformed rule ID", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/pricing/rules/not-a-uuid", map[string]any{"active": false})

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid rule ID format")
	})

	s.Run("rejects non-positive multiplier at binding", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"multiplier": 0})

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

// ================================================================================
// TestDemandForecast
// ================================================================================

func (s *PricingHandlerTestSuite) TestDemandForecast() {
	url := "/pricing/demand-forecast"
	listingID := uuid.New()

	body := func() map[string]any {
		return map[string]any{
			"listing_id": listingID.String(),
			"start_date": "2025-03-10T00:00:00Z",
			"end_date":   "2025-03-11T00:00:00Z",
		}
	}

	s.Run("returns hourly occupancy points", func() {
		points := []pricing.OccupancyPoint{
			{Time: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), OccupancyRate: 0.3},
			{Time: time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC), OccupancyRate: 0.28},
		}
		s.mockQueries.EXPECT().
			Forecast(gomock.Any(), gomock.Any()).
			Return(points, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body())

		var got resdto.ForecastResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal(listingID, got.ListingID)
		s.Len(got.Points, 2)
		s.Equal(0.3, got.Points[0].OccupancyRate)
	})

	s.Run("rejects an inverted date range", func() {
		s.mockQueries.EXPECT().
			Forecast(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidDateRange)

		b := testutil.DtoMap(s.T(), body(),
			testutil.Field("end_date", "2025-03-09T00:00:00Z"))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "End date must be after start date")
	})

	s.Run("rejects a missing listing_id", func() {
		b := testutil.DtoMap(s.T(), body(), testutil.Field("listing_id", nil))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}
