package api

import (
	"net/http"

	reqdto "parkpricer/internal/handler/dto/request"
	resdto "parkpricer/internal/handler/dto/response"
	"parkpricer/internal/handler/httperr"
	"parkpricer/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Slot grid
// @Description Classify the 24 hourly slots of a calendar day against conflicts, suggestions and operating hours
// @Tags availability
// @Accept json
// @Produce json
// @Param request body reqdto.SlotGridRequest true "Slot grid request"
// @Success 200 {object} resdto.SlotGridResponse
// @Failure 400 {object} map[string]string
// @Router /availability/slots [post]
func (h *AvailabilityHandler) SlotGrid(c *gin.Context) {
	var req reqdto.SlotGridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	slots := h.availabilityQueries.SlotGrid(c.Request.Context(), input)
	c.JSON(http.StatusOK, resdto.FromSlots(req.Date, slots))
}
