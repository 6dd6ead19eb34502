package closing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	core "kasira.com/kasira/backoffice/core"
	"kasira.com/kasira/backoffice/store"
	"kasira.com/kasira/core/models"
	web "kasira.com/kasira/web/common"
)

type ChartParams struct {
	StartDate *web.DateOnly `json:"startDate" binding:"required"`
	EndDate   *web.DateOnly `json:"endDate" binding:"required"`
	Metric    string        `json:"metric"`
}

func chartMetric(s string) core.Metric {
	switch s {
	case string(core.MetricAccountingHandover):
		return core.MetricAccountingHandover
	case string(core.MetricCombinedOutflow):
		return core.MetricCombinedOutflow
	default:
		return core.MetricOperationalHandover
	}
}

// Chart pairs the requested range against the equal-length range
// immediately before it. Only closed shifts chart; an open shift has no
// settled handover yet.
func (ep *Endpoint) Chart(c *gin.Context) {
	var params ChartParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	s := store.New(db)
	ctx := c.Request.Context()

	currentShifts, err := s.ShiftsByDateRange(ctx, params.StartDate.Time, params.EndDate.Time, models.ShiftStatusClosed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	prevStart, prevEnd := core.PreviousRange(params.StartDate.Time, params.EndDate.Time)
	previousShifts, err := s.ShiftsByDateRange(ctx, prevStart, prevEnd, models.ShiftStatusClosed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	points := core.AggregatePeriod(buildClosings(currentShifts), buildClosings(previousShifts), chartMetric(params.Metric))

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{
		"metric": chartMetric(params.Metric),
		"points": points,
	}))
}
