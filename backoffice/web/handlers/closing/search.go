package closing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	core "kasira.com/kasira/backoffice/core"
	"kasira.com/kasira/backoffice/store"
	"kasira.com/kasira/utils"
	web "kasira.com/kasira/web/common"
)

type SearchParams struct {
	StartDate *web.DateOnly `json:"startDate" binding:"required"`
	EndDate   *web.DateOnly `json:"endDate" binding:"required"`
	Status    string        `json:"status"`
	View      string        `json:"view"` // all | operational | accounting

	MaterialOnly   bool `json:"materialOnly"`
	IncompleteOnly bool `json:"incompleteOnly"`
}

func viewFilter(view string) core.ViewFilter {
	switch view {
	case string(core.ViewOperational):
		return core.ViewOperational
	case string(core.ViewAccounting):
		return core.ViewAccounting
	default:
		return core.ViewAll
	}
}

func (ep *Endpoint) Search(c *gin.Context) {
	var params SearchParams

	// Parse JSON body
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

	shifts, err := store.New(db).ShiftsByDateRange(c.Request.Context(), params.StartDate.Time, params.EndDate.Time, params.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	filter := viewFilter(params.View)
	closings := buildClosings(shifts)

	if params.MaterialOnly {
		closings = utils.Filter(closings, func(u *core.UnifiedClosing) bool {
			return u.Summarize(filter).MaterialVariance
		})
	}
	if params.IncompleteOnly {
		closings = utils.Filter(closings, func(u *core.UnifiedClosing) bool {
			return !u.IsComplete()
		})
	}

	rows := utils.Map(closings, func(u *core.UnifiedClosing) ClosingDTO {
		return newClosingDTO(u, filter)
	})

	c.JSON(http.StatusOK, web.NewSearchResponse(rows, int64(len(rows))))
}
