package closing

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	core "kasira.com/kasira/backoffice/core"
	"kasira.com/kasira/backoffice/store"
	web "kasira.com/kasira/web/common"
)

func (ep *Endpoint) Get(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	shift, err := store.New(db).ShiftByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	if shift == nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Shift not found"))
		return
	}

	u := core.BuildUnifiedClosing(shift, shift.ClosingMeta)
	combined := u.Summarize(core.ViewAll)

	dto := ClosingDetailDTO{
		ShiftID:         u.ShiftID,
		LocationID:      u.LocationID,
		Date:            u.Date,
		StartTime:       u.StartTime,
		EndTime:         shift.EndTime,
		Status:          u.Status,
		Complete:        u.IsComplete(),
		Operational:     newSourceDTO(u.Operational, core.SourceOperational),
		Accounting:      newSourceDTO(u.Accounting, core.SourceAccounting),
		Combined:        combined,
		HandoverDisplay: web.FormatCurrency(combined.NetHandover),
		TipsDelivered:   u.TipsDelivered,
	}
	if u.MetaError != nil {
		dto.MetaError = u.MetaError.Error()
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(dto))
}
