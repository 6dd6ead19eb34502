package closing

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	core "kasira.com/kasira/backoffice/core"
	"kasira.com/kasira/backoffice/store"
	web "kasira.com/kasira/web/common"
)

type AttachmentParams struct {
	Source string `json:"source" binding:"required"` // operational | accounting
	Slot   string `json:"slot" binding:"required"`
	URL    string `json:"url" binding:"required"`
}

// RecordAttachment links an uploaded document URL to one attachment slot
// of a shift's closing. The upload itself goes through /upload/multiple.
func (ep *Endpoint) RecordAttachment(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return
	}

	var params AttachmentParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	kind := core.SourceKind(params.Source)
	if kind != core.SourceOperational && kind != core.SourceAccounting {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(fmt.Sprintf("unknown source %q", params.Source)))
		return
	}
	if !core.KnownSlot(params.Slot) {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(fmt.Sprintf("unknown attachment slot %q", params.Slot)))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	if err := store.New(db).RecordAttachment(c.Request.Context(), uint(id), kind, params.Slot, params.URL); err != nil {
		if errors.Is(err, core.ErrShiftNotFound) {
			c.JSON(http.StatusNotFound, web.NewErrorResponse("Shift not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{}))
}
