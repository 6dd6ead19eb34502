package closing

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"kasira.com/kasira/backoffice/store"
	web "kasira.com/kasira/web/common"
)

// Export renders the same result set as Search into a spreadsheet, one
// row per shift, money columns pre-formatted for the accountant.
func (ep *Endpoint) Export(c *gin.Context) {
	var params SearchParams
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

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Closings"
	f.SetSheetName("Sheet1", sheet)

	headers := []interface{}{
		"Shift", "Date", "Status", "Base Cash", "Cash Sales", "Card Sales",
		"Transfer Sales", "Expenses", "Tips", "Counted Cash", "Expected Cash",
		"Variance", "Net Handover", "Material", "Complete",
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	for i, u := range closings {
		s := u.Summarize(filter)
		row := []interface{}{
			u.ShiftID,
			u.Date,
			u.Status,
			web.FormatCurrency(s.BaseCash),
			web.FormatCurrency(s.SalesCash),
			web.FormatCurrency(s.SalesCard),
			web.FormatCurrency(s.SalesTransfer),
			web.FormatCurrency(s.ExpensesTotal),
			web.FormatCurrency(s.TipsTotal),
			web.FormatCurrency(s.CashAuditCount),
			web.FormatCurrency(s.ExpectedCash),
			web.FormatCurrency(s.Variance),
			web.FormatCurrency(s.NetHandover),
			s.MaterialVariance,
			u.IsComplete(),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
			return
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	filename := fmt.Sprintf("closings-%s-%s.xlsx",
		params.StartDate.Time.Format("2006-01-02"),
		params.EndDate.Time.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
