package wizard

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	web "kasira.com/kasira/web/common"
)

type AuditedCashDTO struct {
	AuditedCash *int64 `json:"auditedCash" binding:"required"`
}

func (ep *Endpoint) SetAuditedCash(c *gin.Context) {
	var body AuditedCashDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	ep.withSession(c, func(s *session) error {
		return s.wizard.SetAuditedCash(*body.AuditedCash)
	})
}

type AccountingCashDTO struct {
	BaseCash    *int64 `json:"baseCash" binding:"required"`
	AuditedCash *int64 `json:"auditedCash" binding:"required"`
}

func (ep *Endpoint) SetAccountingCash(c *gin.Context) {
	var body AccountingCashDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	ep.withSession(c, func(s *session) error {
		return s.wizard.SetAccountingCash(*body.BaseCash, *body.AuditedCash)
	})
}

type SaleLineDTO struct {
	ProductID int32 `json:"productId" binding:"required"`
	Quantity  int64 `json:"quantity" binding:"required"`
}

func (ep *Endpoint) AddSaleLine(c *gin.Context) {
	var body SaleLineDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	ep.withSession(c, func(s *session) error {
		return s.wizard.AddSaleLine(c.Request.Context(), body.ProductID, body.Quantity)
	})
}

func (ep *Endpoint) RemoveSaleLine(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid index"))
		return
	}

	ep.withSession(c, func(s *session) error {
		return s.wizard.RemoveSaleLine(index)
	})
}

type ExpenseDTO struct {
	Description string `json:"description" binding:"required"`
	Amount      int64  `json:"amount" binding:"required"`
}

func (ep *Endpoint) AddExpense(c *gin.Context) {
	var body ExpenseDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	ep.withSession(c, func(s *session) error {
		return s.wizard.AddExpense(body.Description, body.Amount)
	})
}

func (ep *Endpoint) RemoveExpense(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid index"))
		return
	}

	ep.withSession(c, func(s *session) error {
		return s.wizard.RemoveExpense(index)
	})
}

type TipsDTO struct {
	TipsDelivered *int64 `json:"tipsDelivered" binding:"required"`
}

func (ep *Endpoint) SetTipsDelivered(c *gin.Context) {
	var body TipsDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	ep.withSession(c, func(s *session) error {
		return s.wizard.SetTipsDelivered(*body.TipsDelivered)
	})
}
