package wizard

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	core "kasira.com/kasira/backoffice/core"
	"kasira.com/kasira/backoffice/store"
	webcommon "kasira.com/kasira/backoffice/web/common"
	web "kasira.com/kasira/web/common"
)

// Start opens a remote-closing session for an open shift. The session is
// bound to the request's location host so every later call — including
// the Confirm write — lands on the same schema.
func (ep *Endpoint) Start(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return
	}

	host := webcommon.GetHostname(c.Request.Host)
	dmStore := store.NewDmStore(ep.dm, host)

	w, err := core.StartWizard(c.Request.Context(), dmStore, dmStore, uint(id))
	if err != nil {
		writeWizardError(c, err)
		return
	}

	sid := ep.newSession(w, host)
	c.JSON(http.StatusCreated, web.NewSuccessResponse(newStateDTO(sid, w)))
}

func (ep *Endpoint) Get(c *gin.Context) {
	ep.withSession(c, func(s *session) error { return nil })
}

func (ep *Endpoint) Advance(c *gin.Context) {
	ep.withSession(c, func(s *session) error { return s.wizard.Advance() })
}

func (ep *Endpoint) Back(c *gin.Context) {
	ep.withSession(c, func(s *session) error { return s.wizard.Back() })
}

// Confirm performs the shift's single closing write. On success the
// session is dropped; on failure it stays alive so the operator can
// retry without re-entering anything.
func (ep *Endpoint) Confirm(c *gin.Context) {
	sid := c.Param("sid")
	s := ep.session(sid)
	if s == nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("wizard session not found"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.wizard
	if err := w.Confirm(c.Request.Context()); err != nil {
		writeWizardError(c, err)
		return
	}

	// Closed. Flag a material combined variance to the finance channel;
	// the close itself never waits on Slack.
	combined := draftSummary(w.Draft())
	if combined.MaterialVariance && ep.slack != nil {
		if err := ep.slack.VarianceAlert(s.host, w.ShiftID(), combined.Variance); err != nil {
			fmt.Printf("[WARN] variance alert for shift %d failed: %v\n", w.ShiftID(), err)
		}
	}

	ep.dropSession(sid)
	c.JSON(http.StatusOK, web.NewSuccessResponse(newStateDTO(sid, w)))
}

// draftSummary derives the combined reconciliation figures from the
// wizard draft, mirroring what Summarize will report once the closing
// blob is read back.
func draftSummary(d core.Draft) core.Summary {
	op := &core.SourceClosing{
		BaseCash:       d.Operational.BaseCash,
		SalesCash:      d.Operational.SalesCash,
		SalesCard:      d.Operational.SalesCard,
		SalesTransfer:  d.Operational.SalesTransfer,
		ExpensesTotal:  d.Operational.ExpensesTotal,
		TipsTotal:      d.Operational.TipsTotal,
		CashAuditCount: d.Operational.AuditedCash,
	}
	acc := &core.SourceClosing{
		BaseCash:       d.Accounting.BaseCash,
		CashAuditCount: d.Accounting.AuditedCash,
	}
	for _, line := range d.Accounting.Lines {
		acc.SalesCash += line.Total()
	}
	for _, e := range d.Accounting.Expenses {
		acc.ExpensesTotal += e.Amount
	}
	return core.Summarize(op).Add(core.Summarize(acc))
}

// Cancel abandons the session. Nothing was written, nothing to undo.
func (ep *Endpoint) Cancel(c *gin.Context) {
	sid := c.Param("sid")
	s := ep.session(sid)
	if s == nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("wizard session not found"))
		return
	}

	s.mu.Lock()
	s.wizard.Cancel()
	s.mu.Unlock()

	ep.dropSession(sid)
	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{}))
}
