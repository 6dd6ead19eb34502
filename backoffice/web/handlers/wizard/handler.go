package wizard

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	core "kasira.com/kasira/backoffice/core"
	kasira "kasira.com/kasira/core"
	"kasira.com/kasira/infrastructure/communication"
	web "kasira.com/kasira/web/common"
)

// session wraps one operator's wizard. The engine's Wizard is not safe
// for concurrent use; the session mutex serializes requests on it.
type session struct {
	mu     sync.Mutex
	wizard *core.Wizard
	host   string
}

type Endpoint struct {
	dm    *kasira.DatabaseManager
	slack *communication.Slack

	mu       sync.Mutex
	sessions map[string]*session
}

func Register(r *gin.RouterGroup, dm *kasira.DatabaseManager, slack *communication.Slack) {
	endpoint := &Endpoint{
		dm:       dm,
		slack:    slack,
		sessions: map[string]*session{},
	}

	r.POST("/shifts/:id/wizard", endpoint.Start)
	r.GET("/wizard/:sid", endpoint.Get)
	r.POST("/wizard/:sid/advance", endpoint.Advance)
	r.POST("/wizard/:sid/back", endpoint.Back)
	r.POST("/wizard/:sid/confirm", endpoint.Confirm)
	r.DELETE("/wizard/:sid", endpoint.Cancel)

	r.PUT("/wizard/:sid/operational", endpoint.SetAuditedCash)
	r.PUT("/wizard/:sid/accounting", endpoint.SetAccountingCash)
	r.POST("/wizard/:sid/accounting/lines", endpoint.AddSaleLine)
	r.DELETE("/wizard/:sid/accounting/lines/:index", endpoint.RemoveSaleLine)
	r.POST("/wizard/:sid/accounting/expenses", endpoint.AddExpense)
	r.DELETE("/wizard/:sid/accounting/expenses/:index", endpoint.RemoveExpense)
	r.PUT("/wizard/:sid/tips", endpoint.SetTipsDelivered)
}

func (ep *Endpoint) newSession(w *core.Wizard, host string) string {
	sid := uuid.NewString()
	ep.mu.Lock()
	ep.sessions[sid] = &session{wizard: w, host: host}
	ep.mu.Unlock()
	return sid
}

func (ep *Endpoint) session(sid string) *session {
	ep.mu.Lock()
	defer ep.mu.Unlock()
	return ep.sessions[sid]
}

func (ep *Endpoint) dropSession(sid string) {
	ep.mu.Lock()
	delete(ep.sessions, sid)
	ep.mu.Unlock()
}

type StateDTO struct {
	SessionID string     `json:"sessionId"`
	ShiftID   uint       `json:"shiftId"`
	Stage     core.Stage `json:"stage"`
	Draft     core.Draft `json:"draft"`

	FinalHandover   int64  `json:"finalHandover"`
	HandoverDisplay string `json:"handoverDisplay"`
}

func newStateDTO(sid string, w *core.Wizard) StateDTO {
	handover := w.FinalHandover()
	return StateDTO{
		SessionID:       sid,
		ShiftID:         w.ShiftID(),
		Stage:           w.Stage(),
		Draft:           w.Draft(),
		FinalHandover:   handover,
		HandoverDisplay: web.FormatCurrency(handover),
	}
}

// writeWizardError maps engine errors onto HTTP statuses. Stage and
// lifecycle violations are conflicts; bad entries are bad requests.
func writeWizardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrShiftNotFound):
		c.JSON(http.StatusNotFound, web.NewErrorResponse(err.Error()))
	case errors.Is(err, core.ErrShiftNotOpen),
		errors.Is(err, core.ErrWizardClosed),
		errors.Is(err, core.ErrWizardTerminal),
		errors.Is(err, core.ErrWrongStage):
		c.JSON(http.StatusConflict, web.NewErrorResponse(err.Error()))
	case errors.Is(err, core.ErrMissingDescription),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidQuantity),
		errors.Is(err, core.ErrUnknownProduct):
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
	}
}

// withSession runs fn under the session lock and renders the resulting
// wizard state, or a 404 when the session is unknown.
func (ep *Endpoint) withSession(c *gin.Context, fn func(s *session) error) {
	sid := c.Param("sid")
	s := ep.session(sid)
	if s == nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("wizard session not found"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s); err != nil {
		writeWizardError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(newStateDTO(sid, s.wizard)))
}
