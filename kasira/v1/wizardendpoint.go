package v1

import (
	"encoding/json"
	"fmt"

	core "kasira.com/kasira/backoffice/core"
)

// WizardState mirrors the server's session view of a remote closing.
type WizardState struct {
	SessionID       string     `json:"sessionId"`
	ShiftID         uint       `json:"shiftId"`
	Stage           core.Stage `json:"stage"`
	Draft           core.Draft `json:"draft"`
	FinalHandover   int64      `json:"finalHandover"`
	HandoverDisplay string     `json:"handoverDisplay"`
}

type WizardEndpoint struct {
	transport *Transport
}

func (ep *WizardEndpoint) decodeState(resp *Response) (*WizardState, error) {
	var result struct {
		Data WizardState `json:"data"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

func (ep *WizardEndpoint) Start(shiftID uint) (*WizardState, error) {
	resp, err := ep.transport.Post(fmt.Sprintf("%s/shifts/%d/wizard", basePath, shiftID), nil, nil)
	if err != nil {
		return nil, err
	}
	return ep.decodeState(resp)
}

func (ep *WizardEndpoint) Get(sid string) (*WizardState, error) {
	resp, err := ep.transport.Get(fmt.Sprintf("%s/wizard/%s", basePath, sid), nil)
	if err != nil {
		return nil, err
	}
	return ep.decodeState(resp)
}

func (ep *WizardEndpoint) Advance(sid string) (*WizardState, error) {
	resp, err := ep.transport.Post(fmt.Sprintf("%s/wizard/%s/advance", basePath, sid), nil, nil)
	if err != nil {
		return nil, err
	}
	return ep.decodeState(resp)
}

func (ep *WizardEndpoint) Back(sid string) (*WizardState, error) {
	resp, err := ep.transport.Post(fmt.Sprintf("%s/wizard/%s/back", basePath, sid), nil, nil)
	if err != nil {
		return nil, err
	}
	return ep.decodeState(resp)
}

func (ep *WizardEndpoint) SetAuditedCash(sid string, amount int64) (*WizardState, error) {
	resp, err := ep.transport.Put(fmt.Sprintf("%s/wizard/%s/operational", basePath, sid), map[string]int64{"auditedCash": amount}, nil)
	if err != nil {
		return nil, err
	}
	return ep.decodeState(resp)
}

func (ep *WizardEndpoint) SetAccountingCash(sid string, baseCash, auditedCash int64) (*WizardState, error) {
	payload := map[string]int64{"baseCash": baseCash, "auditedCash": auditedCash}
	resp, err := ep.transport.Put(fmt.Sprintf("%s/wizard/%s/accounting", basePath, sid), payload, nil)
	if err != nil {
		return nil, err
	}
	return ep.decodeState(resp)
}

func (ep *WizardEndpoint) AddSaleLine(sid string, productID int32, quantity int64) (*WizardState, error) {
	payload := map[string]int64{"productId": int64(productID), "quantity": quantity}
	resp, err := ep.transport.Post(fmt.Sprintf("%s/wizard/%s/accounting/lines", basePath, sid), payload, nil)
	if err != nil {
		return nil, err
	}
	return ep.decodeState(resp)
}

func (ep *WizardEndpoint) AddExpense(sid string, description string, amount int64) (*WizardState, error) {
	payload := map[string]any{"description": description, "amount": amount}
	resp, err := ep.transport.Post(fmt.Sprintf("%s/wizard/%s/accounting/expenses", basePath, sid), payload, nil)
	if err != nil {
		return nil, err
	}
	return ep.decodeState(resp)
}

func (ep *WizardEndpoint) SetTipsDelivered(sid string, amount int64) (*WizardState, error) {
	resp, err := ep.transport.Put(fmt.Sprintf("%s/wizard/%s/tips", basePath, sid), map[string]int64{"tipsDelivered": amount}, nil)
	if err != nil {
		return nil, err
	}
	return ep.decodeState(resp)
}

func (ep *WizardEndpoint) Confirm(sid string) (*WizardState, error) {
	resp, err := ep.transport.Post(fmt.Sprintf("%s/wizard/%s/confirm", basePath, sid), nil, nil)
	if err != nil {
		return nil, err
	}
	return ep.decodeState(resp)
}

func (ep *WizardEndpoint) Cancel(sid string) error {
	_, err := ep.transport.Delete(fmt.Sprintf("%s/wizard/%s", basePath, sid), nil)
	return err
}
