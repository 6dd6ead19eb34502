package v1

import (
	"encoding/json"
	"fmt"

	core "kasira.com/kasira/backoffice/core"
)

const basePath = "/api/backoffice/v1.0"

type SearchClosingsParams struct {
	StartDate string `json:"startDate"` // yyyy-MM-dd
	EndDate   string `json:"endDate"`
	Status    string `json:"status,omitempty"`
	View      string `json:"view,omitempty"`

	MaterialOnly   bool `json:"materialOnly,omitempty"`
	IncompleteOnly bool `json:"incompleteOnly,omitempty"`
}

type ClosingRow struct {
	ShiftID         uint         `json:"shiftId"`
	LocationID      int32        `json:"locationId"`
	Date            string       `json:"date"`
	Status          string       `json:"status"`
	Complete        bool         `json:"complete"`
	Summary         core.Summary `json:"summary"`
	HandoverDisplay string       `json:"handoverDisplay"`
}

type searchEnvelope struct {
	Data []ClosingRow `json:"data"`
}

type ClosingEndpoint struct {
	transport *Transport
}

func (ep *ClosingEndpoint) Search(params SearchClosingsParams) ([]ClosingRow, error) {
	resp, err := ep.transport.Post(basePath+"/closings/search", params, nil)
	if err != nil {
		return nil, err
	}

	var result searchEnvelope
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

type ClosingDetail struct {
	ShiftID         uint         `json:"shiftId"`
	LocationID      int32        `json:"locationId"`
	Date            string       `json:"date"`
	Status          string       `json:"status"`
	Complete        bool         `json:"complete"`
	Combined        core.Summary `json:"combined"`
	HandoverDisplay string       `json:"handoverDisplay"`
	TipsDelivered   *int64       `json:"tipsDelivered,omitempty"`
}

func (ep *ClosingEndpoint) Get(shiftID uint) (*ClosingDetail, error) {
	resp, err := ep.transport.Get(fmt.Sprintf("%s/closings/%d", basePath, shiftID), nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Data ClosingDetail `json:"data"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}

	return &result.Data, nil
}

func (ep *ClosingEndpoint) RecordAttachment(shiftID uint, source, slot, url string) error {
	payload := map[string]string{"source": source, "slot": slot, "url": url}
	_, err := ep.transport.Post(fmt.Sprintf("%s/closings/%d/attachments", basePath, shiftID), payload, nil)
	return err
}
