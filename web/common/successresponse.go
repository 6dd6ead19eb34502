package common

// SuccessResponse is the `{"data": ...}` envelope every non-search
// endpoint responds with.
type SuccessResponse struct {
	Data interface{} `json:"data"`
}

func NewSuccessResponse(data interface{}) *SuccessResponse {
	return &SuccessResponse{
		Data: data,
	}
}
