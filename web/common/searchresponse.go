package common

type Pagination struct {
	Total int64 `json:"total"`
}

// SearchResponse wraps list results. Closing searches return the whole
// filtered range, so Total is the result count rather than a page count.
type SearchResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

func NewSearchResponse(data interface{}, total int64) *SearchResponse {
	return &SearchResponse{
		Data: data,
		Pagination: Pagination{
			Total: total,
		},
	}
}
