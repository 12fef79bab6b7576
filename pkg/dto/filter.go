package dto

type Filter struct {
	Limit int    `query:"limit"`
	Page  int    `query:"page"`
	Q     string `query:"q"`
}

type PaginationMetadata struct {
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
}

type PaginationResponse struct {
	Metadata PaginationMetadata `json:"_metadata"`
	Records  interface{}        `json:"records"`
}
