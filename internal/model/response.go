package model

// WebResponse is the envelope every endpoint answers with. Paging is only
// present on the contact search endpoint.
type WebResponse struct {
	Data   any             `json:"data,omitempty"`
	Errors string          `json:"errors,omitempty"`
	Paging *PagingResponse `json:"paging,omitempty"`
}

// PagingResponse describes one page of a search result. CurrentPage is
// zero-based; TotalPage is zero when nothing matched.
type PagingResponse struct {
	CurrentPage int `json:"currentPage"`
	TotalPage   int `json:"totalPage"`
	Size        int `json:"size"`
}
