package models

// Project is a portfolio entry as served by the backend. Timestamps stay as
// the backend's ISO strings; the client only displays them.
type Project struct {
	ID               int     `json:"id"`
	Slug             string  `json:"slug"`
	Title            string  `json:"title"`
	ShortDescription string  `json:"short_description"`
	DescriptionMD    string  `json:"description_md"`
	ImageURL         *string `json:"image_url"`
	RepoURL          *string `json:"repo_url"`
	LiveURL          *string `json:"live_url"`
	IsFeatured       bool    `json:"is_featured"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// ListProjectsParams are the supported query parameters for listing
// projects. Zero values are omitted from the query string.
type ListProjectsParams struct {
	Featured *bool
	Query    string
	Page     int
	PageSize int
}

// ListProjectsResult is the normalized list shape. The backend may answer
// with either this shape or a bare array; the service layer always returns
// this one.
type ListProjectsResult struct {
	Items []Project `json:"items"`
	Total int       `json:"total"`
}
