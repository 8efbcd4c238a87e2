package models

import "math"

// Link is a HATEOAS navigation link attached to API responses.
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

// PagedResponse is the envelope for paginated collection responses.
type PagedResponse struct {
	Items      interface{} `json:"items"`
	TotalCount int64       `json:"totalCount"`
	PageNumber int         `json:"pageNumber"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
	Links      []Link      `json:"links"`
}

// NewPagedResponse builds a paged envelope and derives the total page count.
func NewPagedResponse(items interface{}, totalCount int64, pageNumber, pageSize int) *PagedResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalCount) / float64(pageSize)))
	}
	return &PagedResponse{
		Items:      items,
		TotalCount: totalCount,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Links:      []Link{},
	}
}

// AddLink appends a navigation link, skipping empty hrefs.
func (r *PagedResponse) AddLink(href, rel, method string) {
	if href != "" {
		r.Links = append(r.Links, Link{Href: href, Rel: rel, Method: method})
	}
}

// ResourceResponse is the envelope for single-resource responses.
type ResourceResponse struct {
	Data  interface{} `json:"data"`
	Links []Link      `json:"links"`
}

// NewResourceResponse wraps a single resource for link decoration.
func NewResourceResponse(data interface{}) *ResourceResponse {
	return &ResourceResponse{Data: data, Links: []Link{}}
}

// AddLink appends a navigation link, skipping empty hrefs.
func (r *ResourceResponse) AddLink(href, rel, method string) {
	if href != "" {
		r.Links = append(r.Links, Link{Href: href, Rel: rel, Method: method})
	}
}
