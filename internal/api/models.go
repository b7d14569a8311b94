package api

// PageInfo describes where a list page sits in the collection. Next and Prev
// are null at the last and first page.
type PageInfo struct {
	Count int     `json:"count"`
	Pages int     `json:"pages"`
	Next  *string `json:"next"`
	Prev  *string `json:"prev"`
}

// PageResponse is the body of a list route.
type PageResponse[S any] struct {
	Info    PageInfo `json:"info"`
	Results []S      `json:"results"`
}
