package dto

// PaginationMeta captures pagination metadata for list responses.
type PaginationMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// ReorderRequest carries the caller-supplied permutation of entity ids.
// Ids may cover a subset of the collection; unknown ids are skipped.
type ReorderRequest struct {
	OrderedIDs []uint `json:"orderedIds" validate:"required,min=1"`
}
