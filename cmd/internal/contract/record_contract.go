package contract

// RecordResponse carries the lifecycle fields every entity exposes.
type RecordResponse struct {
	ID        string  `json:"id"`
	IsActive  bool    `json:"is_active"`
	IsDeleted bool    `json:"is_deleted"`
	DeletedAt *string `json:"deleted_at"`
	Version   int64   `json:"version"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type PageResponse[E any] struct {
	Items      []E   `json:"items"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalItems int64 `json:"total_items"`
	TotalPages int64 `json:"total_pages"`
}
