package dto

// PageResponse is one window of a listing plus the total match count.
// Field names mirror what the clinic frontend's pagination hook expects.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func NewPageResponse[T any](content []T, page, size int, total int64) *PageResponse[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := int(total) / size
	if int(total)%size > 0 {
		totalPages++
	}

	return &PageResponse[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
