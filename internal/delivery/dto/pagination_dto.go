package dto

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// ListQuery is decoded from the query string of listing endpoints.
type ListQuery struct {
	Page  int `schema:"page"`
	Limit int `schema:"limit"`
}

// Normalize clamps page and limit to sane values.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageLimit
	}
	if q.Limit > MaxPageLimit {
		q.Limit = MaxPageLimit
	}
}

func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
