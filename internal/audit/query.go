package audit

import (
	"context"
	"math"

	dErrors "fact/pkg/domain-errors"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// QueryService reads the audit history.
type QueryService struct {
	store Store
}

// NewQueryService constructs a QueryService over store.
func NewQueryService(store Store) *QueryService {
	return &QueryService{store: store}
}

// List returns one page of entries matching q, newest first. Pages are
// zero-based. Location and Email match case-insensitive substrings; From and
// To are inclusive and either may be absent.
func (s *QueryService) List(ctx context.Context, q Query) (*Page, error) {
	if q.Page < 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "page must not be negative")
	}
	if q.From != nil && q.To != nil && q.From.After(*q.To) {
		return nil, dErrors.New(dErrors.CodeValidation, "dateFrom must not be after dateTo")
	}
	switch {
	case q.Size <= 0:
		q.Size = DefaultPageSize
	case q.Size > MaxPageSize:
		q.Size = MaxPageSize
	}
	if q.Page > math.MaxInt/q.Size {
		return nil, dErrors.New(dErrors.CodeValidation, "page is out of range")
	}

	entries, total, err := s.store.List(ctx, q)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audit entries")
	}
	return &Page{Entries: entries, Page: q.Page, Size: q.Size, Total: total}, nil
}
