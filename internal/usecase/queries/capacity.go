package queries

import (
	"context"

	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/usecase/shared"
)

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/capacity.go -package=queriesmock

type CapacityQueries interface {
	GetCapacity(ctx context.Context) (*CapacityView, error)
}

type capacityQueriesImpl struct {
	store           shared.CapacityStore
	defaultCapacity int
}

// NewCapacityQueries answers with defaultTotal until capacity is first set.
func NewCapacityQueries(store shared.CapacityStore, defaultTotal int) CapacityQueries {
	return &capacityQueriesImpl{store: store, defaultCapacity: defaultTotal}
}

func (q *capacityQueriesImpl) GetCapacity(ctx context.Context) (*CapacityView, error) {
	c, found, err := q.store.Get(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "read capacity")
	}
	if !found {
		return &CapacityView{TotalSlots: q.defaultCapacity}, nil
	}
	return &CapacityView{TotalSlots: c.Total, Configured: true}, nil
}
