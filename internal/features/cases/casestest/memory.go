// Package casestest provides an in-memory case store for service tests.
package casestest

import (
	"context"
	"sync"
	"time"

	common_models "go-legal/internal/common/models"
	"go-legal/internal/features/cases"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryCaseRepository is a cases.CaseRepository held in process memory with
// the same version semantics as the Mongo implementation.
type MemoryCaseRepository struct {
	mu    sync.Mutex
	cases map[string]cases.Case

	// BeforeWrite, when set, runs inside every UpdatePhase/UpdateStatus call
	// before the version check.
	BeforeWrite func()
}

func NewMemoryCaseRepository() *MemoryCaseRepository {
	return &MemoryCaseRepository{cases: make(map[string]cases.Case)}
}

func (r *MemoryCaseRepository) Create(ctx context.Context, c *cases.Case) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	r.cases[c.ID.Hex()] = cloneCase(*c)
	return nil
}

func (r *MemoryCaseRepository) GetByID(ctx context.Context, id string) (*cases.Case, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cases[id]
	if !ok {
		return nil, nil
	}
	out := cloneCase(c)
	return &out, nil
}

func (r *MemoryCaseRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]cases.Case, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []cases.Case
	for _, c := range r.cases {
		out = append(out, cloneCase(c))
	}
	return out, nil
}

func (r *MemoryCaseRepository) UpdatePhase(ctx context.Context, id string, expectedVersion int64, phase common_models.Phase, metadata map[string]interface{}) error {
	if r.BeforeWrite != nil {
		r.BeforeWrite()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cases[id]
	if !ok || c.Version != expectedVersion {
		return cases.ErrVersionConflict
	}
	c.Phase = phase
	if c.Metadata == nil {
		c.Metadata = map[string]interface{}{}
	}
	for k, v := range metadata {
		if cases.SafeMetadataKey(k) {
			c.Metadata[k] = v
		}
	}
	c.Version++
	c.UpdatedAt = time.Now()
	r.cases[id] = c
	return nil
}

func (r *MemoryCaseRepository) UpdateStatus(ctx context.Context, id string, expectedVersion int64, status common_models.CaseStatus, closedAt *time.Time) error {
	if r.BeforeWrite != nil {
		r.BeforeWrite()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cases[id]
	if !ok || c.Version != expectedVersion {
		return cases.ErrVersionConflict
	}
	c.Status = status
	if closedAt != nil {
		t := *closedAt
		c.ClosedAt = &t
	}
	c.Version++
	c.UpdatedAt = time.Now()
	r.cases[id] = c
	return nil
}

func cloneCase(c cases.Case) cases.Case {
	if c.Metadata != nil {
		m := make(map[string]interface{}, len(c.Metadata))
		for k, v := range c.Metadata {
			m[k] = v
		}
		c.Metadata = m
	}
	return c
}
