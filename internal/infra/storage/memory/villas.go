package memory

import (
	"context"
	"sync"

	"villastay/internal/domain/villa"
)

// VillaRepository keeps villas in a map; the fixture set is small and static.
type VillaRepository struct {
	mu    sync.RWMutex
	items map[villa.VillaID]*villa.Villa
}

func NewVillaRepository() *VillaRepository {
	return &VillaRepository{items: make(map[villa.VillaID]*villa.Villa)}
}

func (r *VillaRepository) ByID(ctx context.Context, id villa.VillaID) (*villa.Villa, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[id]
	if !ok {
		return nil, villa.ErrNotFound
	}
	return v, nil
}

func (r *VillaRepository) Save(ctx context.Context, v *villa.Villa) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[v.ID] = v
	return nil
}

func (r *VillaRepository) List(ctx context.Context) ([]*villa.Villa, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*villa.Villa, 0, len(r.items))
	for _, v := range r.items {
		out = append(out, v)
	}
	return out, nil
}

var _ villa.Repository = (*VillaRepository)(nil)
