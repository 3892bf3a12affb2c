package usecase_test

import (
	"context"
	"sync"

	"github.com/jhoicas/inventario-sheets/internal/domain/entity"
	"github.com/jhoicas/inventario-sheets/internal/domain"
	"github.com/jhoicas/inventario-sheets/internal/domain/repository"
)

var _ repository.ItemRepository = (*fakeRepo)(nil)

// fakeRepo implementación en memoria del puerto ItemRepository para los tests
// de casos de uso. failWith fuerza el error en todas las operaciones para
// simular fallos del almacén remoto.
type fakeRepo struct {
	mu       sync.Mutex
	items    []entity.Item
	failWith error
}

func newFakeRepo(seed ...entity.Item) *fakeRepo {
	return &fakeRepo{items: append([]entity.Item(nil), seed...)}
}

func (r *fakeRepo) ReadAll(_ context.Context) ([]entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]entity.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *fakeRepo) Append(_ context.Context, item entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	r.items = append(r.items, item)
	return nil
}

func (r *fakeRepo) Update(_ context.Context, item entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = item
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeRepo) ReplaceAll(_ context.Context, items []entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	r.items = append([]entity.Item(nil), items...)
	return nil
}
