package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/inventario-sheets/internal/application/dto"
	"github.com/jhoicas/inventario-sheets/internal/domain"
	"github.com/jhoicas/inventario-sheets/internal/domain/entity"
	"github.com/jhoicas/inventario-sheets/internal/domain/inventory"
	"github.com/jhoicas/inventario-sheets/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD sobre las filas del inventario. Cada operación
// recarga la tabla completa desde el almacén remoto: la copia en memoria dura
// lo que dura la petición.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create agrega una fila nueva. Valida Cantidad >= 0 y rechaza con
// domain.ErrDuplicate si ya existe el par Descripción + Ubicación (salvo
// AllowDuplicate). El ID se asigna secuencialmente (I-0001, I-0002, ...).
// "ID Similar" se guarda recortado pero con su capitalización original; la
// normalización se aplica solo al comparar y agrupar.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.repo.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	if !in.AllowDuplicate && inventory.DetectDuplicate(items, in.Description, in.Location, "") {
		return nil, domain.ErrDuplicate
	}
	item := entity.Item{
		ID:          inventory.NextID(items),
		Image:       strings.TrimSpace(in.Image),
		Description: strings.TrimSpace(in.Description),
		Unit:        strings.TrimSpace(in.Unit),
		Quantity:    in.Quantity,
		Location:    strings.TrimSpace(in.Location),
		IDSimilar:   strings.TrimSpace(in.IDSimilar),
	}
	if err := uc.repo.Append(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene una fila por ID. Devuelve nil si no existe.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	items, err := uc.repo.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.ID == id {
			return toItemResponse(it), nil
		}
	}
	return nil, nil
}

// List devuelve la vista filtrada de la tabla.
func (uc *ItemUseCase) List(ctx context.Context, filters inventory.Filters) (*dto.ItemListResponse, error) {
	items, err := uc.repo.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	view := filters.Apply(items)
	out := make([]dto.ItemResponse, 0, len(view))
	for _, it := range view {
		out = append(out, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: out, Total: len(out)}, nil
}

// Update edita una fila existente (edición en línea del grid). Campos nil no
// se tocan. El chequeo de duplicados excluye la fila que se está editando.
// Devuelve nil si el ID no existe.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	items, err := uc.repo.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	var item *entity.Item
	for i := range items {
		if items[i].ID == id {
			item = &items[i]
			break
		}
	}
	if item == nil {
		return nil, nil
	}
	if in.Image != nil {
		item.Image = strings.TrimSpace(*in.Image)
	}
	if in.Description != nil {
		item.Description = strings.TrimSpace(*in.Description)
	}
	if in.Unit != nil {
		item.Unit = strings.TrimSpace(*in.Unit)
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.Location != nil {
		item.Location = strings.TrimSpace(*in.Location)
	}
	if in.IDSimilar != nil {
		item.IDSimilar = strings.TrimSpace(*in.IDSimilar)
	}
	if !in.AllowDuplicate && inventory.DetectDuplicate(items, item.Description, item.Location, item.ID) {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Update(ctx, *item); err != nil {
		return nil, err
	}
	return toItemResponse(*item), nil
}

// Delete elimina una fila. Se rechaza con domain.ErrDeleteFiltered cuando la
// vista del cliente tiene filtros activos y no se envió el permiso explícito
// (protección contra borrados accidentales al estar filtrando).
func (uc *ItemUseCase) Delete(ctx context.Context, id string, filters inventory.Filters, allowFiltered bool) error {
	if err := inventory.GuardDelete(filters, allowFiltered); err != nil {
		return err
	}
	items, err := uc.repo.ReadAll(ctx)
	if err != nil {
		return err
	}
	remaining := make([]entity.Item, 0, len(items))
	found := false
	for _, it := range items {
		if it.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, it)
	}
	if !found {
		return domain.ErrNotFound
	}
	return uc.repo.ReplaceAll(ctx, remaining)
}

func toItemResponse(i entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:          i.ID,
		Image:       i.Image,
		Description: i.Description,
		Unit:        i.Unit,
		Quantity:    i.Quantity,
		Location:    i.Location,
		IDSimilar:   i.IDSimilar,
	}
}
