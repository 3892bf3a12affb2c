package repository

import (
	"context"

	"github.com/jhoicas/inventario-sheets/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para las filas del inventario (DIP).
// El almacén remoto es la única fuente de verdad: cada ciclo de interacción
// comienza con ReadAll y el último que escribe gana (sin bloqueo ni control
// optimista de concurrencia).
type ItemRepository interface {
	ReadAll(ctx context.Context) ([]entity.Item, error)
	Append(ctx context.Context, item entity.Item) error
	Update(ctx context.Context, item entity.Item) error
	ReplaceAll(ctx context.Context, items []entity.Item) error
}
