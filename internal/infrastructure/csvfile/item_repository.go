// Package csvfile implementa el puerto ItemRepository sobre un archivo CSV
// local (modo sin Google Sheets). Mismo orden de columnas que el worksheet.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"github.com/jhoicas/inventario-sheets/internal/domain/entity"
	"github.com/jhoicas/inventario-sheets/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo almacén de filas en un CSV local. El mutex serializa los ciclos
// leer-modificar-escribir dentro del proceso; entre procesos gana el último
// que escribe, igual que contra la hoja remota.
type ItemRepo struct {
	mu   sync.Mutex
	path string
}

// NewItemRepository construye el adaptador sobre la ruta dada.
func NewItemRepository(path string) *ItemRepo {
	return &ItemRepo{path: path}
}

// ReadAll carga la tabla completa. Archivo inexistente equivale a tabla vacía.
func (r *ItemRepo) ReadAll(_ context.Context) ([]entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readAll()
}

// Append agrega una fila al final.
func (r *ItemRepo) Append(_ context.Context, item entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items, err := r.readAll()
	if err != nil {
		return err
	}
	return r.writeAll(append(items, item))
}

// Update reemplaza la fila cuyo ID coincide.
func (r *ItemRepo) Update(_ context.Context, item entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items, err := r.readAll()
	if err != nil {
		return err
	}
	found := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("csv: actualizar fila %s: no encontrada", item.ID)
	}
	return r.writeAll(items)
}

// ReplaceAll reescribe el archivo completo (cabecera + filas).
func (r *ItemRepo) ReplaceAll(_ context.Context, items []entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writeAll(items)
}

func (r *ItemRepo) readAll() ([]entity.Item, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []entity.Item{}, nil
		}
		return nil, fmt.Errorf("csv: abrir %s: %w", r.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // filas con columnas faltantes se rellenan con vacío
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: leer %s: %w", r.path, err)
	}
	items := make([]entity.Item, 0, len(records))
	for i, rec := range records {
		if i == 0 {
			continue // cabecera
		}
		items = append(items, entity.ItemFromRecord(rec))
	}
	return items, nil
}

func (r *ItemRepo) writeAll(items []entity.Item) error {
	tmp := r.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("csv: crear %s: %w", tmp, err)
	}
	w := csv.NewWriter(f)
	writeErr := w.Write(entity.Columns)
	for _, it := range items {
		if writeErr != nil {
			break
		}
		writeErr = w.Write(it.Record())
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}
	if err := f.Close(); writeErr == nil {
		writeErr = err
	}
	if writeErr != nil {
		os.Remove(tmp)
		return fmt.Errorf("csv: escribir %s: %w", r.path, writeErr)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("csv: reemplazar %s: %w", r.path, err)
	}
	return nil
}
