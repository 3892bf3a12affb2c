package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-sheets/internal/domain"
	"github.com/jhoicas/inventario-sheets/internal/domain/entity"
	"github.com/jhoicas/inventario-sheets/internal/domain/inventory"
	"github.com/jhoicas/inventario-sheets/internal/domain/repository"
)

// ExportUseCase exportación/respaldo de la vista filtrada: CSV con columnas
// seleccionables, libro XLSX y CSV del resumen por ID Similar.
type ExportUseCase struct {
	repo repository.ItemRepository
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(repo repository.ItemRepository) *ExportUseCase {
	return &ExportUseCase{repo: repo}
}

// CSV serializa la vista filtrada. columns selecciona un subconjunto en el
// orden pedido; vacío exporta todas en el orden fijo del almacén. Una columna
// desconocida es domain.ErrInvalidInput.
func (uc *ExportUseCase) CSV(ctx context.Context, filters inventory.Filters, columns []string) ([]byte, error) {
	if len(columns) == 0 {
		columns = entity.Columns
	}
	idx, err := columnIndexes(columns)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	view := filters.Apply(items)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("exportar csv: %w", err)
	}
	for _, it := range view {
		full := it.Record()
		row := make([]string, len(idx))
		for i, col := range idx {
			row[i] = full[col]
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("exportar csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("exportar csv: %w", err)
	}
	return buf.Bytes(), nil
}

// SummaryCSV serializa el resumen por ID Similar.
func (uc *ExportUseCase) SummaryCSV(ctx context.Context) ([]byte, error) {
	items, err := uc.repo.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"ID Similar", "Total_Cantidad", "Num_Items"}); err != nil {
		return nil, fmt.Errorf("exportar resumen csv: %w", err)
	}
	for _, g := range inventory.Summarize(items) {
		row := []string{g.IDSimilar, strconv.FormatInt(g.TotalQuantity, 10), strconv.Itoa(g.Items)}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("exportar resumen csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("exportar resumen csv: %w", err)
	}
	return buf.Bytes(), nil
}

// XLSX arma un libro con la vista filtrada en una hoja "Inventario".
func (uc *ExportUseCase) XLSX(ctx context.Context, filters inventory.Filters) ([]byte, error) {
	items, err := uc.repo.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	view := filters.Apply(items)

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Inventario"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("exportar xlsx: %w", err)
	}

	header := make([]interface{}, len(entity.Columns))
	for i, c := range entity.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("exportar xlsx: %w", err)
	}
	for i, it := range view {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("exportar xlsx: %w", err)
		}
		row := []interface{}{it.ID, it.Image, it.Description, it.Unit, it.Quantity, it.Location, it.IDSimilar}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("exportar xlsx: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("exportar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func columnIndexes(columns []string) ([]int, error) {
	idx := make([]int, 0, len(columns))
	for _, c := range columns {
		found := -1
		for i, known := range entity.Columns {
			if c == known {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("columna %q: %w", c, domain.ErrInvalidInput)
		}
		idx = append(idx, found)
	}
	return idx, nil
}
