package gsheets

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"

	"github.com/jhoicas/inventario-sheets/internal/domain"
	"github.com/jhoicas/inventario-sheets/internal/domain/entity"
	"github.com/jhoicas/inventario-sheets/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo adaptador de persistencia sobre un worksheet de Google Sheets.
// La primera fila del worksheet es la cabecera con el orden fijo de columnas.
type ItemRepo struct {
	svc           *sheets.Service
	spreadsheetID string
	worksheet     string
}

// NewItemRepository construye el adaptador para la hoja y pestaña indicadas.
func NewItemRepository(svc *sheets.Service, spreadsheetID, worksheet string) *ItemRepo {
	return &ItemRepo{svc: svc, spreadsheetID: spreadsheetID, worksheet: worksheet}
}

// EnsureWorksheet verifica que la pestaña exista; si no, la crea y escribe la
// fila de cabecera. Se invoca una vez al arrancar.
func (r *ItemRepo) EnsureWorksheet(ctx context.Context) error {
	doc, err := r.svc.Spreadsheets.Get(r.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return mapAPIError("abrir spreadsheet", err)
	}
	for _, s := range doc.Sheets {
		if s.Properties != nil && s.Properties.Title == r.worksheet {
			return nil
		}
	}

	_, err = r.svc.Spreadsheets.BatchUpdate(r.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: r.worksheet},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return mapAPIError("crear worksheet", err)
	}

	header := &sheets.ValueRange{Values: [][]interface{}{headerRow()}}
	_, err = r.svc.Spreadsheets.Values.
		Update(r.spreadsheetID, r.rowRange(1), header).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return mapAPIError("escribir cabecera", err)
	}
	return nil
}

// ReadAll carga el worksheet completo, omitiendo la fila de cabecera.
func (r *ItemRepo) ReadAll(ctx context.Context) ([]entity.Item, error) {
	resp, err := r.svc.Spreadsheets.Values.
		Get(r.spreadsheetID, r.fullRange()).
		Context(ctx).Do()
	if err != nil {
		return nil, mapAPIError("leer worksheet", err)
	}
	items := make([]entity.Item, 0, len(resp.Values))
	for i, row := range resp.Values {
		if i == 0 {
			continue // cabecera
		}
		items = append(items, entity.ItemFromRecord(toRecord(row)))
	}
	return items, nil
}

// Append agrega la fila al final del worksheet.
func (r *ItemRepo) Append(ctx context.Context, item entity.Item) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{toCells(item)}}
	_, err := r.svc.Spreadsheets.Values.
		Append(r.spreadsheetID, r.fullRange(), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return mapAPIError("agregar fila", err)
	}
	return nil
}

// Update localiza la fila por ID (columna A) y la sobreescribe en su lugar.
func (r *ItemRepo) Update(ctx context.Context, item entity.Item) error {
	resp, err := r.svc.Spreadsheets.Values.
		Get(r.spreadsheetID, r.idColumnRange()).
		Context(ctx).Do()
	if err != nil {
		return mapAPIError("buscar fila", err)
	}
	rowNum := 0
	for i, row := range resp.Values {
		if i == 0 || len(row) == 0 {
			continue
		}
		if fmt.Sprint(row[0]) == item.ID {
			rowNum = i + 1 // rango A1: la fila 1 es la cabecera
			break
		}
	}
	if rowNum == 0 {
		return fmt.Errorf("actualizar fila %s: %w", item.ID, domain.ErrNotFound)
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{toCells(item)}}
	_, err = r.svc.Spreadsheets.Values.
		Update(r.spreadsheetID, r.rowRange(rowNum), vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return mapAPIError("actualizar fila", err)
	}
	return nil
}

// ReplaceAll limpia el worksheet y lo reescribe completo (cabecera + filas).
func (r *ItemRepo) ReplaceAll(ctx context.Context, items []entity.Item) error {
	_, err := r.svc.Spreadsheets.Values.
		Clear(r.spreadsheetID, r.fullRange(), &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return mapAPIError("limpiar worksheet", err)
	}

	values := make([][]interface{}, 0, len(items)+1)
	values = append(values, headerRow())
	for _, it := range items {
		values = append(values, toCells(it))
	}
	_, err = r.svc.Spreadsheets.Values.
		Update(r.spreadsheetID, r.rowRange(1), &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return mapAPIError("reescribir worksheet", err)
	}
	return nil
}

func (r *ItemRepo) fullRange() string {
	return fmt.Sprintf("'%s'!A:G", r.worksheet)
}

func (r *ItemRepo) idColumnRange() string {
	return fmt.Sprintf("'%s'!A:A", r.worksheet)
}

func (r *ItemRepo) rowRange(row int) string {
	return fmt.Sprintf("'%s'!A%d", r.worksheet, row)
}

func headerRow() []interface{} {
	out := make([]interface{}, len(entity.Columns))
	for i, c := range entity.Columns {
		out[i] = c
	}
	return out
}

func toCells(item entity.Item) []interface{} {
	rec := item.Record()
	out := make([]interface{}, len(rec))
	for i, v := range rec {
		out[i] = v
	}
	return out
}

func toRecord(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = fmt.Sprint(v)
	}
	return out
}

// mapAPIError traduce fallos de la API a errores de dominio: 401/403 es
// credencial (la cuenta de servicio no existe o no tiene acceso a la hoja);
// el resto (red, cuota, 5xx) es indisponibilidad del almacén. No se reintenta:
// el siguiente ciclo de interacción vuelve a leer.
func mapAPIError(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && (gerr.Code == 401 || gerr.Code == 403) {
		return fmt.Errorf("%s: %s: %w", op, gerr.Message, domain.ErrUnauthorized)
	}
	return fmt.Errorf("%s: %v: %w", op, err, domain.ErrSheetUnavailable)
}
