// Package pdf genera el reporte imprimible del resumen por "ID Similar"
// usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID Similar | Total Cantidad | N° Ítems               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL GENERAL                                               │
//	│  FOOTER: QR hacia la app pública (si hay BASE_URL)           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventario-sheets/internal/application/usecase"
	"github.com/jhoicas/inventario-sheets/internal/domain/inventory"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.SummaryPDFGenerator = (*MarotoSummaryGenerator)(nil)

// MarotoSummaryGenerator implementa usecase.SummaryPDFGenerator usando Maroto v2.
type MarotoSummaryGenerator struct{}

// NewMarotoSummaryGenerator construye el generador.
func NewMarotoSummaryGenerator() *MarotoSummaryGenerator { return &MarotoSummaryGenerator{} }

// GenerateSummaryPDF genera el reporte y devuelve sus bytes.
func (g *MarotoSummaryGenerator) GenerateSummaryPDF(
	_ context.Context,
	groups []inventory.Group,
	grandTotal int64,
	appURL string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventario — Resumen por ID Similar", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(groups) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(grandTotal, groups))

	if appURL != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(qrFooterRow(appURL))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Inventario en tiempo real", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Resumen por ID Similar", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Top: 2, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	style := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(6).Add(text.New("ID Similar", style)),
		col.New(3).Add(text.New("Total Cantidad", mergeAlign(style, align.Right))),
		col.New(3).Add(text.New("N° Ítems", mergeAlign(style, align.Right))),
	)
}

func tableRows(groups []inventory.Group) []core.Row {
	rows := make([]core.Row, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(g.IDSimilar, props.Text{Size: 9, Top: 1})),
			col.New(3).Add(text.New(strconv.FormatInt(g.TotalQuantity, 10), props.Text{Size: 9, Top: 1, Align: align.Right})),
			col.New(3).Add(text.New(strconv.Itoa(g.Items), props.Text{Size: 9, Top: 1, Align: align.Right})),
		))
	}
	return rows
}

func totalRow(grandTotal int64, groups []inventory.Group) core.Row {
	numItems := 0
	for _, g := range groups {
		numItems += g.Items
	}
	bold := props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}
	return row.New(8).Add(
		col.New(6).Add(text.New("TOTAL GENERAL", bold)),
		col.New(3).Add(text.New(strconv.FormatInt(grandTotal, 10), mergeAlign(bold, align.Right))),
		col.New(3).Add(text.New(strconv.Itoa(numItems), mergeAlign(bold, align.Right))),
	)
}

func qrFooterRow(appURL string) core.Row {
	return row.New(30).Add(
		col.New(4).Add(code.NewQr(appURL, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Escanea el código QR para abrir\nel inventario en línea.", props.Text{
				Size: 8, Top: 8, Left: 3, Color: colorGray,
			}),
		),
	)
}

func mergeAlign(t props.Text, a align.Type) props.Text {
	t.Align = a
	return t
}
