package usecase

import (
	"context"

	"github.com/jhoicas/inventario-sheets/internal/application/dto"
	"github.com/jhoicas/inventario-sheets/internal/domain/entity"
	"github.com/jhoicas/inventario-sheets/internal/domain/inventory"
	"github.com/jhoicas/inventario-sheets/internal/domain/repository"
)

// SummaryPDFGenerator puerto para la representación PDF del resumen.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, groups []inventory.Group, grandTotal int64, appURL string) ([]byte, error)
}

// SummaryUseCase resumen por "ID Similar": totales por grupo, vista top-N para
// el gráfico y detalle de un grupo.
type SummaryUseCase struct {
	repo    repository.ItemRepository
	pdfGen  SummaryPDFGenerator
	baseURL string
}

// NewSummaryUseCase construye el caso de uso. pdfGen puede ser nil si no se
// expone el reporte PDF.
func NewSummaryUseCase(repo repository.ItemRepository, pdfGen SummaryPDFGenerator, baseURL string) *SummaryUseCase {
	return &SummaryUseCase{repo: repo, pdfGen: pdfGen, baseURL: baseURL}
}

// Summarize agrupa por Normalize(ID Similar) y suma Cantidad. Con top > 0 la
// lista se ordena descendente por total y se trunca (vista de gráfico); con
// top <= 0 conserva el orden de primera aparición.
func (uc *SummaryUseCase) Summarize(ctx context.Context, top int) (*dto.SummaryResponse, error) {
	items, err := uc.repo.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	groups := inventory.Summarize(items)
	if top > 0 {
		groups = inventory.TopN(groups, top)
	}
	out := &dto.SummaryResponse{Groups: make([]dto.SummaryGroupResponse, 0, len(groups))}
	for _, g := range groups {
		out.Groups = append(out.Groups, dto.SummaryGroupResponse{
			IDSimilar:     g.IDSimilar,
			TotalQuantity: g.TotalQuantity,
			NumItems:      g.Items,
		})
	}
	for _, it := range items {
		out.GrandTotal += it.Quantity
	}
	return out, nil
}

// Detail devuelve las filas de un grupo del resumen. La clave se compara
// normalizada; "(sin ID)" selecciona las filas sin ID Similar.
func (uc *SummaryUseCase) Detail(ctx context.Context, idSimilar string) (*dto.ItemListResponse, error) {
	items, err := uc.repo.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	key := inventory.Normalize(idSimilar)
	matches := func(it entity.Item) bool {
		k := inventory.Normalize(it.IDSimilar)
		if idSimilar == inventory.GroupSinID {
			return k == ""
		}
		return k == key
	}
	out := &dto.ItemListResponse{Items: []dto.ItemResponse{}}
	for _, it := range items {
		if matches(it) {
			out.Items = append(out.Items, *toItemResponse(it))
		}
	}
	out.Total = len(out.Items)
	return out, nil
}

// ReportPDF genera el reporte PDF del resumen completo.
func (uc *SummaryUseCase) ReportPDF(ctx context.Context) ([]byte, error) {
	items, err := uc.repo.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	var grandTotal int64
	for _, it := range items {
		grandTotal += it.Quantity
	}
	return uc.pdfGen.GenerateSummaryPDF(ctx, inventory.Summarize(items), grandTotal, uc.baseURL)
}
