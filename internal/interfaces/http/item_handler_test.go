package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-sheets/internal/application/usecase"
	"github.com/jhoicas/inventario-sheets/internal/domain/entity"
	"github.com/jhoicas/inventario-sheets/internal/domain/repository"
	apphttp "github.com/jhoicas/inventario-sheets/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var _ repository.ItemRepository = (*memRepo)(nil)

// memRepo almacén en memoria para los tests de la capa HTTP.
type memRepo struct {
	mu    sync.Mutex
	items []entity.Item
}

func (r *memRepo) ReadAll(context.Context) ([]entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memRepo) Append(_ context.Context, item entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
	return nil
}

func (r *memRepo) Update(_ context.Context, item entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = item
			return nil
		}
	}
	return nil
}

func (r *memRepo) ReplaceAll(_ context.Context, items []entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]entity.Item(nil), items...)
	return nil
}

// buildTestApp construye una app Fiber con el router completo sobre un
// almacén en memoria (BASE_URL configurada para los QR).
func buildTestApp(seed ...entity.Item) (*fiber.App, *memRepo) {
	repo := &memRepo{items: seed}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ItemUC:    usecase.NewItemUseCase(repo),
		SummaryUC: usecase.NewSummaryUseCase(repo, nil, "https://inventario.example.app"),
		ExportUC:  usecase.NewExportUseCase(repo),
		QRUC:      usecase.NewQRUseCase("https://inventario.example.app"),
	})
	return app, repo
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/items
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateItem_AltaRapida(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/items", fiber.Map{
		"description": "Bolt M4",
		"unit":        "pcs",
		"quantity":    10,
		"location":    "Shelf A",
		"id_similar":  "bolt-m4",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	decode(t, resp, &body)
	assert.Equal(t, "I-0001", body["id"], "el primer artículo recibe I-0001")
}

func TestCreateItem_DuplicadoDevuelve409(t *testing.T) {
	app, _ := buildTestApp(entity.Item{ID: "I-0001", Description: "Bolt M4", Location: "Shelf A", Quantity: 10})

	resp := doJSON(t, app, http.MethodPost, "/api/items", fiber.Map{
		"description": "Bolt M4",
		"quantity":    1,
		"location":    "Shelf A",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(raw), "DUPLICATE")
}

func TestCreateItem_CantidadNegativaDevuelve400(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/items", fiber.Map{
		"description": "Bolt M4",
		"quantity":    -5,
		"location":    "Shelf A",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/items
// ──────────────────────────────────────────────────────────────────────────────

func TestListItems_FiltroDeUbicacion(t *testing.T) {
	app, _ := buildTestApp(
		entity.Item{ID: "I-0001", Description: "Shampoo", Location: "Almacén A", Quantity: 1},
		entity.Item{ID: "I-0002", Description: "Jabón", Location: "Almacén B", Quantity: 2},
	)

	resp := doJSON(t, app, http.MethodGet, "/api/items?location=Almac%C3%A9n+B", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Items []map[string]any `json:"items"`
		Total int              `json:"total"`
	}
	decode(t, resp, &body)
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "I-0002", body.Items[0]["id"])
}

func TestGetItem_NoExisteDevuelve404(t *testing.T) {
	app, _ := buildTestApp()
	resp := doJSON(t, app, http.MethodGet, "/api/items/I-0404", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// DELETE /api/items/:id — guarda de borrado bajo filtros
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteItem_ConFiltroActivoDevuelve409(t *testing.T) {
	app, repo := buildTestApp(entity.Item{ID: "I-0001", Description: "Bolt", Location: "Shelf A"})

	resp := doJSON(t, app, http.MethodDelete, "/api/items/I-0001?q=bolt", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(raw), "DELETE_FILTERED")

	items, _ := repo.ReadAll(context.Background())
	assert.Len(t, items, 1, "la fila no debe borrarse")
}

func TestDeleteItem_FiltroConPermisoExplicito(t *testing.T) {
	app, repo := buildTestApp(entity.Item{ID: "I-0001", Description: "Bolt", Location: "Shelf A"})

	resp := doJSON(t, app, http.MethodDelete, "/api/items/I-0001?q=bolt&allow_filtered=true", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	items, _ := repo.ReadAll(context.Background())
	assert.Empty(t, items)
}

func TestDeleteItem_SinFiltros(t *testing.T) {
	app, repo := buildTestApp(entity.Item{ID: "I-0001"})

	resp := doJSON(t, app, http.MethodDelete, "/api/items/I-0001", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	items, _ := repo.ReadAll(context.Background())
	assert.Empty(t, items)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/summary y QR
// ──────────────────────────────────────────────────────────────────────────────

func TestSummary_AgrupaPorClaveNormalizada(t *testing.T) {
	app, _ := buildTestApp(
		entity.Item{ID: "I-0001", Quantity: 10, IDSimilar: "bolt-m4"},
		entity.Item{ID: "I-0002", Quantity: 10, IDSimilar: "BOLT-M4 "},
	)

	resp := doJSON(t, app, http.MethodGet, "/api/summary", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Groups []struct {
			IDSimilar     string `json:"id_similar"`
			TotalQuantity int64  `json:"total_quantity"`
			NumItems      int    `json:"num_items"`
		} `json:"groups"`
		GrandTotal int64 `json:"grand_total"`
	}
	decode(t, resp, &body)
	require.Len(t, body.Groups, 1)
	assert.Equal(t, "bolt-m4", body.Groups[0].IDSimilar)
	assert.Equal(t, int64(20), body.Groups[0].TotalQuantity)
	assert.Equal(t, int64(20), body.GrandTotal)
}

func TestQRPayloadEndpoint(t *testing.T) {
	app, _ := buildTestApp(entity.Item{ID: "I-0001", Description: "Bolt"})

	resp := doJSON(t, app, http.MethodGet, "/api/items/I-0001/qr/payload", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "https://inventario.example.app?id=I-0001", body["payload"])

	// QR de un ID inexistente es 404.
	resp404 := doJSON(t, app, http.MethodGet, "/api/items/I-0404/qr", nil)
	defer resp404.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp404.StatusCode)
}

func TestQRPNGEndpoint(t *testing.T) {
	app, _ := buildTestApp(entity.Item{ID: "I-0001", Description: "Bolt"})

	resp := doJSON(t, app, http.MethodGet, "/api/items/I-0001/qr", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("\x89PNG")), "la respuesta debe ser un PNG")
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportación
// ──────────────────────────────────────────────────────────────────────────────

func TestExportCSVEndpoint(t *testing.T) {
	app, _ := buildTestApp(
		entity.Item{ID: "I-0001", Description: "Bolt M4", Unit: "pcs", Quantity: 10, Location: "Shelf A", IDSimilar: "bolt-m4"},
	)

	resp := doJSON(t, app, http.MethodGet, "/api/export/inventario.csv", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "ID,Imagen,Descripción,Unidad,Cantidad,Ubicación Física,ID Similar")
	assert.Contains(t, string(raw), "I-0001")

	// Columna desconocida → 400.
	respBad := doJSON(t, app, http.MethodGet, "/api/export/inventario.csv?col=NoExiste", nil)
	defer respBad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, respBad.StatusCode)
}
