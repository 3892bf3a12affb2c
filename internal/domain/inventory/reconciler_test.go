package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-sheets/internal/domain"
	"github.com/jhoicas/inventario-sheets/internal/domain/entity"
	"github.com/jhoicas/inventario-sheets/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Normalize
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_Idempotente(t *testing.T) {
	casos := []string{"BOLT-M4 ", "  Familia-A", "sku-123", "", "  ", "Ñandú "}
	for _, c := range casos {
		una := inventory.Normalize(c)
		dos := inventory.Normalize(una)
		assert.Equal(t, una, dos, "Normalize(Normalize(%q)) debe ser igual a Normalize(%q)", c, c)
	}
}

func TestNormalize_RecortaYPliegaMayusculas(t *testing.T) {
	assert.Equal(t, "bolt-m4", inventory.Normalize("BOLT-M4 "))
	assert.Equal(t, "bolt-m4", inventory.Normalize("bolt-m4"))
	assert.Equal(t, "", inventory.Normalize("   "))
}

// ──────────────────────────────────────────────────────────────────────────────
// DetectDuplicate
// ──────────────────────────────────────────────────────────────────────────────

func TestDetectDuplicate_ParExistente(t *testing.T) {
	items := []entity.Item{
		{ID: "I-0001", Description: "Bolt M4", Location: "Shelf A", Quantity: 10},
		{ID: "I-0002", Description: "Bolt M6", Location: "Shelf B", Quantity: 3},
	}

	// Con la fila presente el par es duplicado; al quitarla deja de serlo.
	assert.True(t, inventory.DetectDuplicate(items, "Bolt M4", "Shelf A", ""))
	assert.False(t, inventory.DetectDuplicate(items[1:], "Bolt M4", "Shelf A", ""))
}

func TestDetectDuplicate_ComparacionNormalizada(t *testing.T) {
	items := []entity.Item{
		{ID: "I-0001", Description: "Shampoo hidratante", Location: "Almacén A"},
	}
	// La comparación recorta espacios y pliega mayúsculas en ambos campos.
	assert.True(t, inventory.DetectDuplicate(items, "SHAMPOO HIDRATANTE ", " almacén a", ""))
	assert.False(t, inventory.DetectDuplicate(items, "Shampoo hidratante", "Almacén B", ""))
}

func TestDetectDuplicate_ExcluyeFilaEnEdicion(t *testing.T) {
	items := []entity.Item{
		{ID: "I-0001", Description: "Bolt M4", Location: "Shelf A"},
	}
	// Editar la propia fila no debe contarse como duplicado de sí misma.
	assert.False(t, inventory.DetectDuplicate(items, "Bolt M4", "Shelf A", "I-0001"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Summarize
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarize_AgrupaPorClaveNormalizada(t *testing.T) {
	// Dos filas cuya clave normalizada coincide deben caer en un único grupo
	// con el total sumado.
	items := []entity.Item{
		{ID: "I-0001", Description: "Bolt M4", Unit: "pcs", Quantity: 10, Location: "Shelf A", IDSimilar: "bolt-m4"},
		{ID: "I-0002", Description: "Bolt M4 inox", Unit: "pcs", Quantity: 10, Location: "Shelf B", IDSimilar: "BOLT-M4 "},
	}

	grupos := inventory.Summarize(items)
	require.Len(t, grupos, 1, "ambas filas comparten la clave normalizada bolt-m4")
	assert.Equal(t, "bolt-m4", grupos[0].IDSimilar)
	assert.Equal(t, int64(20), grupos[0].TotalQuantity)
	assert.Equal(t, 2, grupos[0].Items)
}

func TestSummarize_OrdenDePrimeraAparicion(t *testing.T) {
	items := []entity.Item{
		{ID: "I-0001", Quantity: 1, IDSimilar: "zeta"},
		{ID: "I-0002", Quantity: 2, IDSimilar: "alfa"},
		{ID: "I-0003", Quantity: 3, IDSimilar: "zeta"},
	}
	grupos := inventory.Summarize(items)
	require.Len(t, grupos, 2)
	assert.Equal(t, "zeta", grupos[0].IDSimilar, "el orden es el de primera aparición, no alfabético")
	assert.Equal(t, "alfa", grupos[1].IDSimilar)
	assert.Equal(t, int64(4), grupos[0].TotalQuantity)
}

func TestSummarize_ClaveVaciaCaeEnSinID(t *testing.T) {
	items := []entity.Item{
		{ID: "I-0001", Quantity: 5, IDSimilar: ""},
		{ID: "I-0002", Quantity: 7, IDSimilar: "   "},
	}
	grupos := inventory.Summarize(items)
	require.Len(t, grupos, 1)
	assert.Equal(t, inventory.GroupSinID, grupos[0].IDSimilar)
	assert.Equal(t, int64(12), grupos[0].TotalQuantity)
}

// La suma de los totales por grupo debe coincidir con la suma directa de
// Cantidad sobre toda la tabla.
func TestSummarize_TotalGeneralConsistente(t *testing.T) {
	items := []entity.Item{
		{ID: "I-0001", Quantity: 10, IDSimilar: "a"},
		{ID: "I-0002", Quantity: 0, IDSimilar: "b"},
		{ID: "I-0003", Quantity: 25, IDSimilar: "A "},
		{ID: "I-0004", Quantity: 4, IDSimilar: ""},
	}
	var directo int64
	for _, it := range items {
		directo += it.Quantity
	}
	var porGrupos int64
	for _, g := range inventory.Summarize(items) {
		porGrupos += g.TotalQuantity
	}
	assert.Equal(t, directo, porGrupos)
}

func TestTopN_OrdenaDescendenteYTrunca(t *testing.T) {
	grupos := []inventory.Group{
		{IDSimilar: "a", TotalQuantity: 5},
		{IDSimilar: "b", TotalQuantity: 50},
		{IDSimilar: "c", TotalQuantity: 20},
	}
	top := inventory.TopN(grupos, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "b", top[0].IDSimilar)
	assert.Equal(t, "c", top[1].IDSimilar)

	// El slice original no se reordena.
	assert.Equal(t, "a", grupos[0].IDSimilar)

	// n <= 0 devuelve todos, ordenados.
	todos := inventory.TopN(grupos, 0)
	require.Len(t, todos, 3)
	assert.Equal(t, "b", todos[0].IDSimilar)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filters y GuardDelete
// ──────────────────────────────────────────────────────────────────────────────

func TestFilters_Apply(t *testing.T) {
	items := []entity.Item{
		{ID: "I-0001", Description: "Shampoo hidratante 500ml", Location: "Almacén A", IDSimilar: "fam-a"},
		{ID: "I-0002", Description: "Acondicionador", Location: "Almacén B", IDSimilar: "fam-a"},
		{ID: "I-0003", Description: "Jabón neutro", Location: "Almacén A"},
	}

	// Texto libre: busca en ID, ID Similar, Descripción y Ubicación (sin mayúsculas).
	vista := inventory.Filters{Query: "shampoo"}.Apply(items)
	require.Len(t, vista, 1)
	assert.Equal(t, "I-0001", vista[0].ID)

	vista = inventory.Filters{Query: "FAM-A"}.Apply(items)
	assert.Len(t, vista, 2)

	// Multiselección de ubicación: coincidencia exacta.
	vista = inventory.Filters{Locations: []string{"Almacén A"}}.Apply(items)
	assert.Len(t, vista, 2)

	// Ambos filtros combinados.
	vista = inventory.Filters{Query: "jabón", Locations: []string{"Almacén A"}}.Apply(items)
	require.Len(t, vista, 1)
	assert.Equal(t, "I-0003", vista[0].ID)

	// Sin filtros se devuelve todo.
	assert.Len(t, inventory.Filters{}.Apply(items), 3)
}

func TestGuardDelete_RechazaConFiltrosActivos(t *testing.T) {
	// Caso 1: filtro de texto activo → rechazado.
	err := inventory.GuardDelete(inventory.Filters{Query: "bolt"}, false)
	assert.ErrorIs(t, err, domain.ErrDeleteFiltered)

	// Caso 2: filtro de ubicación activo → rechazado.
	err = inventory.GuardDelete(inventory.Filters{Locations: []string{"Shelf A"}}, false)
	assert.ErrorIs(t, err, domain.ErrDeleteFiltered)

	// Caso 3: sin filtros → permitido.
	assert.NoError(t, inventory.GuardDelete(inventory.Filters{}, false))

	// Caso 4: filtros activos pero con permiso explícito → permitido.
	assert.NoError(t, inventory.GuardDelete(inventory.Filters{Query: "bolt"}, true))

	// Caso 5: query de solo espacios no cuenta como filtro.
	assert.NoError(t, inventory.GuardDelete(inventory.Filters{Query: "   "}, false))
}

// ──────────────────────────────────────────────────────────────────────────────
// NextID
// ──────────────────────────────────────────────────────────────────────────────

func TestNextID_Secuencial(t *testing.T) {
	assert.Equal(t, "I-0001", inventory.NextID(nil), "tabla vacía inicia en I-0001")

	items := []entity.Item{
		{ID: "I-0001"},
		{ID: "I-0007"},
		{ID: "I-0003"},
	}
	assert.Equal(t, "I-0008", inventory.NextID(items), "continúa desde el máximo, no desde el largo")
}

func TestNextID_IgnoraIDsFueraDePatron(t *testing.T) {
	items := []entity.Item{
		{ID: "tmp"},
		{ID: "I-0002"},
		{ID: ""},
	}
	assert.Equal(t, "I-0003", inventory.NextID(items))
}

func TestNextID_MasDeCuatroDigitos(t *testing.T) {
	items := []entity.Item{{ID: "I-9999"}}
	assert.Equal(t, "I-10000", inventory.NextID(items))
}
