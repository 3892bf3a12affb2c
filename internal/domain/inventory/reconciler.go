// Package inventory contiene la lógica de reconciliación del inventario:
// normalización de "ID Similar", detección de duplicados por
// Descripción + Ubicación Física, resumen por grupo y la guarda de borrado
// bajo filtros activos.
package inventory

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/inventario-sheets/internal/domain"
	"github.com/jhoicas/inventario-sheets/internal/domain/entity"
)

// GroupSinID etiqueta del grupo para filas sin "ID Similar" asignado.
const GroupSinID = "(sin ID)"

// Normalize devuelve la clave de comparación/agrupación de un "ID Similar":
// espacios recortados y case folding Unicode. El valor original se conserva
// tal cual en el almacén; la normalización se aplica solo al comparar y agrupar.
// Idempotente: Normalize(Normalize(x)) == Normalize(x).
func Normalize(id string) string {
	// cases.Caser mantiene estado interno; una instancia por llamada.
	return cases.Fold().String(strings.TrimSpace(id))
}

// DetectDuplicate indica si ya existe otra fila con la misma Descripción y la
// misma Ubicación Física. La comparación usa Normalize en ambos campos
// (decisión de producto registrada en DESIGN.md). excludeID permite omitir la
// fila que se está editando.
func DetectDuplicate(items []entity.Item, description, location, excludeID string) bool {
	desc := Normalize(description)
	loc := Normalize(location)
	for _, it := range items {
		if excludeID != "" && it.ID == excludeID {
			continue
		}
		if Normalize(it.Description) == desc && Normalize(it.Location) == loc {
			return true
		}
	}
	return false
}

// Group total de cantidad y número de ítems de un "ID Similar" normalizado.
type Group struct {
	IDSimilar     string
	TotalQuantity int64
	Items         int
}

// Summarize agrupa por Normalize(ID Similar) y suma Cantidad por grupo.
// Clave vacía cae en el grupo "(sin ID)". El orden de los grupos es el de
// primera aparición en la tabla (no se define ningún orden adicional).
func Summarize(items []entity.Item) []Group {
	index := make(map[string]int, len(items))
	groups := make([]Group, 0, len(items))
	for _, it := range items {
		key := Normalize(it.IDSimilar)
		if key == "" {
			key = GroupSinID
		}
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, Group{IDSimilar: key})
		}
		groups[pos].TotalQuantity += it.Quantity
		groups[pos].Items++
	}
	return groups
}

// TopN devuelve una copia de los grupos ordenada por TotalQuantity descendente
// y truncada a n (vista de gráfico). Empates conservan el orden de aparición.
// n <= 0 devuelve todos los grupos ordenados.
func TopN(groups []Group, n int) []Group {
	out := make([]Group, len(groups))
	copy(out, groups)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalQuantity > out[j].TotalQuantity
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// Filters estado de vista explícito de una petición: lo que el cliente está
// viendo cuando pide listar, exportar o borrar.
type Filters struct {
	Query     string   // texto libre sobre ID, ID Similar, Descripción y Ubicación
	Locations []string // multiselección de Ubicación Física (coincidencia exacta)
}

// Active indica si hay algún filtro con valor.
func (f Filters) Active() bool {
	return strings.TrimSpace(f.Query) != "" || len(f.Locations) > 0
}

// Apply devuelve las filas visibles bajo los filtros, en el mismo orden.
func (f Filters) Apply(items []entity.Item) []entity.Item {
	if !f.Active() {
		return items
	}
	q := Normalize(f.Query)
	locs := make(map[string]struct{}, len(f.Locations))
	for _, l := range f.Locations {
		locs[l] = struct{}{}
	}
	out := make([]entity.Item, 0, len(items))
	for _, it := range items {
		if q != "" && !matchesQuery(it, q) {
			continue
		}
		if len(locs) > 0 {
			if _, ok := locs[it.Location]; !ok {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

func matchesQuery(it entity.Item, q string) bool {
	for _, field := range []string{it.ID, it.IDSimilar, it.Description, it.Location} {
		if strings.Contains(Normalize(field), q) {
			return true
		}
	}
	return false
}

// GuardDelete rechaza el borrado cuando hay filtros activos, salvo que el
// cliente lo permita explícitamente. Evita eliminar filas fuera del conjunto
// visible al estar filtrando.
func GuardDelete(filters Filters, allowFiltered bool) error {
	if filters.Active() && !allowFiltered {
		return domain.ErrDeleteFiltered
	}
	return nil
}

var idPattern = regexp.MustCompile(`I-(\d+)`)

// NextID genera el siguiente ID incremental con formato I-0001. IDs que no
// siguen el patrón se ignoran.
func NextID(items []entity.Item) string {
	max := 0
	for _, it := range items {
		m := idPattern.FindStringSubmatch(it.ID)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return "I-" + padID(max+1)
}

func padID(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
