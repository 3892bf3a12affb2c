package entity

import "strconv"

// Item representa una fila del inventario en el almacén remoto (worksheet).
// El worksheet es la única fuente de verdad; la tabla en memoria que se arma
// en cada ciclo de petición es una proyección desechable.
type Item struct {
	ID          string // secuencial: I-0001, I-0002, ...
	Image       string // URL de imagen (https://...)
	Description string
	Unit        string // pz / caja / kg
	Quantity    int64  // invariante: >= 0
	Location    string // Ubicación Física
	IDSimilar   string // clave de agrupación definida por el usuario; se guarda tal como se escribió
}

// Columns orden fijo de columnas en el worksheet, el CSV local y las exportaciones.
var Columns = []string{"ID", "Imagen", "Descripción", "Unidad", "Cantidad", "Ubicación Física", "ID Similar"}

// Record serializa el item en el orden fijo de columnas.
func (i Item) Record() []string {
	return []string{
		i.ID,
		i.Image,
		i.Description,
		i.Unit,
		strconv.FormatInt(i.Quantity, 10),
		i.Location,
		i.IDSimilar,
	}
}

// ItemFromRecord reconstruye un item desde una fila del almacén.
// Columnas faltantes se tratan como vacías y una cantidad no numérica se
// coacciona a 0, igual que al releer la hoja.
func ItemFromRecord(record []string) Item {
	get := func(idx int) string {
		if idx < len(record) {
			return record[idx]
		}
		return ""
	}
	qty, err := strconv.ParseInt(get(4), 10, 64)
	if err != nil {
		qty = 0
	}
	return Item{
		ID:          get(0),
		Image:       get(1),
		Description: get(2),
		Unit:        get(3),
		Quantity:    qty,
		Location:    get(5),
		IDSimilar:   get(6),
	}
}
