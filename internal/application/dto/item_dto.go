package dto

// CreateItemRequest body para POST /api/items.
// AllowDuplicate permite insertar aun cuando ya exista una fila con la misma
// Descripción + Ubicación Física (por defecto se rechaza con 409).
type CreateItemRequest struct {
	Image          string `json:"image"`
	Description    string `json:"description"`
	Unit           string `json:"unit"`
	Quantity       int64  `json:"quantity"`
	Location       string `json:"location"`
	IDSimilar      string `json:"id_similar"`
	AllowDuplicate bool   `json:"allow_duplicate,omitempty"`
}

// UpdateItemRequest body para PUT /api/items/{id}. Campos nil no se tocan.
type UpdateItemRequest struct {
	Image          *string `json:"image"`
	Description    *string `json:"description"`
	Unit           *string `json:"unit"`
	Quantity       *int64  `json:"quantity"`
	Location       *string `json:"location"`
	IDSimilar      *string `json:"id_similar"`
	AllowDuplicate bool    `json:"allow_duplicate,omitempty"`
}

// ItemResponse representación de una fila del inventario.
type ItemResponse struct {
	ID          string `json:"id"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	Quantity    int64  `json:"quantity"`
	Location    string `json:"location"`
	IDSimilar   string `json:"id_similar"`
}

// ItemListResponse listado de la vista filtrada.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}
