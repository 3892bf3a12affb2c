package dto

// SummaryGroupResponse total por clave "ID Similar" normalizada.
type SummaryGroupResponse struct {
	IDSimilar     string `json:"id_similar"`
	TotalQuantity int64  `json:"total_quantity"`
	NumItems      int    `json:"num_items"`
}

// SummaryResponse resumen por ID Similar más el total general de la tabla.
type SummaryResponse struct {
	Groups     []SummaryGroupResponse `json:"groups"`
	GrandTotal int64                  `json:"grand_total"`
}

// QRPayloadResponse contenido que codifica el QR de un item.
type QRPayloadResponse struct {
	ID      string `json:"id"`
	Payload string `json:"payload"`
}
