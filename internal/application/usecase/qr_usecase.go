package usecase

import (
	"bytes"
	"fmt"
	"image/png"
	"net/url"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// DefaultQRSize lado en píxeles del QR generado.
const DefaultQRSize = 220

// QRUseCase genera códigos QR por ID de inventario. Si hay BASE_URL
// configurada el QR apunta a la app pública con ?id=<ID>; si no, codifica el
// ID a secas.
type QRUseCase struct {
	baseURL string
}

// NewQRUseCase construye el caso de uso.
func NewQRUseCase(baseURL string) *QRUseCase {
	return &QRUseCase{baseURL: strings.TrimSpace(baseURL)}
}

// Payload contenido que codifica el QR de un ID.
func (uc *QRUseCase) Payload(id string) string {
	if uc.baseURL == "" {
		return id
	}
	sep := "?"
	if strings.Contains(uc.baseURL, "?") {
		sep = "&"
	}
	return uc.baseURL + sep + "id=" + url.QueryEscape(id)
}

// PNG genera la imagen QR (corrección de errores L). size <= 0 usa
// DefaultQRSize.
func (uc *QRUseCase) PNG(id string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	code, err := qr.Encode(uc.Payload(id), qr.L, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("codificar qr: %w", err)
	}
	scaled, err := barcode.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("escalar qr: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("serializar qr png: %w", err)
	}
	return buf.Bytes(), nil
}
