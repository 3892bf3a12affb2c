// Package gsheets implementa el puerto ItemRepository sobre la API de Google
// Sheets (v4) autenticando con una cuenta de servicio. Es un binding CRUD de
// paso: sin caché, sin reintentos y sin bloqueo — el último que escribe gana.
package gsheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// NewService crea el cliente de la API de Sheets con la credencial de cuenta
// de servicio en formato JSON (el bloque [gcp_service_account] serializado).
func NewService(ctx context.Context, credentialsJSON []byte) (*sheets.Service, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("crear cliente de Google Sheets: %w", err)
	}
	return svc, nil
}
