package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-sheets/internal/domain/inventory"
)

// filtersFromQuery arma el estado de vista explícito de la petición:
// ?q=<texto>&location=<ubicación> (location puede repetirse, multiselección).
func filtersFromQuery(c *fiber.Ctx) inventory.Filters {
	f := inventory.Filters{Query: c.Query("q")}
	for _, loc := range c.Context().QueryArgs().PeekMulti("location") {
		f.Locations = append(f.Locations, string(loc))
	}
	return f
}
