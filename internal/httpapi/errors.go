package httpapi

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"

	"github.com/alqalam/campus-cms/catalog"
	"github.com/alqalam/campus-cms/sections"
	"github.com/alqalam/campus-cms/sliders"
)

// handleError is the fiber ErrorHandler: it maps domain errors to statuses
// and keeps internal detail out of production responses. Handlers return
// errors; nothing in this layer panics its way to the client.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for field, ferr := range verrs {
			fields[field] = ferr.Error()
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": fields,
		})
	}

	var sectionMissing *sections.NotFoundError
	var sliderMissing *sliders.NotFoundError
	var catalogMissing *catalog.NotFoundError
	if errors.As(err, &sectionMissing) || errors.As(err, &sliderMissing) || errors.As(err, &catalogMissing) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	if errors.Is(err, catalog.ErrSlugTaken) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}

	if errors.Is(err, sliders.ErrInvalidID) || errors.Is(err, catalog.ErrInvalidID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	s.log.Error("unhandled request error", "path", c.Path(), "error", err.Error())
	body := fiber.Map{"error": "internal server error"}
	if !s.production() {
		body["detail"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}
