package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/alqalam/campus-cms/sliders"
)

func (s *Server) listSliders(c *fiber.Ctx) error {
	records, err := s.deps.Sliders.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"sliders": records})
}

func (s *Server) createSlider(c *fiber.Ctx) error {
	var req sliders.CreateSliderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	record, err := s.deps.Sliders.Create(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (s *Server) updateSlider(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req sliders.UpdateSliderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.ID = id

	record, err := s.deps.Sliders.Update(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

func (s *Server) deleteSlider(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.deps.Sliders.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}
