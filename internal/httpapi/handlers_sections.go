package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alqalam/campus-cms/sections"
)

func (s *Server) listHomeContent(c *fiber.Ctx) error {
	records, err := s.deps.Sections.ListHome(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"contents": records})
}

// saveHomeContent upserts one home section. The page key is forced to the
// home scope regardless of what the body claims.
func (s *Server) saveHomeContent(c *fiber.Ctx) error {
	var req sections.SaveSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.PageKey = sections.PageHome

	record, err := s.deps.Sections.Save(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

func (s *Server) listPageContent(c *fiber.Ctx) error {
	records, err := s.deps.Sections.ListPage(c.Context(), c.Params("pageKey"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"contents": records})
}

// getSection returns the stored section or a renderable default, so the
// editor never has to branch on existence.
func (s *Server) getSection(c *fiber.Ctx) error {
	record, err := s.deps.Sections.GetOrDefault(c.Context(), c.Params("pageKey"), c.Params("sectionKey"))
	if err != nil {
		return err
	}
	return c.JSON(record)
}

func (s *Server) savePageContent(c *fiber.Ctx) error {
	var req sections.SaveSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	record, err := s.deps.Sections.Save(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

func (s *Server) deactivateSection(c *fiber.Ctx) error {
	record, err := s.deps.Sections.Deactivate(c.Context(), c.Params("pageKey"), c.Params("sectionKey"))
	if err != nil {
		return err
	}
	return c.JSON(record)
}
