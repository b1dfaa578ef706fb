package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/alqalam/campus-cms/catalog"
)

func parseOptionalDepartment(c *fiber.Ctx) (*uuid.UUID, error) {
	raw := c.Query("department_id")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid department_id")
	}
	return &id, nil
}

func (s *Server) listDepartments(c *fiber.Ctx) error {
	records, err := s.deps.Catalog.ListDepartments(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"departments": records})
}

func (s *Server) saveDepartment(c *fiber.Ctx) error {
	var req catalog.SaveDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	record, err := s.deps.Catalog.SaveDepartment(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

func (s *Server) saveDepartmentByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req catalog.SaveDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.ID = id
	record, err := s.deps.Catalog.SaveDepartment(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

func (s *Server) deleteDepartment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.deps.Catalog.DeleteDepartment(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) listLaboratories(c *fiber.Ctx) error {
	departmentID, err := parseOptionalDepartment(c)
	if err != nil {
		return err
	}
	records, err := s.deps.Catalog.ListLaboratories(c.Context(), departmentID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"laboratories": records})
}

func (s *Server) saveLaboratory(c *fiber.Ctx) error {
	var req catalog.SaveLaboratoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	record, err := s.deps.Catalog.SaveLaboratory(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

func (s *Server) saveLaboratoryByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req catalog.SaveLaboratoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.ID = id
	record, err := s.deps.Catalog.SaveLaboratory(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

func (s *Server) deleteLaboratory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.deps.Catalog.DeleteLaboratory(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) listCourses(c *fiber.Ctx) error {
	departmentID, err := parseOptionalDepartment(c)
	if err != nil {
		return err
	}
	records, err := s.deps.Catalog.ListCourses(c.Context(), departmentID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"courses": records})
}

func (s *Server) saveCourse(c *fiber.Ctx) error {
	var req catalog.SaveCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	record, err := s.deps.Catalog.SaveCourse(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

func (s *Server) saveCourseByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req catalog.SaveCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.ID = id
	record, err := s.deps.Catalog.SaveCourse(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

func (s *Server) deleteCourse(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.deps.Catalog.DeleteCourse(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) listEvents(c *fiber.Ctx) error {
	records, err := s.deps.Catalog.ListEvents(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"events": records})
}

func (s *Server) saveEvent(c *fiber.Ctx) error {
	var req catalog.SaveEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	record, err := s.deps.Catalog.SaveEvent(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

func (s *Server) saveEventByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req catalog.SaveEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.ID = id
	record, err := s.deps.Catalog.SaveEvent(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

func (s *Server) deleteEvent(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.deps.Catalog.DeleteEvent(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) listArticles(c *fiber.Ctx) error {
	records, err := s.deps.Catalog.ListArticles(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"articles": records})
}

func (s *Server) saveArticle(c *fiber.Ctx) error {
	var req catalog.SaveArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	record, err := s.deps.Catalog.SaveArticle(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

func (s *Server) saveArticleByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req catalog.SaveArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.ID = id
	record, err := s.deps.Catalog.SaveArticle(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

func (s *Server) deleteArticle(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.deps.Catalog.DeleteArticle(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
