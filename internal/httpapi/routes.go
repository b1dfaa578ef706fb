package httpapi

func (s *Server) registerRoutes() {
	admin := s.app.Group("/admin", s.requireAdmin())

	admin.Get("/home-content", s.listHomeContent)
	admin.Post("/home-content", s.saveHomeContent)
	admin.Get("/page-content/:pageKey", s.listPageContent)
	admin.Get("/page-content/:pageKey/:sectionKey", s.getSection)
	admin.Post("/page-content", s.savePageContent)
	admin.Delete("/page-content/:pageKey/:sectionKey", s.deactivateSection)

	admin.Get("/hero-sliders", s.listSliders)
	admin.Post("/hero-sliders", s.createSlider)
	admin.Put("/hero-sliders/:id", s.updateSlider)
	admin.Delete("/hero-sliders/:id", s.deleteSlider)

	admin.Get("/departments", s.listDepartments)
	admin.Post("/departments", s.saveDepartment)
	admin.Put("/departments/:id", s.saveDepartmentByID)
	admin.Delete("/departments/:id", s.deleteDepartment)

	admin.Get("/laboratories", s.listLaboratories)
	admin.Post("/laboratories", s.saveLaboratory)
	admin.Put("/laboratories/:id", s.saveLaboratoryByID)
	admin.Delete("/laboratories/:id", s.deleteLaboratory)

	admin.Get("/courses", s.listCourses)
	admin.Post("/courses", s.saveCourse)
	admin.Put("/courses/:id", s.saveCourseByID)
	admin.Delete("/courses/:id", s.deleteCourse)

	admin.Get("/events", s.listEvents)
	admin.Post("/events", s.saveEvent)
	admin.Put("/events/:id", s.saveEventByID)
	admin.Delete("/events/:id", s.deleteEvent)

	admin.Get("/news", s.listArticles)
	admin.Post("/news", s.saveArticle)
	admin.Put("/news/:id", s.saveArticleByID)
	admin.Delete("/news/:id", s.deleteArticle)

	s.app.Get("/home-content", s.publicHomeContent)
	s.app.Get("/pages/:pageKey/content", s.publicPageContent)
	s.app.Get("/hero-sliders", s.publicSliders)
	s.app.Get("/departments", s.publicDepartments)
	s.app.Get("/events", s.publicEvents)
	s.app.Get("/news", s.publicArticles)
	s.app.Get("/news/:slug", s.publicArticle)
}
