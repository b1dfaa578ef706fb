package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/alqalam/campus-cms/catalog"
	"github.com/alqalam/campus-cms/locale"
	"github.com/alqalam/campus-cms/sections"
)

// Public responses carry plain strings resolved through the locale fallback
// chain; raw {en,ar} documents never leave the admin surface.

func requestLocale(c *fiber.Ctx) string {
	return c.Query("locale", locale.DefaultCode)
}

type publicSection struct {
	SectionKey  string            `json:"section_key"`
	Title       string            `json:"title"`
	Subtitle    string            `json:"subtitle"`
	Description string            `json:"description"`
	ButtonText  string            `json:"button_text"`
	ButtonLink  string            `json:"button_link,omitempty"`
	Images      []string          `json:"images"`
	Content     locale.Structured `json:"content"`
	OrderIndex  int               `json:"order_index"`
}

func toPublicSection(record *sections.Section, code string) publicSection {
	out := publicSection{
		SectionKey:  record.SectionKey,
		Title:       record.Title.Lookup(code, ""),
		Subtitle:    record.Subtitle.Lookup(code, ""),
		Description: record.Description.Lookup(code, ""),
		ButtonText:  record.ButtonText.Lookup(code, ""),
		Images:      record.Images,
		Content:     record.Content,
		OrderIndex:  record.OrderIndex,
	}
	if record.ButtonLink != nil {
		out.ButtonLink = *record.ButtonLink
	}
	if out.Images == nil {
		out.Images = []string{}
	}
	return out
}

func (s *Server) renderSections(c *fiber.Ctx, records []*sections.Section) error {
	code := requestLocale(c)
	out := make([]publicSection, 0, len(records))
	for _, record := range records {
		if !record.IsActive {
			continue
		}
		out = append(out, toPublicSection(record, code))
	}
	return c.JSON(fiber.Map{"contents": out})
}

func (s *Server) publicHomeContent(c *fiber.Ctx) error {
	records, err := s.deps.Sections.ListHome(c.Context())
	if err != nil {
		return err
	}
	return s.renderSections(c, records)
}

func (s *Server) publicPageContent(c *fiber.Ctx) error {
	records, err := s.deps.Sections.ListPage(c.Context(), c.Params("pageKey"))
	if err != nil {
		return err
	}
	return s.renderSections(c, records)
}

type publicStat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type publicSlider struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle"`
	Description string       `json:"description"`
	Badge       string       `json:"badge"`
	Icon        string       `json:"icon,omitempty"`
	MediaType   string       `json:"media_type"`
	ImageURL    string       `json:"image_url,omitempty"`
	VideoURL    string       `json:"video_url,omitempty"`
	CTA         string       `json:"cta"`
	CTALink     string       `json:"cta_link,omitempty"`
	Stats       []publicStat `json:"stats"`
	OrderIndex  int          `json:"order_index"`
}

func (s *Server) publicSliders(c *fiber.Ctx) error {
	records, err := s.deps.Sliders.ListActive(c.Context())
	if err != nil {
		return err
	}
	code := requestLocale(c)
	out := make([]publicSlider, 0, len(records))
	for _, record := range records {
		stats := make([]publicStat, 0, len(record.Stats))
		for _, stat := range record.Stats {
			stats = append(stats, publicStat{
				Value: stat.Value,
				Label: stat.Label.Lookup(code, ""),
			})
		}
		out = append(out, publicSlider{
			ID:          record.ID,
			Title:       record.Title.Lookup(code, ""),
			Subtitle:    record.Subtitle.Lookup(code, ""),
			Description: record.Description.Lookup(code, ""),
			Badge:       record.Badge.Lookup(code, ""),
			Icon:        record.Icon,
			MediaType:   string(record.MediaType),
			ImageURL:    record.ImageURL,
			VideoURL:    record.VideoURL,
			CTA:         record.CTA.Lookup(code, ""),
			CTALink:     record.CTALink,
			Stats:       stats,
			OrderIndex:  record.OrderIndex,
		})
	}
	return c.JSON(fiber.Map{"sliders": out})
}

type publicDepartment struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	URL         string `json:"url,omitempty"`
}

func (s *Server) publicDepartments(c *fiber.Ctx) error {
	records, err := s.deps.Catalog.PublicDepartments(c.Context())
	if err != nil {
		return err
	}
	code := requestLocale(c)
	out := make([]publicDepartment, 0, len(records))
	for _, record := range records {
		entry := publicDepartment{
			Slug:        record.Slug,
			Name:        record.Name.Lookup(code, ""),
			Description: record.Description.Lookup(code, ""),
			Icon:        record.Icon,
			ImageURL:    record.ImageURL,
		}
		if s.deps.URLs != nil {
			if url, err := s.deps.URLs.Department(code, record.Slug); err == nil {
				entry.URL = url
			}
		}
		out = append(out, entry)
	}
	return c.JSON(fiber.Map{"departments": out})
}

type publicEvent struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at,omitempty"`
	URL         string    `json:"url,omitempty"`
}

func (s *Server) publicEvents(c *fiber.Ctx) error {
	records, err := s.deps.Catalog.UpcomingEvents(c.Context())
	if err != nil {
		return err
	}
	code := requestLocale(c)
	out := make([]publicEvent, 0, len(records))
	for _, record := range records {
		entry := publicEvent{
			Slug:        record.Slug,
			Title:       record.Title.Lookup(code, ""),
			Description: record.Description.Lookup(code, ""),
			Location:    record.Location.Lookup(code, ""),
			ImageURL:    record.ImageURL,
			StartsAt:    record.StartsAt,
			EndsAt:      record.EndsAt,
		}
		if s.deps.URLs != nil {
			if url, err := s.deps.URLs.Event(code, record.Slug); err == nil {
				entry.URL = url
			}
		}
		out = append(out, entry)
	}
	return c.JSON(fiber.Map{"events": out})
}

type publicArticle struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	ImageURL    string     `json:"image_url,omitempty"`
	Author      string     `json:"author,omitempty"`
	Tags        []string   `json:"tags"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Body        string     `json:"body,omitempty"`
	URL         string     `json:"url,omitempty"`
}

func (s *Server) toPublicArticle(record *catalog.Article, code string, includeBody bool) publicArticle {
	entry := publicArticle{
		Slug:        record.Slug,
		Title:       record.Title.Lookup(code, ""),
		Summary:     record.Summary.Lookup(code, ""),
		ImageURL:    record.ImageURL,
		Author:      record.Author,
		Tags:        record.Tags,
		PublishedAt: record.PublishedAt,
	}
	if entry.Tags == nil {
		entry.Tags = []string{}
	}
	if includeBody {
		entry.Body = record.RenderedBody
	}
	if s.deps.URLs != nil {
		if url, err := s.deps.URLs.Article(code, record.Slug); err == nil {
			entry.URL = url
		}
	}
	return entry
}

func (s *Server) publicArticles(c *fiber.Ctx) error {
	records, err := s.deps.Catalog.PublishedArticles(c.Context())
	if err != nil {
		return err
	}
	code := requestLocale(c)
	out := make([]publicArticle, 0, len(records))
	for _, record := range records {
		out = append(out, s.toPublicArticle(record, code, false))
	}
	return c.JSON(fiber.Map{"articles": out})
}

func (s *Server) publicArticle(c *fiber.Ctx) error {
	record, err := s.deps.Catalog.GetArticleBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}
	if !record.Published(time.Now()) {
		return &catalog.NotFoundError{Resource: "article", Key: c.Params("slug")}
	}
	return c.JSON(s.toPublicArticle(record, requestLocale(c), true))
}
