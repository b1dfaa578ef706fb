// Package urls builds canonical public-site URLs for campus content. The
// English site lives at the root; the Arabic site is served under /ar with
// the same route names.
package urls

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/alqalam/campus-cms/locale"
)

// Route names registered for both locale groups.
const (
	RoutePage       = "page"
	RouteDepartment = "department"
	RouteLaboratory = "laboratory"
	RouteCourse     = "course"
	RouteEvent      = "event"
	RouteArticle    = "article"
)

const frontendGroup = "frontend"

func defaultPaths() map[string]string {
	return map[string]string{
		RoutePage:       "/:key",
		RouteDepartment: "/departments/:slug",
		RouteLaboratory: "/laboratories/:slug",
		RouteCourse:     "/courses/:slug",
		RouteEvent:      "/events/:slug",
		RouteArticle:    "/news/:slug",
	}
}

// Resolver resolves public URLs through a go-urlkit route manager.
type Resolver struct {
	manager      *urlkit.RouteManager
	localeGroups map[string]string
}

// NewResolver builds a resolver for the given public base URL.
func NewResolver(baseURL string) *Resolver {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    frontendGroup,
				BaseURL: strings.TrimRight(baseURL, "/"),
				Paths:   defaultPaths(),
				Groups: []urlkit.GroupConfig{
					{
						Name:  locale.Arabic,
						Path:  "/" + locale.Arabic,
						Paths: defaultPaths(),
					},
				},
			},
		},
	})
	return &Resolver{
		manager: manager,
		localeGroups: map[string]string{
			locale.Arabic: locale.Arabic,
		},
	}
}

// Build resolves a route for the given locale with one named parameter.
func (r *Resolver) Build(localeCode, route, param, value string) (string, error) {
	group, err := r.group(localeCode)
	if err != nil {
		return "", err
	}
	builder, err := safeBuilder(group, route)
	if err != nil {
		return "", err
	}
	return builder.WithParam(param, value).Build()
}

// Page returns the URL of a static page, e.g. /about.
func (r *Resolver) Page(localeCode, pageKey string) (string, error) {
	return r.Build(localeCode, RoutePage, "key", pageKey)
}

// Department returns the public URL of a department.
func (r *Resolver) Department(localeCode, slug string) (string, error) {
	return r.Build(localeCode, RouteDepartment, "slug", slug)
}

// Laboratory returns the public URL of a laboratory.
func (r *Resolver) Laboratory(localeCode, slug string) (string, error) {
	return r.Build(localeCode, RouteLaboratory, "slug", slug)
}

// Course returns the public URL of a course.
func (r *Resolver) Course(localeCode, slug string) (string, error) {
	return r.Build(localeCode, RouteCourse, "slug", slug)
}

// Event returns the public URL of an event.
func (r *Resolver) Event(localeCode, slug string) (string, error) {
	return r.Build(localeCode, RouteEvent, "slug", slug)
}

// Article returns the public URL of a news article.
func (r *Resolver) Article(localeCode, slug string) (string, error) {
	return r.Build(localeCode, RouteArticle, "slug", slug)
}

func (r *Resolver) group(localeCode string) (*urlkit.Group, error) {
	root, err := lookupGroup(r.manager, frontendGroup)
	if err != nil {
		return nil, err
	}
	child, ok := r.localeGroups[strings.ToLower(strings.TrimSpace(localeCode))]
	if !ok {
		return root, nil
	}
	return lookupChildGroup(root, child)
}

// The urlkit lookups panic on unknown names; convert those to errors so a
// bad locale code cannot take down a request.

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("urls: route %q not found: %v", route, rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("urls: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("urls: locale group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, err
}
