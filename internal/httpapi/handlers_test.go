package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/alqalam/campus-cms/catalog"
	"github.com/alqalam/campus-cms/internal/httpapi"
	"github.com/alqalam/campus-cms/internal/urls"
	"github.com/alqalam/campus-cms/locale"
	"github.com/alqalam/campus-cms/sections"
	"github.com/alqalam/campus-cms/sliders"
)

const testSecret = "test-secret"

func testContext() context.Context {
	return context.Background()
}

type testEnv struct {
	server   *httpapi.Server
	sections sections.Service
	sliders  sliders.Service
	catalog  catalog.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	sectionSvc := sections.NewService(sections.NewMemorySectionRepository())
	sliderSvc := sliders.NewService(sliders.NewMemorySliderRepository())
	catalogSvc := catalog.NewService(catalog.NewMemoryStores())

	server, err := httpapi.NewServer(httpapi.Config{
		AppName:     "campus-test",
		Environment: "test",
		JWTSecret:   testSecret,
	}, httpapi.Dependencies{
		Sections: sectionSvc,
		Sliders:  sliderSvc,
		Catalog:  catalogSvc,
		URLs:     urls.NewResolver("https://campus.example"),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return &testEnv{server: server, sections: sectionSvc, sliders: sliderSvc, catalog: catalogSvc}
}

func adminToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "editor-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func (e *testEnv) request(t *testing.T, method, target, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.server.App().Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/admin/home-content", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	resp = env.request(t, http.MethodGet, "/admin/home-content", "not-a-jwt", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 with invalid token, got %d", resp.StatusCode)
	}

	resp = env.request(t, http.MethodGet, "/admin/home-content", adminToken(t), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", resp.StatusCode)
	}
}

func TestAdminSurfaceDisabledWithoutSecret(t *testing.T) {
	server, err := httpapi.NewServer(httpapi.Config{}, httpapi.Dependencies{
		Sections: sections.NewService(sections.NewMemorySectionRepository()),
		Sliders:  sliders.NewService(sliders.NewMemorySliderRepository()),
		Catalog:  catalog.NewService(catalog.NewMemoryStores()),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/home-content", nil)
	req.Header.Set("Authorization", "Bearer anything")
	resp, err := server.App().Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 when no secret is configured, got %d", resp.StatusCode)
	}
}

func TestSaveHomeContentRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t)

	resp := env.request(t, http.MethodPost, "/admin/home-content", token, map[string]any{
		"section_key": "cta",
		"title":       map[string]string{"en": "Join us", "ar": ""},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var listing struct {
		Contents []struct {
			SectionKey string      `json:"section_key"`
			PageKey    string      `json:"page_key"`
			Title      locale.Text `json:"title"`
		} `json:"contents"`
	}
	resp = env.request(t, http.MethodGet, "/admin/home-content", token, nil)
	decodeBody(t, resp, &listing)
	if len(listing.Contents) != 1 {
		t.Fatalf("expected one section, got %d", len(listing.Contents))
	}
	if listing.Contents[0].PageKey != sections.PageHome {
		t.Fatalf("home saves must land in the home scope, got %q", listing.Contents[0].PageKey)
	}
	if got := listing.Contents[0].Title.Lookup(locale.Arabic, ""); got != "Join us" {
		t.Fatalf("expected ar fallback to en, got %q", got)
	}
}

func TestSaveSectionValidationReturnsFieldMap(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPost, "/admin/page-content", adminToken(t), map[string]any{
		"page_key": "about",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, resp, &body)
	if _, ok := body.Fields["section_key"]; !ok {
		t.Fatalf("expected section_key in field map, got %v", body.Fields)
	}
}

func TestPublicHomeContentLocalizesAndFiltersInactive(t *testing.T) {
	env := newTestEnv(t)
	ctx := testContext()

	if _, err := env.sections.Save(ctx, sections.SaveSectionRequest{
		SectionKey: "hero",
		Title:      locale.NewText("Welcome", "مرحباً"),
	}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := env.sections.Save(ctx, sections.SaveSectionRequest{
		SectionKey: "hidden",
	}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := env.sections.Deactivate(ctx, "", "hidden"); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	var body struct {
		Contents []struct {
			SectionKey string `json:"section_key"`
			Title      string `json:"title"`
		} `json:"contents"`
	}
	resp := env.request(t, http.MethodGet, "/home-content?locale=ar", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &body)
	if len(body.Contents) != 1 {
		t.Fatalf("inactive sections must not render publicly, got %d", len(body.Contents))
	}
	if body.Contents[0].Title != "مرحباً" {
		t.Fatalf("expected arabic title, got %q", body.Contents[0].Title)
	}
}

func TestPublicSlidersLocalizeStats(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.sliders.Create(testContext(), sliders.CreateSliderRequest{
		Title: locale.NewText("Campus Life", ""),
		Stats: []sliders.Stat{{Value: "500+", Label: locale.NewText("Students", "طالب")}},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	var body struct {
		Sliders []struct {
			Title string `json:"title"`
			Stats []struct {
				Value string `json:"value"`
				Label string `json:"label"`
			} `json:"stats"`
		} `json:"sliders"`
	}
	resp := env.request(t, http.MethodGet, "/hero-sliders?locale=ar", "", nil)
	decodeBody(t, resp, &body)
	if len(body.Sliders) != 1 || len(body.Sliders[0].Stats) != 1 {
		t.Fatalf("unexpected payload %+v", body)
	}
	if body.Sliders[0].Stats[0].Label != "طالب" {
		t.Fatalf("expected arabic stat label, got %q", body.Sliders[0].Stats[0].Label)
	}
	if body.Sliders[0].Title != "Campus Life" {
		t.Fatalf("expected en fallback title, got %q", body.Sliders[0].Title)
	}
}

func TestSliderCRUDOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t)

	var created struct {
		ID uuid.UUID `json:"id"`
	}
	resp := env.request(t, http.MethodPost, "/admin/hero-sliders", token, map[string]any{
		"title": map[string]string{"en": "Slide", "ar": ""},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &created)

	resp = env.request(t, http.MethodDelete, "/admin/hero-sliders/"+created.ID.String(), token, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	resp = env.request(t, http.MethodDelete, "/admin/hero-sliders/"+created.ID.String(), token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d", resp.StatusCode)
	}
}

func TestPublicArticleHidesUnpublishedAndRendersBody(t *testing.T) {
	env := newTestEnv(t)
	ctx := testContext()

	past := time.Now().Add(-time.Hour)
	if _, err := env.catalog.SaveArticle(ctx, catalog.SaveArticleRequest{
		Title:       locale.NewText("Campus News", ""),
		Body:        "The **new** laboratory is open.",
		PublishedAt: &past,
	}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := env.catalog.SaveArticle(ctx, catalog.SaveArticleRequest{
		Title: locale.NewText("Draft", ""),
	}); err != nil {
		t.Fatalf("save draft: %v", err)
	}

	resp := env.request(t, http.MethodGet, "/news/draft", "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unpublished article, got %d", resp.StatusCode)
	}

	var body struct {
		Title string `json:"title"`
		Body  string `json:"body"`
		URL   string `json:"url"`
	}
	resp = env.request(t, http.MethodGet, "/news/campus-news", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &body)
	if body.Body == "" || !bytes.Contains([]byte(body.Body), []byte("<strong>new</strong>")) {
		t.Fatalf("expected rendered markdown body, got %q", body.Body)
	}
	if body.URL != "https://campus.example/news/campus-news" {
		t.Fatalf("unexpected canonical url %q", body.URL)
	}
}

func TestDepartmentConflictAndNotFoundTranslation(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t)

	resp := env.request(t, http.MethodPost, "/admin/departments", token, map[string]any{
		"name": map[string]string{"en": "Physics", "ar": ""},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp = env.request(t, http.MethodPost, "/admin/departments", token, map[string]any{
		"name": map[string]string{"en": "Physics", "ar": ""},
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate slug, got %d", resp.StatusCode)
	}

	resp = env.request(t, http.MethodDelete, "/admin/departments/"+uuid.NewString(), token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown department, got %d", resp.StatusCode)
	}
}
