package catalog_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/alqalam/campus-cms/catalog"
	"github.com/alqalam/campus-cms/locale"
)

func newService(t *testing.T) catalog.Service {
	t.Helper()
	clock := time.Unix(1700000000, 0)
	return catalog.NewService(catalog.NewMemoryStores(), catalog.WithClock(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}))
}

func TestSaveDepartmentRejectsEmptyNameBeforePersisting(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.SaveDepartment(ctx, catalog.SaveDepartmentRequest{})
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if _, ok := verrs["name"]; !ok {
		t.Fatalf("expected field-level name error, got %v", verrs)
	}

	records, err := svc.ListDepartments(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("nothing may persist on validation failure, got %d records", len(records))
	}
}

func TestSaveDepartmentDerivesSlugFromEnglishName(t *testing.T) {
	svc := newService(t)

	record, err := svc.SaveDepartment(context.Background(), catalog.SaveDepartmentRequest{
		Name: locale.NewText("Computer Science", "علوم الحاسوب"),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if record.Slug != "computer-science" {
		t.Fatalf("unexpected slug %q", record.Slug)
	}
	if !record.IsActive {
		t.Fatal("new departments default to active")
	}
}

func TestSaveDepartmentRejectsDuplicateSlug(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	first, err := svc.SaveDepartment(ctx, catalog.SaveDepartmentRequest{
		Name: locale.NewText("Physics", ""),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	_, err = svc.SaveDepartment(ctx, catalog.SaveDepartmentRequest{
		Name: locale.NewText("Physics", ""),
	})
	if !errors.Is(err, catalog.ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}

	// Re-saving the owner under its own slug is fine.
	if _, err := svc.SaveDepartment(ctx, catalog.SaveDepartmentRequest{
		ID:   first.ID,
		Name: locale.NewText("Physics", "الفيزياء"),
	}); err != nil {
		t.Fatalf("owner re-save: %v", err)
	}
}

func TestSaveDepartmentUpdatePreservesCreationAndActivation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.SaveDepartment(ctx, catalog.SaveDepartmentRequest{
		Name: locale.NewText("Chemistry", ""),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	inactive := false
	if _, err := svc.SaveDepartment(ctx, catalog.SaveDepartmentRequest{
		ID:       created.ID,
		Name:     created.Name,
		IsActive: &inactive,
	}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	updated, err := svc.SaveDepartment(ctx, catalog.SaveDepartmentRequest{
		ID:   created.ID,
		Name: locale.NewText("Chemistry", "الكيمياء"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("creation time must survive updates")
	}
	if updated.IsActive {
		t.Fatal("activation must survive an unrelated update")
	}

	public, err := svc.PublicDepartments(ctx)
	if err != nil {
		t.Fatalf("public list: %v", err)
	}
	if len(public) != 0 {
		t.Fatalf("inactive departments must not appear publicly, got %d", len(public))
	}
}

func TestLaboratoriesFilterByDepartment(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	dep, err := svc.SaveDepartment(ctx, catalog.SaveDepartmentRequest{Name: locale.NewText("Biology", "")})
	if err != nil {
		t.Fatalf("department: %v", err)
	}

	if _, err := svc.SaveLaboratory(ctx, catalog.SaveLaboratoryRequest{
		DepartmentID: &dep.ID,
		Name:         locale.NewText("Genomics Lab", ""),
	}); err != nil {
		t.Fatalf("lab: %v", err)
	}
	if _, err := svc.SaveLaboratory(ctx, catalog.SaveLaboratoryRequest{
		Name: locale.NewText("Shared Lab", ""),
	}); err != nil {
		t.Fatalf("lab: %v", err)
	}

	scoped, err := svc.PublicLaboratories(ctx, &dep.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(scoped) != 1 || scoped[0].Slug != "genomics-lab" {
		t.Fatalf("unexpected scoped labs %#v", scoped)
	}

	all, err := svc.PublicLaboratories(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 labs, got %d", len(all))
	}
}

func TestSaveCourseRejectsNegativeCredits(t *testing.T) {
	svc := newService(t)

	_, err := svc.SaveCourse(context.Background(), catalog.SaveCourseRequest{
		Name:    locale.NewText("Algorithms", ""),
		Credits: -3,
	})
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if _, ok := verrs["credits"]; !ok {
		t.Fatalf("expected field-level credits error, got %v", verrs)
	}
}

func TestUpcomingEventsFilterAndOrder(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	base := time.Unix(1700000000, 0)
	for _, ev := range []catalog.SaveEventRequest{
		{Title: locale.NewText("Past Symposium", ""), StartsAt: base.Add(-24 * time.Hour)},
		{Title: locale.NewText("Graduation", ""), StartsAt: base.Add(48 * time.Hour)},
		{Title: locale.NewText("Open Day", ""), StartsAt: base.Add(24 * time.Hour)},
	} {
		if _, err := svc.SaveEvent(ctx, ev); err != nil {
			t.Fatalf("event %v: %v", ev.Title, err)
		}
	}

	upcoming, err := svc.UpcomingEvents(ctx)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming events, got %d", len(upcoming))
	}
	if upcoming[0].Slug != "open-day" || upcoming[1].Slug != "graduation" {
		t.Fatalf("expected soonest first, got %q then %q", upcoming[0].Slug, upcoming[1].Slug)
	}
}

func TestUpcomingEventsKeepInProgressEventsUntilTheyEnd(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	base := time.Unix(1700000000, 0)
	for _, ev := range []catalog.SaveEventRequest{
		// Started an hour ago but still running.
		{Title: locale.NewText("Science Week", ""), StartsAt: base.Add(-time.Hour), EndsAt: base.Add(time.Hour)},
		// Already over.
		{Title: locale.NewText("Orientation", ""), StartsAt: base.Add(-4 * time.Hour), EndsAt: base.Add(-2 * time.Hour)},
		// Open-ended in the past: judged by its start.
		{Title: locale.NewText("Old Lecture", ""), StartsAt: base.Add(-2 * time.Hour)},
	} {
		if _, err := svc.SaveEvent(ctx, ev); err != nil {
			t.Fatalf("event %v: %v", ev.Title, err)
		}
	}

	upcoming, err := svc.UpcomingEvents(ctx)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].Slug != "science-week" {
		t.Fatalf("expected only the in-progress event, got %+v", upcoming)
	}
}

func TestSaveEventRejectsEndBeforeStart(t *testing.T) {
	svc := newService(t)

	start := time.Unix(1700000000, 0)
	_, err := svc.SaveEvent(context.Background(), catalog.SaveEventRequest{
		Title:    locale.NewText("Workshop", ""),
		StartsAt: start,
		EndsAt:   start.Add(-time.Hour),
	})
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if _, ok := verrs["ends_at"]; !ok {
		t.Fatalf("expected field-level ends_at error, got %v", verrs)
	}
}

func TestPublishedArticlesHideDraftsAndFutureDates(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	past := time.Unix(1690000000, 0)
	future := time.Unix(1800000000, 0)

	if _, err := svc.SaveArticle(ctx, catalog.SaveArticleRequest{
		Title:       locale.NewText("Published", ""),
		PublishedAt: &past,
	}); err != nil {
		t.Fatalf("article: %v", err)
	}
	if _, err := svc.SaveArticle(ctx, catalog.SaveArticleRequest{
		Title:       locale.NewText("Scheduled", ""),
		PublishedAt: &future,
	}); err != nil {
		t.Fatalf("article: %v", err)
	}
	if _, err := svc.SaveArticle(ctx, catalog.SaveArticleRequest{
		Title: locale.NewText("Draft", ""),
	}); err != nil {
		t.Fatalf("article: %v", err)
	}

	published, err := svc.PublishedArticles(ctx)
	if err != nil {
		t.Fatalf("published: %v", err)
	}
	if len(published) != 1 || published[0].Slug != "published" {
		t.Fatalf("unexpected feed %#v", published)
	}

	all, err := svc.ListArticles(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("admin list must include drafts, got %d", len(all))
	}
}

func TestGetArticleBySlugRendersMarkdown(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	if _, err := svc.SaveArticle(ctx, catalog.SaveArticleRequest{
		Title: locale.NewText("Campus News", ""),
		Body:  "# Welcome\n\nThe **new** laboratory is open.",
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	record, err := svc.GetArticleBySlug(ctx, "campus-news")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(record.RenderedBody, "<strong>new</strong>") {
		t.Fatalf("expected rendered emphasis, got %q", record.RenderedBody)
	}
	if !strings.Contains(record.RenderedBody, "<h1") {
		t.Fatalf("expected rendered heading, got %q", record.RenderedBody)
	}
	if record.Body == record.RenderedBody {
		t.Fatal("raw markdown body must stay untouched")
	}
}

func TestDeleteArticleUnknownID(t *testing.T) {
	svc := newService(t)

	err := svc.DeleteArticle(context.Background(), uuid.New())
	var notFound *catalog.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
