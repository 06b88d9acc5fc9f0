package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"investment-ideas-api/models"
)

func newTestService(t *testing.T) *IdeaService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.InvestmentIdea{}); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return NewIdeaService(db)
}

func mustCreate(t *testing.T, svc *IdeaService, req *models.InvestmentIdeaCreateRequest) *models.InvestmentIdea {
	t.Helper()
	idea, err := svc.Create(req)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", req.Title, err)
	}
	return idea
}

func strPtr(s string) *string { return &s }

func statusPtr(s models.InvestmentStatus) *models.InvestmentStatus { return &s }

func TestCreateAppliesDefaults(t *testing.T) {
	svc := newTestService(t)

	idea := mustCreate(t, svc, &models.InvestmentIdeaCreateRequest{Title: "Tesla Stock Analysis"})

	if idea.ID == 0 {
		t.Fatal("expected a generated id")
	}
	if !idea.CreatedAt.Equal(idea.UpdatedAt) {
		t.Fatalf("expected created_at == updated_at on creation, got %v / %v", idea.CreatedAt, idea.UpdatedAt)
	}
	if idea.Status != models.StatusResearching {
		t.Fatalf("expected default status Researching, got %q", idea.Status)
	}
	if idea.Description != "" || idea.Notes != "" {
		t.Fatalf("expected empty description and notes, got %q / %q", idea.Description, idea.Notes)
	}

	today := time.Now().Format(models.IdeaDateFormat)
	if got := idea.IdeaDate.Format(models.IdeaDateFormat); got != today {
		t.Fatalf("expected idea_date to default to today (%s), got %s", today, got)
	}
}

func TestCreateWithExplicitFields(t *testing.T) {
	svc := newTestService(t)

	idea := mustCreate(t, svc, &models.InvestmentIdeaCreateRequest{
		Title:       "NVDA earnings play",
		Description: "Pre-earnings volatility setup",
		IdeaDate:    strPtr("2024-03-01"),
		Status:      statusPtr(models.StatusWatchlist),
		Notes:       "Check IV before entering",
	})

	if idea.Status != models.StatusWatchlist {
		t.Fatalf("expected Watchlist, got %q", idea.Status)
	}
	if got := idea.IdeaDate.Format(models.IdeaDateFormat); got != "2024-03-01" {
		t.Fatalf("expected idea_date 2024-03-01, got %s", got)
	}
	if idea.Description != "Pre-earnings volatility setup" {
		t.Fatalf("unexpected description %q", idea.Description)
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name string
		req  *models.InvestmentIdeaCreateRequest
	}{
		{"empty title", &models.InvestmentIdeaCreateRequest{Title: ""}},
		{"oversized title", &models.InvestmentIdeaCreateRequest{Title: strings.Repeat("a", models.MaxTitleLength+1)}},
		{"oversized description", &models.InvestmentIdeaCreateRequest{
			Title:       "ok",
			Description: strings.Repeat("b", models.MaxDescriptionLength+1),
		}},
		{"oversized notes", &models.InvestmentIdeaCreateRequest{
			Title: "ok",
			Notes: strings.Repeat("c", models.MaxNotesLength+1),
		}},
		{"malformed date", &models.InvestmentIdeaCreateRequest{Title: "ok", IdeaDate: strPtr("03/01/2024")}},
		{"invalid status", &models.InvestmentIdeaCreateRequest{Title: "ok", Status: statusPtr("Bogus")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(tc.req); err == nil {
				t.Fatal("expected a validation error")
			} else {
				var validationErr *ValidationError
				if !errors.As(err, &validationErr) {
					t.Fatalf("expected *ValidationError, got %T: %v", err, err)
				}
			}
		})
	}

	// None of the rejected creates may have touched storage.
	ideas, err := svc.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(ideas) != 0 {
		t.Fatalf("expected empty store after rejected creates, got %d rows", len(ideas))
	}
}

func TestGetAllOrdersNewestFirst(t *testing.T) {
	svc := newTestService(t)

	a := mustCreate(t, svc, &models.InvestmentIdeaCreateRequest{Title: "A"})
	b := mustCreate(t, svc, &models.InvestmentIdeaCreateRequest{Title: "B"})
	c := mustCreate(t, svc, &models.InvestmentIdeaCreateRequest{Title: "C"})

	ideas, err := svc.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(ideas) != 3 {
		t.Fatalf("expected 3 ideas, got %d", len(ideas))
	}

	want := []int{c.ID, b.ID, a.ID}
	for i, idea := range ideas {
		if idea.ID != want[i] {
			t.Fatalf("position %d: expected id %d, got %d", i, want[i], idea.ID)
		}
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.GetByID(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateAppliesOnlyPresentFields(t *testing.T) {
	svc := newTestService(t)

	created := mustCreate(t, svc, &models.InvestmentIdeaCreateRequest{
		Title:       "Original title",
		Description: "Original description",
		IdeaDate:    strPtr("2024-01-15"),
		Status:      statusPtr(models.StatusResearching),
		Notes:       "Original notes",
	})

	updated, err := svc.Update(created.ID, &models.InvestmentIdeaUpdateRequest{
		Status: statusPtr(models.StatusInvested),
		Notes:  strPtr("Bought 100 shares"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Title != "Original title" {
		t.Fatalf("title changed unexpectedly: %q", updated.Title)
	}
	if updated.Description != "Original description" {
		t.Fatalf("description changed unexpectedly: %q", updated.Description)
	}
	if got := updated.IdeaDate.Format(models.IdeaDateFormat); got != "2024-01-15" {
		t.Fatalf("idea_date changed unexpectedly: %s", got)
	}
	if updated.Status != models.StatusInvested {
		t.Fatalf("expected Invested, got %q", updated.Status)
	}
	if updated.Notes != "Bought 100 shares" {
		t.Fatalf("expected new notes, got %q", updated.Notes)
	}
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		t.Fatalf("updated_at %v precedes created_at %v", updated.UpdatedAt, updated.CreatedAt)
	}
}

func TestUpdateRefreshesUpdatedAtWithoutFieldChanges(t *testing.T) {
	svc := newTestService(t)

	created := mustCreate(t, svc, &models.InvestmentIdeaCreateRequest{Title: "Unchanged"})

	updated, err := svc.Update(created.ID, &models.InvestmentIdeaUpdateRequest{})
	if err != nil {
		t.Fatalf("empty update failed: %v", err)
	}
	if updated.Title != "Unchanged" {
		t.Fatalf("title changed on empty update: %q", updated.Title)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("updated_at went backwards: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}
}

func TestUpdateNotFoundLeavesStoreUnchanged(t *testing.T) {
	svc := newTestService(t)

	mustCreate(t, svc, &models.InvestmentIdeaCreateRequest{Title: "Only row"})

	if _, err := svc.Update(999, &models.InvestmentIdeaUpdateRequest{Title: strPtr("New")}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	ideas, err := svc.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(ideas) != 1 || ideas[0].Title != "Only row" {
		t.Fatalf("store mutated by failed update: %+v", ideas)
	}
}

func TestUpdateRejectsInvalidInputBeforeWriting(t *testing.T) {
	svc := newTestService(t)

	created := mustCreate(t, svc, &models.InvestmentIdeaCreateRequest{Title: "Valid"})

	if _, err := svc.Update(created.ID, &models.InvestmentIdeaUpdateRequest{Status: statusPtr("Nonsense")}); err == nil {
		t.Fatal("expected a validation error")
	}
	if _, err := svc.Update(created.ID, &models.InvestmentIdeaUpdateRequest{IdeaDate: strPtr("not-a-date")}); err == nil {
		t.Fatal("expected a validation error")
	}

	reloaded, err := svc.GetByID(created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if reloaded.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updated_at refreshed by rejected update: %v -> %v", created.UpdatedAt, reloaded.UpdatedAt)
	}
}

func TestDeleteRemovesPermanently(t *testing.T) {
	svc := newTestService(t)

	created := mustCreate(t, svc, &models.InvestmentIdeaCreateRequest{Title: "Doomed"})

	deleted, err := svc.Delete(created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Fatal("expected Delete to report true for an existing id")
	}

	if _, err := svc.GetByID(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	deleted, err = svc.Delete(created.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if deleted {
		t.Fatal("expected Delete to report false for a missing id")
	}
}

func TestGetByStatusFiltersAndOrders(t *testing.T) {
	svc := newTestService(t)

	mustCreate(t, svc, &models.InvestmentIdeaCreateRequest{Title: "W1", Status: statusPtr(models.StatusWatchlist)})
	mustCreate(t, svc, &models.InvestmentIdeaCreateRequest{Title: "R1"})
	w2 := mustCreate(t, svc, &models.InvestmentIdeaCreateRequest{Title: "W2", Status: statusPtr(models.StatusWatchlist)})

	watchlist, err := svc.GetByStatus(models.StatusWatchlist)
	if err != nil {
		t.Fatalf("GetByStatus failed: %v", err)
	}
	if len(watchlist) != 2 {
		t.Fatalf("expected 2 watchlist ideas, got %d", len(watchlist))
	}
	if watchlist[0].ID != w2.ID {
		t.Fatalf("expected newest watchlist idea first, got id %d", watchlist[0].ID)
	}

	invested, err := svc.GetByStatus(models.StatusInvested)
	if err != nil {
		t.Fatalf("GetByStatus failed: %v", err)
	}
	if len(invested) != 0 {
		t.Fatalf("expected no invested ideas, got %d", len(invested))
	}

	if _, err := svc.GetByStatus("Bogus"); err == nil {
		t.Fatal("expected a validation error for an unknown status")
	}
}

func TestMaxLengthRoundTrip(t *testing.T) {
	svc := newTestService(t)

	title := strings.Repeat("t", models.MaxTitleLength)
	description := strings.Repeat("d", models.MaxDescriptionLength)
	notes := strings.Repeat("n", models.MaxNotesLength)

	created := mustCreate(t, svc, &models.InvestmentIdeaCreateRequest{
		Title:       title,
		Description: description,
		Notes:       notes,
	})

	reloaded, err := svc.GetByID(created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if reloaded.Title != title {
		t.Fatal("title did not round-trip intact")
	}
	if reloaded.Description != description {
		t.Fatal("description did not round-trip intact")
	}
	if reloaded.Notes != notes {
		t.Fatal("notes did not round-trip intact")
	}
}
