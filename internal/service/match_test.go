package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/msomdec/pitchside/internal/domain"
	"github.com/msomdec/pitchside/internal/service"
)

func newTestMatchService(t *testing.T) *service.MatchService {
	t.Helper()
	db := newTestDB(t)
	return service.NewMatchService(db.Matches())
}

func TestMatchService_Create_DefaultsToUpcoming(t *testing.T) {
	svc := newTestMatchService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.Match{
		Team1: "India",
		Team2: "Australia",
		Venue: "MCG",
		Date:  time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != domain.StatusUpcoming {
		t.Fatalf("expected default status upcoming, got %s", created.Status)
	}
}

func TestMatchService_Create_InvalidStatus(t *testing.T) {
	svc := newTestMatchService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.Match{
		Team1:  "India",
		Team2:  "Australia",
		Venue:  "MCG",
		Date:   time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC),
		Status: "postponed",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_Create_MissingDate(t *testing.T) {
	svc := newTestMatchService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.Match{Team1: "India", Team2: "Australia", Venue: "MCG"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_Update_StatusTransition(t *testing.T) {
	svc := newTestMatchService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.Match{
		Team1: "England",
		Team2: "New Zealand",
		Venue: "Lord's",
		Date:  time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	completed := domain.StatusCompleted
	result := "England won by 2 runs"
	updated, err := svc.Update(ctx, created.ID, service.MatchPatch{Status: &completed, Result: &result})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != domain.StatusCompleted || updated.Result != result {
		t.Fatalf("unexpected match after update: %+v", updated)
	}
	// Untouched fields survive the patch.
	if updated.Venue != "Lord's" {
		t.Fatalf("venue was clobbered: %s", updated.Venue)
	}

	bogus := domain.MatchStatus("abandoned")
	if _, err := svc.Update(ctx, created.ID, service.MatchPatch{Status: &bogus}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bogus status, got %v", err)
	}
}
