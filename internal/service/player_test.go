package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/pitchside/internal/domain"
	"github.com/msomdec/pitchside/internal/service"
)

func newTestPlayerService(t *testing.T) *service.PlayerService {
	t.Helper()
	db := newTestDB(t)
	return service.NewPlayerService(db.Players())
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestPlayerService_Create(t *testing.T) {
	svc := newTestPlayerService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.Player{
		Name: "Rohit",
		Team: "India",
		Role: "Batsman",
		Runs: 9000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected creation time to be stamped")
	}
}

func TestPlayerService_Create_MissingFields(t *testing.T) {
	svc := newTestPlayerService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		player domain.Player
	}{
		{"no name", domain.Player{Team: "India", Role: "Bowler"}},
		{"no team", domain.Player{Name: "Bumrah", Role: "Bowler"}},
		{"no role", domain.Player{Name: "Bumrah", Team: "India"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.player
			if _, err := svc.Create(ctx, &p); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestPlayerService_Update_PartialMerge(t *testing.T) {
	svc := newTestPlayerService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.Player{
		Name:    "Bumrah",
		Team:    "India",
		Role:    "Bowler",
		Wickets: 150,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Only wickets present in the patch; everything else keeps its value.
	updated, err := svc.Update(ctx, created.ID, service.PlayerPatch{Wickets: intPtr(155)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Wickets != 155 {
		t.Fatalf("expected wickets 155, got %d", updated.Wickets)
	}
	if updated.Name != "Bumrah" || updated.Team != "India" || updated.Role != "Bowler" {
		t.Fatalf("unchanged fields were clobbered: %+v", updated)
	}

	// An explicit zero value overwrites.
	updated, err = svc.Update(ctx, created.ID, service.PlayerPatch{Wickets: intPtr(0)})
	if err != nil {
		t.Fatalf("Update to zero: %v", err)
	}
	if updated.Wickets != 0 {
		t.Fatalf("expected wickets 0, got %d", updated.Wickets)
	}
}

func TestPlayerService_Update_ClearingRequiredFieldFails(t *testing.T) {
	svc := newTestPlayerService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.Player{Name: "Root", Team: "England", Role: "Batsman"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Update(ctx, created.ID, service.PlayerPatch{Name: strPtr("")})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_UpdateDelete_NotFound(t *testing.T) {
	svc := newTestPlayerService(t)
	ctx := context.Background()

	if _, err := svc.Update(ctx, "no-such-id", service.PlayerPatch{Name: strPtr("X")}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := svc.Delete(ctx, "no-such-id"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}
