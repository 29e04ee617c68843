package usecase

import (
	"errors"
	"testing"

	"github.com/futsalhq/leaderboard/internal/domain/team"
	"github.com/futsalhq/leaderboard/internal/infrastructure/repository/memory"
	idgen "github.com/futsalhq/leaderboard/internal/platform/id"
)

func TestTeamService_CreateTeam(t *testing.T) {
	repo := memory.NewTeamRepository()
	svc := NewTeamService(repo, idgen.NewRandomGenerator())

	created, err := svc.CreateTeam(t.Context(), CreateTeamInput{
		Name:    "  Jakarta Futsal Club ",
		Country: "Indonesia",
		City:    "Jakarta",
		Coach:   "Budi",
	})
	if err != nil {
		t.Fatalf("create team failed: %v", err)
	}
	if !idgen.IsValid(created.ID) {
		t.Fatalf("generated id %q is not well formed", created.ID)
	}
	if created.Name != "Jakarta Futsal Club" {
		t.Fatalf("name not trimmed: %q", created.Name)
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("timestamps not set: %+v", created)
	}

	got, err := svc.GetTeam(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get team failed: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("got %q, want %q", got.ID, created.ID)
	}
}

func TestTeamService_CreateTeam_DuplicateTuple(t *testing.T) {
	repo := memory.NewTeamRepository()
	svc := NewTeamService(repo, idgen.NewRandomGenerator())

	input := CreateTeamInput{Name: "Bandung United", Country: "Indonesia", City: "Bandung"}
	if _, err := svc.CreateTeam(t.Context(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.CreateTeam(t.Context(), input)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// Same name in another city is a different club.
	input.City = "Jakarta"
	if _, err := svc.CreateTeam(t.Context(), input); err != nil {
		t.Fatalf("create in other city failed: %v", err)
	}
}

func TestTeamService_CreateTeam_MissingFields(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(), idgen.NewRandomGenerator())

	_, err := svc.CreateTeam(t.Context(), CreateTeamInput{Name: "No Country"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTeamService_GetTeam_Errors(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(), idgen.NewRandomGenerator())

	if _, err := svc.GetTeam(t.Context(), "not-an-id"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for malformed id, got %v", err)
	}

	missing := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	if _, err := svc.GetTeam(t.Context(), missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_ListTeams_Filter(t *testing.T) {
	repo := memory.NewTeamRepository()
	svc := NewTeamService(repo, idgen.NewRandomGenerator())

	seed := []CreateTeamInput{
		{Name: "Zebra", Country: "Indonesia", City: "Jakarta"},
		{Name: "Anoa", Country: "Indonesia", City: "Bandung"},
		{Name: "Lion", Country: "Malaysia", City: "Kuala Lumpur"},
	}
	for _, in := range seed {
		if _, err := svc.CreateTeam(t.Context(), in); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}

	all, err := svc.ListTeams(t.Context(), team.Filter{})
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 3 || all[0].Name != "Anoa" {
		t.Fatalf("expected 3 teams sorted by name, got %+v", all)
	}

	indonesian, err := svc.ListTeams(t.Context(), team.Filter{Country: "Indonesia"})
	if err != nil {
		t.Fatalf("list filtered failed: %v", err)
	}
	if len(indonesian) != 2 {
		t.Fatalf("expected 2 indonesian teams, got %d", len(indonesian))
	}
}
