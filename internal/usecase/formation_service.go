package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/futsalhq/leaderboard/internal/domain/formation"
	idgen "github.com/futsalhq/leaderboard/internal/platform/id"
)

type SaveFormationInput struct {
	TeamID    string
	Name      string
	Positions []formation.Placement
}

type FormationService struct {
	formationRepo formation.Repository
	idGen         idgen.Generator
	now           func() time.Time
}

func NewFormationService(formationRepo formation.Repository, idGen idgen.Generator) *FormationService {
	return &FormationService{
		formationRepo: formationRepo,
		idGen:         idGen,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// SaveFormation stores a team's layout, replacing any previous one. The
// team reference is checked for shape only so a lineup can be drafted
// before the club record exists.
func (s *FormationService) SaveFormation(ctx context.Context, input SaveFormationInput) (formation.Formation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.SaveFormation")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	if !idgen.IsValid(input.TeamID) {
		return formation.Formation{}, fmt.Errorf("%w: malformed team id", ErrInvalidInput)
	}
	for _, p := range input.Positions {
		if p.PlayerID != "" && !idgen.IsValid(p.PlayerID) {
			return formation.Formation{}, fmt.Errorf("%w: malformed player id %q", ErrInvalidInput, p.PlayerID)
		}
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = formation.DefaultName
	}

	formationID, err := s.idGen.NewID()
	if err != nil {
		return formation.Formation{}, fmt.Errorf("generate formation id: %w", err)
	}

	now := s.now()
	item := formation.Formation{
		ID:        formationID,
		TeamID:    input.TeamID,
		Name:      name,
		Positions: input.Positions,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if item.Positions == nil {
		item.Positions = []formation.Placement{}
	}
	if err := item.Validate(); err != nil {
		return formation.Formation{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	stored, err := s.formationRepo.Upsert(ctx, item)
	if err != nil {
		return formation.Formation{}, fmt.Errorf("upsert formation: %w", err)
	}

	return stored, nil
}

// GetFormation returns the team's saved layout, or the implicit empty
// default when nothing was ever saved.
func (s *FormationService) GetFormation(ctx context.Context, teamID string) (formation.Formation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.GetFormation")
	defer span.End()

	if !idgen.IsValid(teamID) {
		return formation.Formation{}, fmt.Errorf("%w: malformed team id", ErrInvalidInput)
	}

	item, exists, err := s.formationRepo.GetByTeam(ctx, teamID)
	if err != nil {
		return formation.Formation{}, fmt.Errorf("get formation: %w", err)
	}
	if !exists {
		return formation.Default(teamID), nil
	}

	return item, nil
}
