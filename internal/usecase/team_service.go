package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/futsalhq/leaderboard/internal/domain/team"
	idgen "github.com/futsalhq/leaderboard/internal/platform/id"
)

type CreateTeamInput struct {
	Name    string
	Country string
	City    string
	Coach   string
	LogoURL string
}

type TeamService struct {
	teamRepo team.Repository
	idGen    idgen.Generator
	now      func() time.Time
}

func NewTeamService(teamRepo team.Repository, idGen idgen.Generator) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		idGen:    idGen,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *TeamService) CreateTeam(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	input.Country = strings.TrimSpace(input.Country)
	input.City = strings.TrimSpace(input.City)

	_, exists, err := s.teamRepo.FindByNameAndLocation(ctx, input.Name, input.Country, input.City)
	if err != nil {
		return team.Team{}, fmt.Errorf("find team by name and location: %w", err)
	}
	if exists {
		return team.Team{}, fmt.Errorf("%w: team %q in %s/%s", ErrConflict, input.Name, input.Country, input.City)
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	now := s.now()
	item := team.Team{
		ID:        teamID,
		Name:      input.Name,
		Country:   input.Country,
		City:      input.City,
		Coach:     strings.TrimSpace(input.Coach),
		LogoURL:   strings.TrimSpace(input.LogoURL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Create(ctx, item); err != nil {
		if errors.Is(err, team.ErrDuplicate) {
			return team.Team{}, fmt.Errorf("%w: team %q in %s/%s", ErrConflict, input.Name, input.Country, input.City)
		}
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return item, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	if !idgen.IsValid(teamID) {
		return team.Team{}, fmt.Errorf("%w: malformed team id", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) ListTeams(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	filter.Country = strings.TrimSpace(filter.Country)
	filter.City = strings.TrimSpace(filter.City)

	items, err := s.teamRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}
