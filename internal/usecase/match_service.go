package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/futsalhq/leaderboard/internal/domain/match"
	"github.com/futsalhq/leaderboard/internal/domain/team"
	idgen "github.com/futsalhq/leaderboard/internal/platform/id"
)

type StartMatchInput struct {
	HomeTeamID string
	AwayTeamID string
}

type AddEventInput struct {
	Type              match.EventType
	TeamID            string
	PlayerID          string
	SecondaryPlayerID string
	Minute            *int
	Notes             string
}

type MatchService struct {
	matchRepo match.Repository
	teamRepo  team.Repository
	idGen     idgen.Generator
	now       func() time.Time
}

func NewMatchService(matchRepo match.Repository, teamRepo team.Repository, idGen idgen.Generator) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		idGen:     idGen,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *MatchService) StartMatch(ctx context.Context, input StartMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.StartMatch")
	defer span.End()

	input.HomeTeamID = strings.TrimSpace(input.HomeTeamID)
	input.AwayTeamID = strings.TrimSpace(input.AwayTeamID)
	if !idgen.IsValid(input.HomeTeamID) {
		return match.Match{}, fmt.Errorf("%w: malformed home team id", ErrInvalidInput)
	}
	if !idgen.IsValid(input.AwayTeamID) {
		return match.Match{}, fmt.Errorf("%w: malformed away team id", ErrInvalidInput)
	}
	if input.HomeTeamID == input.AwayTeamID {
		return match.Match{}, fmt.Errorf("%w: a team cannot play itself", ErrInvalidInput)
	}

	for _, teamID := range []string{input.HomeTeamID, input.AwayTeamID} {
		_, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return match.Match{}, fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return match.Match{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	item := match.Match{
		ID:         matchID,
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		StartedAt:  s.now(),
		Events:     []match.Event{},
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.Create(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return item, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	if !idgen.IsValid(matchID) {
		return match.Match{}, fmt.Errorf("%w: malformed match id", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return item, nil
}

// AddEvent appends one event to a match's log and applies its score
// effect in the same storage operation. Appends after the match ended
// are accepted; late corrections are part of recording real games.
func (s *MatchService) AddEvent(ctx context.Context, matchID string, input AddEventInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.AddEvent")
	defer span.End()

	if !idgen.IsValid(matchID) {
		return match.Match{}, fmt.Errorf("%w: malformed match id", ErrInvalidInput)
	}
	input.TeamID = strings.TrimSpace(input.TeamID)
	input.PlayerID = strings.TrimSpace(input.PlayerID)
	input.SecondaryPlayerID = strings.TrimSpace(input.SecondaryPlayerID)
	if input.TeamID != "" && !idgen.IsValid(input.TeamID) {
		return match.Match{}, fmt.Errorf("%w: malformed team id", ErrInvalidInput)
	}
	if input.PlayerID != "" && !idgen.IsValid(input.PlayerID) {
		return match.Match{}, fmt.Errorf("%w: malformed player id", ErrInvalidInput)
	}
	if input.SecondaryPlayerID != "" && !idgen.IsValid(input.SecondaryPlayerID) {
		return match.Match{}, fmt.Errorf("%w: malformed secondary player id", ErrInvalidInput)
	}

	ev := match.Event{
		Timestamp:         s.now(),
		Type:              input.Type,
		TeamID:            input.TeamID,
		PlayerID:          input.PlayerID,
		SecondaryPlayerID: input.SecondaryPlayerID,
		Minute:            input.Minute,
		Notes:             strings.TrimSpace(input.Notes),
	}
	if err := ev.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	current, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	homeDelta, awayDelta := match.ScoreDelta(ev.Type, ev.TeamID, current.HomeTeamID, current.AwayTeamID)

	updated, exists, err := s.matchRepo.AppendEvent(ctx, matchID, ev, homeDelta, awayDelta)
	if err != nil {
		return match.Match{}, fmt.Errorf("append match event: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return updated, nil
}

// EndMatch stamps the end time and resolves the winner from the current
// counters. Ending an already ended match refreshes both; the operation
// is safe to repeat after late event corrections.
func (s *MatchService) EndMatch(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.EndMatch")
	defer span.End()

	if !idgen.IsValid(matchID) {
		return match.Match{}, fmt.Errorf("%w: malformed match id", ErrInvalidInput)
	}

	current, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	winner := match.Outcome(current.HomeScore, current.AwayScore, current.HomeTeamID, current.AwayTeamID)

	updated, exists, err := s.matchRepo.End(ctx, matchID, s.now(), winner)
	if err != nil {
		return match.Match{}, fmt.Errorf("end match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return updated, nil
}
