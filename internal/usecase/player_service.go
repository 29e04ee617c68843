package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/futsalhq/leaderboard/internal/domain/player"
	idgen "github.com/futsalhq/leaderboard/internal/platform/id"
)

type CreatePlayerInput struct {
	Name      string
	Position  player.Position
	TeamID    string
	Number    *int
	Country   string
	City      string
	AvatarURL string
}

type PlayerService struct {
	playerRepo player.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewPlayerService(playerRepo player.Repository, idGen idgen.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		idGen:      idGen,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// CreatePlayer registers a player. The team reference is checked for
// shape only; a player may point at a team registered later or play as a
// free agent with no team at all.
func (s *PlayerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	if input.TeamID != "" && !idgen.IsValid(input.TeamID) {
		return player.Player{}, fmt.Errorf("%w: malformed team id", ErrInvalidInput)
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	now := s.now()
	item := player.Player{
		ID:        playerID,
		Name:      strings.TrimSpace(input.Name),
		Position:  input.Position,
		TeamID:    input.TeamID,
		Number:    input.Number,
		Country:   strings.TrimSpace(input.Country),
		City:      strings.TrimSpace(input.City),
		AvatarURL: strings.TrimSpace(input.AvatarURL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return item, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	if !idgen.IsValid(playerID) {
		return player.Player{}, fmt.Errorf("%w: malformed player id", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

func (s *PlayerService) ListPlayers(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	filter.TeamID = strings.TrimSpace(filter.TeamID)
	if filter.TeamID != "" && !idgen.IsValid(filter.TeamID) {
		return nil, fmt.Errorf("%w: malformed team id", ErrInvalidInput)
	}

	items, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}
