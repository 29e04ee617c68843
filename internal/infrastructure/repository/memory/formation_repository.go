package memory

import (
	"context"
	"sync"

	"github.com/futsalhq/leaderboard/internal/domain/formation"
)

type FormationRepository struct {
	mu     sync.RWMutex
	byTeam map[string]formation.Formation
}

func NewFormationRepository() *FormationRepository {
	return &FormationRepository{
		byTeam: make(map[string]formation.Formation),
	}
}

func (r *FormationRepository) GetByTeam(_ context.Context, teamID string) (formation.Formation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byTeam[teamID]
	if !ok {
		return formation.Formation{}, false, nil
	}

	return cloneFormation(f), true, nil
}

func (r *FormationRepository) Upsert(_ context.Context, f formation.Formation) (formation.Formation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneFormation(f)
	if prev, ok := r.byTeam[f.TeamID]; ok {
		stored.ID = prev.ID
		stored.CreatedAt = prev.CreatedAt
	}
	r.byTeam[f.TeamID] = stored

	return cloneFormation(stored), nil
}

func cloneFormation(f formation.Formation) formation.Formation {
	positions := make([]formation.Placement, len(f.Positions))
	copy(positions, f.Positions)
	f.Positions = positions
	return f
}
