package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/futsalhq/leaderboard/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	items  map[string]player.Player
	orders []string
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{
		items: make(map[string]player.Player),
	}
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[p.ID] = clonePlayer(p)
	r.orders = append(r.orders, p.ID)

	return nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[playerID]
	if !ok {
		return player.Player{}, false, nil
	}

	return clonePlayer(p), true, nil
}

func (r *PlayerRepository) List(_ context.Context, f player.Filter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.orders))
	for _, id := range r.orders {
		p := r.items[id]
		if f.TeamID != "" && p.TeamID != f.TeamID {
			continue
		}
		out = append(out, clonePlayer(p))
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *PlayerRepository) ListIDsByLocation(_ context.Context, country, city string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.orders))
	for _, id := range r.orders {
		p := r.items[id]
		if country != "" && p.Country != country {
			continue
		}
		if city != "" && p.City != city {
			continue
		}
		out = append(out, id)
	}

	return out, nil
}

func clonePlayer(p player.Player) player.Player {
	if p.Number != nil {
		n := *p.Number
		p.Number = &n
	}
	return p
}
