package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/futsalhq/leaderboard/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	items  map[string]team.Team
	orders []string
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{
		items: make(map[string]team.Team),
	}
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Name == t.Name && existing.Country == t.Country && existing.City == t.City {
			return team.ErrDuplicate
		}
	}

	r.items[t.ID] = t
	r.orders = append(r.orders, t.ID)

	return nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[teamID]
	if !ok {
		return team.Team{}, false, nil
	}

	return t, true, nil
}

func (r *TeamRepository) List(_ context.Context, f team.Filter) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.orders))
	for _, id := range r.orders {
		t := r.items[id]
		if f.Country != "" && t.Country != f.Country {
			continue
		}
		if f.City != "" && t.City != f.City {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *TeamRepository) FindByNameAndLocation(_ context.Context, name, country, city string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		t := r.items[id]
		if t.Name == name && t.Country == country && t.City == city {
			return t, true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) ListIDsByLocation(_ context.Context, country, city string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.orders))
	for _, id := range r.orders {
		t := r.items[id]
		if country != "" && t.Country != country {
			continue
		}
		if city != "" && t.City != city {
			continue
		}
		out = append(out, id)
	}

	return out, nil
}
