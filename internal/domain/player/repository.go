package player

import "context"

// Filter restricts List to players with exact field matches. Empty values
// are ignored.
type Filter struct {
	TeamID string
}

// Repository describes player persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, p Player) error
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	// List returns players matching the filter ordered by name.
	List(ctx context.Context, f Filter) ([]Player, error)
	// ListIDsByLocation resolves player identities for leaderboard scoping.
	// Empty filter values are ignored; at least one must be set.
	ListIDsByLocation(ctx context.Context, country, city string) ([]string, error)
}
