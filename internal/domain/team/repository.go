package team

import "context"

// Filter restricts List to teams with exact field matches. Empty values
// are ignored.
type Filter struct {
	Country string
	City    string
}

// Repository describes team persistence needs from use cases.
type Repository interface {
	// Create stores a new team, returning ErrDuplicate when the
	// (name, country, city) tuple is already taken.
	Create(ctx context.Context, t Team) error
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	// List returns teams matching the filter ordered by name.
	List(ctx context.Context, f Filter) ([]Team, error)
	FindByNameAndLocation(ctx context.Context, name, country, city string) (Team, bool, error)
	// ListIDsByLocation resolves team identities for leaderboard scoping.
	// Empty filter values are ignored; at least one must be set.
	ListIDsByLocation(ctx context.Context, country, city string) ([]string, error)
}
