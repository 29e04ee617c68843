package formation

import "context"

// Repository describes formation persistence needs from use cases.
type Repository interface {
	GetByTeam(ctx context.Context, teamID string) (Formation, bool, error)
	// Upsert stores f as the team's only formation. When one already
	// exists it is replaced in place: identity and creation time are
	// kept, name, positions and the update time change.
	Upsert(ctx context.Context, f Formation) (Formation, error)
}
