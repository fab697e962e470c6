package lock

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/giveaway-bot/internal/repositories/lock Repository

import (
	"context"
)

// Repository hands out short-lived named leases shared by every bot process
type Repository interface {
	// Acquire takes the named lease; ErrLockHeld when another owner holds it
	Acquire(ctx context.Context, input *AcquireInput) (*Lease, error)

	// Release gives the lease back if it is still owned by the caller
	Release(ctx context.Context, input *ReleaseInput) error
}
