package usecase

import (
	"context"

	"guardian/internal/domain/entity"
)

// ParentalAuthUsecase defines the parent PIN and parent mode session use cases
type ParentalAuthUsecase interface {
	// SetParentPin validates and stores a new PIN as a salted digest in the secure store
	SetParentPin(ctx context.Context, pin string) error

	// HasPin reports whether a PIN has been configured
	HasPin(ctx context.Context) (bool, error)

	// AuthenticateParentMode checks pin with attempt limiting and starts a parent session
	AuthenticateParentMode(ctx context.Context, pin string) (*entity.ParentSession, error)

	// ExitParentMode ends the session and cancels the auto-logout timer
	ExitParentMode()

	// IsParentMode reports whether a parent session is active
	IsParentMode() bool

	// RefreshSession re-arms the auto-logout timer of an active session
	RefreshSession() (*entity.ParentSession, error)
}
