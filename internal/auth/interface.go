package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	// Verify checks a bearer token and that its user still exists with the
	// same role.
	Verify(ctx context.Context, token string) (Claims, error)

	// Admin views
	LoginHistory(ctx context.Context, input LoginHistoryInput) ([]LoginEvent, error)
	Users(ctx context.Context) ([]User, error)
	Stats(ctx context.Context) (Stats, error)
}
