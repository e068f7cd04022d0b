package usecase

import (
	"context"
	"errors"

	"invoice-assistant/internal/auth"
	authRepo "invoice-assistant/internal/auth/repository"
)

// Login checks the IP rate limit, the account lockout and the password, in
// that order. Every attempt lands in the login history.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	if uc.attempts.rateLimited(input.IPAddress) {
		uc.record(ctx, input.Username, input.IPAddress, false)
		return auth.LoginOutput{}, &auth.WaitError{Err: auth.ErrRateLimited, Wait: int(uc.cfg.RateLimitWindow.Seconds())}
	}

	if input.Username == "" || input.Password == "" {
		uc.record(ctx, input.Username, input.IPAddress, false)
		return auth.LoginOutput{}, auth.ErrMissingCredentials
	}

	if left := uc.attempts.lockedFor(input.Username); left > 0 {
		uc.record(ctx, input.Username, input.IPAddress, false)
		return auth.LoginOutput{}, &auth.WaitError{Err: auth.ErrAccountLocked, Wait: int(left.Seconds())}
	}

	u, ok := uc.repo.GetUser(ctx, input.Username)
	if !ok || !uc.checkPassword(u.PasswordHash, input.Password) {
		uc.record(ctx, input.Username, input.IPAddress, false)
		uc.attempts.fail(input.IPAddress, input.Username)
		uc.l.Warnf(ctx, "auth.usecase.Login: invalid credentials for %q from %s", input.Username, input.IPAddress)
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	uc.attempts.reset(input.IPAddress, input.Username)

	token, err := uc.issueToken(u)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Login issueToken: %v", err)
		uc.record(ctx, input.Username, input.IPAddress, false)
		return auth.LoginOutput{}, err
	}

	uc.record(ctx, input.Username, input.IPAddress, true)
	uc.l.Infof(ctx, "auth.usecase.Login: %q logged in from %s", u.Username, input.IPAddress)

	return auth.LoginOutput{
		Token:     token,
		Username:  u.Username,
		Role:      u.Role,
		ExpiresIn: int(uc.cfg.JWTExpiry.Seconds()),
	}, nil
}

// ChangePassword replaces the password of an authenticated user.
func (uc *implUseCase) ChangePassword(ctx context.Context, input auth.ChangePasswordInput) error {
	if input.OldPassword == "" || input.NewPassword == "" {
		return auth.ErrMissingFields
	}

	u, ok := uc.repo.GetUser(ctx, input.Username)
	if !ok {
		return auth.ErrUserNotFound
	}
	if !uc.checkPassword(u.PasswordHash, input.OldPassword) {
		return auth.ErrInvalidCurrentPassword
	}

	if err := uc.repo.UpdatePassword(ctx, u.Username, HashPassword(input.NewPassword, uc.cfg.PasswordSalt)); err != nil {
		if errors.Is(err, authRepo.ErrUserNotFound) {
			return auth.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "auth.usecase.ChangePassword UpdatePassword: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) record(ctx context.Context, username, ip string, success bool) {
	uc.repo.AppendEvent(ctx, auth.LoginEvent{
		Username:  username,
		IPAddress: ip,
		Success:   success,
		Timestamp: uc.now().UTC(),
	})
}
