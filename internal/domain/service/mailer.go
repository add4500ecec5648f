package service

import "context"

// Mailer sends account emails. Callers treat failures as warnings.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, email, token string) error
	SendPasswordResetEmail(ctx context.Context, email, token string) error
	SendPasswordChangedEmail(ctx context.Context, email string) error
}
