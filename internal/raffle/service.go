package raffle

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"terrazaeden.com/web/internal/catalog"
	"terrazaeden.com/web/internal/observability"
)

// Result is the endpoint's answer to a signup.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// Signer delivers a signup to the promotions backend.
type Signer interface {
	Sign(ctx context.Context, input SignupInput) (Result, error)
}

// SignerFunc adapts a function to Signer.
type SignerFunc func(ctx context.Context, input SignupInput) (Result, error)

// Sign implements Signer.
func (f SignerFunc) Sign(ctx context.Context, input SignupInput) (Result, error) {
	return f(ctx, input)
}

// Service runs the signup flow: validate, build the payload, call the signer once.
type Service struct {
	catalog  *catalog.Catalog
	signer   Signer
	referrer string
}

// NewService wires a Service. An empty referrer falls back to DefaultReferrer.
func NewService(c *catalog.Catalog, signer Signer, referrer string) *Service {
	if referrer == "" {
		referrer = DefaultReferrer
	}
	return &Service{catalog: c, signer: signer, referrer: referrer}
}

// Submit validates raw and sends one signup. Validation failures return
// ErrEmptyHandle or ErrInvalidHandle without contacting the signer. Every
// other failure, including success=false, is reported as ErrSubmissionFailed
// wrapping the cause. There is no retry.
func (s *Service) Submit(ctx context.Context, raw string) (Result, error) {
	handle, err := ValidateHandle(raw)
	if err != nil {
		return Result{}, err
	}
	if s == nil || s.signer == nil {
		return Result{}, fmt.Errorf("%w: no signer configured", ErrSubmissionFailed)
	}

	input := BuildInput(s.catalog, handle, s.referrer)
	logger := observability.FromContext(ctx)

	res, err := s.signer.Sign(ctx, input)
	if err != nil {
		logger.Warn("raffle signup failed", zap.Error(err), zap.Int("brands", len(input.Brands)))
		return Result{}, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = "unknown error"
		}
		logger.Warn("raffle signup rejected", zap.String("reason", msg))
		return res, fmt.Errorf("%w: %s", ErrSubmissionFailed, msg)
	}
	logger.Info("raffle signup registered", zap.String("signupId", res.ID), zap.Int("brands", len(input.Brands)))
	return res, nil
}
