// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"admission/internal/validation"
)

// Status is the coarse result carried by every Outcome.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusError   Status = "ERROR"
)

// Outcome is the envelope returned by every admission flow. Code is the HTTP
// status the delivery layer should answer with and is not serialized.
type Outcome struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"-"`
}

// IsSuccess reports whether the flow succeeded.
func (o Outcome) IsSuccess() bool {
	return o.Status == StatusSuccess
}

// AccountUsecase admits new accounts and checks credentials. Raw submissions
// go in, an Outcome always comes out; no error crosses this boundary.
type AccountUsecase interface {
	Register(ctx context.Context, sub validation.Submission) Outcome
	RegisterConfirmed(ctx context.Context, sub validation.Submission) Outcome
	Login(ctx context.Context, sub validation.Submission) Outcome
}
