// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "admission/internal/delivery/context"
	"admission/internal/domain/entity"
	domainerrors "admission/internal/domain/errors"
	"admission/internal/domain/repository"
	"admission/internal/domain/service"
	"admission/internal/errors"
	"admission/internal/usecase"
	"admission/internal/validation"

	"go.uber.org/fx"
)

const (
	flowRegister = "register"
	flowLogin    = "login"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.SecretHasher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.SecretHasher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register admits a new account from a sign-up submission.
func (srv *accountService) Register(ctx context.Context, sub validation.Submission) usecase.Outcome {
	reg, err := validation.ParseRegistration(sub)
	if err != nil {
		return composeFailure(ctx, srv.log(ctx), flowRegister, err)
	}

	return srv.register(ctx, reg)
}

// RegisterConfirmed is Register for submissions that repeat the password in
// confirmPassword.
func (srv *accountService) RegisterConfirmed(ctx context.Context, sub validation.Submission) usecase.Outcome {
	reg, err := validation.ParseConfirmedRegistration(sub)
	if err != nil {
		return composeFailure(ctx, srv.log(ctx), flowRegister, err)
	}

	return srv.register(ctx, reg)
}

func (srv *accountService) register(ctx context.Context, reg entity.Registration) usecase.Outcome {
	logger := srv.log(ctx)

	field, err := resolveDuplicate(ctx, srv.accountRepo, reg)
	if err != nil {
		return composeFailure(ctx, logger, flowRegister, err)
	}
	if field != entity.DuplicateNone {
		logger.Info("Registration rejected: identity taken", slog.String("field", string(field)))

		return composeFailure(ctx, logger, flowRegister, domainerrors.NewDuplicateIdentityError(field))
	}

	hash, err := srv.hasher.Hash(reg.Password)
	if err != nil {
		return composeFailure(ctx, logger, flowRegister, errors.Wrap(err, "failed to hash password"))
	}

	account := &entity.Account{
		Name:         reg.Name,
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: hash,
		Role:         reg.Role,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if dup, ok := errors.Find[*domainerrors.DuplicateIdentityError](err); ok {
			return composeFailure(ctx, logger, flowRegister, srv.attributeConflict(ctx, reg, dup))
		}

		return composeFailure(ctx, logger, flowRegister, errors.Wrap(err, "failed to create account"))
	}

	logger.Info("Account registered", slog.String("account_id", account.ID.String()), slog.String("role", account.Role.String()))

	return succeeded(http.StatusCreated, domainerrors.MsgRegistrationCompleted)
}

// attributeConflict handles a unique violation raised by Create after the
// duplicate check passed. When the store could not name the field, the
// resolver is asked again; if it still finds nothing the email is blamed.
func (srv *accountService) attributeConflict(ctx context.Context, reg entity.Registration, dup *domainerrors.DuplicateIdentityError) error {
	srv.log(ctx).Warn("Registration lost a uniqueness race", slog.String("field", string(dup.Field)))

	if dup.Field != entity.DuplicateNone {
		return dup
	}

	field, err := resolveDuplicate(ctx, srv.accountRepo, reg)
	if err != nil || field == entity.DuplicateNone {
		field = entity.DuplicateEmail
	}

	return domainerrors.NewDuplicateIdentityError(field)
}

// Login checks a submitted email and password. Unknown email, wrong password
// and an unusable stored hash all produce the same outcome.
func (srv *accountService) Login(ctx context.Context, sub validation.Submission) usecase.Outcome {
	logger := srv.log(ctx)

	creds, err := validation.ParseLogin(sub)
	if err != nil {
		return composeFailure(ctx, logger, flowLogin, err)
	}

	account, err := srv.accountRepo.FindByEmail(ctx, creds.Email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return composeFailure(ctx, logger, flowLogin, domainerrors.ErrInvalidCredentials)
	}
	if err != nil {
		return composeFailure(ctx, logger, flowLogin, errors.Wrap(err, "failed to find account"))
	}

	if err := srv.hasher.Compare(account.PasswordHash, creds.Password); err != nil {
		if errors.Is(err, domainerrors.ErrMalformedSecret) {
			logger.Warn("Stored password hash is malformed",
				slog.String("account_id", account.ID.String()),
				slog.Any("error", err),
			)
		}

		return composeFailure(ctx, logger, flowLogin, domainerrors.ErrInvalidCredentials)
	}

	if srv.hasher.NeedsRehash(account.PasswordHash) {
		logger.Debug("Password hash uses outdated parameters", slog.String("account_id", account.ID.String()))
	}

	return succeeded(http.StatusOK, domainerrors.MsgLoginSuccessful)
}
