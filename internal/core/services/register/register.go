package register

import (
	"context"
	"errors"
	c "storefront/internal/core/domain/common"
	e "storefront/internal/core/domain/errors"
	"storefront/internal/core/domain/logging"
	"storefront/internal/core/domain/user"
	"storefront/internal/core/services"
	"time"
)

type Input struct {
	Email    c.Email
	Name     string
	Password user.RawPassword
	Role     user.Role
}

type Result struct {
	User  user.User
	Token user.SessionToken
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	passwordHasher user.PasswordHasher
	sessionIssuer  user.SessionTokenIssuer
	notifier       user.Notifier
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
	sessionIssuer user.SessionTokenIssuer,
	notifier user.Notifier,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if sessionIssuer == nil {
		panic(e.NewNilArgumentError("sessionIssuer"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		sessionIssuer:  sessionIssuer,
		notifier:       notifier,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	_, err = s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err == nil {
		// The password is not hashed on this path, the request is rejected
		// before any expensive work.
		return result, user.ErrEmailAlreadyExists
	}
	if !errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Error(
			ctx,
			"Could not check email for registration.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	role := input.Role
	if role == "" {
		role = user.RoleUser
	}
	u, err := s.userRepository.Create(ctx, user.CreateUserInput{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    s.now(),
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, user.ErrEmailAlreadyExists) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create user.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	token, err := s.sessionIssuer.Issue(u)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not issue session token for new user.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	// The user row is already committed at this point; a failed welcome
	// message still fails the whole registration.
	if err := s.notifier.SendWelcome(ctx, u.Email, u.Name); err != nil {
		s.log.Error(
			ctx,
			"Could not send welcome message.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New user has been registered.",
		logging.Entry("userId", u.ID),
	)
	return Result{User: u, Token: token}, nil
}
