package sendpasswordresettoken

import (
	"context"
	"errors"
	"net/url"
	c "storefront/internal/core/domain/common"
	e "storefront/internal/core/domain/errors"
	"storefront/internal/core/domain/logging"
	"storefront/internal/core/domain/user"
	"storefront/internal/core/services"
	"time"
)

type Input struct {
	Email c.Email
}

type Result struct{}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	tokenGenerator user.ResetTokenGenerator
	notifier       user.Notifier
	resetBaseURL   url.URL
	validDuration  time.Duration
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	tokenGenerator user.ResetTokenGenerator,
	notifier user.Notifier,
	resetBaseURL url.URL,
	validDuration time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
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
		tokenGenerator: tokenGenerator,
		notifier:       notifier,
		resetBaseURL:   resetBaseURL,
		validDuration:  validDuration,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		// Succeed silently so the endpoint does not reveal whether the email
		// is registered.
		return result, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	token := s.tokenGenerator.GenerateToken()
	fingerprint := s.tokenGenerator.Fingerprint(token)
	expiresAt := s.now().Add(s.validDuration)

	// Overwrites any outstanding token, at most one reset token is live per
	// user at a time.
	err = s.userRepository.SetResetToken(ctx, u.ID, fingerprint, expiresAt)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not store reset token fingerprint.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err := s.notifier.SendPasswordReset(ctx, u.Email, s.resetLink(token)); err != nil {
		s.log.Error(
			ctx,
			"Could not send password reset message.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Password reset token has been sent.",
		logging.Entry("userId", u.ID),
	)
	return result, nil
}

func (s *service) resetLink(token user.ResetToken) string {
	link := s.resetBaseURL
	query := link.Query()
	query.Set("token", string(token))
	link.RawQuery = query.Encode()
	return link.String()
}
