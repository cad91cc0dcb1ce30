package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"tudu/infras/jwt"
	"tudu/infras/otel"
	"tudu/infras/postgres"
	"tudu/internal/domains/auth/model/dto"
	userModel "tudu/internal/domains/user/model"
	userRepo "tudu/internal/domains/user/repository"
	"tudu/shared"
	"tudu/shared/constant"
	"tudu/shared/failure"
	"tudu/shared/password"
)

const (
	userNotFoundMessage  = "User not found"
	notAuthorizedMessage = "Not Authorized"
	usernameTakenMessage = "username already exists"

	passwordTooLongMessage = "password must be at most 72 bytes"
)

type Auth interface {
	SignUp(ctx context.Context, req dto.SignUpRequest) (dto.SignUpResponse, error)
	SignIn(ctx context.Context, req dto.SignInRequest) (dto.SignInResponse, error)
	Me(ctx context.Context, username string) (dto.MeResponse, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	hasher     password.Hasher
	jwtService jwt.JWT
	transactor postgres.Transactor
	otel       otel.Otel
}

func New(userRepo userRepo.User, hasher password.Hasher, jwtService jwt.JWT, transactor postgres.Transactor, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		transactor: transactor,
		otel:       otel,
	}
}

// SignUp creates an account. The plaintext password never reaches the store.
func (s *serviceImpl) SignUp(ctx context.Context, req dto.SignUpRequest) (res dto.SignUpResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignUp")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByField(userModel.FieldUsername, req.Username, userModel.TableName)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.userRepo.Exist(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to check if user exists")

			return fmt.Errorf("failed to check if user exists: %w", err)
		}

		if exists {
			log.Warn().Str("username", req.Username).Msg("sign-up attempt with taken username")

			return failure.Conflict(usernameTakenMessage) // nolint:wrapcheck
		}

		hashedPassword, err := s.hasher.Hash(req.Password)
		if errors.Is(err, password.ErrPasswordTooLong) {
			return failure.UnprocessableFromString(passwordTooLongMessage) // nolint:wrapcheck
		}

		if err != nil {
			log.Error().Err(err).Msg("failed to hash password")

			return fmt.Errorf("failed to hash password: %w", err)
		}

		user, err := s.userRepo.Insert(ctx, req.ToUserModel(hashedPassword))
		if err != nil {
			log.Error().Err(err).Msg("failed to create user")

			return fmt.Errorf("failed to create user: %w", err)
		}

		res.Username = user.Username

		return nil
	})

	return res, err
}

func (s *serviceImpl) SignIn(ctx context.Context, req dto.SignInRequest) (res dto.SignInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByField(userModel.FieldUsername, req.Username, userModel.TableName)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.Get(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get user")

			return fmt.Errorf("failed to get user: %w", err)
		}

		if user.ID == 0 {
			log.Warn().Str("username", req.Username).Msg("sign-in attempt with unknown username")

			return failure.NotFound(userNotFoundMessage) // nolint:wrapcheck
		}

		match, err := s.hasher.Verify(req.Password, user.HashedPassword)
		if err != nil {
			log.Error().Err(err).Str("username", req.Username).Msg("failed to verify password")

			return fmt.Errorf("failed to verify password: %w", err)
		}

		if !match {
			log.Warn().Str("username", req.Username).Msg("sign-in attempt with wrong password")

			return failure.Unauthorized(notAuthorizedMessage) // nolint:wrapcheck
		}

		token, err := s.jwtService.Issue(user.Username)
		if err != nil {
			log.Error().Err(err).Msg("failed to issue access token")

			return fmt.Errorf("failed to issue access token: %w", err)
		}

		res.AccessToken = token

		return nil
	})

	return res, err
}

// Me resolves the account behind a verified token.
func (s *serviceImpl) Me(ctx context.Context, username string) (res dto.MeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByField(userModel.FieldUsername, username, userModel.TableName)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.Get(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get user")

			return fmt.Errorf("failed to get user: %w", err)
		}

		if user.ID == 0 {
			return failure.NotFound(userNotFoundMessage) // nolint:wrapcheck
		}

		res.FromModel(user)

		return nil
	})

	return res, err
}
