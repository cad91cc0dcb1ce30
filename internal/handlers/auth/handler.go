package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tudu/infras/otel"
	"tudu/internal/domains/auth/model/dto"
	"tudu/internal/domains/auth/service"
	"tudu/shared/constant"
	"tudu/shared/failure"
	"tudu/shared/validator"
	"tudu/transport/http/middleware"
	"tudu/transport/http/response"
)

type Handler struct {
	service    service.Auth
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Auth, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/user", func(r chi.Router) {
		r.Post("/sign-up", handler.SignUp)
		r.Post("/sign-in", handler.SignIn)
		r.With(handler.middleware.Auth).Get("/me", handler.Me)
	})
}

// SignUp handles user registration
// @Summary Register a new user
// @Description Create an account. Usernames are unique.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Sign Up Request"
// @Success 201 {object} dto.SignUpResponse
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /user/sign-up [post]
func (handler *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignUp")
	defer scope.End()

	req := dto.SignUpRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SignUp(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign up user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User signed up successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// SignIn handles user login
// @Summary Sign in a user
// @Description Exchange a username and password for a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Sign In Request"
// @Success 200 {object} dto.SignInResponse
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /user/sign-in [post]
func (handler *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignIn")
	defer scope.End()

	req := dto.SignInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SignIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign in user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User signed in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Me returns the account the bearer token was issued to
// @Summary Current user
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /user/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)
	if username == "" {
		err := failure.Unauthorized("Not Authorized")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Me(ctx, username)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get current user")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
