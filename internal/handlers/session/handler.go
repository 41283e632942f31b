package session

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/session/model/dto"
	"frontdesk/internal/domains/session/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Session
	otel    otel.Otel
}

func New(service service.Session, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sessions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSession)
		routerGroup.Get("/", handler.GetSessions)
		routerGroup.Get("/{id}", handler.GetSession)
		routerGroup.Patch("/{id}", handler.EndSession)
		routerGroup.Delete("/{id}", handler.DeleteSession)
	})
}

// sessionID reads the numeric id path parameter; anything else becomes 0, which the
// service answers with not found.
func sessionID(r *http.Request) int {
	if id := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID)); id != nil {
		return *id
	}

	return 0
}

// CreateSession checks guests into a room directly, without the wizard.
// @Summary Create a session
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest true "Session"
// @Success 201 {object} response.Data[model.Session]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/sessions [post]
// @Security BearerAuth
func (handler *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSession")
	defer scope.End()

	var req dto.CreateSessionRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Session created successfully")

	response.WithJSON(w, http.StatusCreated, session)
}

// GetSessions lists sessions.
// @Summary Get sessions
// @Tags Session
// @Produce json
// @Success 200 {object} response.Data[[]model.Session]
// @Failure 502 {object} response.Error
// @Router /v1/sessions [get]
func (handler *Handler) GetSessions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSessions")
	defer scope.End()

	sessions, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sessions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, sessions)
}

// GetSession retrieves a session by id.
// @Summary Get a session
// @Tags Session
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} response.Data[model.Session]
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id} [get]
func (handler *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSession")
	defer scope.End()

	session, err := handler.service.Get(ctx, sessionID(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// EndSession checks the guests of a session out.
// @Summary End a session
// @Tags Session
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Param request body dto.EndSessionRequest true "Check-out"
// @Success 200 {object} response.Data[model.Session]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id} [patch]
// @Security BearerAuth
func (handler *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EndSession")
	defer scope.End()

	var req dto.EndSessionRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.End(ctx, sessionID(r), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to end session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Session ended successfully")

	response.WithJSON(w, http.StatusOK, session)
}

// DeleteSession removes a session.
// @Summary Delete a session
// @Tags Session
// @Param id path int true "Session ID"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSession")
	defer scope.End()

	if err := handler.service.Delete(ctx, sessionID(r)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Session deleted successfully")

	response.WithNoContent(w)
}
