package console

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/console/model"
	"frontdesk/internal/domains/console/model/dto"
	"frontdesk/internal/domains/console/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Console
	otel    otel.Otel
}

func New(service service.Console, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/consoles", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.OpenConsole)

		routerGroup.Route("/{id}", func(console chi.Router) {
			console.Get("/", handler.GetConsole)
			console.Delete("/", handler.CloseConsole)
			console.Patch("/rooms/filters", handler.UpdateRoomFilters)
			console.Patch("/guests/filters", handler.UpdateGuestFilters)
			console.Put("/{resource}/dialog", handler.SetDialog)
			console.Get("/rooms", handler.Rooms)
			console.Get("/guests", handler.Guests)
			console.Get("/sessions", handler.Sessions)
		})
	})
}

// OpenConsole starts a console with every dialog closed and no filters.
// @Summary Open a console
// @Tags Console
// @Produce json
// @Success 201 {object} response.Data[model.Console]
// @Router /v1/consoles [post]
func (handler *Handler) OpenConsole(w http.ResponseWriter, r *http.Request) {
	response.WithJSON(w, http.StatusCreated, handler.service.Open(r.Context()))
}

// @Summary Get a console
// @Tags Console
// @Produce json
// @Param id path string true "Console ID"
// @Success 200 {object} response.Data[model.Console]
// @Failure 404 {object} response.Error
// @Router /v1/consoles/{id} [get]
func (handler *Handler) GetConsole(w http.ResponseWriter, r *http.Request) {
	console, err := handler.service.Get(r.Context(), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, console)
}

// @Summary Close a console
// @Tags Console
// @Param id path string true "Console ID"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /v1/consoles/{id} [delete]
func (handler *Handler) CloseConsole(w http.ResponseWriter, r *http.Request) {
	if err := handler.service.Close(r.Context(), chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.WithError(w, err)

		return
	}

	response.WithNoContent(w)
}

// UpdateRoomFilters sets the room screen's search, status filter and sort order.
// @Summary Update room filters
// @Tags Console
// @Accept json
// @Produce json
// @Param id path string true "Console ID"
// @Param request body dto.UpdateRoomFiltersRequest true "Filters"
// @Success 200 {object} response.Data[model.Console]
// @Failure 400 {object} response.Error
// @Router /v1/consoles/{id}/rooms/filters [patch]
func (handler *Handler) UpdateRoomFilters(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateRoomFiltersRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	console, err := handler.service.UpdateRoomFilters(r.Context(), chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, console)
}

// @Summary Update guest filters
// @Tags Console
// @Accept json
// @Produce json
// @Param id path string true "Console ID"
// @Param request body dto.UpdateGuestFiltersRequest true "Filters"
// @Success 200 {object} response.Data[model.Console]
// @Router /v1/consoles/{id}/guests/filters [patch]
func (handler *Handler) UpdateGuestFilters(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateGuestFiltersRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	console, err := handler.service.UpdateGuestFilters(r.Context(), chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, console)
}

// SetDialog opens or closes the dialog of the rooms, guests or sessions screen.
// @Summary Move a dialog
// @Tags Console
// @Accept json
// @Produce json
// @Param id path string true "Console ID"
// @Param resource path string true "rooms, guests or sessions"
// @Param request body dto.DialogRequest true "Dialog"
// @Success 200 {object} response.Data[model.Console]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/consoles/{id}/{resource}/dialog [put]
func (handler *Handler) SetDialog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetDialog")
	defer scope.End()

	resource, err := model.ParseResource(chi.URLParam(r, constant.RequestParamResource))
	if err != nil {
		response.WithError(w, failure.NotFound(err.Error()))

		return
	}

	var req dto.DialogRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	console, err := handler.service.SetDialog(ctx, chi.URLParam(r, constant.RequestParamID), resource, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to move dialog")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, console)
}

// Rooms lists the rooms through the console's filters.
// @Summary Get the console room view
// @Tags Console
// @Produce json
// @Param id path string true "Console ID"
// @Success 200 {object} response.Data[[]roomModel.Room]
// @Router /v1/consoles/{id}/rooms [get]
func (handler *Handler) Rooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConsoleRooms")
	defer scope.End()

	rooms, err := handler.service.Rooms(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get console rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// @Summary Get the console guest view
// @Tags Console
// @Produce json
// @Param id path string true "Console ID"
// @Success 200 {object} response.Data[[]guestModel.Guest]
// @Router /v1/consoles/{id}/guests [get]
func (handler *Handler) Guests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConsoleGuests")
	defer scope.End()

	guests, err := handler.service.Guests(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get console guests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guests)
}

// @Summary Get the console session view
// @Tags Console
// @Produce json
// @Param id path string true "Console ID"
// @Success 200 {object} response.Data[[]sessionModel.Session]
// @Router /v1/consoles/{id}/sessions [get]
func (handler *Handler) Sessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := handler.service.Sessions(r.Context(), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, sessions)
}
