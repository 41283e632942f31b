package room

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/roomfilter"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/view", handler.ViewRooms)
		routerGroup.Get("/{roomNumber}", handler.GetRoom)
		routerGroup.Put("/{roomNumber}", handler.UpdateRoom)
		routerGroup.Delete("/{roomNumber}", handler.DeleteRoom)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room"
// @Success 201 {object} response.Data[model.Room]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	var req dto.CreateRoomRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room created successfully")

	response.WithJSON(w, http.StatusCreated, room)
}

// GetRooms lists rooms as the backend filters them.
// @Summary Get rooms
// @Tags Room
// @Produce json
// @Param roomTypeId query int false "Room type"
// @Param floor query int false "Floor"
// @Param roomStatusId query int false "Room status id (1 available, 2 not available, 3 booked, 4 in session)"
// @Success 200 {object} response.Data[[]model.Room]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	var params dto.GetRoomsRequest
	params.FromQuery(r.URL.Query())

	rooms, err := handler.service.GetAll(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// ViewRooms lists every room through the room screen's search, status filter and sort.
// @Summary Get the filtered room view
// @Tags Room
// @Produce json
// @Param search query string false "Room type name or room number"
// @Param status query string false "all, available, notAvailable, booked, inSession"
// @Param sort query string false "ascending or descending"
// @Success 200 {object} response.Data[[]model.Room]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/rooms/view [get]
func (handler *Handler) ViewRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewRooms")
	defer scope.End()

	query := r.URL.Query()

	status, err := roomfilter.ParseStatus(query.Get(constant.RequestParamStatus))
	if err != nil {
		response.WithError(w, err)

		return
	}

	order, err := roomfilter.ParseOrder(query.Get(constant.RequestParamSort))
	if err != nil {
		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.GetAll(ctx, dto.GetRoomsRequest{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, roomfilter.FilterAndSort(rooms, query.Get(constant.RequestParamSearch), status, order))
}

// GetRoom retrieves a room by its number.
// @Summary Get a room
// @Tags Room
// @Produce json
// @Param roomNumber path string true "Room number"
// @Success 200 {object} response.Data[model.Room]
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{roomNumber} [get]
func (handler *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoom")
	defer scope.End()

	room, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamRoomNumber))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom changes the floor and type of a room.
// @Summary Update a room
// @Tags Room
// @Accept json
// @Produce json
// @Param roomNumber path string true "Room number"
// @Param request body dto.UpdateRoomRequest true "Room"
// @Success 200 {object} response.Data[model.Room]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{roomNumber} [put]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	var req dto.UpdateRoomRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamRoomNumber), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room updated successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// DeleteRoom deletes a room by its number.
// @Summary Delete a room
// @Tags Room
// @Param roomNumber path string true "Room number"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{roomNumber} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamRoomNumber)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room deleted successfully")

	response.WithNoContent(w)
}
