package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/console/model"
	"frontdesk/internal/domains/console/model/dto"
	guestModel "frontdesk/internal/domains/guest/model"
	guestService "frontdesk/internal/domains/guest/service"
	roomModel "frontdesk/internal/domains/room/model"
	roomDto "frontdesk/internal/domains/room/model/dto"
	roomService "frontdesk/internal/domains/room/service"
	sessionModel "frontdesk/internal/domains/session/model"
	sessionService "frontdesk/internal/domains/session/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/dialog"
	"frontdesk/shared/failure"
	"frontdesk/shared/roomfilter"
	"frontdesk/shared/timezone"
	"frontdesk/shared/validator"
	"frontdesk/shared/viewstate"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Console keeps the dialog and filter state of each operator's screens.
type Console interface {
	Open(ctx context.Context) model.Console
	Get(ctx context.Context, id string) (model.Console, error)
	Close(ctx context.Context, id string) error

	UpdateRoomFilters(ctx context.Context, id string, req dto.UpdateRoomFiltersRequest) (model.Console, error)
	UpdateGuestFilters(ctx context.Context, id string, req dto.UpdateGuestFiltersRequest) (model.Console, error)
	SetDialog(ctx context.Context, id string, resource model.Resource, req dto.DialogRequest) (model.Console, error)

	Rooms(ctx context.Context, id string) ([]roomModel.Room, error)
	Guests(ctx context.Context, id string) ([]guestModel.Guest, error)
	Sessions(ctx context.Context, id string) ([]sessionModel.Session, error)
}

type entry struct {
	mu      sync.Mutex
	console model.Console
}

type serviceImpl struct {
	otel     otel.Otel
	room     roomService.Room
	guest    guestService.Guest
	session  sessionService.Session
	consoles *viewstate.Store[string, *entry]
}

func New(
	cfg *config.Config,
	otel otel.Otel,
	room roomService.Room,
	guest guestService.Guest,
	session sessionService.Session,
) Console {
	consoles := viewstate.New(func(e *entry) string { return e.console.ID }).
		WithIdleTimeout(cfg.Console.IdleTimeout, func(e *entry) {
			log.Info().Str("consoleId", e.console.ID).Msg("idle console discarded")
		})

	return &serviceImpl{
		otel:     otel,
		room:     room,
		guest:    guest,
		session:  session,
		consoles: consoles,
	}
}

func (s *serviceImpl) Open(_ context.Context) model.Console {
	e := &entry{console: model.New(uuid.NewString(), timezone.Now())}

	s.consoles.Insert(e)

	log.Info().Str("consoleId", e.console.ID).Msg("console opened")

	return e.console
}

func (s *serviceImpl) Get(_ context.Context, id string) (model.Console, error) {
	e, err := s.lookup(id)
	if err != nil {
		return model.Console{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.console, nil
}

func (s *serviceImpl) Close(_ context.Context, id string) error {
	if !s.consoles.Delete(id) {
		return failure.ConsoleNotFound
	}

	return nil
}

// UpdateRoomFilters parses every present field before touching the state, so a bad value
// leaves the filters as they were.
func (s *serviceImpl) UpdateRoomFilters(_ context.Context, id string, req dto.UpdateRoomFiltersRequest) (model.Console, error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return model.Console{}, err
	}

	e, err := s.lookup(id)
	if err != nil {
		return model.Console{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.console.Rooms

	if req.Search != nil {
		next.Search = strings.TrimSpace(*req.Search)
	}

	if req.Status != nil {
		if next.Status, err = roomfilter.ParseStatus(*req.Status); err != nil {
			return e.console, err
		}
	}

	if req.Order != nil {
		if next.Order, err = roomfilter.ParseOrder(*req.Order); err != nil {
			return e.console, err
		}
	}

	e.console.Rooms = next

	return e.console, nil
}

func (s *serviceImpl) UpdateGuestFilters(_ context.Context, id string, req dto.UpdateGuestFiltersRequest) (model.Console, error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return model.Console{}, err
	}

	e, err := s.lookup(id)
	if err != nil {
		return model.Console{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.console.Guests.Search = strings.TrimSpace(req.Search)

	return e.console, nil
}

// SetDialog moves one screen's dialog. Editing and deleting load the row first, so the
// dialog always shows what the backend currently holds.
func (s *serviceImpl) SetDialog(ctx context.Context, id string, resource model.Resource, req dto.DialogRequest) (res model.Console, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".console.SetDialog")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	kind, err := dialog.ParseKind(req.Kind)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	e, err := s.lookup(id)
	if err != nil {
		return res, err
	}

	var apply func(c *model.Console)

	switch resource {
	case model.ResourceRooms:
		apply, err = s.roomDialog(ctx, kind, req.Key)
	case model.ResourceGuests:
		apply, err = s.guestDialog(ctx, kind, req.Key)
	case model.ResourceSessions:
		apply, err = s.sessionDialog(ctx, kind, req.Key)
	default:
		err = failure.BadRequestFromString(fmt.Sprintf("unknown console resource %q", resource))
	}

	if err != nil {
		log.Error().Err(err).Str("consoleId", id).Str("resource", string(resource)).Msg("failed to open dialog")

		return res, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	apply(&e.console)

	log.Debug().Str("consoleId", id).Str("resource", string(resource)).Str("dialog", string(kind)).Msg("dialog changed")

	return e.console, nil
}

func (s *serviceImpl) roomDialog(ctx context.Context, kind dialog.Kind, key string) (func(c *model.Console), error) {
	state := dialog.Closed[roomModel.Room]()

	switch kind {
	case dialog.KindAdding:
		state = dialog.Adding[roomModel.Room]()
	case dialog.KindEditing, dialog.KindDeleting:
		room, err := s.room.Get(ctx, key)
		if err != nil {
			return nil, err
		}

		state = dialog.Editing(room)
		if kind == dialog.KindDeleting {
			state = dialog.Deleting(room)
		}
	}

	return func(c *model.Console) { c.Rooms.Dialog = state }, nil
}

func (s *serviceImpl) guestDialog(ctx context.Context, kind dialog.Kind, key string) (func(c *model.Console), error) {
	state := dialog.Closed[guestModel.Guest]()

	switch kind {
	case dialog.KindAdding:
		state = dialog.Adding[guestModel.Guest]()
	case dialog.KindEditing, dialog.KindDeleting:
		guest, err := s.guest.Get(ctx, key)
		if err != nil {
			return nil, err
		}

		state = dialog.Editing(guest)
		if kind == dialog.KindDeleting {
			state = dialog.Deleting(guest)
		}
	}

	return func(c *model.Console) { c.Guests.Dialog = state }, nil
}

func (s *serviceImpl) sessionDialog(ctx context.Context, kind dialog.Kind, key string) (func(c *model.Console), error) {
	state := dialog.Closed[sessionModel.Session]()

	switch kind {
	case dialog.KindAdding:
		state = dialog.Adding[sessionModel.Session]()
	case dialog.KindEditing, dialog.KindDeleting:
		sessionID, err := strconv.Atoi(key)
		if err != nil {
			return nil, failure.BadRequestFromString("session id must be a number")
		}

		session, err := s.session.Get(ctx, sessionID)
		if err != nil {
			return nil, err
		}

		state = dialog.Editing(session)
		if kind == dialog.KindDeleting {
			state = dialog.Deleting(session)
		}
	}

	return func(c *model.Console) { c.Sessions.Dialog = state }, nil
}

// Rooms lists every room through the console's search, status filter and sort order.
func (s *serviceImpl) Rooms(ctx context.Context, id string) (res []roomModel.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".console.Rooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rooms, err := s.room.GetAll(ctx, roomDto.GetRoomsRequest{})
	if err != nil {
		return nil, err
	}

	return roomfilter.FilterAndSort(rooms, c.Rooms.Search, c.Rooms.Status, c.Rooms.Order), nil
}

func (s *serviceImpl) Guests(ctx context.Context, id string) (res []guestModel.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".console.Guests")
	defer scope.End()
	defer scope.TraceIfError(err)

	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.Guests.Search == "" {
		return s.guest.GetAll(ctx)
	}

	return s.guest.Search(ctx, c.Guests.Search)
}

func (s *serviceImpl) Sessions(ctx context.Context, id string) ([]sessionModel.Session, error) {
	if _, err := s.lookup(id); err != nil {
		return nil, err
	}

	return s.session.GetAll(ctx)
}

func (s *serviceImpl) lookup(id string) (*entry, error) {
	e, ok := s.consoles.Get(id)
	if !ok {
		return nil, failure.ConsoleNotFound
	}

	return e, nil
}
