package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"frontdesk/config"
	"frontdesk/infras/otel"
	guestModel "frontdesk/internal/domains/guest/model"
	guestService "frontdesk/internal/domains/guest/service"
	roomModel "frontdesk/internal/domains/room/model"
	roomDto "frontdesk/internal/domains/room/model/dto"
	roomService "frontdesk/internal/domains/room/service"
	roomTypeModel "frontdesk/internal/domains/roomtype/model"
	roomTypeService "frontdesk/internal/domains/roomtype/service"
	sessionModel "frontdesk/internal/domains/session/model"
	sessionService "frontdesk/internal/domains/session/service"
	"frontdesk/internal/domains/wizard/model"
	"frontdesk/internal/domains/wizard/model/dto"
	"frontdesk/shared/constant"
	"frontdesk/shared/debounce"
	"frontdesk/shared/failure"
	"frontdesk/shared/latest"
	"frontdesk/shared/timezone"
	"frontdesk/shared/validator"
	"frontdesk/shared/viewstate"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Wizard drives the three step check-in flow. Every open wizard is addressed by its id.
type Wizard interface {
	Open(ctx context.Context) (model.Wizard, error)
	Get(ctx context.Context, id string) (model.Wizard, error)
	List(ctx context.Context) []model.Wizard
	Cancel(ctx context.Context, id string) error

	SelectRoomType(ctx context.Context, id string, roomTypeID int) (model.Wizard, error)
	SelectFloor(ctx context.Context, id string, floor int) (model.Wizard, error)
	SelectRoom(ctx context.Context, id string, roomNumber string) (model.Wizard, error)
	SetExtraBeds(ctx context.Context, id string, count int) (model.Wizard, error)
	SetBreakfast(ctx context.Context, id string, included bool) (model.Wizard, error)
	SetCheckIn(ctx context.Context, id string, checkIn time.Time) (model.Wizard, error)
	SetNote(ctx context.Context, id string, note string) (model.Wizard, error)
	Update(ctx context.Context, id string, req dto.UpdateDraftRequest) (model.Wizard, error)

	Next(ctx context.Context, id string) (model.Wizard, error)
	Previous(ctx context.Context, id string) (model.Wizard, error)

	SearchGuests(ctx context.Context, id string, query string) (model.GuestSearch, error)
	AddGuest(ctx context.Context, id string, guestID string) (model.Wizard, error)
	RemoveGuest(ctx context.Context, id string, guestID string) (model.Wizard, error)

	Confirmation(ctx context.Context, id string) (model.Summary, error)
	Submit(ctx context.Context, id string) (sessionModel.Session, error)
}

// state is one open wizard. mu is never held across a backend call.
type state struct {
	mu         sync.Mutex
	id         string
	step       model.Step
	draft      model.Draft
	roomTypes  []roomTypeModel.RoomType
	rooms      []roomModel.Room
	loading    bool
	search     model.GuestSearch
	submitting bool

	roomGuard  latest.Guard
	guestGuard latest.Guard
	debouncer  *debounce.Debouncer
}

type serviceImpl struct {
	cfg      *config.Config
	otel     otel.Otel
	roomType roomTypeService.RoomType
	room     roomService.Room
	guest    guestService.Guest
	session  sessionService.Session
	wizards  *viewstate.Store[string, *state]
}

func New(
	cfg *config.Config,
	otel otel.Otel,
	roomType roomTypeService.RoomType,
	room roomService.Room,
	guest guestService.Guest,
	session sessionService.Session,
) Wizard {
	wizards := viewstate.New(func(st *state) string { return st.id }).
		WithIdleTimeout(cfg.Wizard.IdleTimeout, func(st *state) {
			st.release()

			log.Info().Str("wizardId", st.id).Msg("idle wizard discarded")
		})

	return &serviceImpl{
		cfg:      cfg,
		otel:     otel,
		roomType: roomType,
		room:     room,
		guest:    guest,
		session:  session,
		wizards:  wizards,
	}
}

func (s *serviceImpl) Open(ctx context.Context) (res model.Wizard, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelWizardScopeName, constant.OtelWizardScopeName+".Open")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomTypes, err := s.roomType.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load room types for wizard")

		return res, fmt.Errorf("failed to open wizard: %w", err)
	}

	st := &state{
		id:        uuid.NewString(),
		step:      model.StepRoomSelection,
		draft:     model.NewDraft(timezone.Now()),
		roomTypes: roomTypes,
		rooms:     []roomModel.Room{},
		search:    model.GuestSearch{Results: []guestModel.Guest{}},
		debouncer: debounce.New(time.Duration(s.cfg.Wizard.SearchDelayMillis) * time.Millisecond),
	}

	s.wizards.Insert(st)

	scope.SetAttribute("wizard.id", st.id)
	log.Info().Str("wizardId", st.id).Msg("wizard opened")

	return st.view(), nil
}

func (s *serviceImpl) Get(_ context.Context, id string) (model.Wizard, error) {
	st, err := s.lookup(id)
	if err != nil {
		return model.Wizard{}, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	return st.view(), nil
}

func (s *serviceImpl) List(_ context.Context) []model.Wizard {
	states := s.wizards.List()

	res := make([]model.Wizard, 0, len(states))
	for _, st := range states {
		st.mu.Lock()
		res = append(res, st.view())
		st.mu.Unlock()
	}

	return res
}

// Cancel discards the draft from any step.
func (s *serviceImpl) Cancel(_ context.Context, id string) error {
	st, err := s.lookup(id)
	if err != nil {
		return err
	}

	s.discard(st)

	log.Info().Str("wizardId", id).Msg("wizard cancelled")

	return nil
}

func (s *serviceImpl) SelectRoomType(ctx context.Context, id string, roomTypeID int) (res model.Wizard, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelWizardScopeName, constant.OtelWizardScopeName+".SelectRoomType")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.lookup(id)
	if err != nil {
		return res, err
	}

	st.mu.Lock()
	if _, ok := roomTypeModel.FindByID(st.roomTypes, roomTypeID); !ok {
		st.mu.Unlock()

		return res, failure.BadRequestFromString("Please select a room type")
	}

	st.draft.SelectRoomType(roomTypeID)
	st.mu.Unlock()

	s.refreshRooms(ctx, st)

	return s.snapshot(st), nil
}

func (s *serviceImpl) SelectFloor(ctx context.Context, id string, floor int) (res model.Wizard, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelWizardScopeName, constant.OtelWizardScopeName+".SelectFloor")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.lookup(id)
	if err != nil {
		return res, err
	}

	if err = model.CanSelectFloor(floor, s.cfg.Wizard.MinFloor, s.cfg.Wizard.MaxFloor).Error(); err != nil {
		return res, err
	}

	st.mu.Lock()
	st.draft.SelectFloor(floor)
	st.mu.Unlock()

	s.refreshRooms(ctx, st)

	return s.snapshot(st), nil
}

func (s *serviceImpl) SelectRoom(_ context.Context, id string, roomNumber string) (model.Wizard, error) {
	return s.mutate(id, func(st *state) error {
		roomNumber = strings.TrimSpace(roomNumber)

		if st.loading {
			return failure.Conflict("available rooms are still loading")
		}

		if err := model.CanSelectRoom(roomNumber, st.candidates()).Error(); err != nil {
			return err
		}

		st.draft.RoomNumber = roomNumber

		return nil
	})
}

// SetExtraBeds clamps into [0, 10]. Lowering it below the selected guests is allowed here
// and caught again by Next and Submit.
func (s *serviceImpl) SetExtraBeds(_ context.Context, id string, count int) (model.Wizard, error) {
	return s.mutate(id, func(st *state) error {
		st.draft.SetExtraBeds(count)

		return nil
	})
}

func (s *serviceImpl) SetBreakfast(_ context.Context, id string, included bool) (model.Wizard, error) {
	return s.mutate(id, func(st *state) error {
		st.draft.IsBreakfastIncluded = included

		return nil
	})
}

func (s *serviceImpl) SetCheckIn(_ context.Context, id string, checkIn time.Time) (model.Wizard, error) {
	return s.mutate(id, func(st *state) error {
		if checkIn.IsZero() {
			return failure.BadRequestFromString("actualCheckIn is required")
		}

		st.draft.ActualCheckIn = checkIn

		return nil
	})
}

func (s *serviceImpl) SetNote(_ context.Context, id string, note string) (model.Wizard, error) {
	return s.mutate(id, func(st *state) error {
		if err := validator.ValidateVar(note, "max=500"); err != nil {
			return err
		}

		st.draft.Note = note

		return nil
	})
}

// Update applies each present field in turn and stops at the first rejected one.
func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateDraftRequest) (res model.Wizard, err error) {
	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	steps := []struct {
		present bool
		apply   func() (model.Wizard, error)
	}{
		{req.RoomTypeID != nil, func() (model.Wizard, error) { return s.SelectRoomType(ctx, id, *req.RoomTypeID) }},
		{req.Floor != nil, func() (model.Wizard, error) { return s.SelectFloor(ctx, id, *req.Floor) }},
		{req.RoomNumber != nil, func() (model.Wizard, error) { return s.SelectRoom(ctx, id, *req.RoomNumber) }},
		{req.NumberOfExtraBeds != nil, func() (model.Wizard, error) { return s.SetExtraBeds(ctx, id, *req.NumberOfExtraBeds) }},
		{req.IsBreakfastIncluded != nil, func() (model.Wizard, error) { return s.SetBreakfast(ctx, id, *req.IsBreakfastIncluded) }},
		{req.ActualCheckIn != nil, func() (model.Wizard, error) { return s.SetCheckIn(ctx, id, *req.ActualCheckIn) }},
		{req.Note != nil, func() (model.Wizard, error) { return s.SetNote(ctx, id, *req.Note) }},
	}

	for _, step := range steps {
		if !step.present {
			continue
		}

		if res, err = step.apply(); err != nil {
			return res, err
		}
	}

	return s.Get(ctx, id)
}

func (s *serviceImpl) Next(_ context.Context, id string) (model.Wizard, error) {
	return s.mutate(id, func(st *state) error {
		guard := model.CanAdvance(model.AdvanceContext{
			Step:         st.step,
			Draft:        st.draft,
			MaxOccupancy: st.maxOccupancy(),
		})
		if !guard.Allowed {
			return guard.Error()
		}

		st.step++

		return nil
	})
}

// Previous is never gated; on the first step it stays put.
func (s *serviceImpl) Previous(_ context.Context, id string) (model.Wizard, error) {
	return s.mutate(id, func(st *state) error {
		if st.step > model.StepRoomSelection {
			st.step--
		}

		return nil
	})
}

// SearchGuests debounces per wizard. Queries shorter than the minimum length return nothing
// without a backend call; a newer query always wins over an older one still in flight.
func (s *serviceImpl) SearchGuests(ctx context.Context, id string, query string) (res model.GuestSearch, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelWizardScopeName, constant.OtelWizardScopeName+".SearchGuests")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.lookup(id)
	if err != nil {
		return res, err
	}

	query = strings.TrimSpace(query)
	res = model.GuestSearch{Query: query, Results: []guestModel.Guest{}}

	if utf8.RuneCountInString(query) < s.cfg.Wizard.MinSearchLength {
		st.debouncer.Cancel()

		st.mu.Lock()
		st.guestGuard.Invalidate()
		st.search = res
		st.mu.Unlock()

		return res, nil
	}

	if !st.debouncer.Wait(ctx) {
		res.Superseded = true

		return res, nil
	}

	st.mu.Lock()
	ticket := st.guestGuard.Begin()
	st.mu.Unlock()

	guests, err := s.guest.Search(ctx, query)
	if err != nil {
		log.Warn().Err(err).Str("wizardId", id).Str("query", query).Msg("guest search failed, showing no results")

		guests = nil
		err = nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if !st.guestGuard.IsLatest(ticket) {
		res.Superseded = true

		return res, nil
	}

	for _, guest := range guests {
		if len(res.Results) >= s.cfg.Wizard.MaxResults {
			break
		}

		if !st.draft.HasGuest(guest.ID) {
			res.Results = append(res.Results, guest)
		}
	}

	st.search = res

	return res, nil
}

func (s *serviceImpl) AddGuest(ctx context.Context, id string, guestID string) (res model.Wizard, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelWizardScopeName, constant.OtelWizardScopeName+".AddGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.lookup(id)
	if err != nil {
		return res, err
	}

	st.mu.Lock()
	guest, found := st.searchResult(guestID)
	st.mu.Unlock()

	if !found {
		guest, err = s.guest.Get(ctx, guestID)
		if err != nil {
			log.Error().Err(err).Str("guestId", guestID).Msg("failed to load guest for wizard")

			return res, err
		}
	}

	return s.mutate(id, func(st *state) error {
		guard := model.CanAddGuest(model.AddGuestContext{
			Draft:        st.draft,
			GuestID:      guest.ID,
			MaxOccupancy: st.maxOccupancy(),
		})
		if !guard.Allowed {
			return guard.Error()
		}

		st.draft.AddGuest(guest)
		st.search.Results = slices.DeleteFunc(st.search.Results, func(g guestModel.Guest) bool {
			return g.ID == guest.ID
		})

		return nil
	})
}

func (s *serviceImpl) RemoveGuest(_ context.Context, id string, guestID string) (model.Wizard, error) {
	return s.mutate(id, func(st *state) error {
		st.draft.RemoveGuest(guestID)

		return nil
	})
}

func (s *serviceImpl) Confirmation(_ context.Context, id string) (model.Summary, error) {
	st, err := s.lookup(id)
	if err != nil {
		return model.Summary{}, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.step != model.StepConfirmation {
		return model.Summary{}, failure.BadRequestFromString(fmt.Sprintf("confirmation is not reached yet (current step: %s)", st.step))
	}

	roomType, _ := roomTypeModel.FindByID(st.roomTypes, st.draft.SelectedRoomTypeID)

	return model.BuildSummary(st.draft, roomType), nil
}

// Submit sends the payload once. Success discards the wizard; failure leaves it untouched.
func (s *serviceImpl) Submit(ctx context.Context, id string) (res sessionModel.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelWizardScopeName, constant.OtelWizardScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.lookup(id)
	if err != nil {
		return res, err
	}

	st.mu.Lock()
	guard := model.CanSubmit(model.SubmitContext{
		Step:         st.step,
		Draft:        st.draft,
		MaxOccupancy: st.maxOccupancy(),
	})
	if !guard.Allowed {
		st.mu.Unlock()

		return res, guard.Error()
	}

	if st.submitting {
		st.mu.Unlock()

		return res, failure.Conflict("submission already in progress")
	}

	st.submitting = true
	payload := st.draft.Payload()
	st.mu.Unlock()

	res, err = s.session.Create(ctx, payload)

	st.mu.Lock()
	st.submitting = false
	st.mu.Unlock()

	if err != nil {
		log.Error().Err(err).Str("wizardId", id).Msg("failed to submit wizard")

		return res, err
	}

	s.discard(st)

	log.Info().Str("wizardId", id).Int("sessionId", res.ID).Msg("wizard submitted")

	return res, nil
}

func (s *serviceImpl) lookup(id string) (*state, error) {
	st, ok := s.wizards.Get(id)
	if !ok {
		return nil, failure.WizardNotFound
	}

	return st, nil
}

func (s *serviceImpl) discard(st *state) {
	st.release()

	s.wizards.Delete(st.id)
}

// release wakes a pending guest search and makes in-flight responses stale.
func (st *state) release() {
	st.debouncer.Cancel()

	st.mu.Lock()
	st.roomGuard.Invalidate()
	st.guestGuard.Invalidate()
	st.mu.Unlock()
}

func (s *serviceImpl) mutate(id string, fn func(st *state) error) (model.Wizard, error) {
	st, err := s.lookup(id)
	if err != nil {
		return model.Wizard{}, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if err := fn(st); err != nil {
		return st.view(), err
	}

	return st.view(), nil
}

func (s *serviceImpl) snapshot(st *state) model.Wizard {
	st.mu.Lock()
	defer st.mu.Unlock()

	return st.view()
}

// refreshRooms re-queries available rooms for the current type and floor. The fetch runs
// unlocked; a response is kept only if no newer query started meanwhile. Candidates are
// emptied while it runs and a room number missing from the new list is dropped.
func (s *serviceImpl) refreshRooms(ctx context.Context, st *state) {
	st.mu.Lock()
	if !st.draft.RoomQueryReady() {
		st.roomGuard.Invalidate()
		st.rooms = []roomModel.Room{}
		st.loading = false
		st.mu.Unlock()

		return
	}

	ticket := st.roomGuard.Begin()
	params := roomDto.GetRoomsRequest{
		RoomTypeID:   st.draft.SelectedRoomTypeID,
		Floor:        st.draft.SelectedFloor,
		RoomStatusID: roomModel.StatusAvailable,
	}
	st.rooms = []roomModel.Room{}
	st.loading = true
	st.mu.Unlock()

	rooms, err := s.room.GetAll(ctx, params)
	if err != nil {
		log.Warn().Err(err).Str("wizardId", st.id).Msg("room query failed, showing no rooms")

		rooms = []roomModel.Room{}
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if !st.roomGuard.IsLatest(ticket) {
		log.Debug().Str("wizardId", st.id).Int("floor", params.Floor).Msg("dropping stale room list")

		return
	}

	st.rooms = rooms
	st.loading = false

	if st.draft.RoomNumber != "" && !slices.Contains(st.candidates(), st.draft.RoomNumber) {
		st.draft.RoomNumber = ""
	}
}

func (st *state) maxOccupancy() int {
	roomType, ok := roomTypeModel.FindByID(st.roomTypes, st.draft.SelectedRoomTypeID)
	if !ok {
		return 0
	}

	return model.MaxOccupancy(roomType, st.draft.NumberOfExtraBeds)
}

func (st *state) candidates() []string {
	res := make([]string, len(st.rooms))
	for i, room := range st.rooms {
		res[i] = room.RoomNumber
	}

	return res
}

func (st *state) searchResult(guestID string) (guestModel.Guest, bool) {
	for _, guest := range st.search.Results {
		if guest.ID == guestID {
			return guest, true
		}
	}

	return guestModel.Guest{}, false
}

// view copies the state; callers hold mu.
func (st *state) view() model.Wizard {
	draft := st.draft
	draft.GuestIDs = slices.Clone(st.draft.GuestIDs)
	draft.SelectedGuests = slices.Clone(st.draft.SelectedGuests)

	search := st.search
	search.Results = slices.Clone(st.search.Results)

	maxOccupancy := st.maxOccupancy()

	advance := model.CanAdvance(model.AdvanceContext{Step: st.step, Draft: draft, MaxOccupancy: maxOccupancy})
	submit := model.CanSubmit(model.SubmitContext{Step: st.step, Draft: draft, MaxOccupancy: maxOccupancy})

	reason := advance.Reason
	if st.step == model.StepConfirmation {
		reason = submit.Reason
	}

	return model.Wizard{
		ID:             st.id,
		Step:           st.step,
		Draft:          draft,
		RoomTypes:      slices.Clone(st.roomTypes),
		AvailableRooms: slices.Clone(st.rooms),
		RoomsLoading:   st.loading,
		MaxOccupancy:   maxOccupancy,
		GuestSearch:    search,
		CanAdvance:     advance.Allowed,
		CanSubmit:      submit.Allowed,
		Reason:         reason,
	}
}
