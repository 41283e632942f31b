package wizard

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/wizard/model/dto"
	"frontdesk/internal/domains/wizard/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Wizard
	otel    otel.Otel
}

func New(service service.Wizard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/wizards", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.OpenWizard)
		routerGroup.Get("/", handler.ListWizards)

		routerGroup.Route("/{id}", func(wizard chi.Router) {
			wizard.Get("/", handler.GetWizard)
			wizard.Patch("/", handler.UpdateDraft)
			wizard.Delete("/", handler.CancelWizard)
			wizard.Post("/next", handler.NextStep)
			wizard.Post("/previous", handler.PreviousStep)
			wizard.Get("/guests/search", handler.SearchGuests)
			wizard.Post("/guests", handler.AddGuest)
			wizard.Delete("/guests/{guestId}", handler.RemoveGuest)
			wizard.Get("/confirmation", handler.Confirmation)
			wizard.Post("/submit", handler.Submit)
		})
	})
}

// OpenWizard starts a check-in at the room selection step.
// @Summary Open a check-in wizard
// @Tags Wizard
// @Produce json
// @Success 201 {object} response.Data[model.Wizard]
// @Failure 502 {object} response.Error
// @Router /v1/wizards [post]
// @Security BearerAuth
func (handler *Handler) OpenWizard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenWizard")
	defer scope.End()

	wizard, err := handler.service.Open(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open wizard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, wizard)
}

// ListWizards lists the open wizards.
// @Summary List open wizards
// @Tags Wizard
// @Produce json
// @Success 200 {object} response.Data[[]model.Wizard]
// @Router /v1/wizards [get]
func (handler *Handler) ListWizards(w http.ResponseWriter, r *http.Request) {
	response.WithJSON(w, http.StatusOK, handler.service.List(r.Context()))
}

// GetWizard returns the wizard with its guards evaluated.
// @Summary Get a wizard
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 200 {object} response.Data[model.Wizard]
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id} [get]
func (handler *Handler) GetWizard(w http.ResponseWriter, r *http.Request) {
	wizard, err := handler.service.Get(r.Context(), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, wizard)
}

// UpdateDraft changes any subset of the draft fields.
// @Summary Update the draft
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Wizard ID"
// @Param request body dto.UpdateDraftRequest true "Draft fields"
// @Success 200 {object} response.Data[model.Wizard]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id} [patch]
func (handler *Handler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDraft")
	defer scope.End()

	var req dto.UpdateDraftRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	wizard, err := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("draft change rejected")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, wizard)
}

// CancelWizard discards the draft.
// @Summary Cancel a wizard
// @Tags Wizard
// @Param id path string true "Wizard ID"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id} [delete]
func (handler *Handler) CancelWizard(w http.ResponseWriter, r *http.Request) {
	if err := handler.service.Cancel(r.Context(), chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.WithError(w, err)

		return
	}

	response.WithNoContent(w)
}

// NextStep advances when the current step is complete.
// @Summary Go to the next step
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 200 {object} response.Data[model.Wizard]
// @Failure 400 {object} response.Error
// @Router /v1/wizards/{id}/next [post]
func (handler *Handler) NextStep(w http.ResponseWriter, r *http.Request) {
	wizard, err := handler.service.Next(r.Context(), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, wizard)
}

// PreviousStep goes back one step.
// @Summary Go to the previous step
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 200 {object} response.Data[model.Wizard]
// @Router /v1/wizards/{id}/previous [post]
func (handler *Handler) PreviousStep(w http.ResponseWriter, r *http.Request) {
	wizard, err := handler.service.Previous(r.Context(), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, wizard)
}

// SearchGuests answers after the search delay. A request overtaken by a newer query
// returns superseded with no results.
// @Summary Search guests to add
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Param query query string true "Search text"
// @Success 200 {object} response.Data[model.GuestSearch]
// @Router /v1/wizards/{id}/guests/search [get]
func (handler *Handler) SearchGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchGuests")
	defer scope.End()

	result, err := handler.service.SearchGuests(ctx, chi.URLParam(r, constant.RequestParamID), r.URL.Query().Get(constant.RequestParamQuery))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// AddGuest selects a guest for the session.
// @Summary Add a guest
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Wizard ID"
// @Param request body dto.AddGuestRequest true "Guest"
// @Success 200 {object} response.Data[model.Wizard]
// @Failure 400 {object} response.Error
// @Router /v1/wizards/{id}/guests [post]
func (handler *Handler) AddGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddGuest")
	defer scope.End()

	var req dto.AddGuestRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	wizard, err := handler.service.AddGuest(ctx, chi.URLParam(r, constant.RequestParamID), req.GuestID)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("guestId", req.GuestID).Msg("guest not added")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, wizard)
}

// RemoveGuest deselects a guest.
// @Summary Remove a guest
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Param guestId path string true "Guest ID"
// @Success 200 {object} response.Data[model.Wizard]
// @Router /v1/wizards/{id}/guests/{guestId} [delete]
func (handler *Handler) RemoveGuest(w http.ResponseWriter, r *http.Request) {
	wizard, err := handler.service.RemoveGuest(r.Context(), chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamGuestID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, wizard)
}

// Confirmation summarises the draft and its total price.
// @Summary Get the confirmation summary
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 200 {object} response.Data[model.Summary]
// @Failure 400 {object} response.Error
// @Router /v1/wizards/{id}/confirmation [get]
func (handler *Handler) Confirmation(w http.ResponseWriter, r *http.Request) {
	summary, err := handler.service.Confirmation(r.Context(), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}

// Submit creates the session. The wizard is gone afterwards; on failure it stays as it was.
// @Summary Submit the wizard
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 201 {object} response.Data[sessionModel.Session]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/wizards/{id}/submit [post]
// @Security BearerAuth
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	session, err := handler.service.Submit(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit wizard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Session created from wizard")

	response.WithJSON(w, http.StatusCreated, session)
}
