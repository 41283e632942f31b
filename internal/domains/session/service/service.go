package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Session=MockSessionService

import (
	"context"
	"fmt"
	"strconv"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/session/model"
	"frontdesk/internal/domains/session/model/dto"
	"frontdesk/internal/domains/session/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cachePrefixSession = "session:"
	cacheGetSession    = "session:get"
	cacheGetAllSession = "session:gets"

	// Creating, ending or deleting a session changes room status on the backend.
	cachePrefixRoom = "room:"
)

type Session interface {
	GetAll(ctx context.Context) ([]model.Session, error)
	Get(ctx context.Context, id int) (model.Session, error)
	Create(ctx context.Context, req dto.CreateSessionRequest) (model.Session, error)
	End(ctx context.Context, id int, req dto.EndSessionRequest) (model.Session, error)
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo  repository.Session
	cfg   *config.Config
	cache cache.Cache
	otel  otel.Otel
}

func New(repo repository.Session, cfg *config.Config, cache cache.Cache, otel otel.Otel) Session {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllSession, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllSession).Msg("cache hit for sessions")

		return res, nil
	}

	res, err = s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sessions")

		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	shared.SaveCache(ctx, s.cache, cacheGetAllSession, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSession, strconv.Itoa(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for session")

		return res, nil
	}

	res, err = s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to get session")

		return res, fmt.Errorf("failed to get session: %w", err)
	}

	shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSessionRequest) (res model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	scope.SetAttributes(map[string]any{
		"roomNumber": req.RoomNumber,
		"guests":     len(req.GuestIDs),
	})

	res, err = s.repo.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("roomNumber", req.RoomNumber).Msg("failed to create session")

		return res, fmt.Errorf("failed to create session: %w", err)
	}

	s.invalidate(ctx)

	log.Info().Int("id", res.ID).Str("roomNumber", res.RoomNumber).Msg("session created")

	return res, nil
}

func (s *serviceImpl) End(ctx context.Context, id int, req dto.EndSessionRequest) (res model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.End")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if id <= 0 {
		return res, failure.NotFound("session not found") // nolint:wrapcheck
	}

	res, err = s.repo.End(ctx, id, req)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to end session")

		return res, fmt.Errorf("failed to end session: %w", err)
	}

	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if id <= 0 {
		return failure.NotFound("session not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to delete session")

		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cachePrefixSession)
	shared.InvalidateCaches(ctx, s.cache, cachePrefixRoom)
}
