package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	CachePrefixRoom = "room:"
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
)

type Room interface {
	GetAll(ctx context.Context, params dto.GetRoomsRequest) ([]model.Room, error)
	Get(ctx context.Context, roomNumber string) (model.Room, error)
	Create(ctx context.Context, req dto.CreateRoomRequest) (model.Room, error)
	Update(ctx context.Context, roomNumber string, req dto.UpdateRoomRequest) (model.Room, error)
	Delete(ctx context.Context, roomNumber string) error
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.Cache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.Cache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params dto.GetRoomsRequest) (res []model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&params); err != nil {
		return nil, err
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, params.ToQuery())

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	res, err = s.repo.GetAll(ctx, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, roomNumber string) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !validator.IsRoomNumber(roomNumber) {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetRoom, roomNumber)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	res, err = s.repo.GetByID(ctx, roomNumber)
	if err != nil {
		log.Error().Err(err).Str("roomNumber", roomNumber).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	res, err = s.repo.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("roomNumber", req.RoomNumber).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, CachePrefixRoom)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, roomNumber string, req dto.UpdateRoomRequest) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	res, err = s.repo.Update(ctx, roomNumber, req)
	if err != nil {
		log.Error().Err(err).Str("roomNumber", roomNumber).Msg("failed to update room")

		return res, fmt.Errorf("failed to update room: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, CachePrefixRoom)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, roomNumber string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, roomNumber); err != nil {
		log.Error().Err(err).Str("roomNumber", roomNumber).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, CachePrefixRoom)

	return nil
}
