package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=RoomType=MockRoomTypeService

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/roomtype/model"
	"frontdesk/internal/domains/roomtype/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

const cacheGetAllRoomType = "roomtype:gets"

// RoomType serves read-only reference data. The list takes no parameters and is fetched
// once per cache lifetime.
type RoomType interface {
	GetAll(ctx context.Context) ([]model.RoomType, error)
}

type serviceImpl struct {
	repo  repository.RoomType
	cfg   *config.Config
	cache cache.Cache
	otel  otel.Otel
}

func New(repo repository.RoomType, cfg *config.Config, cache cache.Cache, otel otel.Otel) RoomType {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []model.RoomType, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomtype.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllRoomType, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllRoomType).Msg("cache hit for room types")

		return res, nil
	}

	res, err = s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return nil, fmt.Errorf("failed to get room types: %w", err)
	}

	shared.SaveCache(ctx, s.cache, cacheGetAllRoomType, res, s.cfg.Cache.TTL)

	return res, nil
}
