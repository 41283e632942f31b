package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Guest=MockGuestService

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/internal/domains/guest/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cachePrefixGuest = "guest:"
	cacheGetGuest    = "guest:get"
	cacheGetAllGuest = "guest:gets"
	cacheSearchGuest = "guest:search"
	cacheGetGuestNIC = "guest:nic"
)

type Guest interface {
	GetAll(ctx context.Context) ([]model.Guest, error)
	Search(ctx context.Context, query string) ([]model.Guest, error)
	Get(ctx context.Context, id string) (model.Guest, error)
	GetByNIC(ctx context.Context, nic string) (model.Guest, error)
	Create(ctx context.Context, req dto.UpsertGuestRequest) (model.Guest, error)
	Update(ctx context.Context, id string, req dto.UpsertGuestRequest) (model.Guest, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Guest
	cfg   *config.Config
	cache cache.Cache
	otel  otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, cache cache.Cache, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllGuest, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllGuest).Msg("cache hit for guests")

		return res, nil
	}

	res, err = s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return nil, fmt.Errorf("failed to get guests: %w", err)
	}

	shared.SaveCache(ctx, s.cache, cacheGetAllGuest, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, query string) (res []model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("query", query)

	cacheKey := shared.BuildCacheKey(cacheSearchGuest, query)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest search")

		return res, nil
	}

	res, err = s.repo.Search(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("failed to search guests")

		return nil, fmt.Errorf("failed to search guests: %w", err)
	}

	shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGuest, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest")

		return res, nil
	}

	res, err = s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) GetByNIC(ctx context.Context, nic string) (res model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.GetByNIC")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGuestNIC, nic)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest by nic")

		return res, nil
	}

	res, err = s.repo.GetByNIC(ctx, nic)
	if err != nil {
		log.Error().Err(err).Str("nic", nic).Msg("failed to get guest by nic")

		return res, fmt.Errorf("failed to get guest by nic: %w", err)
	}

	shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.UpsertGuestRequest) (res model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	res, err = s.repo.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return res, fmt.Errorf("failed to create guest: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefixGuest)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpsertGuestRequest) (res model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	res, err = s.repo.Update(ctx, id, req)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update guest")

		return res, fmt.Errorf("failed to update guest: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefixGuest)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete guest")

		return fmt.Errorf("failed to delete guest: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefixGuest)

	return nil
}
