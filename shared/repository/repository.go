package repository

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"frontdesk/infras/hotelapi"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
)

// Repository is the generic resource accessor every domain repository embeds.
// It knows the collection path of one backend resource and nothing else.
type Repository[T any] struct {
	client  hotelapi.Client
	otel    otel.Otel
	entitas string
	path    string
}

func NewRepository[T any](entitasName, collectionPath string, client hotelapi.Client, otl otel.Otel) Repository[T] {
	return Repository[T]{
		client:  client,
		otel:    otl,
		entitas: entitasName,
		path:    strings.TrimRight(collectionPath, "/"),
	}
}

// PathFor joins escaped segments onto the collection path.
func (repo *Repository[T]) PathFor(segments ...string) string {
	var builder strings.Builder

	builder.WriteString(repo.path)

	for _, segment := range segments {
		builder.WriteString("/")
		builder.WriteString(url.PathEscape(segment))
	}

	return builder.String()
}

func (repo *Repository[T]) GetAll(ctx context.Context, query url.Values) (res []T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.getAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.client.Get(ctx, repo.path, query, &res); err != nil {
		return nil, fmt.Errorf("failed to get %s list: %w", repo.entitas, err)
	}

	if res == nil {
		res = []T{}
	}

	return res, nil
}

func (repo *Repository[T]) Get(ctx context.Context, id string) (res T, err error) {
	return repo.GetPath(ctx, repo.PathFor(id))
}

// GetPath fetches a single entity from an arbitrary path under the resource.
func (repo *Repository[T]) GetPath(ctx context.Context, path string) (res T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.get", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.client.Get(ctx, path, nil, &res); err != nil {
		return res, fmt.Errorf("failed to get %s: %w", repo.entitas, err)
	}

	return res, nil
}

func (repo *Repository[T]) Create(ctx context.Context, body any) (res T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.create", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.client.Post(ctx, repo.path, body, &res); err != nil {
		return res, fmt.Errorf("failed to create %s: %w", repo.entitas, err)
	}

	return res, nil
}

func (repo *Repository[T]) Update(ctx context.Context, id string, body any) (res T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.update", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.client.Put(ctx, repo.PathFor(id), body, &res); err != nil {
		return res, fmt.Errorf("failed to update %s: %w", repo.entitas, err)
	}

	return res, nil
}

func (repo *Repository[T]) Patch(ctx context.Context, id string, body any) (res T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.patch", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.client.Patch(ctx, repo.PathFor(id), body, &res); err != nil {
		return res, fmt.Errorf("failed to patch %s: %w", repo.entitas, err)
	}

	return res, nil
}

func (repo *Repository[T]) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.delete", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.client.Delete(ctx, repo.PathFor(id), nil); err != nil {
		return fmt.Errorf("failed to delete %s: %w", repo.entitas, err)
	}

	return nil
}
