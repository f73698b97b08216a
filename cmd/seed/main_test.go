package main

import (
	"context"
	"errors"
	"io"
	"testing"

	"catalog_service/internal/domain"
	"catalog_service/internal/repository"
	"catalog_service/internal/usecase"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCountsDuplicates(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	repo := repository.NewMemoryCategoryRepository(logger)
	svc := usecase.NewCategoryService(repo, logger)

	created, skipped, err := seed(context.Background(), svc, gofakeit.New(7), 50)
	require.NoError(t, err)
	assert.Equal(t, 50, created+skipped)

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, created)
}

type brokenCreator struct{ calls int }

func (b *brokenCreator) CreateCategory(ctx context.Context, category *domain.Category) error {
	b.calls++
	return errors.New("connection refused")
}

func TestSeedStopsOnError(t *testing.T) {
	creator := &brokenCreator{}

	created, _, err := seed(context.Background(), creator, gofakeit.New(1), 5)
	assert.Error(t, err)
	assert.Zero(t, created)
	assert.Equal(t, 1, creator.calls)
}

func TestRunReturnsErrorWhenServerUnreachable(t *testing.T) {
	t.Setenv("CATALOG_GRPC_TARGET", "127.0.0.1:1")
	t.Setenv("SEED_COUNT", "1")
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	err := run(logger)
	assert.ErrorContains(t, err, "seeding stopped after 0 categories")
}
