// Command seed fills a running catalog service with generated categories.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"catalog_service/config"
	"catalog_service/internal/clients"
	"catalog_service/internal/domain"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := run(logger); err != nil {
		logger.Fatalf("FATAL: %v", err)
	}
}

func run(logger *logrus.Logger) error {
	cfg := config.LoadConfig(logger)

	client, err := clients.NewCategoryClient(cfg.GrpcTarget, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	created, skipped, err := seed(ctx, client, gofakeit.New(time.Now().UnixNano()), cfg.SeedCount)
	if err != nil {
		return fmt.Errorf("seeding stopped after %d categories: %w", created, err)
	}
	logger.Infof("Seeding done: %d created, %d already existed", created, skipped)
	return nil
}

type categoryCreator interface {
	CreateCategory(ctx context.Context, category *domain.Category) error
}

// seed creates count categories with generated names. Names that already
// exist are counted as skipped.
func seed(ctx context.Context, svc categoryCreator, faker *gofakeit.Faker, count int) (created, skipped int, err error) {
	for i := 0; i < count; i++ {
		name := faker.Word()
		err := svc.CreateCategory(ctx, &domain.Category{Name: name})
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrDuplicate):
			skipped++
		default:
			return created, skipped, err
		}
	}
	return created, skipped, nil
}
