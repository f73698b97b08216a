package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// PgxCategoryRepository runs the same SQL as PostgresCategoryRepository on a pgx pool.
type PgxCategoryRepository struct {
	pool *pgxpool.Pool
	log  *logrus.Logger
}

func NewPgxCategoryRepository(pool *pgxpool.Pool, logger *logrus.Logger) *PgxCategoryRepository {
	return &PgxCategoryRepository{
		pool: pool,
		log:  logger,
	}
}

var _ domain.CategoryRepository = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		r.log.Errorf("Repository(pgx): Failed to ensure categories schema: %v", err)
		return fmt.Errorf("could not create categories table: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, selectAllSQL)
	if err != nil {
		r.log.Errorf("Repository(pgx): Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}

	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Category, error) {
		var category domain.Category
		err := row.Scan(&category.ID, &category.Name)
		return category, err
	})
	if err != nil {
		r.log.Errorf("Repository(pgx): Error during categories list iteration: %v", err)
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	r.log.Debugf("Repository(pgx): Retrieved %d categories", len(categories))
	return categories, nil
}

func (r *PgxCategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	return r.findOne(ctx, selectByIDSQL, id)
}

func (r *PgxCategoryRepository) FindByCategoryName(ctx context.Context, name string) (*domain.Category, error) {
	return r.findOne(ctx, selectByNameSQL, name)
}

func (r *PgxCategoryRepository) findOne(ctx context.Context, query string, arg any) (*domain.Category, error) {
	category := &domain.Category{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		r.log.Errorf("Repository(pgx): Failed to look up category by %v: %v", arg, err)
		return nil, fmt.Errorf("could not get category: %w", err)
	}
	return category, nil
}

func (r *PgxCategoryRepository) Save(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	saved := &domain.Category{}
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if category.ID == 0 {
			return tx.QueryRow(ctx, insertCategorySQL, category.Name).Scan(&saved.ID, &saved.Name)
		}
		err := tx.QueryRow(ctx, updateCategorySQL, category.ID, category.Name).Scan(&saved.ID, &saved.Name)
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		if err := tx.QueryRow(ctx, insertWithIDSQL, category.ID, category.Name).Scan(&saved.ID, &saved.Name); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, advanceSequenceSQL, category.ID)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == nameConstraint {
			r.log.Warnf("Repository(pgx): Duplicate category name: %s", category.Name)
			return nil, fmt.Errorf("could not save category '%s': %w", category.Name, domain.ErrNameTaken)
		}
		r.log.Errorf("Repository(pgx): Failed to save category '%s': %v", category.Name, err)
		return nil, fmt.Errorf("could not save category: %w", err)
	}

	r.log.Infof("Repository(pgx): Category saved with ID: %d, Name: %s", saved.ID, saved.Name)
	return saved, nil
}

func (r *PgxCategoryRepository) Delete(ctx context.Context, category *domain.Category) error {
	tag, err := r.pool.Exec(ctx, deleteByIDSQL, category.ID)
	if err != nil {
		r.log.Errorf("Repository(pgx): Failed to delete category ID %d: %v", category.ID, err)
		return fmt.Errorf("could not delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	r.log.Infof("Repository(pgx): Category deleted with ID: %d", category.ID)
	return nil
}
