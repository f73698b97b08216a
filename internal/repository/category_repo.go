package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const (
	uniqueViolation = "23505"
	nameConstraint  = "categories_name_key"

	schemaSQL = `CREATE TABLE IF NOT EXISTS categories (
	id   BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL CONSTRAINT categories_name_key UNIQUE
)`
	insertCategorySQL = `INSERT INTO categories (name) VALUES ($1) RETURNING id, name`
	updateCategorySQL = `UPDATE categories SET name = $2 WHERE id = $1 RETURNING id, name`
	insertWithIDSQL   = `INSERT INTO categories (id, name) VALUES ($1, $2) RETURNING id, name`
	// An explicit id bypasses the sequence. Moving it forward only keeps ids
	// handed out to concurrent inserts from being reused.
	advanceSequenceSQL = `SELECT setval(pg_get_serial_sequence('categories', 'id'),
	GREATEST(nextval(pg_get_serial_sequence('categories', 'id')), $1))`
	selectAllSQL    = `SELECT id, name FROM categories ORDER BY id ASC`
	selectByIDSQL   = `SELECT id, name FROM categories WHERE id = $1`
	selectByNameSQL = `SELECT id, name FROM categories WHERE name = $1`
	deleteByIDSQL   = `DELETE FROM categories WHERE id = $1`
)

// SchemaManager is implemented by repositories backed by a real database.
type SchemaManager interface {
	EnsureSchema(ctx context.Context) error
}

type PostgresCategoryRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresCategoryRepository(db *sql.DB, logger *logrus.Logger) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{
		db:  db,
		log: logger,
	}
}

var _ domain.CategoryRepository = (*PostgresCategoryRepository)(nil)

func (r *PostgresCategoryRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		r.log.Errorf("Repository: Failed to ensure categories schema: %v", err)
		return fmt.Errorf("could not create categories table: %w", err)
	}
	return nil
}

func (r *PostgresCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, selectAllSQL)
	if err != nil {
		r.log.Errorf("Repository: Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			r.log.Errorf("Repository: Failed to scan category row: %v", err)
			return nil, fmt.Errorf("could not scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Repository: Error during categories list iteration: %v", err)
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	r.log.Debugf("Repository: Retrieved %d categories", len(categories))
	return categories, nil
}

func (r *PostgresCategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	return r.findOne(ctx, selectByIDSQL, id)
}

func (r *PostgresCategoryRepository) FindByCategoryName(ctx context.Context, name string) (*domain.Category, error) {
	return r.findOne(ctx, selectByNameSQL, name)
}

func (r *PostgresCategoryRepository) findOne(ctx context.Context, query string, arg any) (*domain.Category, error) {
	category := &domain.Category{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		r.log.Errorf("Repository: Failed to look up category by %v: %v", arg, err)
		return nil, fmt.Errorf("could not get category: %w", err)
	}
	return category, nil
}

// Save inserts a category without an id, or updates the row with the given
// id, inserting it under that id when it does not exist.
func (r *PostgresCategoryRepository) Save(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	saved := &domain.Category{}
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if category.ID == 0 {
			return tx.QueryRowContext(ctx, insertCategorySQL, category.Name).Scan(&saved.ID, &saved.Name)
		}
		err := tx.QueryRowContext(ctx, updateCategorySQL, category.ID, category.Name).Scan(&saved.ID, &saved.Name)
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		if err := tx.QueryRowContext(ctx, insertWithIDSQL, category.ID, category.Name).Scan(&saved.ID, &saved.Name); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, advanceSequenceSQL, category.ID)
		return err
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == nameConstraint {
			r.log.Warnf("Repository: Duplicate category name: %s", category.Name)
			return nil, fmt.Errorf("could not save category '%s': %w", category.Name, domain.ErrNameTaken)
		}
		r.log.Errorf("Repository: Failed to save category '%s': %v", category.Name, err)
		return nil, fmt.Errorf("could not save category: %w", err)
	}

	r.log.Infof("Repository: Category saved with ID: %d, Name: %s", saved.ID, saved.Name)
	return saved, nil
}

func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *PostgresCategoryRepository) Delete(ctx context.Context, category *domain.Category) error {
	result, err := r.db.ExecContext(ctx, deleteByIDSQL, category.ID)
	if err != nil {
		r.log.Errorf("Repository: Failed to delete category ID %d: %v", category.ID, err)
		return fmt.Errorf("could not delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not confirm category deletion: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrRecordNotFound
	}

	r.log.Infof("Repository: Category deleted with ID: %d", category.ID)
	return nil
}
