package domain

import (
	"context"
	"errors"
)

var (
	// ErrRecordNotFound is returned by a CategoryRepository lookup that matched no row.
	ErrRecordNotFound = errors.New("record not found")
	// ErrNameTaken is returned by CategoryRepository.Save when another row already uses the name.
	ErrNameTaken = errors.New("category name already taken")
)

// CategoryRepository is the storage contract CategoryService depends on.
// Any engine honouring it (relational, in-memory) can be substituted.
type CategoryRepository interface {
	// FindAll returns every category ordered by id.
	FindAll(ctx context.Context) ([]Category, error)
	FindByCategoryName(ctx context.Context, name string) (*Category, error)
	FindByID(ctx context.Context, id int64) (*Category, error)
	// Save inserts when category.ID is zero and upserts by id otherwise.
	Save(ctx context.Context, category *Category) (*Category, error)
	Delete(ctx context.Context, category *Category) error
}
