package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

// MemoryCategoryRepository keeps categories in process memory. It enforces
// the same unique-name constraint as the categories table.
type MemoryCategoryRepository struct {
	mu     sync.RWMutex
	byID   map[int64]domain.Category
	lastID int64
	log    *logrus.Logger
}

func NewMemoryCategoryRepository(logger *logrus.Logger, seed ...domain.Category) *MemoryCategoryRepository {
	r := &MemoryCategoryRepository{
		byID: make(map[int64]domain.Category),
		log:  logger,
	}
	for _, c := range seed {
		r.byID[c.ID] = c
		if c.ID > r.lastID {
			r.lastID = c.ID
		}
	}
	return r
}

var _ domain.CategoryRepository = (*MemoryCategoryRepository)(nil)

func (r *MemoryCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]domain.Category, 0, len(r.byID))
	for _, c := range r.byID {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (r *MemoryCategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &c, nil
}

func (r *MemoryCategoryRepository) FindByCategoryName(ctx context.Context, name string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.byID {
		if c.Name == name {
			found := c
			return &found, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (r *MemoryCategoryRepository) Save(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, c := range r.byID {
		if c.Name == category.Name && id != category.ID {
			return nil, fmt.Errorf("could not save category '%s': %w", category.Name, domain.ErrNameTaken)
		}
	}

	saved := *category
	if saved.ID == 0 {
		r.lastID++
		saved.ID = r.lastID
	} else if saved.ID > r.lastID {
		r.lastID = saved.ID
	}
	r.byID[saved.ID] = saved

	r.log.Infof("Repository(memory): Category saved with ID: %d, Name: %s", saved.ID, saved.Name)
	return &saved, nil
}

func (r *MemoryCategoryRepository) Delete(ctx context.Context, category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[category.ID]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(r.byID, category.ID)

	r.log.Infof("Repository(memory): Category deleted with ID: %d", category.ID)
	return nil
}
