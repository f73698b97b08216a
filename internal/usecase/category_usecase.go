package usecase

import (
	"context"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

// CategoryService enforces the category invariants on top of a
// domain.CategoryRepository. Failures are the typed errors from the domain
// package; storage failures are returned wrapped.
type CategoryService interface {
	// GetAllCategories fails with *domain.NoContentError when nothing is stored.
	GetAllCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	// DeleteCategory returns a confirmation message naming the deleted id.
	DeleteCategory(ctx context.Context, categoryID int64) (string, error)
	// UpdateCategory overwrites the category stored under categoryID; any id on
	// the input is ignored.
	UpdateCategory(ctx context.Context, category *domain.Category, categoryID int64) (*domain.Category, error)
}

type categoryService struct {
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewCategoryService(repo domain.CategoryRepository, logger *logrus.Logger) CategoryService {
	return &categoryService{
		categoryRepo: repo,
		log:          logger,
	}
}

func (s *categoryService) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	s.log.Debug("Use Case: Listing all categories")

	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		s.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, fmt.Errorf("could not retrieve categories: %w", err)
	}
	if len(categories) == 0 {
		s.log.Warn("Use Case: No categories stored")
		return nil, &domain.NoContentError{}
	}

	s.log.Infof("Use Case: Retrieved %d categories", len(categories))
	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, category *domain.Category) error {
	s.log.Infof("Use Case: Attempting to create category with name '%s'", category.Name)

	_, err := s.categoryRepo.FindByCategoryName(ctx, category.Name)
	switch {
	case err == nil:
		s.log.Warnf("Use Case: Category '%s' already exists", category.Name)
		return &domain.DuplicateError{Name: category.Name}
	case !errors.Is(err, domain.ErrRecordNotFound):
		s.log.Errorf("Use Case: Repository failed to look up category '%s': %v", category.Name, err)
		return fmt.Errorf("could not look up category: %w", err)
	}

	// storage assigns the id
	category.ID = 0
	saved, err := s.categoryRepo.Save(ctx, category)
	if err != nil {
		if errors.Is(err, domain.ErrNameTaken) {
			s.log.Warnf("Use Case: Category '%s' was created concurrently", category.Name)
			return &domain.DuplicateError{Name: category.Name}
		}
		s.log.Errorf("Use Case: Repository failed to create category '%s': %v", category.Name, err)
		return fmt.Errorf("could not create category: %w", err)
	}

	s.log.Infof("Use Case: Category '%s' created with ID %d", saved.Name, saved.ID)
	return nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID int64) (string, error) {
	s.log.Infof("Use Case: Attempting to delete category ID %d", categoryID)

	category, err := s.findByID(ctx, categoryID, "")
	if err != nil {
		return "", err
	}

	if err := s.categoryRepo.Delete(ctx, category); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return "", &domain.NotFoundError{ID: categoryID}
		}
		s.log.Errorf("Use Case: Repository failed to delete category ID %d: %v", categoryID, err)
		return "", fmt.Errorf("could not delete category: %w", err)
	}

	s.log.Infof("Use Case: Category deleted for ID %d", categoryID)
	return fmt.Sprintf("Category with categoryId : %d deleted successfully", categoryID), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, category *domain.Category, categoryID int64) (*domain.Category, error) {
	s.log.Infof("Use Case: Attempting to update category ID %d", categoryID)

	if _, err := s.findByID(ctx, categoryID, "Resource not found"); err != nil {
		return nil, err
	}

	category.ID = categoryID
	saved, err := s.categoryRepo.Save(ctx, category)
	if err != nil {
		if errors.Is(err, domain.ErrNameTaken) {
			s.log.Warnf("Use Case: Cannot rename category ID %d to existing name '%s'", categoryID, category.Name)
			return nil, &domain.DuplicateError{Name: category.Name}
		}
		s.log.Errorf("Use Case: Repository failed to update category ID %d: %v", categoryID, err)
		return nil, fmt.Errorf("could not update category: %w", err)
	}

	s.log.Infof("Use Case: Category updated for ID %d", saved.ID)
	return saved, nil
}

func (s *categoryService) findByID(ctx context.Context, categoryID int64, notFoundMsg string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			s.log.Warnf("Use Case: Category ID %d not found", categoryID)
			return nil, &domain.NotFoundError{ID: categoryID, Message: notFoundMsg}
		}
		s.log.Errorf("Use Case: Repository failed to get category ID %d: %v", categoryID, err)
		return nil, fmt.Errorf("could not get category: %w", err)
	}
	return category, nil
}
