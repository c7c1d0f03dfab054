package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category. Duplicate (name, kind) pairs are
// permitted; the UI discourages them but the store does not forbid them.
func (s *categoryService) CreateCategory(name string, kind models.CategoryKind) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	category := &models.Category{
		Name: name,
		Kind: kind,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// GetCategories retrieves all categories, optionally filtered by kind.
// Ordering is the store default (insertion order in practice).
func (s *categoryService) GetCategories(kind *models.CategoryKind) ([]models.Category, error) {
	base := s.db.Model(&models.Category{})
	if kind != nil {
		base = base.Where("kind = ?", *kind)
	}

	var categories []models.Category
	if err := base.Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// getCategoryByID retrieves a category by ID.
func (s *categoryService) getCategoryByID(categoryID uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrCategoryNotFound,
				fmt.Sprintf("Category %d not found", categoryID))
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// UpdateCategory applies the supplied fields to an existing category. A nil
// field is left unchanged; when neither field is supplied the existing row is
// returned without a write. Changing the kind does not re-classify existing
// transactions, which keep their own kind.
func (s *categoryService) UpdateCategory(categoryID uint, name *string, kind *models.CategoryKind) (*models.Category, error) {
	category, err := s.getCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil {
		if *name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name cannot be empty")
		}
		updates["name"] = *name
	}
	if kind != nil {
		updates["kind"] = *kind
	}

	if len(updates) == 0 {
		return category, nil
	}

	if err := s.db.Model(category).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// DeleteCategory removes a category. The delete is blocked while any
// transaction still references the category; the conflict message carries
// the referencing-transaction count.
func (s *categoryService) DeleteCategory(categoryID uint) error {
	// The reference count and the delete run in one store transaction so a
	// transaction created between the two cannot be orphaned.
	return s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.WithMessage(apperrors.ErrCategoryNotFound,
					fmt.Sprintf("Category %d not found", categoryID))
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var refCount int64
		if err := tx.Model(&models.Transaction{}).
			Where("category_id = ?", categoryID).
			Count(&refCount).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if refCount > 0 {
			return apperrors.WithMessage(apperrors.ErrCategoryInUse,
				fmt.Sprintf("Category is used by %d transaction(s)", refCount))
		}

		if err := tx.Delete(&category).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
