package repositories

import (
	"context"

	"navkar-inquiry/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// inquiryRepository implements InquiryRepository interface
type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository creates a new inquiry repository
func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

// Create creates a new inquiry
func (r *inquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

// GetByID gets an inquiry by ID
func (r *inquiryRepository) GetByID(ctx context.Context, id uint) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&inquiry).Error
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// ListAll lists every inquiry across all owners
func (r *inquiryRepository) ListAll(ctx context.Context) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	if err := r.db.WithContext(ctx).Order("id").Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}

// ListByUser lists inquiries owned by a user
func (r *inquiryRepository) ListByUser(ctx context.Context, userID uint) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&inquiries).Error
	if err != nil {
		return nil, err
	}
	return inquiries, nil
}

// Update saves an inquiry
func (r *inquiryRepository) Update(ctx context.Context, inquiry *models.Inquiry) error {
	return r.db.WithContext(ctx).Save(inquiry).Error
}

// Delete removes an inquiry by ID
func (r *inquiryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Inquiry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatus counts inquiries in a given status
func (r *inquiryRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Inquiry{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
