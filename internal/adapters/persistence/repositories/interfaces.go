package repositories

import (
	"context"

	"navkar-inquiry/internal/adapters/persistence/models"
)

// UserRepository defines user data access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// InquiryRepository defines inquiry data access
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	GetByID(ctx context.Context, id uint) (*models.Inquiry, error)
	ListAll(ctx context.Context) ([]models.Inquiry, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Inquiry, error)
	Update(ctx context.Context, inquiry *models.Inquiry) error
	Delete(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}
