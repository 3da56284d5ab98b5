package services

import (
	"context"

	"navkar-inquiry/internal/core/domain"
)

// Note: AuthService implementation is in auth_service.go
// Note: InquiryService implementation is in inquiry_service.go

// AuthGateway is the outbound port for authentication calls.
type AuthGateway interface {
	Login(ctx context.Context, username, password string) (*domain.AuthResult, error)
	Register(ctx context.Context, username, password string, role domain.Role) error
}

// InquiryGateway is the outbound port for inquiry record calls.
type InquiryGateway interface {
	ListAll(ctx context.Context) ([]domain.InquiryRecord, error)
	ListMine(ctx context.Context) ([]domain.InquiryRecord, error)
	Create(ctx context.Context, rec *domain.InquiryRecord) (*domain.InquiryRecord, error)
	GetByID(ctx context.Context, id uint) (*domain.InquiryRecord, error)
	Update(ctx context.Context, id uint, rec *domain.InquiryRecord) (*domain.InquiryRecord, error)
	Delete(ctx context.Context, id uint) error
	SetStatus(ctx context.Context, id uint, status domain.InquiryStatus) (*domain.InquiryRecord, error)
}

// SessionStore is the durable session state port.
type SessionStore interface {
	Establish(token string, role domain.Role, displayName string) error
	Clear() error
	Current() domain.Session
}
