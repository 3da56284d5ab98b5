package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents users table
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:20;default:'USER'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Inquiry represents inquiries table. JSON tags follow the wire contract
// of the inquiry API (camelCase field names).
type Inquiry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"-"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	MobileNumber string    `gorm:"size:10;not null" json:"mobileNumber"`
	Email        string    `gorm:"size:100;not null" json:"email"`
	Address      string    `gorm:"size:255;not null" json:"address"`
	WorkType     string    `gorm:"size:100;not null" json:"workType"`
	LoanType     string    `gorm:"size:50;not null" json:"loanType"`
	AnnualIncome float64   `gorm:"not null" json:"annualIncome"`
	PastLoan     bool      `gorm:"default:false" json:"pastLoan"`
	PanCard      string    `gorm:"size:10;not null" json:"panCard"`
	Status       string    `gorm:"size:20;default:'PENDING'" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}

// AutoMigrate creates tables if they don't exist
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Inquiry{},
	)
}
