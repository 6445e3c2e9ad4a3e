package models

import "time"

// UserRole distinguishes the four account types in the marketplace.
type UserRole string

const (
	RoleUser   UserRole = "USER"
	RoleVendor UserRole = "VENDOR"
	RoleAdmin  UserRole = "ADMIN"
	RoleRider  UserRole = "RIDER"
)

// User represents an account row. The dispatch endpoints never require one;
// users only back the auth endpoints and the vendor/rider FK columns.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(50)"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=2,max=100"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(100)" validate:"required,email"`
	Password  string    `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Phone     string    `json:"phone,omitempty" gorm:"type:varchar(20)"`
	Role      UserRole  `json:"role" gorm:"type:varchar(10);default:USER"`
	CreatedAt time.Time `json:"created_at"`
}
