package entity

import "time"

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID       string `gorm:"primaryKey;size:64" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // bcrypt hash
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
}
