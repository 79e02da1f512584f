package models

import "time"

// Roles a user can register with. A farmer owns crop listings; a buyer
// places orders against them.
const (
	RoleFarmer = "farmer"
	RoleBuyer  = "buyer"
)

// User is an account on the platform. Password holds the bcrypt hash and is
// never serialised.
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:255;not null"  json:"name"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone     string    `gorm:"size:30"            json:"phone"`
	Password  string    `gorm:"size:255;not null"  json:"-"`
	Role      string    `gorm:"size:20;not null"   json:"role"`
	Location  string    `gorm:"size:255"           json:"location"`
	Verified  bool      `gorm:"default:false"      json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsFarmer reports whether the user may own crop listings.
func (u User) IsFarmer() bool { return u.Role == RoleFarmer }
