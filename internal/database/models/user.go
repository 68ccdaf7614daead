package models

// User represents a platform account. A user is owned independently of any
// single tenant and may hold memberships in several tenants. Email is stored
// lower-cased and compared case-insensitively.
type User struct {
	BaseModel
	Name         string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"not null;size:255"`
	Role         string `json:"role" gorm:"type:varchar(50);not null;default:'admin'"`

	// Relationships
	Memberships []UserTenant `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
