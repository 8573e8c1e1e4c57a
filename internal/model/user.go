package model

// User is an account created by registration or Google sign-in. Accounts are
// never deleted; profile fields are mutable through PATCH /users/:userId.
// swagger:model User
type User struct {
	BaseModel
	Name          string  `gorm:"size:100;not null" json:"name"`
	Email         string  `gorm:"size:100;unique;not null" json:"email"`
	Password      string  `gorm:"size:100" json:"-"`
	GoogleID      *string `gorm:"size:100;unique" json:"googleId,omitempty"`
	Age           *int    `json:"age,omitempty"`
	Bio           string  `gorm:"size:500" json:"bio,omitempty"`
	ProfilePicURL string  `gorm:"size:255" json:"profilePicUrl,omitempty"`
}

func (User) TableName() string {
	return "users"
}
