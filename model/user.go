package model

type User struct {
	DTO
	Email     string `gorm:"unique;not null" json:"email"`
	FirstName string `gorm:"not null" json:"firstname"`
	LastName  string `gorm:"not null" json:"lastname"`
	Password  string `gorm:"not null" json:"-"`

	// RegistrationKey is assigned once at signup and is one of the three
	// secret components of every ticket key. Never exposed over HTTP.
	RegistrationKey string `gorm:"type:uuid;not null" json:"-"`

	IsStaff  bool `gorm:"default:false" json:"isStaff"`
	IsActive bool `gorm:"default:true" json:"isActive"`

	Orders []Order `gorm:"foreignKey:UserId" json:"-"`
}

type Users []User

type SignupInput struct {
	Email     string `validate:"required,email" json:"email"`
	FirstName string `validate:"required,max=150" json:"firstname"`
	LastName  string `validate:"required,max=150" json:"lastname"`
	Password  string `validate:"required,min=8" json:"password"`
}

type LoginInput struct {
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required" json:"password"`
}
