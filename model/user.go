package model

import "time"

type User struct {
	DTO
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Phone    string `gorm:"not null" json:"phone"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:student" json:"userType"`

	// Owner-only fields, empty for students and admins.
	NidNumber *string `json:"nidNumber,omitempty"`
	Address   *string `json:"address,omitempty"`

	EmailVerified bool `gorm:"default:false" json:"emailVerified"`
	IsActive      bool `gorm:"default:true" json:"isActive"`
}

type Users []User

type RegisterUserInput struct {
	Name            string `validate:"required" json:"name"`
	Email           string `validate:"required,email" json:"email"`
	Password        string `validate:"required,min=6" json:"password"`
	ConfirmPassword string `validate:"required" json:"confirmPassword"`
	Phone           string `validate:"required" json:"phone"`
	UserType        string `validate:"required" json:"userType"`
	NidNumber       string `json:"nidNumber"`
	Address         string `json:"address"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type PasswordResetToken struct {
	DTO
	UserId    uint      `gorm:"not null" json:"userId"`
	Token     string    `gorm:"type:varchar(255);not null;unique" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	User      User      `gorm:"foreignKey:UserId" json:"user"`
}

type EmailVerificationToken struct {
	DTO
	UserId    uint      `gorm:"not null" json:"userId"`
	Token     string    `gorm:"type:varchar(255);not null;unique" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	User      User      `gorm:"foreignKey:UserId" json:"user"`
}

type FilterUser struct {
	Pagination
	SearchKey string  `json:"searchKey"`
	Role      *string `json:"role"`
	Active    *bool   `json:"active"`
}

type UserStats struct {
	TotalUsers int64 `json:"totalUsers"`
	Students   int64 `json:"students"`
	Owners     int64 `json:"owners"`
	Admins     int64 `json:"admins"`
}
