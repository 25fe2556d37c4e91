package models

// AdminSentinel is the reserved session identity marking an administrator.
// Registration rejects usernames containing "admin" so a real user can never
// collide with it.
const AdminSentinel = "admin"

type User struct {
	UserID   string `gorm:"primaryKey" json:"user_id"`
	Password string `gorm:"not null" json:"-"`
}

func (User) TableName() string { return "users" }

type Admin struct {
	AdminID  string `gorm:"primaryKey" json:"admin_id"`
	Password string `gorm:"not null" json:"-"`
}

func (Admin) TableName() string { return "admins" }

// RegisterInput - user registration form
type RegisterInput struct {
	UserID    string `json:"user_id" form:"user_id" validate:"required,min=1,max=50"`
	Password  string `json:"password" form:"password" validate:"required,min=1"`
	Password2 string `json:"password2" form:"password2" validate:"required,eqfield=Password"`
}

// LoginInput - user login form
type LoginInput struct {
	UserID   string `json:"user_id" form:"user_id" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// AdminLoginInput - admin login form, separate identifier space
type AdminLoginInput struct {
	AdminID  string `json:"admin_id" form:"admin_id" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// NewAdminInput - admin creation form, same shape as registration
type NewAdminInput struct {
	AdminID   string `json:"admin_id" form:"admin_id" validate:"required,min=1,max=50"`
	Password  string `json:"password" form:"password" validate:"required,min=1"`
	Password2 string `json:"password2" form:"password2" validate:"required,eqfield=Password"`
}

// DeleteUserInput - admin deletes a user by id
type DeleteUserInput struct {
	UserID string `json:"user_id" form:"user_id" validate:"required"`
}
