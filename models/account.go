package models

import "time"

// Role selects which account table an operation targets. The two roles keep
// separate tables (faculty_users / admin_users) but share one service layer.
type Role string

const (
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// FacultyUser is a faculty member's account.
type FacultyUser struct {
	LoginID      string     `gorm:"primaryKey;column:login_id" json:"login_id"`
	PasswordHash string     `gorm:"column:password_hash" json:"-"`
	SecurityCode string     `gorm:"column:security_code" json:"-"`
	FullName     string     `gorm:"column:full_name" json:"full_name"`
	Department   string     `gorm:"column:department" json:"department"`
	Email        string     `gorm:"column:email" json:"email"`
	CreatedAt    *time.Time `gorm:"column:created_at" json:"created_at,omitempty"`
}

// AdminUser is a reviewer/administrator account.
type AdminUser struct {
	AdminID      string     `gorm:"primaryKey;column:admin_id" json:"admin_id"`
	PasswordHash string     `gorm:"column:password_hash" json:"-"`
	SecurityCode string     `gorm:"column:security_code" json:"-"`
	FullName     string     `gorm:"column:full_name" json:"full_name"`
	Email        string     `gorm:"column:email" json:"email"`
	CreatedAt    *time.Time `gorm:"column:created_at" json:"created_at,omitempty"`
}

// TableName overrides
func (FacultyUser) TableName() string {
	return "faculty_users"
}

func (AdminUser) TableName() string {
	return "admin_users"
}
