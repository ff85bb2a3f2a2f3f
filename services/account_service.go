package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"faculty-performance-api/models"
)

// Account is the role-independent view of a stored account, safe to return
// to clients. Department is only set for faculty.
type Account struct {
	Role       models.Role `json:"role"`
	ID         string      `json:"id"`
	FullName   string      `json:"full_name"`
	Department string      `json:"department,omitempty"`
	Email      string      `json:"email"`
	CreatedAt  *time.Time  `json:"created_at,omitempty"`
}

// SignupParams carries the fields needed to create an account.
type SignupParams struct {
	ID           string
	Password     string
	SecurityCode string
	FullName     string
	Department   string
	Email        string
}

type accountRecord struct {
	ID           string
	PasswordHash string
	SecurityCode string
	FullName     string
	Department   string
	Email        string
	CreatedAt    *time.Time
}

type accountRepository interface {
	Find(role models.Role, id string) (*accountRecord, error)
	Create(role models.Role, rec *accountRecord) error
	UpdatePassword(role models.Role, id, passwordHash string) error
}

// AccountService handles signup, login and password recovery for both roles.
// Faculty and admin accounts live in separate tables but share this one flow.
type AccountService struct {
	repo accountRepository
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{repo: &gormAccountRepository{db: db}}
}

func newAccountServiceWithRepo(repo accountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// Authenticate checks id and password for the given role. An unknown id and a
// wrong password both come back as ErrInvalidCredentials so the transport
// cannot be used to enumerate account ids.
func (s *AccountService) Authenticate(role models.Role, id, password string) (*Account, error) {
	rec, err := s.repo.Find(role, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPasswordHash(password, rec.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return rec.account(role), nil
}

// Signup creates an account after hashing both the password and the recovery
// security code. Returns ErrDuplicateID if the id is taken.
func (s *AccountService) Signup(role models.Role, p SignupParams) (*Account, error) {
	if _, err := s.repo.Find(role, p.ID); err == nil {
		return nil, ErrDuplicateID
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	passwordHash, err := HashPassword(p.Password)
	if err != nil {
		return nil, err
	}
	codeHash, err := HashPassword(p.SecurityCode)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rec := &accountRecord{
		ID:           p.ID,
		PasswordHash: passwordHash,
		SecurityCode: codeHash,
		FullName:     p.FullName,
		Department:   p.Department,
		Email:        p.Email,
		CreatedAt:    &now,
	}
	if err := s.repo.Create(role, rec); err != nil {
		return nil, err
	}
	return rec.account(role), nil
}

// ResetPassword overwrites the password hash after verifying the security
// code. Unknown id and wrong code are indistinguishable to the caller.
func (s *AccountService) ResetPassword(role models.Role, id, securityCode, newPassword string) error {
	rec, err := s.repo.Find(role, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if !CheckPasswordHash(securityCode, rec.SecurityCode) {
		return ErrInvalidCredentials
	}

	passwordHash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(role, id, passwordHash)
}

// Email looks up the contact address for an account. Used for best-effort
// notifications; NotFound is passed through.
func (s *AccountService) Email(role models.Role, id string) (string, error) {
	rec, err := s.repo.Find(role, id)
	if err != nil {
		return "", err
	}
	return rec.Email, nil
}

func (r *accountRecord) account(role models.Role) *Account {
	return &Account{
		Role:       role,
		ID:         r.ID,
		FullName:   r.FullName,
		Department: r.Department,
		Email:      r.Email,
		CreatedAt:  r.CreatedAt,
	}
}

// HashPassword hashes a secret using bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a secret with its bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

type gormAccountRepository struct {
	db *gorm.DB
}

func (r *gormAccountRepository) Find(role models.Role, id string) (*accountRecord, error) {
	switch role {
	case models.RoleAdmin:
		var admin models.AdminUser
		if err := r.db.Where("admin_id = ?", id).First(&admin).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return &accountRecord{
			ID:           admin.AdminID,
			PasswordHash: admin.PasswordHash,
			SecurityCode: admin.SecurityCode,
			FullName:     admin.FullName,
			Email:        admin.Email,
			CreatedAt:    admin.CreatedAt,
		}, nil
	default:
		var faculty models.FacultyUser
		if err := r.db.Where("login_id = ?", id).First(&faculty).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return &accountRecord{
			ID:           faculty.LoginID,
			PasswordHash: faculty.PasswordHash,
			SecurityCode: faculty.SecurityCode,
			FullName:     faculty.FullName,
			Department:   faculty.Department,
			Email:        faculty.Email,
			CreatedAt:    faculty.CreatedAt,
		}, nil
	}
}

func (r *gormAccountRepository) Create(role models.Role, rec *accountRecord) error {
	switch role {
	case models.RoleAdmin:
		return r.db.Create(&models.AdminUser{
			AdminID:      rec.ID,
			PasswordHash: rec.PasswordHash,
			SecurityCode: rec.SecurityCode,
			FullName:     rec.FullName,
			Email:        rec.Email,
			CreatedAt:    rec.CreatedAt,
		}).Error
	default:
		return r.db.Create(&models.FacultyUser{
			LoginID:      rec.ID,
			PasswordHash: rec.PasswordHash,
			SecurityCode: rec.SecurityCode,
			FullName:     rec.FullName,
			Department:   rec.Department,
			Email:        rec.Email,
			CreatedAt:    rec.CreatedAt,
		}).Error
	}
}

func (r *gormAccountRepository) UpdatePassword(role models.Role, id, passwordHash string) error {
	switch role {
	case models.RoleAdmin:
		return r.db.Model(&models.AdminUser{}).
			Where("admin_id = ?", id).
			Update("password_hash", passwordHash).Error
	default:
		return r.db.Model(&models.FacultyUser{}).
			Where("login_id = ?", id).
			Update("password_hash", passwordHash).Error
	}
}
