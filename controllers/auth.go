package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"faculty-performance-api/models"
	"faculty-performance-api/services"
	"faculty-performance-api/utils"
)

type accountService interface {
	Authenticate(role models.Role, id, password string) (*services.Account, error)
	Signup(role models.Role, p services.SignupParams) (*services.Account, error)
	ResetPassword(role models.Role, id, securityCode, newPassword string) error
}

// AuthController handles login, signup and password recovery for both roles.
type AuthController struct {
	accounts accountService
}

func NewAuthController(accounts *services.AccountService) *AuthController {
	return &AuthController{accounts: accounts}
}

type facultyLoginRequest struct {
	LoginID  string `json:"login_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type adminLoginRequest struct {
	AdminID  string `json:"admin_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type facultySignupRequest struct {
	LoginID      string `json:"login_id" binding:"required"`
	Password     string `json:"password" binding:"required"`
	SecurityCode string `json:"security_code" binding:"required"`
	FullName     string `json:"full_name" binding:"required"`
	Department   string `json:"department"`
	Email        string `json:"email" binding:"required"`
}

type adminSignupRequest struct {
	AdminID      string `json:"admin_id" binding:"required"`
	Password     string `json:"password" binding:"required"`
	SecurityCode string `json:"security_code" binding:"required"`
	FullName     string `json:"full_name" binding:"required"`
	Email        string `json:"email" binding:"required"`
}

type facultyResetRequest struct {
	FacultyID    string `json:"faculty_id" binding:"required"`
	SecurityCode string `json:"security_code" binding:"required"`
	NewPassword  string `json:"new_password" binding:"required"`
}

type adminResetRequest struct {
	AdminID      string `json:"admin_id" binding:"required"`
	SecurityCode string `json:"security_code" binding:"required"`
	NewPassword  string `json:"new_password" binding:"required"`
}

// FacultyLogin handles faculty authentication.
func (ctl *AuthController) FacultyLogin(c *gin.Context) {
	var req facultyLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	account, err := ctl.accounts.Authenticate(models.RoleFaculty, utils.SanitizeInput(req.LoginID), req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"faculty": account,
	})
}

// AdminLogin handles admin authentication.
func (ctl *AuthController) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	account, err := ctl.accounts.Authenticate(models.RoleAdmin, utils.SanitizeInput(req.AdminID), req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Admin login successful",
		"admin":   account,
	})
}

// FacultySignup creates a faculty account.
func (ctl *AuthController) FacultySignup(c *gin.Context) {
	var req facultySignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	req.Email = utils.SanitizeInput(req.Email)
	if !utils.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
		return
	}

	_, err := ctl.accounts.Signup(models.RoleFaculty, services.SignupParams{
		ID:           utils.SanitizeInput(req.LoginID),
		Password:     req.Password,
		SecurityCode: req.SecurityCode,
		FullName:     req.FullName,
		Department:   req.Department,
		Email:        req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Faculty account created successfully"})
}

// AdminSignup creates an admin account.
func (ctl *AuthController) AdminSignup(c *gin.Context) {
	var req adminSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	req.Email = utils.SanitizeInput(req.Email)
	if !utils.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
		return
	}

	_, err := ctl.accounts.Signup(models.RoleAdmin, services.SignupParams{
		ID:           utils.SanitizeInput(req.AdminID),
		Password:     req.Password,
		SecurityCode: req.SecurityCode,
		FullName:     req.FullName,
		Email:        req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Admin account created successfully"})
}

// FacultyResetPassword overwrites a faculty password after verifying the
// security code.
func (ctl *AuthController) FacultyResetPassword(c *gin.Context) {
	var req facultyResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	err := ctl.accounts.ResetPassword(models.RoleFaculty, utils.SanitizeInput(req.FacultyID), req.SecurityCode, req.NewPassword)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
}

// AdminResetPassword overwrites an admin password after verifying the
// security code.
func (ctl *AuthController) AdminResetPassword(c *gin.Context) {
	var req adminResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	err := ctl.accounts.ResetPassword(models.RoleAdmin, utils.SanitizeInput(req.AdminID), req.SecurityCode, req.NewPassword)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Admin password reset successful"})
}
