package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"faculty-performance-api/models"
	"faculty-performance-api/services"
)

// fakeAccounts satisfies accountService with canned data; credential logic
// itself is covered by the services tests.
type fakeAccounts struct {
	accounts  map[string]*services.Account
	passwords map[string]string
	codes     map[string]string
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{
		accounts:  make(map[string]*services.Account),
		passwords: make(map[string]string),
		codes:     make(map[string]string),
	}
}

func (f *fakeAccounts) key(role models.Role, id string) string { return string(role) + "|" + id }

func (f *fakeAccounts) Authenticate(role models.Role, id, password string) (*services.Account, error) {
	account, ok := f.accounts[f.key(role, id)]
	if !ok || f.passwords[f.key(role, id)] != password {
		return nil, services.ErrInvalidCredentials
	}
	return account, nil
}

func (f *fakeAccounts) Signup(role models.Role, p services.SignupParams) (*services.Account, error) {
	key := f.key(role, p.ID)
	if _, ok := f.accounts[key]; ok {
		return nil, services.ErrDuplicateID
	}
	account := &services.Account{Role: role, ID: p.ID, FullName: p.FullName, Department: p.Department, Email: p.Email}
	f.accounts[key] = account
	f.passwords[key] = p.Password
	f.codes[key] = p.SecurityCode
	return account, nil
}

func (f *fakeAccounts) ResetPassword(role models.Role, id, securityCode, newPassword string) error {
	key := f.key(role, id)
	if _, ok := f.accounts[key]; !ok || f.codes[key] != securityCode {
		return services.ErrInvalidCredentials
	}
	f.passwords[key] = newPassword
	return nil
}

func newAuthRouter(accounts *fakeAccounts) *gin.Engine {
	ctl := &AuthController{accounts: accounts}
	r := gin.New()
	r.POST("/api/faculty/login", ctl.FacultyLogin)
	r.POST("/api/faculty/signup", ctl.FacultySignup)
	r.POST("/api/faculty/reset-password", ctl.FacultyResetPassword)
	r.POST("/api/admin/login", ctl.AdminLogin)
	r.POST("/api/admin/signup", ctl.AdminSignup)
	r.POST("/api/admin/reset-password", ctl.AdminResetPassword)
	return r
}

func seedFaculty(t *testing.T, accounts *fakeAccounts) {
	t.Helper()
	_, err := accounts.Signup(models.RoleFaculty, services.SignupParams{
		ID: "VIT0021", Password: "swordfish", SecurityCode: "blue-falcon",
		FullName: "A. Professor", Department: "CSE", Email: "prof@example.edu",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestFacultyLoginSuccess(t *testing.T) {
	accounts := newFakeAccounts()
	seedFaculty(t, accounts)
	r := newAuthRouter(accounts)

	w := doJSON(t, r, http.MethodPost, "/api/faculty/login", gin.H{
		"login_id": "VIT0021", "password": "swordfish",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body)
	}

	var body struct {
		Message string            `json:"message"`
		Faculty *services.Account `json:"faculty"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Faculty == nil || body.Faculty.ID != "VIT0021" {
		t.Errorf("unexpected body: %s", w.Body)
	}
}

// Unknown id and wrong password must produce byte-identical failures.
func TestLoginFailureShapeDoesNotLeakIDs(t *testing.T) {
	accounts := newFakeAccounts()
	seedFaculty(t, accounts)
	r := newAuthRouter(accounts)

	unknown := doJSON(t, r, http.MethodPost, "/api/faculty/login", gin.H{
		"login_id": "VIT9999", "password": "swordfish",
	})
	wrongPw := doJSON(t, r, http.MethodPost, "/api/faculty/login", gin.H{
		"login_id": "VIT0021", "password": "nope",
	})

	if unknown.Code != http.StatusUnauthorized || wrongPw.Code != http.StatusUnauthorized {
		t.Fatalf("statuses: %d vs %d, want both 401", unknown.Code, wrongPw.Code)
	}
	if unknown.Body.String() != wrongPw.Body.String() {
		t.Errorf("bodies differ: %s vs %s", unknown.Body, wrongPw.Body)
	}
}

func TestFacultySignup(t *testing.T) {
	accounts := newFakeAccounts()
	r := newAuthRouter(accounts)

	payload := gin.H{
		"login_id": "VIT0021", "password": "swordfish", "security_code": "blue-falcon",
		"full_name": "A. Professor", "department": "CSE", "email": "prof@example.edu",
	}

	w := doJSON(t, r, http.MethodPost, "/api/faculty/signup", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("signup: %d %s", w.Code, w.Body)
	}

	w = doJSON(t, r, http.MethodPost, "/api/faculty/signup", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate signup: %d, want 400", w.Code)
	}
}

func TestSignupRejectsBadEmail(t *testing.T) {
	accounts := newFakeAccounts()
	r := newAuthRouter(accounts)

	w := doJSON(t, r, http.MethodPost, "/api/faculty/signup", gin.H{
		"login_id": "VIT0021", "password": "swordfish", "security_code": "blue-falcon",
		"full_name": "A. Professor", "email": "not-an-email",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad email: %d, want 400", w.Code)
	}
}

func TestResetPasswordFlow(t *testing.T) {
	accounts := newFakeAccounts()
	seedFaculty(t, accounts)
	r := newAuthRouter(accounts)

	w := doJSON(t, r, http.MethodPost, "/api/faculty/reset-password", gin.H{
		"faculty_id": "VIT0021", "security_code": "wrong", "new_password": "newpassword",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong code: %d, want 401", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/faculty/reset-password", gin.H{
		"faculty_id": "VIT0021", "security_code": "blue-falcon", "new_password": "newpassword",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("reset: %d %s", w.Code, w.Body)
	}

	w = doJSON(t, r, http.MethodPost, "/api/faculty/login", gin.H{
		"login_id": "VIT0021", "password": "newpassword",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login with new password: %d %s", w.Code, w.Body)
	}
}

func TestAdminLoginUsesAdminTable(t *testing.T) {
	accounts := newFakeAccounts()
	if _, err := accounts.Signup(models.RoleAdmin, services.SignupParams{
		ID: "ADMIN1", Password: "hunter2", SecurityCode: "red-falcon",
		FullName: "The Admin", Email: "admin@example.edu",
	}); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	r := newAuthRouter(accounts)

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", gin.H{
		"admin_id": "ADMIN1", "password": "hunter2",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("admin login: %d %s", w.Code, w.Body)
	}

	// A faculty id is not a valid admin login.
	w = doJSON(t, r, http.MethodPost, "/api/admin/login", gin.H{
		"admin_id": "VIT0021", "password": "swordfish",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("cross-role login: %d, want 401", w.Code)
	}
}

func TestLoginValidatesPayload(t *testing.T) {
	r := newAuthRouter(newFakeAccounts())

	w := doJSON(t, r, http.MethodPost, "/api/faculty/login", gin.H{"login_id": "VIT0021"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing password: %d, want 400", w.Code)
	}
}
