package controllers

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"faculty-performance-api/config"
	"faculty-performance-api/metrics"
	"faculty-performance-api/models"
	"faculty-performance-api/services"
)

type submissionLifecycle interface {
	SaveDraft(facultyID string, year int, slots models.ProofSlots) error
	Submit(facultyID string, year int, slots models.ProofSlots) error
	Delete(facultyID string, year int) error
	Get(facultyID string, year int) (*models.Submission, error)
}

type accountDirectory interface {
	Email(role models.Role, id string) (string, error)
}

// FacultyController exposes the submission lifecycle to its owning faculty
// member.
type FacultyController struct {
	submissions submissionLifecycle
	accounts    accountDirectory
	sendMail    func(to []string, subject, html string) error
}

func NewFacultyController(submissions *services.SubmissionService, accounts *services.AccountService) *FacultyController {
	return &FacultyController{
		submissions: submissions,
		accounts:    accounts,
		sendMail:    config.SendMail,
	}
}

// submissionPayload binds the composite key plus any subset of the 35 proof
// slots. Unknown JSON keys are dropped by the typed binding, so client input
// never chooses column names.
type submissionPayload struct {
	FacultyID string `json:"faculty_id" binding:"required"`
	Year      int    `json:"year" binding:"required"`

	models.ProofSlots
}

// SaveDraft stores the supplied slots with the draft flag set, leaving the
// submission editable.
func (ctl *FacultyController) SaveDraft(c *gin.Context) {
	var req submissionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := ctl.submissions.SaveDraft(req.FacultyID, req.Year, req.ProofSlots); err != nil {
		respondError(c, err)
		return
	}

	metrics.SubmissionsTotal.WithLabelValues("save_draft").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Draft saved successfully"})
}

// SubmitProof finalizes the submission. The stored row keeps previously
// saved slots that this request omits.
func (ctl *FacultyController) SubmitProof(c *gin.Context) {
	var req submissionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := ctl.submissions.Submit(req.FacultyID, req.Year, req.ProofSlots); err != nil {
		respondError(c, err)
		return
	}

	ctl.notifySubmitted(req.FacultyID, req.Year)

	metrics.SubmissionsTotal.WithLabelValues("submit").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Proof submission successful"})
}

// DeleteSubmission removes the submission for the exact key. Deleting a key
// with no row still succeeds.
func (ctl *FacultyController) DeleteSubmission(c *gin.Context) {
	facultyID := c.Param("faculty_id")
	year, ok := yearFromQuery(c)
	if !ok {
		return
	}

	if err := ctl.submissions.Delete(facultyID, year); err != nil {
		respondError(c, err)
		return
	}

	metrics.SubmissionsTotal.WithLabelValues("delete").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Submission deleted"})
}

// GetProof returns the stored submission so the owner can resume editing.
func (ctl *FacultyController) GetProof(c *gin.Context) {
	facultyID := c.Param("faculty_id")
	year, ok := yearFromQuery(c)
	if !ok {
		return
	}

	submission, err := ctl.submissions.Get(facultyID, year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

// notifySubmitted sends a best-effort confirmation mail. Delivery problems
// are logged and never fail the submission.
func (ctl *FacultyController) notifySubmitted(facultyID string, year int) {
	email, err := ctl.accounts.Email(models.RoleFaculty, facultyID)
	if err != nil || email == "" {
		return
	}

	subject := fmt.Sprintf("Proof submission received for %d", year)
	html := fmt.Sprintf(
		"<p>Your proof submission for the %d review cycle has been received and is now final.</p><p>Faculty ID: %s</p>",
		year,
		template.HTMLEscapeString(facultyID),
	)
	if err := ctl.sendMail([]string{email}, subject, html); err != nil {
		log.Printf("submission mail to %s failed: %v", facultyID, err)
	}
}

// yearFromQuery parses the mandatory year query parameter, writing the 400
// response itself when the value is missing or not an integer.
func yearFromQuery(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid year"})
		return 0, false
	}
	return year, true
}
