package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"faculty-performance-api/metrics"
	"faculty-performance-api/models"
	"faculty-performance-api/services"
)

type reviewReader interface {
	ListSubmittedFaculty(year *int) ([]services.SubmittedFaculty, error)
	GetProofForScoring(facultyID string, year int) (*models.Submission, error)
}

type scoreWriter interface {
	SubmitScores(facultyID string, year int, scoredBy string, slots models.ScoreSlots) error
}

// AdminController serves the review flow: list submitted faculty, fetch one
// submission's proofs, record scores.
type AdminController struct {
	reviews reviewReader
	scores  scoreWriter
}

func NewAdminController(reviews *services.ReviewService, scores *services.ScoreService) *AdminController {
	return &AdminController{reviews: reviews, scores: scores}
}

type scorePayload struct {
	FacultyID string `json:"faculty_id" binding:"required"`
	Year      int    `json:"year" binding:"required"`
	ScoredBy  string `json:"scored_by" binding:"required"`

	models.ScoreSlots
}

// GetSubmittedFaculty lists distinct faculty ids with at least one final
// submission. An optional ?year=YYYY scopes the list to one review cycle.
func (ctl *AdminController) GetSubmittedFaculty(c *gin.Context) {
	var year *int
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid year"})
			return
		}
		year = &y
	}

	list, err := ctl.reviews.ListSubmittedFaculty(year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetProofByFaculty fetches one faculty member's submission for scoring.
func (ctl *AdminController) GetProofByFaculty(c *gin.Context) {
	facultyID := c.Param("faculty_id")
	year, ok := yearFromQuery(c)
	if !ok {
		return
	}

	proof, err := ctl.reviews.GetProofForScoring(facultyID, year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, proof)
}

// SubmitScores upserts the supplied score slots. The target submission is
// not checked for existence; a score may outlive its submission.
func (ctl *AdminController) SubmitScores(c *gin.Context) {
	var req scorePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := ctl.scores.SubmitScores(req.FacultyID, req.Year, req.ScoredBy, req.ScoreSlots); err != nil {
		respondError(c, err)
		return
	}

	metrics.SubmissionsTotal.WithLabelValues("score").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Scores submitted successfully"})
}
