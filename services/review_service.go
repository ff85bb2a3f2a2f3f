package services

import (
	"gorm.io/gorm"

	"faculty-performance-api/models"
)

// SubmittedFaculty is one entry in the admin review list.
type SubmittedFaculty struct {
	FacultyID string `json:"faculty_id"`
}

type reviewRepository interface {
	DistinctSubmittedFaculty(year *int) ([]SubmittedFaculty, error)
}

// ReviewService serves the admin review flow: enumerate faculty with at
// least one final submission and fetch a single submission for scoring.
type ReviewService struct {
	repo        reviewRepository
	submissions *SubmissionService
}

func NewReviewService(db *gorm.DB, submissions *SubmissionService) *ReviewService {
	return &ReviewService{repo: &gormReviewRepository{db: db}, submissions: submissions}
}

func newReviewServiceWithRepo(repo reviewRepository, submissions *SubmissionService) *ReviewService {
	return &ReviewService{repo: repo, submissions: submissions}
}

// ListSubmittedFaculty returns the distinct faculty ids having at least one
// non-draft submission. Legacy rows with a NULL flag count as final. Without
// a year the set collapses across years; pass a year to scope it.
func (s *ReviewService) ListSubmittedFaculty(year *int) ([]SubmittedFaculty, error) {
	return s.repo.DistinctSubmittedFaculty(year)
}

// GetProofForScoring fetches the submission an admin is about to score.
// Same read contract as SubmissionService.Get.
func (s *ReviewService) GetProofForScoring(facultyID string, year int) (*models.Submission, error) {
	return s.submissions.Get(facultyID, year)
}

type gormReviewRepository struct {
	db *gorm.DB
}

func (r *gormReviewRepository) DistinctSubmittedFaculty(year *int) ([]SubmittedFaculty, error) {
	var list []SubmittedFaculty

	query := "SELECT DISTINCT faculty_id FROM faculty_submissions WHERE (is_draft = FALSE OR is_draft IS NULL)"
	if year != nil {
		if err := r.db.Raw(query+" AND year = ?", *year).Scan(&list).Error; err != nil {
			return nil, err
		}
		return list, nil
	}

	if err := r.db.Raw(query).Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
