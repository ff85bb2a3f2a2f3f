package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"faculty-performance-api/models"
)

type submissionRepository interface {
	Get(facultyID string, year int) (*models.Submission, error)
	Upsert(row *models.Submission, assignments map[string]interface{}) error
	Delete(facultyID string, year int) error
}

// SubmissionService drives the draft -> submit -> delete lifecycle of a
// faculty member's proof submission. All writes go through a single-statement
// upsert on (faculty_id, year), so concurrent saves are last-writer-wins per
// column and can never produce a duplicate row.
type SubmissionService struct {
	repo submissionRepository
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{repo: &gormSubmissionRepository{db: db}}
}

func newSubmissionServiceWithRepo(repo submissionRepository) *SubmissionService {
	return &SubmissionService{repo: repo}
}

// SaveDraft upserts the supplied slots with is_draft=true. Omitted slots keep
// their stored values. Saving over an already-final submission is refused;
// the existence check and the upsert are separate statements, so a racing
// Submit can still win in between (accepted, last-writer-wins).
func (s *SubmissionService) SaveDraft(facultyID string, year int, slots models.ProofSlots) error {
	if year <= 0 {
		return ErrInvalidYear
	}

	existing, err := s.repo.Get(facultyID, year)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if existing != nil && !existing.IsDraft {
		return ErrSubmissionFinal
	}

	return s.upsert(facultyID, year, slots, true)
}

// Submit upserts the supplied slots and forces is_draft=false. Re-submitting
// a final row is allowed and overwrites supplied slots, which keeps the call
// idempotent.
func (s *SubmissionService) Submit(facultyID string, year int, slots models.ProofSlots) error {
	if year <= 0 {
		return ErrInvalidYear
	}
	return s.upsert(facultyID, year, slots, false)
}

// Delete removes the submission for the exact key. Deleting a missing row is
// a no-op, not an error.
func (s *SubmissionService) Delete(facultyID string, year int) error {
	if year <= 0 {
		return ErrInvalidYear
	}
	return s.repo.Delete(facultyID, year)
}

// Get returns the submission for the key or ErrNotFound.
func (s *SubmissionService) Get(facultyID string, year int) (*models.Submission, error) {
	if year <= 0 {
		return nil, ErrInvalidYear
	}
	return s.repo.Get(facultyID, year)
}

func (s *SubmissionService) upsert(facultyID string, year int, slots models.ProofSlots, draft bool) error {
	row := &models.Submission{
		FacultyID:  facultyID,
		Year:       year,
		IsDraft:    draft,
		ProofSlots: slots,
	}
	assignments := slots.Assignments()
	assignments["is_draft"] = draft
	return s.repo.Upsert(row, assignments)
}

type gormSubmissionRepository struct {
	db *gorm.DB
}

func (r *gormSubmissionRepository) Get(facultyID string, year int) (*models.Submission, error) {
	var sub models.Submission
	err := r.db.Where("faculty_id = ? AND year = ?", facultyID, year).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *gormSubmissionRepository) Upsert(row *models.Submission, assignments map[string]interface{}) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "faculty_id"}, {Name: "year"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(row).Error
}

func (r *gormSubmissionRepository) Delete(facultyID string, year int) error {
	return r.db.Where("faculty_id = ? AND year = ?", facultyID, year).
		Delete(&models.Submission{}).Error
}
