package services

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"faculty-performance-api/models"
)

type scoreRepository interface {
	Upsert(row *models.Score, assignments map[string]interface{}) error
}

// ScoreService records raw per-criterion scores. Scores are stored as given;
// weighting and totals belong to a reporting layer, not here. A score row is
// not checked against submissions, so it may reference one that was deleted.
type ScoreService struct {
	repo scoreRepository
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{repo: &gormScoreRepository{db: db}}
}

func newScoreServiceWithRepo(repo scoreRepository) *ScoreService {
	return &ScoreService{repo: repo}
}

// SubmitScores upserts the supplied score slots for (faculty_id, year).
// Omitted slots keep their stored values; scored_by is overwritten on every
// call. Each supplied score must be within 0-100.
func (s *ScoreService) SubmitScores(facultyID string, year int, scoredBy string, slots models.ScoreSlots) error {
	if year <= 0 {
		return ErrInvalidYear
	}

	assignments := slots.Assignments()
	for col, v := range assignments {
		score := v.(int)
		if score < 0 || score > 100 {
			return fmt.Errorf("%w: %s=%d", ErrScoreOutOfRange, col, score)
		}
	}
	assignments["scored_by"] = scoredBy

	row := &models.Score{
		FacultyID:  facultyID,
		Year:       year,
		ScoredBy:   scoredBy,
		ScoreSlots: slots,
	}
	return s.repo.Upsert(row, assignments)
}

type gormScoreRepository struct {
	db *gorm.DB
}

func (r *gormScoreRepository) Upsert(row *models.Score, assignments map[string]interface{}) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "faculty_id"}, {Name: "year"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(row).Error
}
