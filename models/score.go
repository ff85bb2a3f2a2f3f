package models

// ScoreSlots mirrors the proof catalogue with one numeric score per
// criterion. Slots are optional; an omitted slot keeps its stored value.
type ScoreSlots struct {
	A1_1 *int `gorm:"column:a1_1" json:"a1_1,omitempty"`
	A1_2 *int `gorm:"column:a1_2" json:"a1_2,omitempty"`
	A1_3 *int `gorm:"column:a1_3" json:"a1_3,omitempty"`
	A1_4 *int `gorm:"column:a1_4" json:"a1_4,omitempty"`
	A1_5 *int `gorm:"column:a1_5" json:"a1_5,omitempty"`
	A1_6 *int `gorm:"column:a1_6" json:"a1_6,omitempty"`

	A2_1 *int `gorm:"column:a2_1" json:"a2_1,omitempty"`
	A2_2 *int `gorm:"column:a2_2" json:"a2_2,omitempty"`
	A2_3 *int `gorm:"column:a2_3" json:"a2_3,omitempty"`
	A2_4 *int `gorm:"column:a2_4" json:"a2_4,omitempty"`
	A2_5 *int `gorm:"column:a2_5" json:"a2_5,omitempty"`
	A2_6 *int `gorm:"column:a2_6" json:"a2_6,omitempty"`
	A2_7 *int `gorm:"column:a2_7" json:"a2_7,omitempty"`
	A2_8 *int `gorm:"column:a2_8" json:"a2_8,omitempty"`
	A2_9 *int `gorm:"column:a2_9" json:"a2_9,omitempty"`

	A3_1 *int `gorm:"column:a3_1" json:"a3_1,omitempty"`
	A3_2 *int `gorm:"column:a3_2" json:"a3_2,omitempty"`
	A3_3 *int `gorm:"column:a3_3" json:"a3_3,omitempty"`
	A3_4 *int `gorm:"column:a3_4" json:"a3_4,omitempty"`
	A3_5 *int `gorm:"column:a3_5" json:"a3_5,omitempty"`
	A3_6 *int `gorm:"column:a3_6" json:"a3_6,omitempty"`
	A3_7 *int `gorm:"column:a3_7" json:"a3_7,omitempty"`
	A3_8 *int `gorm:"column:a3_8" json:"a3_8,omitempty"`
	A3_9 *int `gorm:"column:a3_9" json:"a3_9,omitempty"`

	A4_1 *int `gorm:"column:a4_1" json:"a4_1,omitempty"`
	A4_2 *int `gorm:"column:a4_2" json:"a4_2,omitempty"`
	A4_3 *int `gorm:"column:a4_3" json:"a4_3,omitempty"`
	A4_4 *int `gorm:"column:a4_4" json:"a4_4,omitempty"`
	A4_5 *int `gorm:"column:a4_5" json:"a4_5,omitempty"`
	A4_6 *int `gorm:"column:a4_6" json:"a4_6,omitempty"`

	A5_1 *int `gorm:"column:a5_1" json:"a5_1,omitempty"`
	A5_2 *int `gorm:"column:a5_2" json:"a5_2,omitempty"`
	A5_3 *int `gorm:"column:a5_3" json:"a5_3,omitempty"`
	A5_4 *int `gorm:"column:a5_4" json:"a5_4,omitempty"`
	A5_5 *int `gorm:"column:a5_5" json:"a5_5,omitempty"`
}

// Score holds the raw per-criterion scores an admin assigned to one faculty
// member's submission. Keyed like Submission but stored independently; a
// score may outlive the submission it was entered against.
type Score struct {
	FacultyID string `gorm:"primaryKey;column:faculty_id" json:"faculty_id"`
	Year      int    `gorm:"primaryKey;column:year" json:"year"`
	ScoredBy  string `gorm:"column:scored_by" json:"scored_by"`

	ScoreSlots `gorm:"embedded"`
}

// TableName overrides
func (Score) TableName() string {
	return "admin_scores"
}

// ScoreSlotColumns lists every score slot column in catalogue order.
var ScoreSlotColumns = []string{
	"a1_1", "a1_2", "a1_3", "a1_4", "a1_5", "a1_6",
	"a2_1", "a2_2", "a2_3", "a2_4", "a2_5", "a2_6", "a2_7", "a2_8", "a2_9",
	"a3_1", "a3_2", "a3_3", "a3_4", "a3_5", "a3_6", "a3_7", "a3_8", "a3_9",
	"a4_1", "a4_2", "a4_3", "a4_4", "a4_5", "a4_6",
	"a5_1", "a5_2", "a5_3", "a5_4", "a5_5",
}

func (s *ScoreSlots) slots() []*int {
	return []*int{
		s.A1_1, s.A1_2, s.A1_3, s.A1_4, s.A1_5, s.A1_6,
		s.A2_1, s.A2_2, s.A2_3, s.A2_4, s.A2_5, s.A2_6, s.A2_7, s.A2_8, s.A2_9,
		s.A3_1, s.A3_2, s.A3_3, s.A3_4, s.A3_5, s.A3_6, s.A3_7, s.A3_8, s.A3_9,
		s.A4_1, s.A4_2, s.A4_3, s.A4_4, s.A4_5, s.A4_6,
		s.A5_1, s.A5_2, s.A5_3, s.A5_4, s.A5_5,
	}
}

// Assignments returns the supplied score slots as column -> value.
func (s *ScoreSlots) Assignments() map[string]interface{} {
	values := s.slots()
	out := make(map[string]interface{})
	for i, col := range ScoreSlotColumns {
		if values[i] != nil {
			out[col] = *values[i]
		}
	}
	return out
}
