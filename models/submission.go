package models

// ProofSlots is the fixed catalogue of proof-link fields. Five sections with
// 6, 9, 9, 6 and 5 slots; every slot is an optional URL string. Requests bind
// into this struct, so only these columns can ever reach the store.
type ProofSlots struct {
	L1_1 *string `gorm:"column:l1_1" json:"l1_1,omitempty"`
	L1_2 *string `gorm:"column:l1_2" json:"l1_2,omitempty"`
	L1_3 *string `gorm:"column:l1_3" json:"l1_3,omitempty"`
	L1_4 *string `gorm:"column:l1_4" json:"l1_4,omitempty"`
	L1_5 *string `gorm:"column:l1_5" json:"l1_5,omitempty"`
	L1_6 *string `gorm:"column:l1_6" json:"l1_6,omitempty"`

	L2_1 *string `gorm:"column:l2_1" json:"l2_1,omitempty"`
	L2_2 *string `gorm:"column:l2_2" json:"l2_2,omitempty"`
	L2_3 *string `gorm:"column:l2_3" json:"l2_3,omitempty"`
	L2_4 *string `gorm:"column:l2_4" json:"l2_4,omitempty"`
	L2_5 *string `gorm:"column:l2_5" json:"l2_5,omitempty"`
	L2_6 *string `gorm:"column:l2_6" json:"l2_6,omitempty"`
	L2_7 *string `gorm:"column:l2_7" json:"l2_7,omitempty"`
	L2_8 *string `gorm:"column:l2_8" json:"l2_8,omitempty"`
	L2_9 *string `gorm:"column:l2_9" json:"l2_9,omitempty"`

	L3_1 *string `gorm:"column:l3_1" json:"l3_1,omitempty"`
	L3_2 *string `gorm:"column:l3_2" json:"l3_2,omitempty"`
	L3_3 *string `gorm:"column:l3_3" json:"l3_3,omitempty"`
	L3_4 *string `gorm:"column:l3_4" json:"l3_4,omitempty"`
	L3_5 *string `gorm:"column:l3_5" json:"l3_5,omitempty"`
	L3_6 *string `gorm:"column:l3_6" json:"l3_6,omitempty"`
	L3_7 *string `gorm:"column:l3_7" json:"l3_7,omitempty"`
	L3_8 *string `gorm:"column:l3_8" json:"l3_8,omitempty"`
	L3_9 *string `gorm:"column:l3_9" json:"l3_9,omitempty"`

	L4_1 *string `gorm:"column:l4_1" json:"l4_1,omitempty"`
	L4_2 *string `gorm:"column:l4_2" json:"l4_2,omitempty"`
	L4_3 *string `gorm:"column:l4_3" json:"l4_3,omitempty"`
	L4_4 *string `gorm:"column:l4_4" json:"l4_4,omitempty"`
	L4_5 *string `gorm:"column:l4_5" json:"l4_5,omitempty"`
	L4_6 *string `gorm:"column:l4_6" json:"l4_6,omitempty"`

	L5_1 *string `gorm:"column:l5_1" json:"l5_1,omitempty"`
	L5_2 *string `gorm:"column:l5_2" json:"l5_2,omitempty"`
	L5_3 *string `gorm:"column:l5_3" json:"l5_3,omitempty"`
	L5_4 *string `gorm:"column:l5_4" json:"l5_4,omitempty"`
	L5_5 *string `gorm:"column:l5_5" json:"l5_5,omitempty"`
}

// Submission is one faculty member's proof submission for a year. At most one
// row exists per (faculty_id, year); saves go through an upsert on that key.
type Submission struct {
	FacultyID string `gorm:"primaryKey;column:faculty_id" json:"faculty_id"`
	Year      int    `gorm:"primaryKey;column:year" json:"year"`
	IsDraft   bool   `gorm:"column:is_draft" json:"is_draft"`

	ProofSlots `gorm:"embedded"`
}

// TableName overrides
func (Submission) TableName() string {
	return "faculty_submissions"
}

// ProofSlotColumns lists every proof slot column in catalogue order.
var ProofSlotColumns = []string{
	"l1_1", "l1_2", "l1_3", "l1_4", "l1_5", "l1_6",
	"l2_1", "l2_2", "l2_3", "l2_4", "l2_5", "l2_6", "l2_7", "l2_8", "l2_9",
	"l3_1", "l3_2", "l3_3", "l3_4", "l3_5", "l3_6", "l3_7", "l3_8", "l3_9",
	"l4_1", "l4_2", "l4_3", "l4_4", "l4_5", "l4_6",
	"l5_1", "l5_2", "l5_3", "l5_4", "l5_5",
}

func (p *ProofSlots) slots() []*string {
	return []*string{
		p.L1_1, p.L1_2, p.L1_3, p.L1_4, p.L1_5, p.L1_6,
		p.L2_1, p.L2_2, p.L2_3, p.L2_4, p.L2_5, p.L2_6, p.L2_7, p.L2_8, p.L2_9,
		p.L3_1, p.L3_2, p.L3_3, p.L3_4, p.L3_5, p.L3_6, p.L3_7, p.L3_8, p.L3_9,
		p.L4_1, p.L4_2, p.L4_3, p.L4_4, p.L4_5, p.L4_6,
		p.L5_1, p.L5_2, p.L5_3, p.L5_4, p.L5_5,
	}
}

// Assignments returns the supplied slots as column -> value, keeping omitted
// slots out so an upsert leaves their stored values untouched.
func (p *ProofSlots) Assignments() map[string]interface{} {
	values := p.slots()
	out := make(map[string]interface{})
	for i, col := range ProofSlotColumns {
		if values[i] != nil {
			out[col] = *values[i]
		}
	}
	return out
}
