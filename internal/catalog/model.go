package catalog

import "time"

// Revision is one saved state of a level document. Revisions are never
// rewritten; every save appends a new row.
type Revision struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	LevelNumber int       `gorm:"index;not null" json:"levelNumber"`
	Author      string    `gorm:"not null" json:"author"`
	Document    []byte    `gorm:"type:jsonb" json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}

type RevisionSummary struct {
	ID          string    `json:"id"`
	LevelNumber int       `json:"levelNumber"`
	Author      string    `json:"author"`
	CreatedAt   time.Time `json:"createdAt"`
}
