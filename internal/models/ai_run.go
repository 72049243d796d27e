package models

import (
	"time"

	"github.com/google/uuid"
)

// AIRun is one audit record of a generation attempt. Rows are append-only:
// they are inserted once and never updated or deleted.
type AIRun struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Kind       string    `gorm:"size:32;not null;index" json:"kind"`
	InputJSON  string    `gorm:"column:input_json;not null" json:"input_json"`
	OutputJSON *string   `gorm:"column:output_json" json:"output_json"`
	Model      *string   `gorm:"size:64" json:"model"`
	Tokens     *int      `json:"tokens"`
	Error      *string   `json:"error"`
	CreatedAt  time.Time `json:"created_at"`
}

func (AIRun) TableName() string {
	return "ai_runs"
}
