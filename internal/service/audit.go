package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skinchef/backend/internal/models"
)

// AuditLogger records generation attempts. Implementations must never
// return or panic past their own boundary: audit logging is best-effort
// and must not affect the caller's response.
type AuditLogger interface {
	LogSuccess(ctx context.Context, kind string, input, output any, model string, tokens int)
	LogFailure(ctx context.Context, kind string, input any, runErr error)
}

// AuditService persists AIRun records through gorm.
type AuditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditService instance.
func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// LogSuccess records a completed generation attempt with its output
// payload, model identifier and token usage. A marshal failure must not
// cost the record; the failure lands in the error column instead.
func (s *AuditService) LogSuccess(ctx context.Context, kind string, input, output any, model string, tokens int) {
	inputJSON, inputErr := marshalPayload(kind, "input", input)
	outputJSON, outputErr := marshalPayload(kind, "output", output)

	run := models.AIRun{
		ID:        uuid.New(),
		Kind:      kind,
		InputJSON: inputJSON,
		Model:     &model,
		Tokens:    &tokens,
	}
	if outputErr == nil {
		run.OutputJSON = &outputJSON
	}
	if inputErr != nil || outputErr != nil {
		marshalErr := inputErr
		if marshalErr == nil {
			marshalErr = outputErr
		}
		errText := marshalErr.Error()
		run.Error = &errText
	}
	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		log.Printf("Error logging AI run: %v", err)
	}
}

// LogFailure records a failed generation attempt with the error detail and
// no output payload.
func (s *AuditService) LogFailure(ctx context.Context, kind string, input any, runErr error) {
	inputJSON, _ := marshalPayload(kind, "input", input)

	errText := runErr.Error()
	run := models.AIRun{
		ID:        uuid.New(),
		Kind:      kind,
		InputJSON: inputJSON,
		Error:     &errText,
	}
	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		log.Printf("Error logging AI run: %v", err)
	}
}

func marshalPayload(kind, which string, payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error logging AI run: failed to marshal %s for %s: %v", which, kind, err)
		return "", fmt.Errorf("failed to marshal %s: %w", which, err)
	}
	return string(data), nil
}
