package service

import (
	"context"

	"github.com/skinchef/backend/internal/types"
)

// Audit record kinds, one per operation.
const (
	KindMenuGenerate  = "menu_generate"
	KindMenuSwap      = "menu_swap"
	KindSubstitutions = "substitutions"
)

// PlannerService orchestrates the three generation flows. Each request
// runs the same pipeline: validate, compose prompts, invoke the backend
// once, validate the response shape, cross-check safety, and always write
// exactly one audit record before returning.
type PlannerService struct {
	llm   CompletionClient
	audit AuditLogger
}

// NewPlannerService creates a new PlannerService instance. Both
// dependencies are injected; their lifecycle belongs to the caller.
func NewPlannerService(llm CompletionClient, audit AuditLogger) *PlannerService {
	return &PlannerService{
		llm:   llm,
		audit: audit,
	}
}

// GenerateMenu produces a menu plan and shopping list for the requested
// number of days.
func (s *PlannerService) GenerateMenu(ctx context.Context, req *types.GenerateMenuRequest) (*types.MenuResponse, error) {
	if err := ValidateGenerateRequest(req); err != nil {
		s.audit.LogFailure(ctx, KindMenuGenerate, req, err)
		return nil, err
	}

	userPrompt := GenerateMenuPrompt(&req.Profile, req.Days)
	return s.completeMenu(ctx, KindMenuGenerate, req, &req.Profile, userPrompt)
}

// SwapMeal replaces one meal slot of an existing menu and returns the full
// updated menu and shopping list.
func (s *PlannerService) SwapMeal(ctx context.Context, req *types.SwapMealRequest) (*types.MenuResponse, error) {
	if err := ValidateSwapRequest(req); err != nil {
		s.audit.LogFailure(ctx, KindMenuSwap, req, err)
		return nil, err
	}

	userPrompt := SwapMealPrompt(req)
	return s.completeMenu(ctx, KindMenuSwap, req, &req.Profile, userPrompt)
}

// GetSubstitutions returns candidate replacements for an ingredient.
func (s *PlannerService) GetSubstitutions(ctx context.Context, req *types.SubstitutionRequest) (*types.SubstitutionResponse, error) {
	if err := ValidateSubstitutionRequest(req); err != nil {
		s.audit.LogFailure(ctx, KindSubstitutions, req, err)
		return nil, err
	}

	comp, err := s.llm.Complete(ctx, SystemPrompt(), SubstitutionPrompt(req))
	if err != nil {
		s.audit.LogFailure(ctx, KindSubstitutions, req, err)
		return nil, err
	}

	out, err := ParseSubstitutionResponse(comp.Content)
	if err != nil {
		s.audit.LogFailure(ctx, KindSubstitutions, req, err)
		return nil, err
	}

	if err := CheckSubstitutionSafety(out, &req.Profile); err != nil {
		s.audit.LogFailure(ctx, KindSubstitutions, req, err)
		return nil, err
	}

	s.audit.LogSuccess(ctx, KindSubstitutions, req, out, comp.Model, comp.TotalTokens)
	return out, nil
}

// completeMenu runs the shared invoke-parse-check-log tail of the two
// menu-shaped flows.
func (s *PlannerService) completeMenu(ctx context.Context, kind string, input any, profile *types.DietaryProfile, userPrompt string) (*types.MenuResponse, error) {
	comp, err := s.llm.Complete(ctx, SystemPrompt(), userPrompt)
	if err != nil {
		s.audit.LogFailure(ctx, kind, input, err)
		return nil, err
	}

	out, err := ParseMenuResponse(comp.Content)
	if err != nil {
		s.audit.LogFailure(ctx, kind, input, err)
		return nil, err
	}

	if err := CheckMenuSafety(out, profile); err != nil {
		s.audit.LogFailure(ctx, kind, input, err)
		return nil, err
	}

	s.audit.LogSuccess(ctx, kind, input, out, comp.Model, comp.TotalTokens)
	return out, nil
}
