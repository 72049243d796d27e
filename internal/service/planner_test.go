package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/skinchef/backend/internal/models"
	"github.com/skinchef/backend/internal/types"
)

type stubCompletionClient struct {
	completion *Completion
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (s *stubCompletionClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (*Completion, error) {
	s.calls++
	s.lastSystem = systemPrompt
	s.lastUser = userPrompt
	if s.err != nil {
		return nil, s.err
	}
	return s.completion, nil
}

func setupPlanner(t *testing.T, stub *stubCompletionClient) (*PlannerService, *gorm.DB) {
	t.Helper()
	db := setupAuditDB(t)
	return NewPlannerService(stub, NewAuditService(db)), db
}

func auditRuns(t *testing.T, db *gorm.DB) []models.AIRun {
	t.Helper()
	var runs []models.AIRun
	require.NoError(t, db.Find(&runs).Error)
	return runs
}

func generateRequest() *types.GenerateMenuRequest {
	return &types.GenerateMenuRequest{
		UserID: "u1",
		Profile: types.DietaryProfile{
			BudgetEURWeek: 60,
			Diners:        2,
			MealsPerDay:   2,
			Days:          3,
			Allergies:     []string{"gluten"},
			Diet:          "vegana",
		},
		Days: 3,
	}
}

func swapRequest() *types.SwapMealRequest {
	return &types.SwapMealRequest{
		UserID:   "u1",
		Profile:  validProfile(),
		Menu:     sampleMenuResponse().Menu,
		DayIndex: 1,
		MealKey:  "dinner",
	}
}

func substitutionRequest() *types.SubstitutionRequest {
	return &types.SubstitutionRequest{
		UserID:     "u1",
		Profile:    validProfile(),
		Ingredient: "leche",
		Reason:     "alergia",
	}
}

func TestGenerateMenuRoundTrip(t *testing.T) {
	stub := &stubCompletionClient{completion: &Completion{
		Content:     sampleMenuJSON(t),
		Model:       "gpt-4o-mini",
		TotalTokens: 2048,
	}}
	planner, db := setupPlanner(t, stub)

	req := generateRequest()
	resp, err := planner.GenerateMenu(context.Background(), req)
	require.NoError(t, err)

	// The validated payload is returned field-for-field.
	assert.Equal(t, sampleMenuResponse(), resp)
	assert.Equal(t, 1, stub.calls)

	// The system prompt carries the absolute rules on every call.
	assert.Contains(t, stub.lastSystem, "REGLAS ABSOLUTAS")
	assert.Contains(t, stub.lastUser, "Genera un menú para 3 días")
	assert.Contains(t, stub.lastUser, "Dieta: vegana")

	runs := auditRuns(t, db)
	require.Len(t, runs, 1)
	run := runs[0]
	assert.Equal(t, KindMenuGenerate, run.Kind)
	assert.Contains(t, run.InputJSON, `"gluten"`)
	require.NotNil(t, run.OutputJSON)
	assert.JSONEq(t, sampleMenuJSON(t), *run.OutputJSON)
	require.NotNil(t, run.Tokens)
	assert.Equal(t, 2048, *run.Tokens)
	assert.Nil(t, run.Error)
}

func TestGenerateMenuBackendFailure(t *testing.T) {
	stub := &stubCompletionClient{err: &GenerationError{Message: "API request failed with status 503"}}
	planner, db := setupPlanner(t, stub)

	resp, err := planner.GenerateMenu(context.Background(), generateRequest())
	assert.Nil(t, resp)

	var gErr *GenerationError
	require.ErrorAs(t, err, &gErr)

	runs := auditRuns(t, db)
	require.Len(t, runs, 1)
	assert.Nil(t, runs[0].OutputJSON)
	require.NotNil(t, runs[0].Error)
	assert.Contains(t, *runs[0].Error, "503")
}

func TestGenerateMenuMalformedOutput(t *testing.T) {
	stub := &stubCompletionClient{completion: &Completion{Content: "Aquí tienes tu menú: pasta."}}
	planner, db := setupPlanner(t, stub)

	_, err := planner.GenerateMenu(context.Background(), generateRequest())

	var mErr *MalformedOutputError
	require.ErrorAs(t, err, &mErr)
	var gErr *GenerationError
	assert.NotErrorAs(t, err, &gErr)

	runs := auditRuns(t, db)
	require.Len(t, runs, 1)
	assert.Nil(t, runs[0].OutputJSON)
	require.NotNil(t, runs[0].Error)
}

func TestGenerateMenuSafetyViolation(t *testing.T) {
	stub := &stubCompletionClient{completion: &Completion{Content: sampleMenuJSON(t)}}
	planner, db := setupPlanner(t, stub)

	req := generateRequest()
	req.Profile.Allergies = []string{"huevo"}

	_, err := planner.GenerateMenu(context.Background(), req)

	var sErr *SafetyError
	require.ErrorAs(t, err, &sErr)

	runs := auditRuns(t, db)
	require.Len(t, runs, 1)
	assert.Nil(t, runs[0].OutputJSON)
	require.NotNil(t, runs[0].Error)
	assert.Contains(t, *runs[0].Error, "safety violation")
}

func TestGenerateMenuValidationFailure(t *testing.T) {
	stub := &stubCompletionClient{}
	planner, db := setupPlanner(t, stub)

	req := generateRequest()
	req.Days = 0

	_, err := planner.GenerateMenu(context.Background(), req)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	// The backend is never called, but the attempt is still recorded.
	assert.Zero(t, stub.calls)
	assert.Len(t, auditRuns(t, db), 1)
}

func TestSwapMeal(t *testing.T) {
	stub := &stubCompletionClient{completion: &Completion{
		Content:     sampleMenuJSON(t),
		Model:       "gpt-4o-mini",
		TotalTokens: 900,
	}}
	planner, db := setupPlanner(t, stub)

	req := swapRequest()
	resp, err := planner.SwapMeal(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, sampleMenuResponse(), resp)

	assert.Contains(t, stub.lastUser, `Día 2, comida "dinner"`)
	assert.Contains(t, stub.lastUser, "Lentejas estofadas")
	assert.Contains(t, stub.lastSystem, "REGLAS ABSOLUTAS")

	runs := auditRuns(t, db)
	require.Len(t, runs, 1)
	assert.Equal(t, KindMenuSwap, runs[0].Kind)
}

func TestSwapMealRejectsMalformedMenu(t *testing.T) {
	stub := &stubCompletionClient{}
	planner, db := setupPlanner(t, stub)

	req := swapRequest()
	req.Menu.Days = nil

	_, err := planner.SwapMeal(context.Background(), req)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "menu", vErr.Field)
	assert.Zero(t, stub.calls)
	assert.Len(t, auditRuns(t, db), 1)
}

func TestGetSubstitutions(t *testing.T) {
	stub := &stubCompletionClient{completion: &Completion{
		Content:     `{"substitutions":[{"name":"bebida de avena","notes":"usar en la misma proporción"},{"name":"bebida de arroz","notes":"más ligera"},{"name":"yogur natural","notes":"para salsas"}]}`,
		Model:       "gpt-4o-mini",
		TotalTokens: 150,
	}}
	planner, db := setupPlanner(t, stub)

	req := substitutionRequest()
	resp, err := planner.GetSubstitutions(context.Background(), req)
	require.NoError(t, err)

	require.NotEmpty(t, resp.Substitutions)
	for _, sub := range resp.Substitutions {
		assert.NotEmpty(t, sub.Name)
		assert.NotEmpty(t, sub.Notes)
	}

	assert.Contains(t, stub.lastUser, "Ingrediente a sustituir: leche")
	assert.Contains(t, stub.lastUser, "Razón: alergia")

	runs := auditRuns(t, db)
	require.Len(t, runs, 1)
	assert.Equal(t, KindSubstitutions, runs[0].Kind)
	require.NotNil(t, runs[0].OutputJSON)
}

func TestGetSubstitutionsBackendFailure(t *testing.T) {
	stub := &stubCompletionClient{err: &GenerationError{Message: "no response from API"}}
	planner, db := setupPlanner(t, stub)

	_, err := planner.GetSubstitutions(context.Background(), substitutionRequest())

	var gErr *GenerationError
	require.ErrorAs(t, err, &gErr)
	runs := auditRuns(t, db)
	require.Len(t, runs, 1)
	require.NotNil(t, runs[0].Error)
	assert.Nil(t, runs[0].OutputJSON)
}
