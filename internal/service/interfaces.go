package service

import (
	"context"

	"github.com/skinchef/backend/internal/types"
)

// IPlannerService defines the interface for the three generation flows.
type IPlannerService interface {
	GenerateMenu(ctx context.Context, req *types.GenerateMenuRequest) (*types.MenuResponse, error)
	SwapMeal(ctx context.Context, req *types.SwapMealRequest) (*types.MenuResponse, error)
	GetSubstitutions(ctx context.Context, req *types.SubstitutionRequest) (*types.SubstitutionResponse, error)
}
