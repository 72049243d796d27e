package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/skinchef/backend/internal/types"
)

// systemPrompt carries the absolute safety rules ranked above the soft
// preferences. It is identical for every operation and is never weakened.
const systemPrompt = `Eres un chef experto español que crea menús semanales personalizados. Debes seguir estas reglas ESTRICTAMENTE:

REGLAS ABSOLUTAS (NUNCA violar):
1. ALERGIAS: NUNCA incluir ingredientes que contengan alérgenos especificados. Esto es ABSOLUTO y no negociable.
2. DIETA: Siempre respetar el tipo de dieta (omnívora, vegetariana, vegana, etc.)
3. DISGUSTOS: Nunca incluir ingredientes que el usuario ha indicado que no le gustan.

PREFERENCIAS:
4. PRESUPUESTO: Optimizar usando ingredientes españoles comunes y económicos.
5. TIEMPO: Preferir recetas de 20-30 minutos de preparación.
6. VARIEDAD: Evitar repetir platos durante la semana.
7. DESPENSA: Aprovechar ingredientes que el usuario ya tiene en su despensa.

FORMATO DE SALIDA:
- Responde ÚNICAMENTE con JSON válido, sin texto explicativo.
- Sigue exactamente el esquema JSON solicitado.
- Todos los textos deben estar en español.`

// SystemPrompt returns the fixed system prompt shared by all operations.
func SystemPrompt() string {
	return systemPrompt
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

func textOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// GenerateMenuPrompt renders the user prompt for menu generation,
// embedding the profile and a literal example of the required JSON shape.
func GenerateMenuPrompt(profile *types.DietaryProfile, days int) string {
	return fmt.Sprintf(`Genera un menú para %d días con las siguientes especificaciones:

Perfil del usuario:
- Presupuesto semanal: %g€
- Número de comensales: %d
- Comidas por día: %d
- Alergias: %s
- Dieta: %s
- Ingredientes que no le gustan: %s
- Ingredientes en despensa: %s

Responde con el siguiente formato JSON exacto:
{
  "menu": {
    "days": [
      {
        "day": 1,
        "meals": {
          "lunch": {
            "name": "Nombre del plato",
            "ingredients": [{"name": "ingrediente", "qty": "cantidad"}],
            "steps": ["paso 1", "paso 2"],
            "time_min": 25
          },
          "dinner": {
            "name": "Nombre del plato",
            "ingredients": [{"name": "ingrediente", "qty": "cantidad"}],
            "steps": ["paso 1", "paso 2"],
            "time_min": 20
          }
        }
      }
    ]
  },
  "shopping_list": {
    "categories": [
      {
        "name": "Verduras",
        "items": [{"name": "Tomate", "qty": "4 unidades"}]
      }
    ]
  }
}`,
		days,
		profile.BudgetEURWeek,
		profile.Diners,
		profile.MealsPerDay,
		joinOr(profile.Allergies, "Ninguna"),
		profile.Diet,
		joinOr(profile.Dislikes, "Ninguno"),
		textOr(profile.PantryText, "No especificado"),
	)
}

// SwapMealPrompt renders the user prompt for replacing one meal slot. The
// existing menu is embedded as provided; the day index is not clamped or
// reordered.
func SwapMealPrompt(req *types.SwapMealRequest) string {
	menuJSON, _ := json.Marshal(req.Menu)

	return fmt.Sprintf(`Necesito reemplazar una comida en el menú existente.

Menú actual: %s

Reemplazar: Día %d, comida "%s"
Restricciones adicionales: %s

Perfil del usuario:
- Presupuesto semanal: %g€
- Número de comensales: %d
- Alergias: %s
- Dieta: %s
- Ingredientes que no le gustan: %s

Devuelve el menú completo actualizado con la nueva comida y la lista de compras actualizada.
Usa el mismo formato JSON que el menú original.`,
		string(menuJSON),
		req.DayIndex+1,
		req.MealKey,
		textOr(req.Constraints, "Ninguna"),
		req.Profile.BudgetEURWeek,
		req.Profile.Diners,
		joinOr(req.Profile.Allergies, "Ninguna"),
		req.Profile.Diet,
		joinOr(req.Profile.Dislikes, "Ninguno"),
	)
}

// SubstitutionPrompt renders the user prompt for ingredient substitutions.
func SubstitutionPrompt(req *types.SubstitutionRequest) string {
	return fmt.Sprintf(`Necesito sustitutos para un ingrediente.

Ingrediente a sustituir: %s
Razón: %s

Perfil del usuario:
- Alergias: %s
- Dieta: %s
- Ingredientes que no le gustan: %s

Proporciona 3-5 sustitutos válidos que respeten las alergias y dieta del usuario.

Responde con el siguiente formato JSON:
{
  "substitutions": [
    {"name": "nombre del sustituto", "notes": "notas sobre cómo usarlo"}
  ]
}`,
		req.Ingredient,
		req.Reason,
		joinOr(req.Profile.Allergies, "Ninguna"),
		req.Profile.Diet,
		joinOr(req.Profile.Dislikes, "Ninguno"),
	)
}
