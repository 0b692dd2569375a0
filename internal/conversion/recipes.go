package conversion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Conversion kinds.
const (
	KindFuse  = "fuse"
	KindCraft = "craft"
	KindTrade = "trade"
)

// Recipe is one fixed conversion loaded from the recipe file. Ingredients
// and result are archetype display names; repeated names mean multiples.
type Recipe struct {
	ID          string   `json:"id" validate:"required"`
	Kind        string   `json:"kind" validate:"required,oneof=craft trade"`
	Name        string   `json:"name" validate:"required"`
	Ingredients []string `json:"ingredients" validate:"required,min=1"`
	Result      string   `json:"result" validate:"required"`
}

// BillOfMaterials folds the ingredient list into per-name counts.
func (r Recipe) BillOfMaterials() map[string]int {
	counts := make(map[string]int, len(r.Ingredients))
	for _, name := range r.Ingredients {
		counts[name]++
	}
	return counts
}

// LoadRecipes reads and validates the recipe file.
func LoadRecipes(path string) ([]Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipes: %w", err)
	}

	var recipes []Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("parse recipes: %w", err)
	}

	validate := validator.New()
	seen := make(map[string]bool, len(recipes))
	for _, r := range recipes {
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("recipe %q: %w", r.ID, err)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("recipe %q: duplicate id", r.ID)
		}
		seen[r.ID] = true
	}
	return recipes, nil
}
