package config

const (
	// Configuration file paths
	ConfigPathRecipes = "configs/recipes.json"
)
