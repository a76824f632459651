package config

import (
	"os"

	"gem-bid-tracker/internal/entity"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	ServerAddress  string
	PostgresConn   string
	DatabaseName   string
	GemBaseURL     string
	CategoriesFile string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerAddress:  getenv("SERVER_ADDRESS", ":8080"),
		PostgresConn:   os.Getenv("POSTGRES_CONN"),
		DatabaseName:   os.Getenv("POSTGRES_DATABASE"),
		GemBaseURL:     getenv("GEM_BASE_URL", "https://bidplus.gem.gov.in"),
		CategoriesFile: os.Getenv("GEM_CATEGORIES_FILE"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

type categoriesFile struct {
	Categories []struct {
		Name string `yaml:"name"`
		Id   string `yaml:"id"`
	} `yaml:"categories"`
}

// LoadCategories reads the tracked category registry from a yaml file.
// An empty path falls back to the built-in registry.
func LoadCategories(path string) ([]entity.Category, error) {
	if path == "" {
		return entity.DefaultCategories(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file categoriesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}

	categories := make([]entity.Category, 0, len(file.Categories))
	for _, c := range file.Categories {
		categories = append(categories, entity.Category{Name: c.Name, CategoryId: c.Id})
	}

	return categories, nil
}
