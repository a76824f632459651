package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"gem-bid-tracker/internal/config"
	"gem-bid-tracker/internal/entity"

	"github.com/stretchr/testify/require"
)

func TestLoadCategoriesFallsBackToDefaults(t *testing.T) {
	categories, err := config.LoadCategories("")
	require.NoError(t, err)
	require.Len(t, categories, 34)
	require.Contains(t, categories, entity.Category{Name: "Cloud Service", CategoryId: "home_clou"})
}

func TestLoadCategoriesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	raw := "categories:\n  - name: Cloud Service\n    id: home_clou\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	categories, err := config.LoadCategories(path)
	require.NoError(t, err)
	require.Equal(t, []entity.Category{{Name: "Cloud Service", CategoryId: "home_clou"}}, categories)
}

func TestLoadCategoriesMissingFile(t *testing.T) {
	_, err := config.LoadCategories(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
