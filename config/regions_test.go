package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mallmap/server/internal/models"
)

func TestDefaultRegionShapes(t *testing.T) {
	names := make(map[string]bool)
	for _, s := range DefaultRegionShapes {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Path)
		assert.False(t, names[s.Name], "duplicate region %s", s.Name)
		names[s.Name] = true
	}

	for _, province := range []string{"서울특별시", "부산광역시", "경기도", "제주특별자치도"} {
		assert.True(t, names[province], "missing %s", province)
	}
}

func TestLoadRegionShapes(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "regions.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"name":"서울특별시","id":"seoul","d":"M0 0 L1 0 L1 1 Z","textX":1,"textY":2}]`), 0644))

	yamlPath := filepath.Join(dir, "regions.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- name: 부산광역시\n  id: busan\n  d: M0 0 L1 0 L1 1 Z\n  textX: 3\n  textY: 4\n"), 0644))

	dupPath := filepath.Join(dir, "dup.json")
	require.NoError(t, os.WriteFile(dupPath, []byte(`[{"name":"a","id":"a"},{"name":"a","id":"b"}]`), 0644))

	tests := []struct {
		name        string
		path        string
		expected    []models.RegionShape
		expectError bool
	}{
		{
			name:     "JSON file",
			path:     jsonPath,
			expected: []models.RegionShape{{Name: "서울특별시", ID: "seoul", Path: "M0 0 L1 0 L1 1 Z", TextX: 1, TextY: 2}},
		},
		{
			name:     "YAML file",
			path:     yamlPath,
			expected: []models.RegionShape{{Name: "부산광역시", ID: "busan", Path: "M0 0 L1 0 L1 1 Z", TextX: 3, TextY: 4}},
		},
		{name: "Duplicate names", path: dupPath, expectError: true},
		{name: "Missing file", path: filepath.Join(dir, "nope.json"), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shapes, err := LoadRegionShapes(tt.path)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, shapes)
		})
	}
}

func TestLoadRegionShapes_Default(t *testing.T) {
	shapes, err := LoadRegionShapes("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRegionShapes, shapes)

	shapes[0].Name = "changed"
	assert.Equal(t, "서울특별시", DefaultRegionShapes[0].Name)
}

func TestRegionShapeRegistry(t *testing.T) {
	t.Cleanup(func() { SetRegionShapes(nil) })

	SetRegionShapes([]models.RegionShape{{Name: "경기도", ID: "gyeonggi"}})
	shapes := GetRegionShapes()
	require.Len(t, shapes, 1)
	assert.Equal(t, "경기도", shapes[0].Name)

	shapes[0].Name = "changed"
	assert.Equal(t, "경기도", GetRegionShapes()[0].Name, "callers get a copy")
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("CLICK_COOLDOWN", "10s")
	t.Setenv("CORS_ORIGINS", "https://a.kr,https://b.kr")
	t.Setenv("BATCH_MAX_SIZE", "7")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.Cooldown.Window)
	assert.Equal(t, "memory", cfg.Cooldown.Backend)
	assert.Equal(t, []string{"https://a.kr", "https://b.kr"}, cfg.CORSOrigins)
	assert.Equal(t, 7, cfg.BatchProcessing.MaxBatchSize)
	assert.Equal(t, 5*time.Second, cfg.BatchWait())
}

func TestLoadConfig_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATA_FILE=/srv/malls.json\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("DATA_FILE") })

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/malls.json", cfg.DataFile)
}

func TestLoadConfig_InvalidBackend(t *testing.T) {
	t.Setenv("COOLDOWN_BACKEND", "memcached")

	_, err := LoadConfig()
	assert.Error(t, err)
}
