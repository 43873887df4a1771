package envstore

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		environ  []string
		expected map[string]string
	}{
		{
			name:    "no prefix keeps everything",
			opts:    Options{},
			environ: []string{"HOST=localhost", "PORT=8080"},
			expected: map[string]string{
				"HOST": "localhost",
				"PORT": "8080",
			},
		},
		{
			name:    "prefix filtering keeps full keys",
			opts:    Options{Prefix: "APP_"},
			environ: []string{"APP_HOST=localhost", "OTHER=ignored", "APP_PORT=8080"},
			expected: map[string]string{
				"APP_HOST": "localhost",
				"APP_PORT": "8080",
			},
		},
		{
			name:    "prefix stripped",
			opts:    Options{Prefix: "APP_", StripPrefix: true},
			environ: []string{"APP_HOST=localhost", "APP_=dropped"},
			expected: map[string]string{
				"HOST": "localhost",
			},
		},
		{
			name:    "prefix case insensitive by default",
			opts:    Options{Prefix: "app_"},
			environ: []string{"APP_HOST=a", "app_PORT=b", "App_NAME=c"},
			expected: map[string]string{
				"APP_HOST": "a",
				"app_PORT": "b",
				"App_NAME": "c",
			},
		},
		{
			name:    "prefix case sensitive",
			opts:    Options{Prefix: "APP_", CaseSensitive: true},
			environ: []string{"APP_HOST=a", "app_PORT=b"},
			expected: map[string]string{
				"APP_HOST": "a",
			},
		},
		{
			name:    "values keep later equals signs",
			opts:    Options{},
			environ: []string{"DSN=user=admin;pass=x", "BROKEN", "EMPTY="},
			expected: map[string]string{
				"DSN":   "user=admin;pass=x",
				"EMPTY": "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Filter(tt.environ, tt.opts)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestProcess(t *testing.T) {
	t.Setenv("ENVSTORE_TEST_VALUE", "")
	os.Unsetenv("ENVSTORE_TEST_VALUE")

	var p Process
	_, ok := p.Lookup("ENVSTORE_TEST_VALUE")
	assert.False(t, ok)

	require.NoError(t, p.Set("ENVSTORE_TEST_VALUE", "hello"))
	v, ok := p.Lookup("ENVSTORE_TEST_VALUE")
	assert.True(t, ok)
	assert.Equal(t, "hello", v)
	assert.Equal(t, "hello", os.Getenv("ENVSTORE_TEST_VALUE"))
}

func TestProcess_SetInvalidName(t *testing.T) {
	var p Process
	assert.Error(t, p.Set("", "value"))
}

func TestMap(t *testing.T) {
	m := NewMap(map[string]string{"SEEDED": "yes"})

	v, ok := m.Lookup("SEEDED")
	assert.True(t, ok)
	assert.Equal(t, "yes", v)

	_, ok = m.Lookup("MISSING")
	assert.False(t, ok)

	require.NoError(t, m.Set("NEW", "value"))
	assert.Equal(t, map[string]string{"SEEDED": "yes", "NEW": "value"}, m.Snapshot())
}

func TestMap_ZeroValue(t *testing.T) {
	var m Map

	_, ok := m.Lookup("X")
	assert.False(t, ok)
	require.NoError(t, m.Set("X", "1"))
	assert.Equal(t, map[string]string{"X": "1"}, m.Snapshot())
}

func TestMap_SnapshotIsCopy(t *testing.T) {
	m := NewMap()
	require.NoError(t, m.Set("A", "1"))

	snap := m.Snapshot()
	snap["A"] = "changed"

	v, _ := m.Lookup("A")
	assert.Equal(t, "1", v)
}

func TestMap_ConcurrentAccess(t *testing.T) {
	m := NewMap()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Set("KEY", "value")
			_, _ = m.Lookup("KEY")
			_ = m.Snapshot()
		}()
	}
	wg.Wait()

	v, ok := m.Lookup("KEY")
	assert.True(t, ok)
	assert.Equal(t, "value", v)
}
