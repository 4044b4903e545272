package update

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNewer(t *testing.T) {
	tests := []struct {
		candidate string
		current   string
		want      bool
	}{
		{"0.2.0", "0.1.0", true},
		{"v0.2.0", "0.1.0", true},
		{"0.1.0", "0.1.0", false},
		{"0.1.0", "0.2.0", false},
		{"1.0.0", "0.9.9", true},
		{"not-a-version", "0.1.0", false},
		{"0.2.0", "garbage", false},
		{"", "0.1.0", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, IsNewer(tc.candidate, tc.current),
			"IsNewer(%q, %q)", tc.candidate, tc.current)
	}
}

func TestCheckSkippedInCI(t *testing.T) {
	t.Setenv("CI", "true")
	latest, newer, err := Check("0.1.0", false)
	assert.NoError(t, err)
	assert.False(t, newer)
	assert.Empty(t, latest)
}

func TestCheckNoNetwork(t *testing.T) {
	t.Setenv("CI", "")
	latest, newer, err := Check("0.1.0", true)
	assert.NoError(t, err)
	assert.False(t, newer)
	assert.Empty(t, latest)
}

func TestCacheRoundtrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := loadCache()
	assert.Error(t, err)

	saveCache(checkCache{Latest: "0.3.0"})
	c, err := loadCache()
	assert.NoError(t, err)
	assert.Equal(t, "0.3.0", c.Latest)
}
