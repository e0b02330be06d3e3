package geomsimd_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/parahull/internal/geomsimd"
)

func TestCurrentLevelStringNonEmpty(t *testing.T) {
	assert.NotEmpty(t, geomsimd.CurrentLevel().String())
	assert.Greater(t, geomsimd.CurrentWidth(), 0)
}

func TestMaxLanes(t *testing.T) {
	assert.Greater(t, geomsimd.MaxLanes[float32](), 0)
	assert.Greater(t, geomsimd.MaxLanes[float64](), 0)
	assert.GreaterOrEqual(t, geomsimd.MaxLanes[float32](), geomsimd.MaxLanes[float64]())
}

func TestNoSimdEnv(t *testing.T) {
	t.Setenv("GEOMSIMD_NO_SIMD", "")
	assert.False(t, geomsimd.NoSimdEnv())

	t.Setenv("GEOMSIMD_NO_SIMD", "true")
	assert.True(t, geomsimd.NoSimdEnv())

	t.Setenv("GEOMSIMD_NO_SIMD", "garbage")
	assert.True(t, geomsimd.NoSimdEnv())

	os.Unsetenv("GEOMSIMD_NO_SIMD")
}
