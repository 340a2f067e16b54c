package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nested struct {
	Token string `env:"TOKEN" secret:"true"`
	Owner int64  `env:"OWNER"`
}

type sample struct {
	Name    string        `env:"NAME,required"`
	Timeout time.Duration `env:"TIMEOUT"`
	Enabled bool          `env:"ENABLED"`
	Origins []string      `env:"ORIGINS"`
	Empty   string        `env:"EMPTY"`
	Skipped string
	Nested  nested
}

func TestMarshalEnv(t *testing.T) {
	c := &sample{
		Name:    "auralis",
		Timeout: 30 * time.Second,
		Enabled: true,
		Origins: []string{"a", "b"},
		Skipped: "x",
		Nested:  nested{Token: "secret", Owner: 42},
	}

	out, err := MarshalEnv(c)
	require.NoError(t, err)
	assert.Equal(t, "NAME=auralis\nTIMEOUT=30s\nENABLED=true\nORIGINS=a,b\nTOKEN=secret\nOWNER=42\n", out)

	masked, err := MarshalEnvMasked(c)
	require.NoError(t, err)
	assert.Contains(t, masked, "TOKEN=****\n")
	assert.NotContains(t, masked, "secret")
}

func TestMarshalEnv_RejectsNonPointer(t *testing.T) {
	_, err := MarshalEnv(sample{})
	assert.Error(t, err)
}

func TestMarshalEnv_Empty(t *testing.T) {
	out, err := MarshalEnv(&sample{})
	require.NoError(t, err)
	assert.Empty(t, out)
}
