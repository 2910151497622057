package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-c", "conf.json", "-a", "http://api"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=alt.json", "-a", "http://api"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-config=alt.json"},
		},
		{
			name:    "unknown flags ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next dash token is not a value",
			args:    []string{"-a", "-t", "5"},
			allowed: []string{"-a", "-t"},
			want:    []string{"-a", "-t", "5"},
		},
		{
			name:    "several allowed flags keep order",
			args:    []string{"-a", "http://localhost:4000", "-d", "academy.db", "-l", "debug"},
			allowed: []string{"-d", "-a"},
			want:    []string{"-a", "http://localhost:4000", "-d", "academy.db"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"bin", "-a", "http://api", "-c", "client.json"}
	assert.Equal(t, "client.json", ConfigFileFlag())

	os.Args = []string{"bin", "-config=other.json"}
	assert.Equal(t, "other.json", ConfigFileFlag())

	os.Args = []string{"bin"}
	assert.Empty(t, ConfigFileFlag())
}

func TestLookupEnv(t *testing.T) {
	t.Setenv("FLAGX_PRIMARY", "")
	t.Setenv("FLAGX_SECONDARY", " http://example:4000 ")

	v, ok := LookupEnv("FLAGX_PRIMARY", "FLAGX_SECONDARY")
	assert.True(t, ok)
	assert.Equal(t, "http://example:4000", v)

	_, ok = LookupEnv("FLAGX_MISSING")
	assert.False(t, ok)
}
