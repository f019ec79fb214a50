package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-d", "postgres://db", "-x", "1"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d", "postgres://db"},
		},
		{
			name:         "equals form",
			args:         []string{"-s=secret", "-a", ":5000"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s=secret"},
		},
		{
			name:         "unknown flags and positionals ignored",
			args:         []string{"register", "-name", "Ann"},
			allowedFlags: []string{"-a", "-d"},
			want:         []string{},
		},
		{
			name:         "trailing flag without value",
			args:         []string{"-t"},
			allowedFlags: []string{"-t"},
			want:         []string{"-t"},
		},
		{
			name:         "next flag is not taken as value",
			args:         []string{"-a", "-d", "dsn"},
			allowedFlags: []string{"-a", "-d"},
			want:         []string{"-a", "-d", "dsn"},
		},
		{
			name:         "order preserved for repeated flags",
			args:         []string{"-t", "60", "-t", "120"},
			allowedFlags: []string{"-t"},
			want:         []string{"-t", "60", "-t", "120"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	assert.Equal(t, "/etc/authkeeper.json", ConfigFileFlag([]string{"-c", "/etc/authkeeper.json"}))
	assert.Equal(t, "conf.yaml", ConfigFileFlag([]string{"-a", ":80", "-config", "conf.yaml"}))
	assert.Equal(t, "2.json", ConfigFileFlag([]string{"-c", "1.json", "-config=2.json"}))
	assert.Empty(t, ConfigFileFlag([]string{"-s", "secret"}))
}
