package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmeshcher/savebite-admin/internal/session"
)

func TestParseConfig(t *testing.T) {
	type want struct {
		runAddress            string
		sessionStoragePath    string
		identitySystemAddress string
		adminPassword         string
	}

	tests := []struct {
		name  string
		env   map[string]string
		flags []string
		want  want
	}{
		{
			name:  "defaults",
			env:   map[string]string{},
			flags: []string{},
			want: want{
				runAddress:         "localhost:8080",
				sessionStoragePath: session.DefaultStoragePath,
				adminPassword:      DefaultAdminPassword,
			},
		},
		{
			name: "env only",
			env: map[string]string{
				"RUN_ADDRESS":             "localhost:9999",
				"SESSION_STORAGE_PATH":    "/tmp/session.json",
				"IDENTITY_SYSTEM_ADDRESS": "localhost:8081",
				"ADMIN_PASSWORD":          "env-secret",
			},
			flags: []string{},
			want: want{
				runAddress:            "localhost:9999",
				sessionStoragePath:    "/tmp/session.json",
				identitySystemAddress: "localhost:8081",
				adminPassword:         "env-secret",
			},
		},
		{
			name: "flags only",
			env:  map[string]string{},
			flags: []string{
				"-a", "localhost:7777",
				"-s", "/var/lib/savebite/session.json",
				"-i", "identity:8080",
				"-p", "flag-secret",
			},
			want: want{
				runAddress:            "localhost:7777",
				sessionStoragePath:    "/var/lib/savebite/session.json",
				identitySystemAddress: "identity:8080",
				adminPassword:         "flag-secret",
			},
		},
		{
			name: "env overrides flags",
			env: map[string]string{
				"RUN_ADDRESS":             "env:9000",
				"SESSION_STORAGE_PATH":    "/env/session.json",
				"IDENTITY_SYSTEM_ADDRESS": "env-identity:8081",
				"ADMIN_PASSWORD":          "env-secret",
			},
			flags: []string{
				"-a", "flag:8000",
				"-s", "/flag/session.json",
				"-i", "flag-identity:8080",
				"-p", "flag-secret",
			},
			want: want{
				runAddress:            "env:9000",
				sessionStoragePath:    "/env/session.json",
				identitySystemAddress: "env-identity:8081",
				adminPassword:         "env-secret",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			os.Args = append([]string{"test"}, tt.flags...)

			cfg, err := Parse()
			require.NoError(t, err)

			assert.Equal(t, tt.want.runAddress, cfg.RunAddress)
			assert.Equal(t, tt.want.sessionStoragePath, cfg.SessionStoragePath)
			assert.Equal(t, tt.want.identitySystemAddress, cfg.IdentitySystemAddress)
			assert.Equal(t, tt.want.adminPassword, cfg.AdminPassword)
		})
	}
}
