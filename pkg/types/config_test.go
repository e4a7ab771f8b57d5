package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "sqlite backend is valid",
			config: Config{Backend: BackendSQLite, DataDir: "/tmp/pantry"},
		},
		{
			name:   "sqlite backend without data dir is valid",
			config: Config{Backend: BackendSQLite},
		},
		{
			name:   "postgres backend with dsn is valid",
			config: Config{Backend: BackendPostgres, DSN: "postgres://localhost/pantry"},
		},
		{
			name:    "postgres backend without dsn is rejected",
			config:  Config{Backend: BackendPostgres},
			wantErr: ErrDSNEmpty,
		},
		{
			name:    "empty backend is rejected",
			config:  Config{},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend is rejected",
			config:  Config{Backend: "dynamo"},
			wantErr: ErrBackendUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
