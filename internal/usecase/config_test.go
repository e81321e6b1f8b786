package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/testutil"
)

func TestShowConfig_Execute(t *testing.T) {
	// Setup
	manager := &testutil.MockConfigManager{
		LocalInfo:  domain.ConfigInfo{Path: "/data/config.toml", Exists: true, Content: "[log]"},
		GlobalInfo: domain.ConfigInfo{Path: "/home/.config/tasks/config.toml"},
	}
	cfg := domain.NewDefaultConfig()
	cfg.Store.Type = domain.StoreBadger
	uc := NewShowConfig(manager, &testutil.MockConfigLoader{Config: cfg})

	// Execute
	out, err := uc.Execute(context.Background(), ShowConfigInput{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.StoreBadger, out.Effective.Store.Type)
	assert.True(t, out.LocalConfig.Exists)
	assert.False(t, out.GlobalConfig.Exists)
}

func TestShowConfig_LoadError(t *testing.T) {
	uc := NewShowConfig(&testutil.MockConfigManager{}, &testutil.MockConfigLoader{Err: errors.New("bad toml")})

	_, err := uc.Execute(context.Background(), ShowConfigInput{})

	assert.Error(t, err)
}

func TestInitConfig_Execute(t *testing.T) {
	tests := []struct {
		name       string
		in         InitConfigInput
		wantPath   string
		wantGlobal bool
	}{
		{name: "local", in: InitConfigInput{}, wantPath: "/data/config.toml"},
		{name: "global forced", in: InitConfigInput{Global: true, Force: true}, wantPath: "/global/config.toml", wantGlobal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := &testutil.MockConfigManager{
				LocalInfo:  domain.ConfigInfo{Path: "/data/config.toml"},
				GlobalInfo: domain.ConfigInfo{Path: "/global/config.toml"},
			}

			out, err := NewInitConfig(manager).Execute(context.Background(), tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, out.Path)
			assert.Equal(t, tt.wantGlobal, manager.GlobalInit)
			assert.Equal(t, !tt.wantGlobal, manager.LocalInit)
			assert.Equal(t, tt.in.Force, manager.ForceCalled)
		})
	}
}

func TestInitConfig_Exists(t *testing.T) {
	manager := &testutil.MockConfigManager{InitErr: domain.ErrConfigExists}

	_, err := NewInitConfig(manager).Execute(context.Background(), InitConfigInput{})

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
