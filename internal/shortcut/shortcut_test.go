package shortcut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr string
	}{
		{
			name:    "missing destination",
			spec:    Spec{Target: `C:\Program Files\PhotoResize\PhotoResize.exe`},
			wantErr: "destination path is empty",
		},
		{
			name:    "missing target",
			spec:    Spec{Path: `C:\ProgramData\PhotoResize.lnk`},
			wantErr: "target path is empty",
		},
		{
			name:    "bad window style",
			spec:    Spec{Path: "a.lnk", Target: "a.exe", WindowStyle: 2},
			wantErr: "invalid window style",
		},
		{
			name: "valid",
			spec: Spec{Path: "a.lnk", Target: "a.exe", WindowStyle: WindowNormal},
		},
		{
			name: "zero window style defaults",
			spec: Spec{Path: "a.lnk", Target: "a.exe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWindowStyleDefault(t *testing.T) {
	assert.Equal(t, WindowNormal, Spec{}.windowStyle())
	assert.Equal(t, WindowMinimized, Spec{WindowStyle: WindowMinimized}.windowStyle())
}

func TestCreateRejectsInvalidSpec(t *testing.T) {
	err := Create(Spec{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destination path is empty")
}
