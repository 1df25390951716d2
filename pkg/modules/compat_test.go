package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keywan-ghadami-oxid/OxidKernel/pkg/composer"
)

func TestCheckKernelCompatibility(t *testing.T) {
	tests := []struct {
		name    string
		extra   map[string]any
		wantErr error
	}{
		{
			name:  "no constraint",
			extra: nil,
		},
		{
			name:  "satisfied constraint",
			extra: map[string]any{KernelVersionKey: ">= 1.0.0, < 2.0.0"},
		},
		{
			name:  "caret constraint",
			extra: map[string]any{KernelVersionKey: "^1.0"},
		},
		{
			name:    "unsatisfied constraint",
			extra:   map[string]any{KernelVersionKey: ">= 2.0.0"},
			wantErr: ErrKernelIncompatible,
		},
		{
			name:    "malformed constraint",
			extra:   map[string]any{KernelVersionKey: "not-a-version"},
			wantErr: ErrInvalidDeclaration,
		},
		{
			name:    "non-string constraint",
			extra:   map[string]any{KernelVersionKey: 1.0},
			wantErr: ErrInvalidDeclaration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := &composer.Package{Name: "acme/pkg", Extra: tt.extra}

			err := CheckKernelCompatibility(pkg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsConfigError(err))
		})
	}
}
