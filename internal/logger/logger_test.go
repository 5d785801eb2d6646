package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		wantErr  bool
	}{
		{
			name:     "test init with info level",
			logLevel: "info",
		},
		{
			name:     "test init with debug level",
			logLevel: "debug",
		},
		{
			name:     "test init with unknown level",
			logLevel: "verbose",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nop := zap.NewNop()
			Log = nop
			err := Initialize(tt.logLevel)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Same(t, nop, Log)
			} else {
				assert.NoError(t, err)
				assert.NotSame(t, nop, Log)
			}
		})
	}
}
