package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_Lines(t *testing.T) {
	tests := []struct {
		name string
		info AppBuildInfo
		want []string
	}{
		{
			name: "all set",
			info: NewAppBuildInfo("1.4.0", "2026-10-01", "a1b2c3d"),
			want: []string{"Build version: 1.4.0", "Build date: 2026-10-01", "Build commit: a1b2c3d"},
		},
		{
			name: "nothing injected",
			info: NewAppBuildInfo("", "", ""),
			want: []string{"Build version: N/A", "Build date: N/A", "Build commit: N/A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Lines())
		})
	}
}

func TestAppBuildInfo_Accessors(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "2026-10-01", "a1b2c3d")

	assert.Equal(t, "1.4.0", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "a1b2c3d", info.BuildCommit())
}
