package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	testCases := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero reads as KB", 0, "0 KB"},
		{"small values stay in bytes", 512, "512 Bytes"},
		{"exactly one KB", 1024, "1 KB"},
		{"rounded kilobytes", 1536, "1.5 KB"},
		{"two decimal rounding", 1268, "1.24 KB"},
		{"megabytes", 1268 * 1024, "1.24 MB"},
		{"gigabytes", 3 * 1024 * 1024 * 1024, "3 GB"},
		{"beyond gigabytes stays in GB", 5 * 1024 * 1024 * 1024 * 1024, "5120 GB"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, formatBytes(tc.bytes))
		})
	}
}
