package timeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatChapterTime(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "0:00"},
		{"under a minute", 5, "0:05"},
		{"over a minute", 65, "1:05"},
		{"just under an hour", 3599, "59:59"},
		{"exactly an hour", 3600, "1:00:00"},
		{"hour minute second", 3661, "1:01:01"},
		{"multi hour", 7325, "2:02:05"},
		{"fractional truncates", 5.9, "0:05"},
		{"negative clamps", -3, "0:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatChapterTime(tt.seconds))
		})
	}
}

func TestFormatChapters(t *testing.T) {
	markers := []ChapterMarker{
		{ID: "m2", Title: "B", Time: 3661},
		{ID: "m1", Title: "A", Time: 5},
	}
	require.Equal(t, "0:05 A\n1:01:01 B", FormatChapters(markers))
}

func TestFormatChapters_Empty(t *testing.T) {
	require.Equal(t, "", FormatChapters(nil))
}
