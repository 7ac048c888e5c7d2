package styles_test

import (
	"testing"

	"github.com/TsubasaBE/go-xlsfmt/numfmt"
	"github.com/TsubasaBE/go-xlsfmt/styles"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		id     int
		fmtStr string
		want   string
	}{
		{name: "general", id: 0, want: "General"},
		{name: "built-in date", id: 14, want: "yyyy/m/d"},
		{name: "built-in era date", id: 28, want: `[$-411]ggge"年"m"月"d"日"`},
		{name: "custom overrides built-in", id: 14, fmtStr: "yy", want: "yy"},
		{name: "custom id", id: 176, fmtStr: "m/d", want: "m/d"},
		{name: "unknown id", id: 200, want: "General"},
		{name: "gap in built-ins", id: 23, want: "General"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := styles.Resolve(tc.id, tc.fmtStr); got != tc.want {
				t.Errorf("Resolve(%d, %q) = %q, want %q", tc.id, tc.fmtStr, got, tc.want)
			}
		})
	}
}

func TestIsBuiltInDate(t *testing.T) {
	tests := []struct {
		id   int
		want bool
	}{
		{0, false}, {13, false}, {14, true}, {18, true}, {22, true},
		{23, false}, {26, false}, {27, true}, {36, true}, {37, false},
		{44, false}, {45, true}, {47, true}, {48, false}, {49, false},
		{50, true}, {58, true}, {59, false}, {164, false},
	}
	for _, tc := range tests {
		if got := styles.IsBuiltInDate(tc.id); got != tc.want {
			t.Errorf("IsBuiltInDate(%d) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestBuiltInDatesClassify(t *testing.T) {
	for id := range 59 {
		if !styles.IsBuiltInDate(id) {
			continue
		}
		code, ok := styles.BuiltInNumFmt[id]
		if !ok {
			t.Errorf("built-in date %d has no format code", id)
			continue
		}
		if got := numfmt.Parse(code).Class(); got != numfmt.DateTime {
			t.Errorf("built-in date %d %q classifies as %v, want DateTime", id, code, got)
		}
	}
}
