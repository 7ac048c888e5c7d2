package numfmt_test

import (
	"testing"
	"time"

	"github.com/TsubasaBE/go-xlsfmt/era"
	"github.com/TsubasaBE/go-xlsfmt/numfmt"
)

// 2024-03-05 is a Tuesday in Reiwa 6.
var tuesday = time.Date(2024, time.March, 5, 9, 5, 3, 0, time.UTC)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"yyyy/mm/dd", "2024/03/05"},
		{"yyyy/m/d", "2024/3/5"},
		{"yy", "24"},
		{"h:mm:ss", "9:05:03"},
		{"hh:mm", "09:05"},
		{"mm:ss", "05:03"},
		{"m/d", "3/5"},
		{"mmm", "Mar"},
		{"mmmm", "March"},
		{"mmmmm", "M"},
		{"ddd", "Tue"},
		{"dddd", "Tuesday"},
		{"aaa", "火"},
		{"aaaa", "火曜日"},
		{"ggge年m月d日", "令和6年3月5日"},
		{`ggge"年"m"月"d"日"`, "令和6年3月5日"},
		{"gge", "令6"},
		{"gee", "R06"},
		{`h"時"mm"分"ss"秒"`, "9時05分03秒"},
		{`yyyy\-`, "2024-"},
		{`"100%"yyyy`, "100%2024"},
		{"", ""},
	}
	for _, tc := range tests {
		got, ok := numfmt.New(tc.code).FormatDate(tuesday)
		if !ok {
			t.Errorf("FormatDate(%q) failed", tc.code)
			continue
		}
		if got != tc.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestFormatDateUnrecognized(t *testing.T) {
	for _, code := range []string{"zzz", "0.00", `"open`} {
		if got, ok := numfmt.New(code).FormatDate(tuesday); ok {
			t.Errorf("FormatDate(%q) = %q, want failure", code, got)
		}
	}
}

func TestPattern(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"yyyy/mm/dd", "%Y/%m/%d"},
		{"h:mm:ss", "%-H:%M:%S"},
		{"ggge年", "令和6年"},
		{`"50%"d`, "50%%%-d"},
	}
	for _, tc := range tests {
		got, ok := numfmt.New(tc.code).Pattern(tuesday, nil)
		if !ok {
			t.Errorf("Pattern(%q) failed", tc.code)
			continue
		}
		if got != tc.want {
			t.Errorf("Pattern(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestFormatDateEraBoundaries(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2019, 4, 30, 0, 0, 0, 0, time.UTC), "平成31年"},
		{time.Date(2019, 5, 1, 0, 0, 0, 0, time.UTC), "令和1年"},
		{time.Date(1989, 1, 7, 0, 0, 0, 0, time.UTC), "昭和64年"},
		{time.Date(1989, 1, 8, 0, 0, 0, 0, time.UTC), "平成1年"},
		{time.Date(1850, 1, 1, 0, 0, 0, 0, time.UTC), "1850年"},
	}
	f := numfmt.New("ggge年")
	for _, tc := range tests {
		got, _ := f.FormatDate(tc.date)
		if got != tc.want {
			t.Errorf("FormatDate(%v) = %q, want %q", tc.date.Format(time.DateOnly), got, tc.want)
		}
	}
}

func TestFormatDateIn(t *testing.T) {
	eras := era.MustTable("test",
		era.Era{Name: "Alpha", Short: "A", Abbrev: "a", Start: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
	)
	got, ok := numfmt.New("ggg ee").FormatDateIn(tuesday, eras)
	if ok {
		// A space is not a literal the grammar accepts.
		t.Fatalf("FormatDateIn accepted an unquoted space: %q", got)
	}
	got, ok = numfmt.New(`ggg" "ee/g`).FormatDateIn(tuesday, eras)
	if !ok {
		t.Fatal("FormatDateIn failed")
	}
	if want := "Alpha 25/a"; got != want {
		t.Errorf("FormatDateIn = %q, want %q", got, want)
	}
}

func TestFormatSerial(t *testing.T) {
	f := numfmt.New("yyyy/m/d")
	if got, ok := f.FormatSerial(45356, false); !ok || got != "2024/3/5" {
		t.Errorf("FormatSerial(45356) = (%q, %v), want (%q, true)", got, ok, "2024/3/5")
	}
	if got, ok := f.FormatSerial(43894, true); !ok || got != "2024/3/5" {
		t.Errorf("FormatSerial(43894, 1904) = (%q, %v), want (%q, true)", got, ok, "2024/3/5")
	}
	if _, ok := f.FormatSerial(-1, false); ok {
		t.Error("FormatSerial(-1) succeeded, want failure")
	}
}

func TestFormatDateInNilTable(t *testing.T) {
	var tb *era.Table
	got, ok := numfmt.New("ggge年").FormatDateIn(tuesday, tb)
	if !ok || got != "令和6年" {
		t.Errorf("FormatDateIn(nil *Table) = (%q, %v), want (%q, true)", got, ok, "令和6年")
	}
}
