package adb

import (
	"reflect"
	"testing"
)

func TestQuoteEscapesSingleQuotes(t *testing.T) {
	cases := map[string]string{
		"/sdcard/DCIM":        "'/sdcard/DCIM'",
		"/sdcard/It's a file": `'/sdcard/It'\''s a file'`,
	}
	for in, want := range cases {
		if got := quote(in); got != want {
			t.Errorf("quote(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestLinesStripsCarriageReturnsAndBlanks(t *testing.T) {
	out := "DCIM\r\n\r\nDownload\r\nMovies\n"
	got := lines(out)
	want := []string{"DCIM", "Download", "Movies"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("lines() = %v, want %v", got, want)
	}
}

func TestConfirmedReadsOutputCarriedMarker(t *testing.T) {
	cases := []struct {
		out  string
		want bool
	}{
		{"OK\n", true},
		{"OK\r\n", true},
		{"  OK  ", true},
		{"NO\r\n", false},
		// rm may print its complaint and still exit zero through the bridge;
		// only an explicit marker counts as success.
		{"rm: /sdcard/DCIM/a.jpg: Permission denied\n", false},
		{"", false},
	}
	for _, c := range cases {
		if got := confirmed(c.out); got != c.want {
			t.Errorf("confirmed(%q) = %v, want %v", c.out, got, c.want)
		}
	}
}
