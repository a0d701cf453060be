package x11

import "testing"

func TestLatin1ReplacesWideRunes(t *testing.T) {
	got := string(latin1("CPU: 3% ° ↑"))
	want := "CPU: 3% \xb0 ?"
	if got != want {
		t.Fatalf("latin1 = %q, want %q", got, want)
	}
}
