package x11

import "testing"

func TestParseXftDPI(t *testing.T) {
	db := "Xcursor.size:\t24\nXft.antialias:\t1\nXft.dpi:\t144\nXft.hinting:\t1\n"
	dpi, ok := ParseXftDPI(db)
	if !ok {
		t.Fatalf("expected Xft.dpi to be found")
	}
	if dpi != 144 {
		t.Fatalf("dpi = %v, want 144", dpi)
	}
}

func TestParseXftDPIMissing(t *testing.T) {
	if _, ok := ParseXftDPI("Xcursor.size:\t24\n"); ok {
		t.Fatalf("expected no dpi")
	}
	if _, ok := ParseXftDPI(""); ok {
		t.Fatalf("expected no dpi for empty database")
	}
}

func TestParseXftDPIInvalid(t *testing.T) {
	if _, ok := ParseXftDPI("Xft.dpi: abc\n"); ok {
		t.Fatalf("expected invalid dpi to be rejected")
	}
	if _, ok := ParseXftDPI("Xft.dpi: -3\n"); ok {
		t.Fatalf("expected negative dpi to be rejected")
	}
}

func TestParseXftDPIIgnoresSimilarNames(t *testing.T) {
	dpi, ok := ParseXftDPI("Xft.dpiX: 200\nXft.dpi: 120\n")
	if !ok || dpi != 120 {
		t.Fatalf("dpi = %v ok=%v, want 120", dpi, ok)
	}
}
