package colormath

import (
	"math"
	"testing"
)

func TestHexRoundTrip(t *testing.T) {
	cases := []string{"#000000", "#ffffff", "#008080", "#1b3a5c", "#ff0000", "#7f7f7f"}
	for _, hex := range cases {
		c := HexToRGB(hex)
		if got := RGBToHex(c.R, c.G, c.B); got != hex {
			t.Fatalf("round trip %s: got %s", hex, got)
		}
	}
}

func TestHexToRGB_Malformed(t *testing.T) {
	cases := []string{"#zzffff", "not-a-color", "#ff"}
	for _, hex := range cases {
		c := HexToRGB(hex)
		if !math.IsNaN(c.R) && !math.IsNaN(c.G) && !math.IsNaN(c.B) {
			t.Fatalf("expected NaN channel for %q, got %+v", hex, c)
		}
	}
}

func TestRGBToHex_Clamps(t *testing.T) {
	if got := RGBToHex(-20, 300, 127.6); got != "#00ff80" {
		t.Fatalf("expected #00ff80, got %s", got)
	}
	if got := RGBToHex(math.NaN(), 0, 0); got != "#000000" {
		t.Fatalf("expected NaN to render as 00, got %s", got)
	}
}

func TestTintEndpoints(t *testing.T) {
	if got := Tint("#008080", 0); got != "#008080" {
		t.Fatalf("tint 0 must be identity, got %s", got)
	}
	if got := Tint("#008080", 1); got != "#ffffff" {
		t.Fatalf("tint 1 must be white, got %s", got)
	}
}

func TestShadeEndpoints(t *testing.T) {
	if got := Shade("#008080", 0); got != "#008080" {
		t.Fatalf("shade 0 must be identity, got %s", got)
	}
	if got := Shade("#008080", 1); got != "#000000" {
		t.Fatalf("shade 1 must be black, got %s", got)
	}
}

func TestDeriveInk(t *testing.T) {
	// ink = (0.08r, 0.12g+10, 0.10b+5)
	if got := DeriveInk("#ff0000"); got != "#140a05" {
		t.Fatalf("unexpected ink for #ff0000: %s", got)
	}
}

func TestDeriveMuted(t *testing.T) {
	// muted = (0.30r+80, 0.35g+85, 0.30b+80)
	if got := DeriveMuted("#ff0000"); got != "#9d5550" {
		t.Fatalf("unexpected muted for #ff0000: %s", got)
	}
}

func TestIsHex(t *testing.T) {
	if !IsHex("#aabbcc") {
		t.Fatal("expected #aabbcc to be hex")
	}
	if IsHex("rgba(0,0,0,.5)") {
		t.Fatal("expected rgba value to be rejected")
	}
}
