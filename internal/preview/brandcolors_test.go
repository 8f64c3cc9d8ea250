package preview

import (
	"strings"
	"testing"

	"github.com/morningstar-ai/preview-engine/internal/colormath"
)

const tealDoc = `<html><head><style>:root{--teal:#008080;--teal-lt:#cceeee;--teal-mid:#005f5f;--ink:#001111;--muted:#335555}</style></head><body></body></html>`

func TestApplyBrandColors_PrimaryFamily(t *testing.T) {
	out := ApplyBrandColors(tealDoc, []string{"#ff0000"})

	wantPairs := map[string]string{
		"--teal":     "#ff0000",
		"--teal-lt":  colormath.Tint("#ff0000", 0.88),
		"--teal-mid": colormath.Shade("#ff0000", 0.10),
		"--ink":      colormath.DeriveInk("#ff0000"),
		"--muted":    colormath.DeriveMuted("#ff0000"),
	}
	for name, value := range wantPairs {
		if !strings.Contains(out, name+":"+value) {
			t.Fatalf("expected %s:%s in rewritten block, got %s", name, value, out)
		}
	}
	if !strings.HasPrefix(out, "<html><head><style>") || !strings.HasSuffix(out, "</style></head><body></body></html>") {
		t.Fatalf("content outside :root must be untouched, got %s", out)
	}
}

func TestApplyBrandColors_EmptyPalette(t *testing.T) {
	if out := ApplyBrandColors(tealDoc, nil); out != tealDoc {
		t.Fatal("empty palette must return input unchanged")
	}
}

func TestApplyBrandColors_NoRootBlock(t *testing.T) {
	html := `<html><body><p>plain</p></body></html>`
	if out := ApplyBrandColors(html, []string{"#ff0000"}); out != html {
		t.Fatal("document without :root must pass through unchanged")
	}
}

func TestApplyBrandColors_SecondaryFamily(t *testing.T) {
	html := `<style>:root{--navy:#001f3f;--navy-lt:#d0e0f0;--sun:#ffcc00;--sun-mid:#cc9900}</style><body></body>`
	out := ApplyBrandColors(html, []string{"#ff0000", "#00ff00"})

	if !strings.Contains(out, "--sun:#00ff00") {
		t.Fatalf("expected secondary base remapped, got %s", out)
	}
	if !strings.Contains(out, "--sun-mid:"+colormath.Shade("#00ff00", 0.10)) {
		t.Fatalf("expected secondary shade remapped, got %s", out)
	}
}

func TestApplyBrandColors_SinglePaletteLeavesSecondFamily(t *testing.T) {
	html := `<style>:root{--navy:#001f3f;--sun:#ffcc00}</style><body></body>`
	out := ApplyBrandColors(html, []string{"#ff0000"})

	if !strings.Contains(out, "--sun:#ffcc00") {
		t.Fatalf("second family must be untouched without a secondary color, got %s", out)
	}
}

func TestApplyBrandColors_RgbaNeverSeedsFamily(t *testing.T) {
	html := `<style>:root{--glow:rgba(0,128,128,.4);--coral:#ff7f50;--coral-pale:#ffe8e0}</style><body></body>`
	out := ApplyBrandColors(html, []string{"#112233"})

	if !strings.Contains(out, "--glow:rgba(0,128,128,.4)") {
		t.Fatalf("rgba variable must pass through, got %s", out)
	}
	if !strings.Contains(out, "--coral:#112233") {
		t.Fatalf("first hex variable must seed the family, got %s", out)
	}
	if !strings.Contains(out, "--coral-pale:"+colormath.Tint("#112233", 0.88)) {
		t.Fatalf("-pale suffix must tint, got %s", out)
	}
}

func TestApplyBrandColors_RgbaMutedSkipped(t *testing.T) {
	html := `<style>:root{--teal:#008080;--muted:rgba(20,40,40,.7)}</style><body></body>`
	out := ApplyBrandColors(html, []string{"#ff0000"})

	if !strings.Contains(out, "--muted:rgba(20,40,40,.7)") {
		t.Fatalf("rgba muted must not be overwritten, got %s", out)
	}
}

func TestApplyBrandColors_OnlyFirstRootBlock(t *testing.T) {
	html := `<style>:root{--teal:#008080}</style><style>:root{--teal:#008080}</style><body></body>`
	out := ApplyBrandColors(html, []string{"#ff0000"})

	if strings.Count(out, "--teal:#ff0000") != 1 {
		t.Fatalf("only the first :root block may be rewritten, got %s", out)
	}
	if strings.Count(out, "--teal:#008080") != 1 {
		t.Fatalf("second :root block must be untouched, got %s", out)
	}
}

func TestApplyBrandColors_UnknownSuffixUnchanged(t *testing.T) {
	html := `<style>:root{--teal:#008080;--teal-deep:#003333}</style><body></body>`
	out := ApplyBrandColors(html, []string{"#ff0000"})

	if !strings.Contains(out, "--teal-deep:#003333") {
		t.Fatalf("unrecognized suffix must keep its value, got %s", out)
	}
}
