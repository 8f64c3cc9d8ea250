package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/morningstar-ai/preview-engine/internal/extract"
)

// fakeProvider returns a canned completion and records the last request.
type fakeProvider struct {
	content string
	err     error
	lastReq CompletionRequest
}

func (f *fakeProvider) Complete(_ context.Context, req CompletionRequest) (*CompletionResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &CompletionResponse{Content: f.content}, nil
}

func (f *fakeProvider) Name() string { return "fake" }

func strp(s string) *string { return &s }

func TestDetectTemplate_ParsesVerdict(t *testing.T) {
	fake := &fakeProvider{content: `{
		"vertical": "medical",
		"sub_vertical": "dental",
		"template_slug": "medical-dental",
		"current_site_quality": 4,
		"reasoning": "Dental clinic with an outdated site.",
		"confidence": "high"
	}`}
	a := NewAnalyst(fake)

	capture := &extract.Capture{
		PageURL:      "https://clinic.example.ae/",
		BusinessName: strp("Bright Smile Dental"),
		H2Texts:      []string{"Our Services", "Meet The Team"},
		HasBooking:   true,
	}

	d, err := a.DetectTemplate(context.Background(), capture)
	if err != nil {
		t.Fatalf("DetectTemplate: %v", err)
	}
	if d.TemplateSlug != "medical-dental" || d.Vertical != "medical" || d.SubVertical != "dental" {
		t.Fatalf("verdict: %+v", d)
	}
	if d.CurrentSiteQuality != 4 || d.Confidence != "high" {
		t.Fatalf("verdict: %+v", d)
	}

	if len(fake.lastReq.Messages) != 2 || fake.lastReq.Messages[0].Role != RoleSystem {
		t.Fatalf("expected system+user messages, got %+v", fake.lastReq.Messages)
	}
	user := fake.lastReq.Messages[1].Content
	if !strings.Contains(user, "Bright Smile Dental") || !strings.Contains(user, "Our Services | Meet The Team") {
		t.Fatalf("capture not rendered into prompt:\n%s", user)
	}
}

func TestDetectTemplate_StripsCodeFences(t *testing.T) {
	fake := &fakeProvider{content: "```json\n{\"vertical\":\"other\",\"template_slug\":\"other-clarity\",\"confidence\":\"low\"}\n```"}
	a := NewAnalyst(fake)

	d, err := a.DetectTemplate(context.Background(), &extract.Capture{PageURL: "https://x.ae/"})
	if err != nil {
		t.Fatalf("DetectTemplate: %v", err)
	}
	if d.TemplateSlug != "other-clarity" {
		t.Fatalf("verdict: %+v", d)
	}
}

func TestDetectTemplate_NullSubVerticalNormalized(t *testing.T) {
	fake := &fakeProvider{content: `{"vertical":"other","sub_vertical":"null","template_slug":"other-elevate"}`}
	a := NewAnalyst(fake)

	d, err := a.DetectTemplate(context.Background(), &extract.Capture{})
	if err != nil {
		t.Fatalf("DetectTemplate: %v", err)
	}
	if d.SubVertical != "" {
		t.Fatalf("sub_vertical should normalize to empty, got %q", d.SubVertical)
	}
}

func TestDetectTemplate_GarbageResponse(t *testing.T) {
	fake := &fakeProvider{content: "I think a dental template would be lovely."}
	a := NewAnalyst(fake)

	if _, err := a.DetectTemplate(context.Background(), &extract.Capture{}); err == nil {
		t.Fatal("expected parse error for non-JSON response")
	}
}

func TestExtractInjectionData_MedicalStructure(t *testing.T) {
	fake := &fakeProvider{content: `{"CLINIC_NAME":"Bright Smile Dental","DOCTOR_NAME":"Dr. Layla Hassan"}`}
	a := NewAnalyst(fake)

	capture := &extract.Capture{
		BusinessName: strp("Bright Smile Dental"),
		HeroImageURL: strp("https://cdn.example.ae/hero.jpg"),
		DoctorNames:  []string{"Dr. Layla Hassan"},
	}

	data, err := a.ExtractInjectionData(context.Background(), capture, "medical", "dental")
	if err != nil {
		t.Fatalf("ExtractInjectionData: %v", err)
	}
	if data["CLINIC_NAME"] != "Bright Smile Dental" {
		t.Fatalf("data: %v", data)
	}

	user := fake.lastReq.Messages[1].Content
	if !strings.Contains(user, "CLINIC_NAME") || strings.Contains(user, "BRAND_TAGLINE") {
		t.Fatalf("medical vertical must request the clinic structure:\n%s", user)
	}
	if !strings.Contains(user, "medical (dental)") {
		t.Fatalf("vertical line missing sub-vertical:\n%s", user)
	}
	if !strings.Contains(user, `"HERO_IMAGE": "https://cdn.example.ae/hero.jpg"`) {
		t.Fatalf("hero URL must be pre-filled into the structure:\n%s", user)
	}
}

func TestExtractInjectionData_BrandStructure(t *testing.T) {
	fake := &fakeProvider{content: `{"BRAND_NAME":"Acme Jewels"}`}
	a := NewAnalyst(fake)

	_, err := a.ExtractInjectionData(context.Background(), &extract.Capture{BusinessName: strp("Acme Jewels")}, "jewellery", "")
	if err != nil {
		t.Fatalf("ExtractInjectionData: %v", err)
	}

	user := fake.lastReq.Messages[1].Content
	if !strings.Contains(user, "BRAND_TAGLINE") || strings.Contains(user, "CLINIC_NAME") {
		t.Fatalf("non-medical vertical must request the brand structure:\n%s", user)
	}
	if !strings.Contains(user, "Phone found: not found") {
		t.Fatalf("missing-data placeholders not rendered:\n%s", user)
	}
}
