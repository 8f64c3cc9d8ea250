package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/morningstar-ai/preview-engine/internal/extract"
)

// TemplateDetection is the model's verdict on which template suits a
// captured site.
type TemplateDetection struct {
	Vertical           string `json:"vertical"`
	SubVertical        string `json:"sub_vertical"`
	TemplateSlug       string `json:"template_slug"`
	CurrentSiteQuality int    `json:"current_site_quality"`
	Reasoning          string `json:"reasoning"`
	Confidence         string `json:"confidence"`
}

// Analyst runs the two analysis tasks against a Provider: picking a
// redesign template for a captured site and extracting the data that fills
// the template's variables.
type Analyst struct {
	provider Provider
}

func NewAnalyst(provider Provider) *Analyst {
	return &Analyst{provider: provider}
}

const detectSystemPrompt = `You are an expert web design consultant for MorningStar.ai, a Dubai-based agency.
You analyse captured website data and choose the best redesign template from our library.

TEMPLATE LIBRARY:
E-Commerce:
- jewellery: jewellery-noir (luxury dark), jewellery-blanc (luxury light), jewellery-terre (earthy), jewellery-bold, jewellery-elegant, jewellery-minimal
- perfume: perfume-oud (luxury dark), perfume-parisien (editorial), perfume-botanique (natural), perfume-bold, perfume-elegant
- apparel: apparel-vivace (editorial), apparel-lumiere (luxury)
- cosmetics: cosmetics-botanica (natural), cosmetics-luxe (luxury)
- electronics: electronics-studio (minimal), electronics-volt (bold)
- other: other-elevate (professional), other-vivid (bold), other-clarity (clean)

Medical:
- medical-gp (GP / Family Medicine)
- medical-dental (Dental Clinic)
- medical-derm (Dermatology & Aesthetics)
- medical-cardio (Cardiology)
- medical-paeds (Paediatrics)
- medical-ortho (Orthopaedics & Sports Medicine)
- medical-womens (Women's Health / OB-GYN)
- medical-eye (Eye Clinic / Ophthalmology)

RULES:
- Choose the template that would most impress THIS specific business
- For medical: always match the exact specialty
- For e-commerce: consider brand aesthetic (existing colors, tone, photography style)
- Do NOT pick a template just because it's in the same category — pick the best fit
- Always return valid JSON, nothing else`

// DetectTemplate asks the model to classify the business vertical and pick
// the best template for it.
func (a *Analyst) DetectTemplate(ctx context.Context, c *extract.Capture) (*TemplateDetection, error) {
	user := fmt.Sprintf(`Analyse this captured website and choose the best template:

Business Name: %s
Website: %s
Page Title: %s
H1: %s
Meta Description: %s
H2s: %s
Colors detected: %s
Fonts detected: %s
Has booking widget: %t
Has WhatsApp: %t

Respond with ONLY this JSON:
{
  "vertical": "medical|jewellery|perfume|apparel|cosmetics|electronics|other",
  "sub_vertical": "dental|cardiology|dermatology|paediatrics|orthopaedics|obgyn|ophthalmology|gp|null",
  "template_slug": "exact-template-slug-from-library",
  "current_site_quality": 1-10,
  "reasoning": "2-3 sentences explaining your choice",
  "confidence": "high|medium|low"
}`,
		orDefault(c.BusinessName, "Unknown"),
		c.PageURL,
		c.PageTitle,
		c.H1Text,
		c.MetaDescription,
		strings.Join(c.H2Texts, " | "),
		strings.Join(c.ColorPalette, ", "),
		strings.Join(c.FontFamilies, ", "),
		c.HasBooking,
		c.HasWhatsApp,
	)

	resp, err := a.provider.Complete(ctx, CompletionRequest{
		MaxTokens: 1500,
		Messages: []Message{
			{Role: RoleSystem, Content: detectSystemPrompt},
			{Role: RoleUser, Content: user},
		},
	})
	if err != nil {
		return nil, err
	}

	var detection TemplateDetection
	if err := json.Unmarshal([]byte(stripFences(resp.Content)), &detection); err != nil {
		return nil, fmt.Errorf("failed to parse detection response: %w", err)
	}
	if strings.EqualFold(detection.SubVertical, "null") {
		detection.SubVertical = ""
	}
	return &detection, nil
}

const extractSystemPrompt = `You are a data extraction specialist for MorningStar.ai.
Your job is to extract or intelligently infer all template variables from captured website data.
If data is missing, generate a realistic, professional placeholder appropriate for Dubai, UAE.
All content should be professional, accurate and suitable for a UAE healthcare or retail business.
Return ONLY valid JSON, no explanation.`

// ExtractInjectionData asks the model to fill the template's variable set
// from the capture. Medical templates get clinic/doctor variables, everything
// else the brand set.
func (a *Analyst) ExtractInjectionData(ctx context.Context, c *extract.Capture, vertical, subVertical string) (map[string]any, error) {
	hero := orDefault(c.HeroImageURL, "")

	verticalLine := vertical
	if subVertical != "" {
		verticalLine += " (" + subVertical + ")"
	}

	var structure string
	if vertical == "medical" {
		structure = fmt.Sprintf(`Return this JSON structure:
{
  "CLINIC_NAME": "exact business name",
  "CLINIC_PHONE": "phone number with UAE format +971...",
  "CLINIC_WHATSAPP": "whatsapp number",
  "CLINIC_EMAIL": "email or placeholder",
  "CLINIC_ADDRESS": "full address",
  "DOCTOR_NAME": "Dr. Full Name or placeholder",
  "DOCTOR_FIRSTNAME": "first name only",
  "DOCTOR_IMAGE": "%s",
  "HERO_IMAGE": "%s",
  "SPECIALTY": "exact medical specialty",
  "YEARS_EXPERIENCE": "number",
  "PATIENT_COUNT": "realistic number e.g. 5,000+",
  "RATING": "google rating or 4.8",
  "LICENSE_TYPE": "DHA or HAAD",
  "OPENING_HOURS": "realistic UAE clinic hours"
}`, hero, hero)
	} else {
		structure = fmt.Sprintf(`Return this JSON structure:
{
  "BRAND_NAME": "exact business name",
  "BRAND_TAGLINE": "short punchy tagline",
  "BRAND_PHONE": "phone number",
  "BRAND_EMAIL": "email",
  "BRAND_ADDRESS": "address",
  "HERO_IMAGE": "%s",
  "HERO_HEADING": "compelling headline for their industry",
  "HERO_SUB": "1-2 sentence subheading",
  "PRIMARY_COLOR": "hex color from their brand palette or best fit",
  "PRODUCT_1": "first product/service name",
  "PRODUCT_2": "second product/service name",
  "PRODUCT_3": "third product/service name"
}`, hero)
	}

	user := fmt.Sprintf(`Extract template injection data from this captured website.

Business: %s
Website: %s
Vertical: %s
Phone found: %s
Email found: %s
Address: %s
Hero image URL: %s
Logo URL: %s
Doctor name (if known): %s
Page content: %s %s

%s`,
		orDefault(c.BusinessName, ""),
		c.PageURL,
		verticalLine,
		joinOr(c.ContactPhones, "not found"),
		joinOr(c.ContactEmails, "not found"),
		orDefault(c.Address, "not found"),
		hero,
		orDefault(c.LogoURL, ""),
		firstOr(c.DoctorNames, "not found"),
		c.H1Text,
		strings.Join(capSlice(c.H2Texts, 5), " "),
		structure,
	)

	resp, err := a.provider.Complete(ctx, CompletionRequest{
		MaxTokens: 2000,
		JSONMode:  true,
		Messages: []Message{
			{Role: RoleSystem, Content: extractSystemPrompt},
			{Role: RoleUser, Content: user},
		},
	})
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(stripFences(resp.Content)), &data); err != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}
	return data, nil
}

// stripFences removes markdown code fences models wrap JSON responses in.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func joinOr(values []string, def string) string {
	if len(values) == 0 {
		return def
	}
	return strings.Join(values, ", ")
}

func firstOr(values []string, def string) string {
	if len(values) == 0 {
		return def
	}
	return values[0]
}

func capSlice(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}
