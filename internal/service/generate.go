package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/morningstar-ai/preview-engine/internal/dto"
	"github.com/morningstar-ai/preview-engine/internal/entity"
	"github.com/morningstar-ai/preview-engine/internal/extract"
	"github.com/morningstar-ai/preview-engine/internal/llm"
	"github.com/morningstar-ai/preview-engine/internal/preview"
	"github.com/morningstar-ai/preview-engine/internal/repository"
)

// TemplateAnalyst runs the model-backed analysis steps of the engine.
type TemplateAnalyst interface {
	DetectTemplate(ctx context.Context, c *extract.Capture) (*llm.TemplateDetection, error)
	ExtractInjectionData(ctx context.Context, c *extract.Capture, vertical, subVertical string) (map[string]any, error)
}

// GenerateService is the core engine: capture in, reviewed preview out.
type GenerateService struct {
	prospects     repository.ProspectsRepository
	captures      repository.CapturesRepository
	previews      repository.PreviewsRepository
	templates     repository.TemplatesRepository
	notifications repository.NotificationsRepository
	analyst       TemplateAnalyst
	generator     *preview.Generator
	baseURL       string
	expiry        time.Duration
}

// NewGenerateService wires the engine's collaborators.
func NewGenerateService(
	prospects repository.ProspectsRepository,
	captures repository.CapturesRepository,
	previews repository.PreviewsRepository,
	templates repository.TemplatesRepository,
	notifications repository.NotificationsRepository,
	analyst TemplateAnalyst,
	generator *preview.Generator,
	baseURL string,
	expiry time.Duration,
) *GenerateService {
	return &GenerateService{
		prospects:     prospects,
		captures:      captures,
		previews:      previews,
		templates:     templates,
		notifications: notifications,
		analyst:       analyst,
		generator:     generator,
		baseURL:       baseURL,
		expiry:        expiry,
	}
}

// Generate runs the full pipeline for one prospect: detect the template,
// extract injection data, render the HTML and persist the preview. An
// existing pending preview short-circuits unless force is set.
func (s *GenerateService) Generate(ctx context.Context, req dto.GenerateRequest) (*dto.GenerateResult, error) {
	if req.ProspectID == uuid.Nil {
		return nil, ValidationError{Message: "prospect_id is required"}
	}

	prospect, err := s.prospects.GetByID(ctx, req.ProspectID)
	if err != nil {
		return nil, err
	}

	if !req.Force {
		existing, err := s.previews.PendingForProspect(ctx, req.ProspectID)
		switch err {
		case nil:
			return &dto.GenerateResult{
				AlreadyExists: true,
				PreviewID:     existing.ID,
				PreviewURL:    existing.PreviewURL,
			}, nil
		case repository.ErrPreviewNotFound:
			// fall through and generate
		default:
			return nil, err
		}
	}

	capture, err := s.loadCapture(ctx, req)
	if err != nil {
		return nil, err
	}

	enriched := enrichCapture(capture, prospect)

	if err := s.prospects.SetStatus(ctx, prospect.ID, entity.ProspectStatusPreviewQueued); err != nil {
		return nil, fmt.Errorf("queue prospect: %w", err)
	}

	log.Printf("generate prospect=%s business=%q detecting template", prospect.ID, prospect.BusinessName)
	detection, err := s.analyst.DetectTemplate(ctx, enriched)
	if err != nil {
		log.Printf("generate prospect=%s detection failed, using fallback err=%v", prospect.ID, err)
		detection = fallbackDetection(prospect)
	}

	template, err := s.templates.GetBySlug(ctx, detection.TemplateSlug)
	if err != nil {
		return nil, fmt.Errorf("template not found: %s", detection.TemplateSlug)
	}

	if capture != nil {
		analysis := repository.CaptureAnalysis{
			Vertical:     detection.Vertical,
			SubVertical:  detection.SubVertical,
			TemplateSlug: detection.TemplateSlug,
			Quality:      detection.CurrentSiteQuality,
			Reasoning:    detection.Reasoning,
			Confidence:   detection.Confidence,
		}
		if err := s.captures.SetAnalysis(ctx, capture.ID, analysis); err != nil {
			log.Printf("generate capture=%s analysis update failed err=%v", capture.ID, err)
		}
	}

	injected, err := s.analyst.ExtractInjectionData(ctx, enriched, detection.Vertical, detection.SubVertical)
	if err != nil {
		log.Printf("generate prospect=%s extraction failed, using fallback err=%v", prospect.ID, err)
		injected = fallbackInjectionData(prospect, enriched)
	}

	previewID := uuid.New()
	expiresAt := time.Now().Add(s.expiry)

	html, err := s.generator.Generate(preview.GenerateParams{
		TemplateFilename: template.Filename,
		Data:             injected,
		PreviewID:        previewID.String(),
		ProspectName:     prospect.BusinessName,
		ExpiresAt:        expiresAt,
		BaseURL:          s.baseURL,
		ColorPalette:     enriched.ColorPalette,
	})
	if err != nil {
		return nil, fmt.Errorf("render preview: %w", err)
	}

	previewURL := fmt.Sprintf("%s/p/%s", s.baseURL, previewID)

	record := &entity.Preview{
		ID:           previewID,
		ProspectID:   prospect.ID,
		TemplateSlug: detection.TemplateSlug,
		InjectedData: injected,
		HTML:         html,
		PreviewURL:   previewURL,
		ExpiresAt:    expiresAt,
		ReviewStatus: entity.ReviewStatusPending,
	}
	if capture != nil {
		record.CaptureID = &capture.ID
	}

	if err := s.previews.Insert(ctx, record); err != nil {
		return nil, fmt.Errorf("insert preview: %w", err)
	}

	if err := s.prospects.SetStatus(ctx, prospect.ID, entity.ProspectStatusPreviewReady); err != nil {
		return nil, fmt.Errorf("mark prospect ready: %w", err)
	}
	if err := s.prospects.SetAnalysis(ctx, prospect.ID, detection.Vertical, detection.SubVertical, detection.CurrentSiteQuality); err != nil {
		log.Printf("generate prospect=%s analysis update failed err=%v", prospect.ID, err)
	}

	notification := &entity.Notification{
		Type:       entity.NotificationPreviewReady,
		ProspectID: &prospect.ID,
		PreviewID:  &previewID,
		Message:    fmt.Sprintf("Preview ready for review: %s -> %s", prospect.BusinessName, detection.TemplateSlug),
	}
	if err := s.notifications.Insert(ctx, notification); err != nil {
		log.Printf("generate notification failed prospect=%s err=%v", prospect.ID, err)
	}

	log.Printf("generate prospect=%s preview=%s url=%s", prospect.ID, previewID, previewURL)

	return &dto.GenerateResult{
		PreviewID:    previewID,
		PreviewURL:   previewURL,
		TemplateUsed: detection.TemplateSlug,
		Vertical:     detection.Vertical,
		SubVertical:  detection.SubVertical,
		Confidence:   detection.Confidence,
		Reasoning:    detection.Reasoning,
		ExpiresAt:    expiresAt,
		InjectedData: injected,
	}, nil
}

// loadCapture fetches the requested capture, or the latest one for the
// prospect. A prospect without any capture still generates, on prospect
// fields alone.
func (s *GenerateService) loadCapture(ctx context.Context, req dto.GenerateRequest) (*entity.Capture, error) {
	if req.CaptureID != nil {
		capture, err := s.captures.GetByID(ctx, *req.CaptureID)
		if err != nil {
			return nil, err
		}
		return capture, nil
	}

	capture, err := s.captures.LatestForProspect(ctx, req.ProspectID)
	switch err {
	case nil:
		return capture, nil
	case repository.ErrCaptureNotFound:
		return nil, nil
	default:
		return nil, err
	}
}

// enrichCapture merges the prospect's curated fields over the raw capture so
// the model sees the best data available for each slot.
func enrichCapture(capture *entity.Capture, prospect *entity.Prospect) *extract.Capture {
	enriched := &extract.Capture{}
	if capture != nil {
		enriched = &extract.Capture{
			PageURL:         capture.PageURL,
			PageTitle:       capture.PageTitle,
			MetaDescription: capture.MetaDescription,
			H1Text:          capture.H1Text,
			H2Texts:         capture.H2Texts,
			LogoURL:         capture.LogoURL,
			HeroImageURL:    capture.HeroImageURL,
			ColorPalette:    capture.ColorPalette,
			FontFamilies:    capture.FontFamilies,
			HasBooking:      capture.HasBooking,
			HasWhatsApp:     capture.HasWhatsApp,
			HasInstagram:    capture.HasInstagram,
			ContactEmails:   capture.ContactEmails,
			ContactPhones:   capture.ContactPhones,
			PageContent:     capture.PageContent,
		}
	}

	enriched.PageURL = prospect.WebsiteURL
	enriched.BusinessName = &prospect.BusinessName
	enriched.Address = prospect.Address
	if prospect.DoctorName != nil {
		enriched.DoctorNames = []string{*prospect.DoctorName}
	}
	if len(enriched.ContactPhones) == 0 && prospect.Phone != nil {
		enriched.ContactPhones = []string{*prospect.Phone}
	}
	if len(enriched.ContactEmails) == 0 && prospect.Email != nil {
		enriched.ContactEmails = []string{*prospect.Email}
	}

	return enriched
}

func fallbackDetection(prospect *entity.Prospect) *llm.TemplateDetection {
	detection := &llm.TemplateDetection{
		Vertical:           "other",
		TemplateSlug:       "other-clarity",
		CurrentSiteQuality: 5,
		Reasoning:          "fallback: template detection unavailable",
		Confidence:         "low",
	}
	if prospect.Vertical != nil && *prospect.Vertical != "" {
		detection.Vertical = *prospect.Vertical
	}
	if prospect.SubVertical != nil {
		detection.SubVertical = *prospect.SubVertical
	}
	return detection
}

func fallbackInjectionData(prospect *entity.Prospect, capture *extract.Capture) map[string]any {
	phone := "+971 4 000 0000"
	if prospect.Phone != nil && *prospect.Phone != "" {
		phone = *prospect.Phone
	}
	address := "Dubai, UAE"
	if prospect.Address != nil && *prospect.Address != "" {
		address = *prospect.Address
	}
	doctor := "Dr. Specialist"
	if prospect.DoctorName != nil && *prospect.DoctorName != "" {
		doctor = *prospect.DoctorName
	}
	hero := ""
	if capture.HeroImageURL != nil {
		hero = *capture.HeroImageURL
	}

	return map[string]any{
		"CLINIC_NAME":      prospect.BusinessName,
		"BRAND_NAME":       prospect.BusinessName,
		"CLINIC_PHONE":     phone,
		"BRAND_PHONE":      phone,
		"CLINIC_ADDRESS":   address,
		"BRAND_ADDRESS":    address,
		"DOCTOR_NAME":      doctor,
		"DOCTOR_FIRSTNAME": lastWord(doctor),
		"HERO_IMAGE":       hero,
		"DOCTOR_IMAGE":     "",
	}
}

func lastWord(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}
	return words[len(words)-1]
}
