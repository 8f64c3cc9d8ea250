package service

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/morningstar-ai/preview-engine/internal/dto"
	"github.com/morningstar-ai/preview-engine/internal/entity"
	"github.com/morningstar-ai/preview-engine/internal/extract"
	"github.com/morningstar-ai/preview-engine/internal/fetch"
	"github.com/morningstar-ai/preview-engine/internal/repository"
)

// ValidationError indicates that a request payload is invalid.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Message
}

// CaptureService ingests website captures, from the extension payload or by
// scraping a URL server-side.
type CaptureService struct {
	prospects     repository.ProspectsRepository
	captures      repository.CapturesRepository
	notifications repository.NotificationsRepository
	fetcher       fetch.Fetcher
}

// NewCaptureService creates a new instance of CaptureService.
func NewCaptureService(
	prospects repository.ProspectsRepository,
	captures repository.CapturesRepository,
	notifications repository.NotificationsRepository,
	fetcher fetch.Fetcher,
) *CaptureService {
	return &CaptureService{
		prospects:     prospects,
		captures:      captures,
		notifications: notifications,
		fetcher:       fetcher,
	}
}

// Ingest upserts the prospect keyed by website URL, records the capture and
// notifies the dashboard.
func (s *CaptureService) Ingest(ctx context.Context, req dto.CaptureRequest) (*dto.CaptureResult, error) {
	if req.PageURL == "" {
		return nil, ValidationError{Message: "page_url is required"}
	}

	prospect := &entity.Prospect{
		WebsiteURL:    req.PageURL,
		BusinessName:  resolveBusinessName(req),
		Phone:         firstPtr(req.ContactPhones),
		WhatsApp:      firstPtr(req.ContactPhones),
		Email:         firstPtr(req.ContactEmails),
		Address:       req.Address,
		GoogleRating:  req.GoogleRating,
		GoogleMapsURL: req.GoogleMapsURL,
		DoctorName:    req.DoctorName,
		Source:        "chrome_extension",
		Status:        entity.ProspectStatusNew,
	}

	prospect, err := s.prospects.UpsertByWebsiteURL(ctx, prospect)
	if err != nil {
		return nil, fmt.Errorf("upsert prospect: %w", err)
	}

	capture := &entity.Capture{
		ProspectID:      prospect.ID,
		PageURL:         req.PageURL,
		PageTitle:       req.PageTitle,
		MetaDescription: req.MetaDescription,
		H1Text:          req.H1Text,
		H2Texts:         req.H2Texts,
		LogoURL:         req.LogoURL,
		HeroImageURL:    req.HeroImageURL,
		ColorPalette:    req.ColorPalette,
		FontFamilies:    req.FontFamilies,
		HasBooking:      req.HasBooking,
		HasWhatsApp:     req.HasWhatsApp,
		HasInstagram:    req.HasInstagram,
		ContactEmails:   req.ContactEmails,
		ContactPhones:   req.ContactPhones,
		PageContent:     req.PageContent,
	}

	capture, err = s.captures.Insert(ctx, capture)
	if err != nil {
		return nil, fmt.Errorf("insert capture: %w", err)
	}

	notification := &entity.Notification{
		Type:       entity.NotificationPreviewReady,
		ProspectID: &prospect.ID,
		Message:    fmt.Sprintf("New capture from Chrome Extension: %s (%s)", prospect.BusinessName, req.PageURL),
	}
	if err := s.notifications.Insert(ctx, notification); err != nil {
		log.Printf("capture notification failed prospect=%s err=%v", prospect.ID, err)
	}

	return &dto.CaptureResult{
		ProspectID:   prospect.ID.String(),
		CaptureID:    capture.ID.String(),
		BusinessName: prospect.BusinessName,
	}, nil
}

// Scan fetches the URL server-side, runs the extraction heuristics and
// ingests the result as if the extension had sent it.
func (s *CaptureService) Scan(ctx context.Context, req dto.ScanRequest) (*dto.CaptureResult, error) {
	if req.URL == "" {
		return nil, ValidationError{Message: "url is required"}
	}

	body, status, err := s.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", req.URL, err)
	}
	defer body.Close()

	if status >= 400 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", req.URL, status)
	}

	page, err := extract.NewPage(body, req.URL)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", req.URL, err)
	}

	capture := extract.Run(page)
	return s.Ingest(ctx, scanToCaptureRequest(capture))
}

func scanToCaptureRequest(c *extract.Capture) dto.CaptureRequest {
	return dto.CaptureRequest{
		PageURL:         c.PageURL,
		PageTitle:       c.PageTitle,
		MetaDescription: c.MetaDescription,
		H1Text:          c.H1Text,
		H2Texts:         c.H2Texts,
		LogoURL:         c.LogoURL,
		HeroImageURL:    c.HeroImageURL,
		ColorPalette:    c.ColorPalette,
		FontFamilies:    c.FontFamilies,
		HasBooking:      c.HasBooking,
		HasWhatsApp:     c.HasWhatsApp,
		HasInstagram:    c.HasInstagram,
		ContactEmails:   c.ContactEmails,
		ContactPhones:   c.ContactPhones,
		PageContent:     c.PageContent,
		BusinessName:    c.BusinessName,
		DoctorName:      firstPtr(c.DoctorNames),
		Address:         c.Address,
		GoogleMapsURL:   c.GoogleMapsURL,
	}
}

func resolveBusinessName(req dto.CaptureRequest) string {
	if req.BusinessName != nil && *req.BusinessName != "" {
		return *req.BusinessName
	}
	if req.PageTitle != "" {
		return req.PageTitle
	}
	if u, err := url.Parse(req.PageURL); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}
	return req.PageURL
}

func firstPtr(values []string) *string {
	if len(values) == 0 || values[0] == "" {
		return nil
	}
	return &values[0]
}
