package usecase

import (
	"context"
	"fmt"

	"clubsite/internal/content/domain/model"
	"clubsite/internal/content/domain/repository"
	apperrors "clubsite/internal/shared/errors"
	"clubsite/internal/shared/logger"

	"github.com/google/uuid"
)

// RSVPResult classifies the outcome of an RSVP submission. A uniqueness
// violation on (event_id, email) is the distinguished "already registered"
// case; every other failure passes through as a generic message.
type RSVPResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ResourceUsecaseInterface exposes the public, read-only resource feeds plus
// the single mutation-capable flow (community event RSVP).
type ResourceUsecaseInterface interface {
	TeamMembers(ctx context.Context) ([]model.TeamMember, error)
	NewsFlash(ctx context.Context) ([]model.NewsFlashItem, error)
	Events(ctx context.Context) ([]model.EventItem, error)
	MacroIndicators(ctx context.Context) ([]model.MacroIndicator, error)
	Gallery(ctx context.Context) ([]model.GalleryItem, error)
	ResearchReports(ctx context.Context) ([]model.ResearchReport, error)
	ResearchArchive(ctx context.Context) ([]model.ResearchArchiveItem, error)
	SiteStats(ctx context.Context) ([]model.SiteStat, error)
	Sentiment(ctx context.Context) ([]model.SentimentIndicator, error)
	Partners(ctx context.Context) ([]model.Partner, error)
	CommunityEvents(ctx context.Context) ([]model.CommunityEvent, error)
	SubmitRSVP(ctx context.Context, eventID, name, email string) (*RSVPResult, error)
}

// ResourceUsecase implements the public feeds over the row repository.
type ResourceUsecase struct {
	repo   repository.RowRepository
	logger logger.Logger
}

// NewResourceUsecase creates a new ResourceUsecase.
func NewResourceUsecase(repo repository.RowRepository, log logger.Logger) *ResourceUsecase {
	return &ResourceUsecase{
		repo:   repo,
		logger: log.WithComponent("resource_usecase"),
	}
}

// fetchMapped implements the shared fetch contract once: one ordered (and
// optionally filtered) read of one collection, projected row by row into the
// display model. Every public feed goes through here.
func fetchMapped[T any](
	ctx context.Context,
	repo repository.RowRepository,
	collection string,
	opts repository.ListOptions,
	project func(model.Row) T,
) ([]T, error) {
	rows, err := repo.List(ctx, collection, opts)
	if err != nil {
		return nil, apperrors.WrapError(err, fmt.Sprintf("failed to fetch %s", collection))
	}
	out := make([]T, len(rows))
	for i, row := range rows {
		out[i] = project(row)
	}
	return out, nil
}

func (uc *ResourceUsecase) TeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	return fetchMapped(ctx, uc.repo, "team_members",
		repository.ListOptions{OrderBy: "id"}, model.NewTeamMember)
}

func (uc *ResourceUsecase) NewsFlash(ctx context.Context) ([]model.NewsFlashItem, error) {
	return fetchMapped(ctx, uc.repo, "news_flash_items",
		repository.ListOptions{OrderBy: "time"}, model.NewNewsFlashItem)
}

func (uc *ResourceUsecase) Events(ctx context.Context) ([]model.EventItem, error) {
	return fetchMapped(ctx, uc.repo, "event_items",
		repository.ListOptions{OrderBy: "created_at"}, model.NewEventItem)
}

func (uc *ResourceUsecase) MacroIndicators(ctx context.Context) ([]model.MacroIndicator, error) {
	return fetchMapped(ctx, uc.repo, "macro_indicators",
		repository.ListOptions{OrderBy: "date"}, model.NewMacroIndicator)
}

func (uc *ResourceUsecase) Gallery(ctx context.Context) ([]model.GalleryItem, error) {
	return fetchMapped(ctx, uc.repo, "gallery_items",
		repository.ListOptions{OrderBy: "id"}, model.NewGalleryItem)
}

func (uc *ResourceUsecase) ResearchReports(ctx context.Context) ([]model.ResearchReport, error) {
	return fetchMapped(ctx, uc.repo, "research_reports",
		repository.ListOptions{OrderBy: "date"}, model.NewResearchReport)
}

func (uc *ResourceUsecase) ResearchArchive(ctx context.Context) ([]model.ResearchArchiveItem, error) {
	return fetchMapped(ctx, uc.repo, "research_archive_items",
		repository.ListOptions{OrderBy: "date"}, model.NewResearchArchiveItem)
}

func (uc *ResourceUsecase) SiteStats(ctx context.Context) ([]model.SiteStat, error) {
	return fetchMapped(ctx, uc.repo, "site_stats",
		repository.ListOptions{OrderBy: "sort_order"}, model.NewSiteStat)
}

func (uc *ResourceUsecase) Sentiment(ctx context.Context) ([]model.SentimentIndicator, error) {
	return fetchMapped(ctx, uc.repo, "market_sentiment",
		repository.ListOptions{OrderBy: "id"}, model.NewSentimentIndicator)
}

func (uc *ResourceUsecase) Partners(ctx context.Context) ([]model.Partner, error) {
	return fetchMapped(ctx, uc.repo, "partners",
		repository.ListOptions{OrderBy: "sort_order"}, model.NewPartner)
}

// CommunityEvents returns only active events, soonest first.
func (uc *ResourceUsecase) CommunityEvents(ctx context.Context) ([]model.CommunityEvent, error) {
	return fetchMapped(ctx, uc.repo, "community_events",
		repository.ListOptions{
			OrderBy: "event_date",
			Filter:  map[string]interface{}{"is_active": true},
		}, model.NewCommunityEvent)
}

// SubmitRSVP inserts one registration for (eventID, email). The backing store
// enforces uniqueness on that pair; the resulting conflict is surfaced as the
// distinguished ALREADY_REGISTERED outcome rather than a generic failure.
func (uc *ResourceUsecase) SubmitRSVP(ctx context.Context, eventID, name, email string) (*RSVPResult, error) {
	if eventID == "" || name == "" || email == "" {
		return nil, apperrors.NewValidationError("eventId, name and email are required")
	}

	row := model.Row{
		"id":       uuid.New().String(),
		"event_id": eventID,
		"name":     name,
		"email":    email,
	}

	if err := uc.repo.Insert(ctx, "event_rsvps", row); err != nil {
		if apperrors.IsConflict(err) {
			uc.logger.WithContext(ctx).Infof("Duplicate RSVP for event %s", eventID)
			return &RSVPResult{Success: false, Error: apperrors.CodeAlreadyRegistered}, nil
		}
		uc.logger.WithContext(ctx).Errorf("RSVP insert failed: %v", err)
		return &RSVPResult{Success: false, Error: err.Error()}, nil
	}

	return &RSVPResult{Success: true}, nil
}
