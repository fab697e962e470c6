package item

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/giveaway-bot/internal/common/clock"
	"github.com/KirkDiggler/giveaway-bot/internal/common/logger"
	"github.com/KirkDiggler/giveaway-bot/internal/models"
	itemRepo "github.com/KirkDiggler/giveaway-bot/internal/repositories/item"
	draftRepo "github.com/KirkDiggler/giveaway-bot/internal/repositories/item_draft"
)

type service struct {
	promptTTL time.Duration
	itemRepo  itemRepo.Repository
	draftRepo draftRepo.Repository
	clock     clock.Clock
}

// New creates a new item service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ItemRepo == nil {
		return nil, ErrNilItemRepo
	}

	if cfg.DraftRepo == nil {
		return nil, ErrNilDraftRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.PromptTTL <= 0 {
		return nil, ErrInvalidPromptTTL
	}

	return &service{
		promptTTL: cfg.PromptTTL,
		itemRepo:  cfg.ItemRepo,
		draftRepo: cfg.DraftRepo,
		clock:     cfg.Clock,
	}, nil
}

// BeginDraft stores a fresh draft waiting for the item name
func (s *service) BeginDraft(ctx context.Context, input *BeginDraftInput) (*BeginDraftOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	draft := &models.ItemDraft{
		UserID:    input.UserID,
		Step:      models.DraftStepName,
		StartedAt: s.clock.Now(),
	}

	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}

	return &BeginDraftOutput{
		Step: draft.Step,
	}, nil
}

// HasDraft reports whether a draft exists for the user
func (s *service) HasDraft(ctx context.Context, input *HasDraftInput) (*HasDraftOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	_, err := s.draftRepo.GetDraft(ctx, &draftRepo.GetDraftInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			return &HasDraftOutput{HasDraft: false}, nil
		}
		return nil, fmt.Errorf("failed to look up draft: %w", err)
	}

	return &HasDraftOutput{
		HasDraft: true,
	}, nil
}

// ContinueDraft applies one answer to the user's draft. The image step
// creates the item and removes the draft whether or not creation succeeds.
func (s *service) ContinueDraft(ctx context.Context, input *ContinueDraftInput) (*ContinueDraftOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	draft, err := s.draftRepo.GetDraft(ctx, &draftRepo.GetDraftInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to look up draft: %w", err)
	}

	answer := strings.TrimSpace(input.Content)

	if strings.EqualFold(answer, CancelDraft) {
		if err := s.deleteDraft(ctx, input.UserID); err != nil {
			return nil, err
		}
		return &ContinueDraftOutput{Cancelled: true}, nil
	}

	if answer == "" {
		return &ContinueDraftOutput{
			Step:     draft.Step,
			Rejected: true,
		}, nil
	}

	switch draft.Step {
	case models.DraftStepName:
		draft.Name = answer
		draft.Step = models.DraftStepDescription
	case models.DraftStepDescription:
		draft.Description = answer
		draft.Step = models.DraftStepImage
	case models.DraftStepImage:
		return s.completeDraft(ctx, draft, answer)
	default:
		if err := s.deleteDraft(ctx, input.UserID); err != nil {
			return nil, err
		}
		return nil, ErrInvalidDraftStep
	}

	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}

	return &ContinueDraftOutput{
		Step: draft.Step,
	}, nil
}

// ListItems returns every item ordered by ID
func (s *service) ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	output, err := s.itemRepo.ListItems(ctx, &itemRepo.ListItemsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return &ListItemsOutput{
		Items: output.Items,
	}, nil
}

func (s *service) completeDraft(ctx context.Context, draft *models.ItemDraft, answer string) (*ContinueDraftOutput, error) {
	imageURL := answer
	if strings.EqualFold(answer, SkipImage) {
		imageURL = ""
	}

	// the draft is gone after this answer whatever happens next
	if err := s.deleteDraft(ctx, draft.UserID); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.CreateItem(ctx, &itemRepo.CreateItemInput{
		Item: &models.Item{
			Name:        draft.Name,
			Description: draft.Description,
			ImageURL:    imageURL,
			CreatedBy:   draft.UserID,
			CreatedAt:   s.clock.Now(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateItemFailed, err)
	}

	logger.Info().
		Uint("item_id", item.ID).
		Str("user_id", draft.UserID).
		Str("name", item.Name).
		Msg("Item created")

	return &ContinueDraftOutput{
		Item: item,
	}, nil
}

func (s *service) saveDraft(ctx context.Context, draft *models.ItemDraft) error {
	err := s.draftRepo.SaveDraft(ctx, &draftRepo.SaveDraftInput{
		Draft: draft,
		TTL:   s.promptTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (s *service) deleteDraft(ctx context.Context, userID string) error {
	err := s.draftRepo.DeleteDraft(ctx, &draftRepo.DeleteDraftInput{
		UserID: userID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
