package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/giveaway-bot/internal/common/logger"
	"github.com/KirkDiggler/giveaway-bot/internal/services/item"
)

// AddItemCommand opens the guided item creation conversation
type AddItemCommand struct {
	BaseCommand
	handler *Handler
}

func newAddItemCommand(h *Handler) *AddItemCommand {
	return &AddItemCommand{
		BaseCommand: BaseCommand{
			Name:      "additem",
			Usage:     "additem",
			Scope:     ScopeDM,
			AdminOnly: true,
		},
		handler: h,
	}
}

// Handle starts a new draft, replacing any unfinished one
func (c *AddItemCommand) Handle(ctx context.Context, req *CommandRequest) error {
	output, err := c.handler.itemService.BeginDraft(ctx, &item.BeginDraftInput{
		UserID: req.Message.Author.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to begin item draft: %w", err)
	}

	logger.Info().Str("user_id", req.Message.Author.ID).Msg("Item draft started")

	c.handler.reply(req.Message, draftPrompt(output.Step))
	return nil
}

// ItemsCommand lists the item catalog
type ItemsCommand struct {
	BaseCommand
	handler *Handler
}

func newItemsCommand(h *Handler) *ItemsCommand {
	return &ItemsCommand{
		BaseCommand: BaseCommand{
			Name:      "items",
			Usage:     "items",
			Scope:     ScopeDM,
			AdminOnly: true,
		},
		handler: h,
	}
}

// Handle replies with every item, split across messages when long
func (c *ItemsCommand) Handle(ctx context.Context, req *CommandRequest) error {
	output, err := c.handler.itemService.ListItems(ctx, &item.ListItemsInput{})
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}

	c.handler.reply(req.Message, itemList(output.Items, c.handler.prefix))
	return nil
}
