package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Scope is where a text command may be used
type Scope int

const (
	// ScopeDM commands only work in a direct message with the bot
	ScopeDM Scope = iota

	// ScopeGuild commands only work in server channels
	ScopeGuild
)

// CommandHandler defines the interface for prefixed text commands
type CommandHandler interface {
	// GetName returns the command name without prefix
	GetName() string

	// GetScope returns where the command may be used
	GetScope() Scope

	// IsAdminOnly reports whether only bot admins may run the command
	IsAdminOnly() bool

	// Handle runs the command. User mistakes are answered directly; a returned
	// error means something broke and the user gets a generic failure reply.
	Handle(ctx context.Context, req *CommandRequest) error
}

// CommandRequest is one invocation of a text command
type CommandRequest struct {
	Message *discordgo.Message

	// Args are the whitespace separated words after the command name
	Args []string
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name      string
	Usage     string
	Scope     Scope
	AdminOnly bool
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetScope returns where the command may be used
func (c *BaseCommand) GetScope() Scope {
	return c.Scope
}

// IsAdminOnly reports whether the command is restricted to admins
func (c *BaseCommand) IsAdminOnly() bool {
	return c.AdminOnly
}

// Reply messages shared by the router and commands
const (
	msgDMOnly       = "❌ This command can only be used in DMs with the bot."
	msgGuildOnly    = "❌ This command can only be used in server channels."
	msgUnauthorized = "❌ You are not authorized to use this command."
	msgCommandError = "❌ An error occurred while processing your command."
)

// ReplyTo answers a message in its channel, referencing it
func ReplyTo(m Messenger, msg *discordgo.Message, content string) error {
	_, err := m.ChannelMessageSendReply(msg.ChannelID, content, msg.Reference())
	if err != nil {
		return fmt.Errorf("failed to reply in channel %s: %w", msg.ChannelID, err)
	}
	return nil
}

// RespondWithEphemeralMessage sends an ephemeral message response to an interaction
func RespondWithEphemeralMessage(m Messenger, i *discordgo.Interaction, message string) error {
	return m.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// FollowupEphemeral sends an ephemeral follow-up to an interaction already answered
func FollowupEphemeral(m Messenger, i *discordgo.Interaction, message string) error {
	_, err := m.FollowupMessageCreate(i, false, &discordgo.WebhookParams{
		Content: message,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	return err
}
