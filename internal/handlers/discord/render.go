package discord

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/giveaway-bot/internal/common/clock"
	"github.com/KirkDiggler/giveaway-bot/internal/endtime"
	"github.com/KirkDiggler/giveaway-bot/internal/models"
)

// Embed colours
const (
	colorOpen      = 0x00AE86
	colorEnded     = 0xFF0000
	colorCancelled = 0x808080
)

// ButtonParticipate is the custom ID of the join button on every giveaway message
const ButtonParticipate = "participate_giveaway"

// maxMessageLength is Discord's limit for message content
const maxMessageLength = 2000

const noDescription = "No description provided"

// openView is everything shown on a running giveaway message
type openView struct {
	// GiveawayID is zero until the giveaway has been stored
	GiveawayID       uint
	Item             *models.Item
	EndTime          time.Time
	WinnersCount     int
	ParticipantCount int
}

// renderer builds giveaway messages from domain state
type renderer struct {
	parser *endtime.Parser
	clock  clock.Clock
}

func (r *renderer) baseEmbed(item *models.Item, title string, color int) *discordgo.MessageEmbed {
	description := item.Description
	if description == "" {
		description = noDescription
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   r.clock.Now().Format(time.RFC3339),
	}

	if item.HasImage() {
		embed.Image = &discordgo.MessageEmbedImage{URL: item.ImageURL}
	}

	return embed
}

func footer(giveawayID uint) *discordgo.MessageEmbedFooter {
	if giveawayID == 0 {
		return &discordgo.MessageEmbedFooter{Text: "Loading..."}
	}
	return &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Giveaway ID: %d", giveawayID)}
}

// openEmbed renders a running giveaway
func (r *renderer) openEmbed(v *openView) *discordgo.MessageEmbed {
	embed := r.baseEmbed(v.Item, "🎁 "+v.Item.Name, colorOpen)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "⏰ Ends at", Value: r.parser.Display(v.EndTime), Inline: true},
		{Name: "🏆 Winners", Value: strconv.Itoa(v.WinnersCount), Inline: true},
		{Name: "👥 Participants", Value: strconv.Itoa(v.ParticipantCount), Inline: true},
	}
	embed.Footer = footer(v.GiveawayID)

	return embed
}

// endedEmbed renders a giveaway after winners were drawn
func (r *renderer) endedEmbed(giveawayID uint, item *models.Item, winnerIDs []string, participantCount int) *discordgo.MessageEmbed {
	winners := "No winners selected"
	if len(winnerIDs) > 0 {
		winners = strings.Join(mentions(winnerIDs), "\n")
	}

	embed := r.baseEmbed(item, fmt.Sprintf("🎁 %s - ENDED", item.Name), colorEnded)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "🏆 Winners", Value: winners, Inline: false},
		{Name: "👥 Total Participants", Value: strconv.Itoa(participantCount), Inline: true},
	}
	embed.Footer = footer(giveawayID)

	return embed
}

// cancelledEmbed renders a giveaway stopped by an admin
func (r *renderer) cancelledEmbed(giveawayID uint, item *models.Item, participantCount int) *discordgo.MessageEmbed {
	embed := r.baseEmbed(item, fmt.Sprintf("🎁 %s - CANCELLED", item.Name), colorCancelled)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "❌ Status", Value: "This giveaway has been cancelled by an administrator", Inline: false},
		{Name: "👥 Participants", Value: strconv.Itoa(participantCount), Inline: true},
	}
	embed.Footer = footer(giveawayID)

	return embed
}

// participateButton renders the join button row; it is disabled once the giveaway is over
func participateButton(participantCount int, disabled bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    fmt.Sprintf("🎁 Participate (%d)", participantCount),
					Style:    discordgo.PrimaryButton,
					CustomID: ButtonParticipate,
					Disabled: disabled,
				},
			},
		},
	}
}

// winnerAnnouncement is posted as a reply to the giveaway message when it ends
func winnerAnnouncement(item *models.Item, winnerIDs []string) string {
	if len(winnerIDs) == 0 {
		return fmt.Sprintf("😢 The giveaway for **%s** has ended with no participants.", item.Name)
	}
	return fmt.Sprintf("🎉 Congratulations %s! You won **%s**!", strings.Join(mentions(winnerIDs), ", "), item.Name)
}

func mentions(userIDs []string) []string {
	out := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		out = append(out, fmt.Sprintf("<@%s>", id))
	}
	return out
}

// itemList renders the catalog for the items command
func itemList(items []*models.Item, prefix string) string {
	if len(items) == 0 {
		return fmt.Sprintf("📦 No items found. Use `%sadditem` to add your first item.", prefix)
	}

	entries := make([]string, 0, len(items))
	for _, item := range items {
		image := item.ImageURL
		if image == "" {
			image = "No image"
		}
		entries = append(entries, fmt.Sprintf("**ID %d:** %s\n📝 %s\n🖼️ %s", item.ID, item.Name, item.Description, image))
	}

	return "📦 **Available Giveaway Items:**\n\n" + strings.Join(entries, "\n\n")
}

// itemCreated confirms a finished item draft
func itemCreated(item *models.Item) string {
	image := item.ImageURL
	if image == "" {
		image = "None"
	}
	return fmt.Sprintf("✅ **Item created successfully!**\n\n**ID:** %d\n**Name:** %s\n**Description:** %s\n**Image:** %s",
		item.ID, item.Name, item.Description, image)
}

// draftPrompt is the reply after an answer moved the draft to step
func draftPrompt(step models.DraftStep) string {
	switch step {
	case models.DraftStepName:
		return "🎁 **Adding new giveaway item**\n\nPlease enter the **item name**:\n_Type `cancel` at any time to stop._"
	case models.DraftStepDescription:
		return "📝 **Item name saved!**\n\nNow enter the **description** for this item:"
	case models.DraftStepImage:
		return "🖼️ **Description saved!**\n\nNow send an **image URL** for this item (or type \"skip\" to skip):"
	}
	return ""
}

// draftRetry asks for the current step again after an empty answer
func draftRetry(step models.DraftStep) string {
	switch step {
	case models.DraftStepName:
		return "❌ The item name cannot be empty. Please enter the **item name**:"
	case models.DraftStepDescription:
		return "❌ The description cannot be empty. Please enter the **description** for this item:"
	case models.DraftStepImage:
		return "❌ Please send an **image URL** for this item (or type \"skip\" to skip):"
	}
	return ""
}

// splitMessage breaks content into chunks Discord accepts, preferring paragraph breaks
func splitMessage(content string) []string {
	if len(content) <= maxMessageLength {
		return []string{content}
	}

	var chunks []string
	var current strings.Builder
	for _, paragraph := range strings.Split(content, "\n\n") {
		for len(paragraph) > maxMessageLength {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			cut := maxMessageLength
			for cut > 0 && !utf8.RuneStart(paragraph[cut]) {
				cut--
			}
			chunks = append(chunks, paragraph[:cut])
			paragraph = paragraph[cut:]
		}

		if current.Len() > 0 && current.Len()+2+len(paragraph) > maxMessageLength {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(paragraph)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}
