package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"eventbot/internal/domain/entities"
	"eventbot/pkg/datetime"
)

// Embed colors, matching the announcement/notification palette.
const (
	colorAnnouncement = 0x5865F2
	colorSuccess      = 0x00FF00
	colorUpdate       = 0xFFA500
	colorCancel       = 0xFF0000
	colorCancelDone   = 0xFF6B6B
	colorList         = 0x3498DB
)

// HostMention renders the host as a user or role mention.
func HostMention(e *entities.Event) string {
	if e.HostType == entities.HostTypeGroup {
		return fmt.Sprintf("<@&%s>", e.HostID)
	}
	return fmt.Sprintf("<@%s>", e.HostID)
}

func peopleCount(n int64) string {
	if n == 1 {
		return "1 person"
	}
	return fmt.Sprintf("%d people", n)
}

func withImage(embed *discordgo.MessageEmbed, e *entities.Event) *discordgo.MessageEmbed {
	if e.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: e.ImageURL}
	}
	return embed
}

// InterestButton is the "Interested" affordance attached to announcements.
// The event id rides in the custom id.
func InterestButton(eventID int64) discordgo.MessageComponent {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Interested",
			Emoji:    &discordgo.ComponentEmoji{Name: "⭐"},
			Style:    discordgo.PrimaryButton,
			CustomID: fmt.Sprintf("event_interested_%d", eventID),
		},
	}}
}

// BuildAnnouncementEmbed renders the public channel announcement. The same
// layout is used for the initial post and for every resync.
func BuildAnnouncementEmbed(e *entities.Event, interestedCount int64) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📅 New Event: %s", e.Name),
		Description: e.Description,
		Color:       colorAnnouncement,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🕐 Date & Time", Value: fmt.Sprintf("%s\n%s", datetime.Mention(e.StartTime, "F"), datetime.Mention(e.StartTime, "R"))},
			{Name: "🎤 Host", Value: HostMention(e), Inline: true},
			{Name: "👥 Interested", Value: peopleCount(interestedCount), Inline: true},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Event ID: #%d", e.ID)},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	return withImage(embed, e)
}

// BuildCreatedEmbed confirms a successful create to the requester.
func BuildCreatedEmbed(e *entities.Event, creatorName string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "✅ Event Created Successfully!",
		Color: colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Event Name", Value: e.Name},
			{Name: "Description", Value: e.Description},
			{Name: "Date & Time (UTC)", Value: datetime.Mention(e.StartTime, "F")},
			{Name: "Host", Value: HostMention(e), Inline: true},
			{Name: "Event ID", Value: fmt.Sprintf("#%d", e.ID), Inline: true},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Created by %s", creatorName)},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	return withImage(embed, e)
}

// BuildStartingDMEmbed is the "event starting now" direct message.
func BuildStartingDMEmbed(e *entities.Event, interestedCount int64) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🔔 Event Starting Now: %s", e.Name),
		Description: e.Description,
		Color:       colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🕐 Time", Value: datetime.Mention(e.StartTime, "F")},
			{Name: "👥 Interested", Value: peopleCount(interestedCount), Inline: true},
			{Name: "🆔 Event ID", Value: fmt.Sprintf("#%d", e.ID), Inline: true},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	return withImage(embed, e)
}

// BuildStartingFollowupEmbed is the threaded follow-up posted on the
// announcement when the event starts.
func BuildStartingFollowupEmbed(e *entities.Event, interestedCount int64) *discordgo.MessageEmbed {
	verb := "people are"
	if interestedCount == 1 {
		verb = "person is"
	}
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🔔 %s", e.Name),
		Description: "This event is starting now!",
		Color:       colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👥 Interested", Value: fmt.Sprintf("%d %s interested", interestedCount, verb), Inline: true},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// BuildUpdatedDMEmbed is the direct message sent to registrants after an edit.
func BuildUpdatedDMEmbed(e *entities.Event, changes []string, editorID string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📝 Event Updated: %s", e.Name),
		Description: e.Description,
		Color:       colorUpdate,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🕐 Date & Time", Value: fmt.Sprintf("%s\n%s", datetime.Mention(e.StartTime, "F"), datetime.Mention(e.StartTime, "R"))},
			{Name: "📋 Changes Made", Value: joinLines(changes)},
			{Name: "ℹ️ Updated By", Value: fmt.Sprintf("<@%s>", editorID), Inline: true},
			{Name: "🆔 Event ID", Value: fmt.Sprintf("#%d", e.ID), Inline: true},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "This event has been updated"},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	return withImage(embed, e)
}

// BuildCancelledDMEmbed is the direct message sent to registrants on cancel.
func BuildCancelledDMEmbed(e *entities.Event, cancellerID string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("❌ Event Cancelled: %s", e.Name),
		Description: e.Description,
		Color:       colorCancel,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📅 Was Scheduled For", Value: datetime.Mention(e.StartTime, "F")},
			{Name: "ℹ️ Cancelled By", Value: fmt.Sprintf("<@%s>", cancellerID), Inline: true},
			{Name: "🆔 Event ID", Value: fmt.Sprintf("#%d", e.ID), Inline: true},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "This event has been cancelled"},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	return withImage(embed, e)
}

// BuildCancelResultEmbed confirms a successful cancel to the requester.
func BuildCancelResultEmbed(e *entities.Event, notifiedCount int, announcementDeleted bool) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "✅ Event Cancelled Successfully",
		Color: colorCancelDone,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Event Name", Value: e.Name},
			{Name: "Event ID", Value: fmt.Sprintf("#%d", e.ID), Inline: true},
			{Name: "Users Notified", Value: peopleCount(int64(notifiedCount)), Inline: true},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if announcementDeleted {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "📢 Announcement", Value: "Original announcement has been deleted",
		})
	}
	return embed
}

// BuildEditResultEmbed confirms a successful edit to the requester.
func BuildEditResultEmbed(e *entities.Event, changes []string, notifiedCount int, announcementUpdated bool) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "✅ Event Updated Successfully",
		Color: colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Event Name", Value: e.Name},
			{Name: "Event ID", Value: fmt.Sprintf("#%d", e.ID), Inline: true},
			{Name: "Users Notified", Value: peopleCount(int64(notifiedCount)), Inline: true},
			{Name: "📋 Changes", Value: joinLines(changes)},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if announcementUpdated {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "📢 Announcement", Value: "Original announcement has been updated",
		})
	}
	return embed
}

// BuildNoEventsEmbed is shown when a listing matches nothing.
func BuildNoEventsEmbed(description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "📅 No Events Found",
		Description: description,
		Color:       colorUpdate,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
}

// BuildListEmbed renders at most ten events; past events are struck through
// and flagged.
func BuildListEmbed(events []entities.Event, upcomingOnly bool, now time.Time, requesterName string) *discordgo.MessageEmbed {
	title := "📅 All Events"
	if upcomingOnly {
		title = "📅 Upcoming Events"
	}
	plural := "s"
	if len(events) == 1 {
		plural = ""
	}
	desc := fmt.Sprintf("Found %d event%s", len(events), plural)
	if len(events) == 10 {
		desc += " (showing first 10)"
	}
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: desc,
		Color:       colorList,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	for i := range events {
		e := &events[i]
		name := e.Name
		value := fmt.Sprintf("📝 %s\n🕐 %s (%s)\n🆔 Event ID: #%d",
			e.Description, datetime.Mention(e.StartTime, "F"), datetime.Mention(e.StartTime, "R"), e.ID)
		if e.IsPast(now) {
			name = fmt.Sprintf("~~%s~~", name)
			value += "\n⚠️ *This event has passed*"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: name, Value: value})
	}
	footer := fmt.Sprintf("Requested by %s", requesterName)
	if upcomingOnly {
		footer = "Use /listevents filter:All to see all events including past ones"
	}
	embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}
	return embed
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return "No changes"
	}
	return strings.Join(lines, "\n")
}
