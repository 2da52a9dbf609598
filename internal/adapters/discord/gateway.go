package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"eventbot/internal/domain/entities"
	"eventbot/internal/ports/output"
	pkgdiscord "eventbot/pkg/discord"
)

var (
	_ output.Messenger = (*Gateway)(nil)
	_ output.Announcer = (*Gateway)(nil)
)

// Gateway implements the Messenger and Announcer ports on a Discord session.
type Gateway struct {
	session           *discordgo.Session
	announceChannelID string
	notifierRoleName  string
	guildID           string
}

func NewGateway(session *discordgo.Session, announceChannelID, notifierRoleName, guildID string) *Gateway {
	return &Gateway{
		session:           session,
		announceChannelID: announceChannelID,
		notifierRoleName:  notifierRoleName,
		guildID:           guildID,
	}
}

func (g *Gateway) dm(ctx context.Context, userID, content string, embed *discordgo.MessageEmbed) error {
	ch, err := g.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("open DM channel: %w", err)
	}
	_, err = g.session.ChannelMessageSendComplex(ch.ID, &discordgo.MessageSend{
		Content: content,
		Embeds:  []*discordgo.MessageEmbed{embed},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("send DM: %w", err)
	}
	return nil
}

func (g *Gateway) DMEventStarting(ctx context.Context, userID string, event *entities.Event, interestedCount int64) error {
	return g.dm(ctx, userID,
		"⭐ An event you're interested in is starting now!",
		pkgdiscord.BuildStartingDMEmbed(event, interestedCount))
}

func (g *Gateway) DMEventEdited(ctx context.Context, userID string, event *entities.Event, changes []string, editorID string) error {
	return g.dm(ctx, userID,
		"⚠️ An event you're interested in has been updated.",
		pkgdiscord.BuildUpdatedDMEmbed(event, changes, editorID))
}

func (g *Gateway) DMEventCancelled(ctx context.Context, userID string, event *entities.Event, cancellerID string) error {
	return g.dm(ctx, userID,
		"⚠️ An event you were interested in has been cancelled.",
		pkgdiscord.BuildCancelledDMEmbed(event, cancellerID))
}

// Publish posts the announcement with its "Interested" button. Publishing is
// disabled when no announcement channel is configured.
func (g *Gateway) Publish(ctx context.Context, event *entities.Event) (string, string, error) {
	if g.announceChannelID == "" {
		return "", "", nil
	}
	msg, err := g.session.ChannelMessageSendComplex(g.announceChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{pkgdiscord.BuildAnnouncementEmbed(event, 0)},
		Components: []discordgo.MessageComponent{pkgdiscord.InterestButton(event.ID)},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", "", fmt.Errorf("post announcement: %w", err)
	}
	return g.announceChannelID, msg.ID, nil
}

// Resync re-renders the announcement in place. If the message was deleted
// externally the edit fails; callers log and move on rather than recreate it.
func (g *Gateway) Resync(ctx context.Context, event *entities.Event, interestedCount int64) error {
	embeds := []*discordgo.MessageEmbed{pkgdiscord.BuildAnnouncementEmbed(event, interestedCount)}
	components := []discordgo.MessageComponent{pkgdiscord.InterestButton(event.ID)}
	_, err := g.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         event.AnnouncementMessageID,
		Channel:    event.AnnouncementChannelID,
		Embeds:     &embeds,
		Components: &components,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("edit announcement: %w", err)
	}
	return nil
}

func (g *Gateway) Delete(ctx context.Context, event *entities.Event) error {
	err := g.session.ChannelMessageDelete(event.AnnouncementChannelID, event.AnnouncementMessageID,
		discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	return nil
}

// AnnounceStarting replies to the announcement message, mentioning the
// notifier role when it exists.
func (g *Gateway) AnnounceStarting(ctx context.Context, event *entities.Event, interestedCount int64) error {
	content := "🎉 **Event Starting Now!**"
	if role := g.findNotifierRole(ctx); role != nil {
		content = role.Mention() + " " + content
	}
	_, err := g.session.ChannelMessageSendComplex(event.AnnouncementChannelID, &discordgo.MessageSend{
		Content: content,
		Embeds:  []*discordgo.MessageEmbed{pkgdiscord.BuildStartingFollowupEmbed(event, interestedCount)},
		Reference: &discordgo.MessageReference{
			MessageID: event.AnnouncementMessageID,
			ChannelID: event.AnnouncementChannelID,
			GuildID:   event.GuildID,
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("post start announcement: %w", err)
	}
	return nil
}

func (g *Gateway) findNotifierRole(ctx context.Context) *discordgo.Role {
	roles, err := g.session.GuildRoles(g.guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil
	}
	for _, role := range roles {
		if role.Name == g.notifierRoleName {
			return role
		}
	}
	return nil
}
