package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"eventbot/internal/domain/entities"
	"eventbot/internal/ports/input"
	pkgdiscord "eventbot/pkg/discord"
)

// HandleAddEvent creates an event from the /addevent options.
func (h *Handler) HandleAddEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	data := i.ApplicationCommandData()
	opts := optionMap(data.Options)

	p := input.CreateEventParams{
		GuildID:     i.GuildID,
		CreatorID:   i.Member.User.ID,
		Name:        opts["name"].StringValue(),
		DateTime:    opts["datetime"].StringValue(),
		Description: opts["description"].StringValue(),
	}

	switch opts["host_type"].StringValue() {
	case entities.HostTypeUser:
		opt, ok := opts["host_user"]
		if !ok {
			respondEphemeral(s, i.Interaction, h.translate("errors.host_user_required", nil))
			return
		}
		user := opt.UserValue(s)
		p.HostType = entities.HostTypeUser
		p.HostID = user.ID
		p.HostName = user.Username
	case entities.HostTypeGroup:
		opt, ok := opts["host_group"]
		if !ok {
			respondEphemeral(s, i.Interaction, h.translate("errors.host_group_required", nil))
			return
		}
		role := opt.RoleValue(s, i.GuildID)
		p.HostType = entities.HostTypeGroup
		p.HostID = role.ID
		p.HostName = role.Name
	}

	if att := attachmentOption(data, "image"); att != nil {
		p.ImageURL = att.URL
		p.ImageContentType = att.ContentType
	}

	event, err := h.events.Create(ctx, p)
	if err != nil {
		respondEphemeral(s, i.Interaction, h.errorMessage(err, 0))
		return
	}
	respondEmbed(s, i.Interaction, pkgdiscord.BuildCreatedEmbed(event, resolveDisplayName(i.Member)))
}
