package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"eventbot/internal/ports/input"
	pkgdiscord "eventbot/pkg/discord"
)

// HandleEditEvent applies a partial edit from the /editevent options.
func (h *Handler) HandleEditEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	data := i.ApplicationCommandData()
	opts := optionMap(data.Options)

	eventID := opts["event_id"].IntValue()
	p := input.EditEventParams{
		EventID:            eventID,
		GuildID:            i.GuildID,
		RequesterID:        i.Member.User.ID,
		RequesterIsManager: memberCanManageEvents(i.Member),
	}
	if opt, ok := opts["name"]; ok {
		v := opt.StringValue()
		p.Name = &v
	}
	if opt, ok := opts["datetime"]; ok {
		v := opt.StringValue()
		p.DateTime = &v
	}
	if opt, ok := opts["description"]; ok {
		v := opt.StringValue()
		p.Description = &v
	}
	if att := attachmentOption(data, "image"); att != nil {
		p.ImageURL = &att.URL
		p.ImageContentType = &att.ContentType
	}
	if opt, ok := opts["remove_image"]; ok {
		p.RemoveImage = opt.BoolValue()
	}

	res, err := h.events.Edit(ctx, p)
	if err != nil {
		respondEphemeral(s, i.Interaction, h.errorMessage(err, eventID))
		return
	}
	respondEmbedEphemeral(s, i.Interaction,
		pkgdiscord.BuildEditResultEmbed(res.Event, res.Changes, res.NotifiedCount, res.AnnouncementUpdated))
}
