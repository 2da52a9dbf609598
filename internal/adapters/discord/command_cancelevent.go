package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "eventbot/pkg/discord"
)

// HandleCancelEvent cancels an event from the /cancelevent options.
func (h *Handler) HandleCancelEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	opts := optionMap(i.ApplicationCommandData().Options)

	eventID := opts["event_id"].IntValue()
	res, err := h.events.Cancel(ctx, eventID, i.GuildID, i.Member.User.ID, memberCanManageEvents(i.Member))
	if err != nil {
		respondEphemeral(s, i.Interaction, h.errorMessage(err, eventID))
		return
	}
	respondEmbedEphemeral(s, i.Interaction,
		pkgdiscord.BuildCancelResultEmbed(res.Event, res.NotifiedCount, res.AnnouncementDeleted))
}
