package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "eventbot/pkg/discord"
)

// HandleListEvents lists at most ten events, upcoming by default.
func (h *Handler) HandleListEvents(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	opts := optionMap(i.ApplicationCommandData().Options)

	upcomingOnly := true
	if opt, ok := opts["filter"]; ok && opt.StringValue() == "all" {
		upcomingOnly = false
	}

	events, err := h.events.List(ctx, i.GuildID, upcomingOnly)
	if err != nil {
		respondEphemeral(s, i.Interaction, h.errorMessage(err, 0))
		return
	}
	if len(events) == 0 {
		key := "reply.no_events_all"
		if upcomingOnly {
			key = "reply.no_events_upcoming"
		}
		respondEmbedEphemeral(s, i.Interaction, pkgdiscord.BuildNoEventsEmbed(h.translate(key, nil)))
		return
	}
	respondEmbedEphemeral(s, i.Interaction,
		pkgdiscord.BuildListEmbed(events, upcomingOnly, time.Now().UTC(), resolveDisplayName(i.Member)))
}
