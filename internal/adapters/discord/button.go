package discord

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"eventbot/internal/domain"
	"eventbot/internal/ports/input"
)

// InterestButtonPrefix is the custom-id prefix of the "Interested" button; the
// event id follows the prefix.
const InterestButtonPrefix = "event_interested_"

// HandleInterestButton toggles the member's interest in the event carried by
// the button's custom id.
func (h *Handler) HandleInterestButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	customID := i.MessageComponentData().CustomID
	eventID, err := strconv.ParseInt(strings.TrimPrefix(customID, InterestButtonPrefix), 10, 64)
	if err != nil {
		return
	}

	state, _, err := h.interests.Toggle(ctx, eventID, i.Member.User.ID, i.GuildID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			respondEphemeral(s, i.Interaction, h.translate("errors.event_not_found", map[string]any{"ID": eventID}))
			return
		}
		respondEphemeral(s, i.Interaction, h.translate("errors.generic", nil))
		return
	}

	key := "reply.interest_removed"
	if state == input.InterestAdded {
		key = "reply.interest_added"
	}
	respondEphemeral(s, i.Interaction, h.translate(key, nil))
}
