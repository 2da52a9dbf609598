package discord

import (
	"fmt"
	"log"
	"slices"

	"github.com/bwmarrin/discordgo"
)

const notifierRoleColor = 0x3498DB

// HandleNotifyMe subscribes or unsubscribes the member to the notifier role,
// creating the role the first time it is needed.
func (h *Handler) HandleNotifyMe(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i.ApplicationCommandData().Options)
	action := opts["action"].StringValue()

	role, err := h.ensureNotifierRole(s, i.GuildID)
	if err != nil {
		log.Printf("❌ Failed to resolve notifier role: %v", err)
		respondEphemeral(s, i.Interaction, h.translate("errors.role_unmanageable", map[string]any{"Role": h.notifierRoleName}))
		return
	}

	hasRole := slices.Contains(i.Member.Roles, role.ID)
	data := map[string]any{"Role": role.Mention()}

	switch action {
	case "add":
		if hasRole {
			respondEphemeral(s, i.Interaction, h.translate("reply.role_already_member", data))
			return
		}
		if err := s.GuildMemberRoleAdd(i.GuildID, i.Member.User.ID, role.ID); err != nil {
			log.Printf("❌ Failed to add notifier role to %s: %v", i.Member.User.ID, err)
			respondEphemeral(s, i.Interaction, h.translate("errors.role_unmanageable", map[string]any{"Role": h.notifierRoleName}))
			return
		}
		respondEphemeral(s, i.Interaction, h.translate("reply.role_subscribed", data))
	case "remove":
		if !hasRole {
			respondEphemeral(s, i.Interaction, h.translate("reply.role_not_member", data))
			return
		}
		if err := s.GuildMemberRoleRemove(i.GuildID, i.Member.User.ID, role.ID); err != nil {
			log.Printf("❌ Failed to remove notifier role from %s: %v", i.Member.User.ID, err)
			respondEphemeral(s, i.Interaction, h.translate("errors.role_unmanageable", map[string]any{"Role": h.notifierRoleName}))
			return
		}
		respondEphemeral(s, i.Interaction, h.translate("reply.role_unsubscribed", data))
	}
}

func (h *Handler) ensureNotifierRole(s *discordgo.Session, guildID string) (*discordgo.Role, error) {
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	for _, role := range roles {
		if role.Name == h.notifierRoleName {
			return role, nil
		}
	}

	color := notifierRoleColor
	mentionable := true
	role, err := s.GuildRoleCreate(guildID, &discordgo.RoleParams{
		Name:        h.notifierRoleName,
		Color:       &color,
		Mentionable: &mentionable,
	})
	if err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}
	log.Printf("✅ Created notifier role %q in guild %s", h.notifierRoleName, guildID)
	return role, nil
}
