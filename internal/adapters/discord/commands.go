package discord

import (
	"github.com/bwmarrin/discordgo"
)

func f64Ptr(v float64) *float64 {
	return &v
}

// Commands returns the slash-command set registered on startup.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "addevent",
			Description: "Add a new event to the calendar",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "The name of the event", Required: true, MaxLength: 255},
				{Type: discordgo.ApplicationCommandOptionString, Name: "datetime", Description: "Event date and time in UTC (format: YYYY-MM-DD HH:MM or ISO 8601)", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "description", Description: "Description of the event", Required: true, MaxLength: 2000},
				{Type: discordgo.ApplicationCommandOptionString, Name: "host_type", Description: "Is the host a user or a group/role?", Required: true, Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "User", Value: "user"},
					{Name: "Group/Role", Value: "group"},
				}},
				{Type: discordgo.ApplicationCommandOptionUser, Name: "host_user", Description: "The user hosting the event (if host type is User)"},
				{Type: discordgo.ApplicationCommandOptionRole, Name: "host_group", Description: "The role/group hosting the event (if host type is Group)"},
				{Type: discordgo.ApplicationCommandOptionAttachment, Name: "image", Description: "An image for the event"},
			},
		},
		{
			Name:        "editevent",
			Description: "Edit an existing event",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "event_id", Description: "The ID of the event to edit", Required: true, MinValue: f64Ptr(1)},
				{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "New event name", MaxLength: 255},
				{Type: discordgo.ApplicationCommandOptionString, Name: "datetime", Description: "New event date and time in UTC (format: YYYY-MM-DD HH:MM or ISO 8601)"},
				{Type: discordgo.ApplicationCommandOptionString, Name: "description", Description: "New event description", MaxLength: 2000},
				{Type: discordgo.ApplicationCommandOptionAttachment, Name: "image", Description: "New event image"},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "remove_image", Description: "Remove the current event image"},
			},
		},
		{
			Name:        "cancelevent",
			Description: "Cancel an event and notify interested users",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "event_id", Description: "The ID of the event to cancel", Required: true, MinValue: f64Ptr(1)},
			},
		},
		{
			Name:        "listevents",
			Description: "List all upcoming events",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "filter", Description: "Filter events", Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Upcoming Only", Value: "upcoming"},
					{Name: "All Events", Value: "all"},
				}},
			},
		},
		{
			Name:        "notifyme",
			Description: "Manage your Events Notifier role subscription",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "action", Description: "Add or remove the Events Notifier role", Required: true, Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Subscribe (Add Role)", Value: "add"},
					{Name: "Unsubscribe (Remove Role)", Value: "remove"},
				}},
			},
		},
	}
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// attachmentOption resolves an attachment option to its metadata, or nil.
func attachmentOption(data discordgo.ApplicationCommandInteractionData, name string) *discordgo.MessageAttachment {
	for _, opt := range data.Options {
		if opt.Name != name || opt.Type != discordgo.ApplicationCommandOptionAttachment {
			continue
		}
		id, ok := opt.Value.(string)
		if !ok || data.Resolved == nil {
			return nil
		}
		return data.Resolved.Attachments[id]
	}
	return nil
}
