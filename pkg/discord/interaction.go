package discord

import (
	"encoding/json"
	"fmt"
)

type InteractionType int

const (
	InteractionPing               InteractionType = 1
	InteractionApplicationCommand InteractionType = 2
	InteractionMessageComponent   InteractionType = 3
	InteractionAutocomplete       InteractionType = 4
	InteractionModalSubmit        InteractionType = 5
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type Member struct {
	User        *User  `json:"user,omitempty"`
	Permissions string `json:"permissions,omitempty"`
}

type CommandOption struct {
	Name  string `json:"name"`
	Value any    `json:"value,omitempty"`
}

type OptionList []CommandOption

// String returns the value of the named option as a string, or empty when the
// option is absent. Non-string values are formatted with their default
// representation.
func (l OptionList) String(name string) string {
	for _, opt := range l {
		if opt.Name != name {
			continue
		}

		switch v := opt.Value.(type) {
		case nil:
			return ""
		case string:
			return v
		default:
			return fmt.Sprintf("%v", v)
		}
	}

	return ""
}

type InteractionData struct {
	Name          string        `json:"name,omitempty"`
	CustomID      string        `json:"custom_id,omitempty"`
	ComponentType ComponentType `json:"component_type,omitempty"`
	Options       OptionList    `json:"options,omitempty"`
	Values        []string      `json:"values,omitempty"`
	Components    []Component   `json:"components,omitempty"`
}

// Interaction is the parsed webhook envelope. It is read-only after parsing;
// handlers must not mutate it.
type Interaction struct {
	ID            string          `json:"id"`
	ApplicationID string          `json:"application_id"`
	Type          InteractionType `json:"type"`
	GuildID       string          `json:"guild_id,omitempty"`
	ChannelID     string          `json:"channel_id,omitempty"`
	Token         string          `json:"token,omitempty"`
	Member        *Member         `json:"member,omitempty"`
	User          *User           `json:"user,omitempty"`
	Data          InteractionData `json:"data,omitempty"`
}

func ParseInteraction(body []byte) (*Interaction, error) {
	var interaction Interaction
	if err := json.Unmarshal(body, &interaction); err != nil {
		return nil, err
	}

	if interaction.Type == 0 {
		return nil, fmt.Errorf("missing interaction type")
	}

	return &interaction, nil
}

// InvokerID returns the platform identity of the requester. Guild invocations
// carry the user inside the member object, direct messages at the top level.
func (i *Interaction) InvokerID() string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}

	if i.User != nil {
		return i.User.ID
	}

	return ""
}

func (i *Interaction) InvokerName() string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.Username
	}

	if i.User != nil {
		return i.User.Username
	}

	return ""
}
