package discord

type ComponentType int

const (
	ComponentActionRow    ComponentType = 1
	ComponentButton       ComponentType = 2
	ComponentStringSelect ComponentType = 3
	ComponentTextInput    ComponentType = 4
)

const (
	ButtonStylePrimary   = 1
	ButtonStyleSecondary = 2
	ButtonStyleSuccess   = 3
	ButtonStyleDanger    = 4
	ButtonStyleLink      = 5
)

const (
	TextInputShort     = 1
	TextInputParagraph = 2
)

type Emoji struct {
	Name string `json:"name"`
}

type SelectOption struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Emoji       *Emoji `json:"emoji,omitempty"`
}

type Component struct {
	Type        ComponentType  `json:"type"`
	CustomID    string         `json:"custom_id,omitempty"`
	Label       string         `json:"label,omitempty"`
	Style       int            `json:"style,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
	Required    *bool          `json:"required,omitempty"`
	Value       string         `json:"value,omitempty"`
	URL         string         `json:"url,omitempty"`
	Disabled    bool           `json:"disabled,omitempty"`
	Emoji       *Emoji         `json:"emoji,omitempty"`
	MinValues   int            `json:"min_values,omitempty"`
	MaxValues   int            `json:"max_values,omitempty"`
	Options     []SelectOption `json:"options,omitempty"`
	Components  []Component    `json:"components,omitempty"`
}

func ActionRow(children ...Component) Component {
	return Component{Type: ComponentActionRow, Components: children}
}

type TextInputOptions struct {
	CustomID    string
	Label       string
	Style       int
	Placeholder string
	Required    bool
	Value       string
}

func TextInput(opts TextInputOptions) Component {
	style := opts.Style
	if style == 0 {
		style = TextInputShort
	}

	required := opts.Required
	return Component{
		Type:        ComponentTextInput,
		CustomID:    opts.CustomID,
		Label:       opts.Label,
		Style:       style,
		Placeholder: opts.Placeholder,
		Required:    &required,
		Value:       opts.Value,
	}
}

func LinkButton(label, url string) Component {
	return Component{
		Type:  ComponentButton,
		Style: ButtonStyleLink,
		Label: label,
		URL:   url,
	}
}

func SelectMenu(customID, placeholder string, options []SelectOption) Component {
	return Component{
		Type:        ComponentStringSelect,
		CustomID:    customID,
		Placeholder: placeholder,
		MinValues:   1,
		MaxValues:   1,
		Options:     options,
	}
}

// TextInputValue reads the value of the text input at the given action-row
// position of a submitted modal. Extraction is positional: the field order of
// the issued modal is a contract, not a hint.
func TextInputValue(rows []Component, row, col int) (string, bool) {
	if row < 0 || row >= len(rows) {
		return "", false
	}

	children := rows[row].Components
	if col < 0 || col >= len(children) {
		return "", false
	}

	return children[col].Value, true
}
