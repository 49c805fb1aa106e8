package discord

import "fmt"

type ResponseType int

const (
	ResponsePong                   ResponseType = 1
	ResponseChannelMessage         ResponseType = 4
	ResponseDeferredChannelMessage ResponseType = 5
	ResponseDeferredUpdateMessage  ResponseType = 6
	ResponseUpdateMessage          ResponseType = 7
	ResponseAutocompleteResult     ResponseType = 8
	ResponseModal                  ResponseType = 9
)

// EphemeralFlag marks a message as visible only to the requester. This is the
// only place the wire encoding of "ephemeral" appears; handlers deal in a
// semantic boolean.
const EphemeralFlag = 1 << 6

type InteractionResponse struct {
	Type ResponseType `json:"type"`
	Data any          `json:"data,omitempty"`
}

type MessageData struct {
	Content    string      `json:"content,omitempty"`
	Embeds     []Embed     `json:"embeds,omitempty"`
	Components []Component `json:"components,omitempty"`
	Flags      int         `json:"flags,omitempty"`
}

type ModalData struct {
	CustomID   string      `json:"custom_id"`
	Title      string      `json:"title"`
	Components []Component `json:"components"`
}

type AutocompleteChoice struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

type AutocompleteData struct {
	Choices []AutocompleteChoice `json:"choices"`
}

func Pong() *InteractionResponse {
	return &InteractionResponse{Type: ResponsePong}
}

func TextResponse(content string, ephemeral bool) *InteractionResponse {
	return &InteractionResponse{
		Type: ResponseChannelMessage,
		Data: &MessageData{Content: content, Flags: visibilityFlags(ephemeral)},
	}
}

func EmbedResponse(embed Embed, ephemeral bool, components ...Component) *InteractionResponse {
	return &InteractionResponse{
		Type: ResponseChannelMessage,
		Data: &MessageData{
			Embeds:     []Embed{embed},
			Components: components,
			Flags:      visibilityFlags(ephemeral),
		},
	}
}

func ModalResponse(customID, title string, rows ...Component) *InteractionResponse {
	return &InteractionResponse{
		Type: ResponseModal,
		Data: &ModalData{CustomID: customID, Title: title, Components: rows},
	}
}

func DeferredUpdate() *InteractionResponse {
	return &InteractionResponse{Type: ResponseDeferredUpdateMessage}
}

func EmptyAutocomplete() *InteractionResponse {
	return &InteractionResponse{
		Type: ResponseAutocompleteResult,
		Data: &AutocompleteData{Choices: []AutocompleteChoice{}},
	}
}

func visibilityFlags(ephemeral bool) int {
	if ephemeral {
		return EphemeralFlag
	}
	return 0
}

// ValidFor reports whether the response type is a legal answer for the given
// interaction kind. A Ping may only be answered with a Pong, a modal cannot
// answer a modal submission, and autocomplete answers are exclusive to
// autocomplete interactions.
func (r *InteractionResponse) ValidFor(t InteractionType) error {
	switch t {
	case InteractionPing:
		if r.Type != ResponsePong {
			return fmt.Errorf("a ping may only be answered with a pong")
		}
		return nil
	case InteractionAutocomplete:
		if r.Type != ResponseAutocompleteResult {
			return fmt.Errorf("an autocomplete interaction requires an autocomplete result")
		}
		return nil
	case InteractionModalSubmit:
		if r.Type == ResponseModal {
			return fmt.Errorf("a modal submission can not be answered with another modal")
		}
	}

	switch r.Type {
	case ResponsePong:
		return fmt.Errorf("a pong only answers a ping")
	case ResponseAutocompleteResult:
		return fmt.Errorf("an autocomplete result only answers an autocomplete interaction")
	}

	return nil
}
