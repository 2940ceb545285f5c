package payload

import (
	"encoding/json"
	"fmt"
)

// Discord message limits, counted in runes
const (
	MaxContentLength     = 2000
	MaxTitleLength       = 256
	MaxDescriptionLength = 4096
	MaxFieldNameLength   = 256
	MaxFieldValueLength  = 1024
	MaxFooterLength      = 2048
	MaxUsernameLength    = 80
	MaxFields            = 25
)

// Payload is the JSON body of a Discord execute-webhook request
type Payload struct {
	Content         string           `json:"content,omitempty"`
	Username        string           `json:"username,omitempty"`
	AvatarURL       string           `json:"avatar_url,omitempty"`
	Embeds          []Embed          `json:"embeds,omitempty"`
	AllowedMentions *AllowedMentions `json:"allowed_mentions,omitempty"`
}

// Embed is one rich embed block
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       *uint32      `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
}

// EmbedField is a name/value row inside an embed
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// EmbedFooter is the small text under an embed
type EmbedFooter struct {
	Text string `json:"text"`
}

// AllowedMentions restricts which mentions in the message may ping.
// An empty Parse list disables @everyone, @here, role and user pings.
type AllowedMentions struct {
	Parse []string `json:"parse"`
}

// Marshal encodes the payload as compact JSON
func (p Payload) Marshal() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return data, nil
}

// MarshalIndent encodes the payload as indented JSON for display
func (p Payload) MarshalIndent() ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return data, nil
}

// Empty reports whether the payload carries nothing Discord would display
func (p Payload) Empty() bool {
	return p.Content == "" && len(p.Embeds) == 0
}
