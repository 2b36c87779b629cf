package types

// SpeakingStyle describes how the character phrases outbound messages.
type SpeakingStyle struct {
	Tone          string   `json:"tone"`
	EmojiUsage    string   `json:"emoji_usage"`
	CommonPhrases []string `json:"common_phrases"`
}

// Character is the persona every outbound message is rendered as.
// Loaded once from character.json and never mutated after startup.
type Character struct {
	Name          string        `json:"name"`
	Personality   string        `json:"personality"`
	Traits        []string      `json:"traits"`
	SpeakingStyle SpeakingStyle `json:"speaking_style"`
	AvatarURL     string        `json:"avatar_url"`
	Signature     string        `json:"signature"`
}

// FooterText returns the signature, falling back to "- Name" when the
// config does not set one.
func (c Character) FooterText() string {
	if c.Signature != "" {
		return c.Signature
	}
	return "- " + c.Name
}
