package model

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

func (c Channel) String() string { return string(c) }

// Receipt is what callers get back for an accepted dispatch.
type Receipt struct {
	ID      string  `json:"id"` // provider message id, or a dev placeholder
	Channel Channel `json:"channel"`
}
