package models

// WebSocket event types pushed to (and received from) UI clients
const (
	// server -> client
	EventPlayerState   = "player.state"
	EventPresenceCount = "presence.count"
	EventChatSnapshot  = "chat.snapshot"
	EventChatUnread    = "chat.unread"
	EventConfigUpdate  = "config.update"
	EventNotifySound   = "notify.sound"
	EventNotifyShow    = "notify.show"
	EventError         = "error"

	// client -> server
	EventChatSend     = "chat.send"
	EventChatOpen     = "chat.open"
	EventChatClose    = "chat.close"
	EventPlayerPlay   = "player.play"
	EventPlayerToggle = "player.toggle"
	EventPlayerVolume = "player.volume"
	EventPlayerMute   = "player.mute"
	EventWindowState  = "window.state"
)

type WSMessage struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

type WSChatSendPayload struct {
	Text string `json:"text"`
}

type WSPlayerPlayPayload struct {
	StationID string `json:"station_id"`
}

type WSPlayerVolumePayload struct {
	Volume float64 `json:"volume"`
}

type WSWindowStatePayload struct {
	Focused bool `json:"focused"`
	Visible bool `json:"visible"`
}

type WSNotifyShowPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type WSErrorPayload struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}
