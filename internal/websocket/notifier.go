package websocket

import "github.com/acllc88/bugleboy-radio/internal/models"

// HubNotifier forwards notification cues to UI clients. The daemon has no
// speakers-and-toast surface of its own; the UI decides how to render them.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) PlaySound() {
	n.hub.Broadcast(models.EventNotifySound, nil)
}

func (n *HubNotifier) Show(title, body string) error {
	n.hub.Broadcast(models.EventNotifyShow, models.WSNotifyShowPayload{
		Title: title,
		Body:  body,
	})
	return nil
}
