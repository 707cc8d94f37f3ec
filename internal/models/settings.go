package models

// Settings is the singleton live-config document shared by all clients.
// Writes are whole-document merge upserts; concurrent admin writers race
// with last write winning (single-operator assumption).
type Settings struct {
	MaintenanceMode    bool   `json:"maintenance_mode"`
	MaintenanceMessage string `json:"maintenance_message,omitempty"`
	MaintenanceEndTime string `json:"maintenance_end_time,omitempty"`
	Announcement       string `json:"announcement,omitempty"`
	AnnouncementEnabled bool  `json:"announcement_enabled"`
	UpdatedAt          int64  `json:"updated_at"` // epoch millis
	UpdatedBy          string `json:"updated_by,omitempty"`
}
