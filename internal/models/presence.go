package models

// PresenceRecord asserts "this identity was active at LastSeen". Records are
// refreshed by a heartbeat and reaped cooperatively by any client; readers
// must additionally filter out records older than the staleness threshold,
// since a failed delete can leave an expired record behind.
type PresenceRecord struct {
	UserID      string  `json:"user_id"`
	UserName    string  `json:"user_name"`
	UserPhoto   *string `json:"user_photo,omitempty"`
	LastSeen    int64   `json:"last_seen"` // epoch millis
	CountryCode string  `json:"country_code,omitempty"`
	CountryName string  `json:"country_name,omitempty"`
	CountryFlag string  `json:"country_flag,omitempty"`
}
