package presence

import (
	"sort"

	"github.com/acllc88/bugleboy-radio/internal/clock"
	"github.com/acllc88/bugleboy-radio/internal/models"
	"github.com/acllc88/bugleboy-radio/internal/store"
)

// WatchOnline subscribes to the presence collection and reports the set of
// users seen within StaleAfter. The staleness filter runs on every snapshot
// at read time, independent of the reaper's sweep cadence, so an expired
// record is never counted even before it is physically deleted.
func WatchOnline(st store.Store, clk clock.Clock, onChange func(users []models.PresenceRecord)) store.UnsubscribeFunc {
	return st.Subscribe(Collection, func(docs []store.Document) {
		now := clock.Millis(clk.Now())
		users := make([]models.PresenceRecord, 0, len(docs))
		for _, doc := range docs {
			lastSeen := millisField(doc.Data, "last_seen")
			if lastSeen == 0 || now-lastSeen >= StaleAfter.Milliseconds() {
				continue
			}
			users = append(users, recordFromDoc(doc, lastSeen))
		}
		sort.Slice(users, func(i, j int) bool { return users[i].UserName < users[j].UserName })
		onChange(users)
	}, func(err error) {
		// Degrade to "nobody online" on subscription errors; presence is
		// never user-facing-fatal.
		onChange(nil)
	})
}

func recordFromDoc(doc store.Document, lastSeen int64) models.PresenceRecord {
	rec := models.PresenceRecord{
		UserID:      store.StringField(doc.Data, "user_id"),
		UserName:    store.StringField(doc.Data, "user_name"),
		LastSeen:    lastSeen,
		CountryCode: store.StringField(doc.Data, "country_code"),
		CountryName: store.StringField(doc.Data, "country_name"),
		CountryFlag: store.StringField(doc.Data, "country_flag"),
	}
	if rec.UserID == "" {
		rec.UserID = doc.ID()
	}
	if photo := store.StringField(doc.Data, "user_photo"); photo != "" {
		rec.UserPhoto = &photo
	}
	// Older records may predate country enrichment.
	if rec.CountryCode == "" {
		rec.CountryCode = "US"
		rec.CountryName = "United States"
		rec.CountryFlag = "🇺🇸"
	}
	return rec
}

func millisField(data map[string]any, key string) int64 {
	return store.Int64Field(data, key)
}
