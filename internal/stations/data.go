package stations

import "github.com/acllc88/bugleboy-radio/internal/models"

// defaultStations is the bundled catalog: SomaFM, Radio Paradise and a set
// of public radio streams, all direct stream URLs.
var defaultStations = []models.Station{
	// SomaFM (San Francisco, CA)
	{ID: "somafm-groovesalad", Name: "Groove Salad", Genre: "Ambient", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/groovesalad-128-mp3", Emoji: "🥗", Description: "Downtempo ambient grooves"},
	{ID: "somafm-dronezone", Name: "Drone Zone", Genre: "Ambient", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/dronezone-128-mp3", Emoji: "🌌", Description: "Atmospheric ambient space music"},
	{ID: "somafm-lush", Name: "Lush", Genre: "Ambient", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/lush-128-mp3", Emoji: "🌸", Description: "Sensuous female vocals with chillout"},
	{ID: "somafm-deepspaceone", Name: "Deep Space One", Genre: "Ambient", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/deepspaceone-128-mp3", Emoji: "🚀", Description: "Deep ambient electronic exploration"},
	{ID: "somafm-spacestation", Name: "Space Station Soma", Genre: "Ambient", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/spacestation-128-mp3", Emoji: "🛸", Description: "Spaced-out ambient and mid-tempo"},
	{ID: "somafm-defcon", Name: "DEF CON Radio", Genre: "Electronic", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/defcon-128-mp3", Emoji: "💻", Description: "Hacker conference radio"},
	{ID: "somafm-beatblender", Name: "Beat Blender", Genre: "Electronic", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/beatblender-128-mp3", Emoji: "🎚️", Description: "Deep house and downtempo"},
	{ID: "somafm-thetrip", Name: "The Trip", Genre: "Electronic", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/thetrip-128-mp3", Emoji: "🎆", Description: "Progressive house and trance"},
	{ID: "somafm-cliqhop", Name: "cliqhop idm", Genre: "Electronic", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/cliqhop-128-mp3", Emoji: "🔊", Description: "Intelligent dance music"},
	{ID: "somafm-dubstep", Name: "Dubstep Beyond", Genre: "Electronic", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/dubstep-128-mp3", Emoji: "🔉", Description: "Dubstep and bass music"},
	{ID: "somafm-vaporwaves", Name: "Vaporwaves", Genre: "Electronic", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/vaporwaves-128-mp3", Emoji: "🌊", Description: "Vaporwave and future funk"},
	{ID: "somafm-secretagent", Name: "Secret Agent", Genre: "Lounge", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/secretagent-128-mp3", Emoji: "🕵️", Description: "Spy themes and lounge music"},
	{ID: "somafm-illinois", Name: "Illinois Street Lounge", Genre: "Lounge", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/illstreet-128-mp3", Emoji: "🍸", Description: "Classic bachelor pad music"},
	{ID: "somafm-sonicuniverse", Name: "Sonic Universe", Genre: "Jazz", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/sonicuniverse-128-mp3", Emoji: "🎷", Description: "Jazz from across the universe"},
	{ID: "somafm-7soul", Name: "Seven Inch Soul", Genre: "Soul", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/7soul-128-mp3", Emoji: "💿", Description: "Vintage soul 45s"},
	{ID: "somafm-bootliquor", Name: "Boot Liquor", Genre: "Country", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/bootliquor-128-mp3", Emoji: "🤠", Description: "Americana and country"},
	{ID: "somafm-folkforward", Name: "Folk Forward", Genre: "Folk", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/folkfwd-128-mp3", Emoji: "🪕", Description: "Contemporary folk music"},
	{ID: "somafm-indiepop", Name: "Indie Pop Rocks!", Genre: "Indie", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/indiepop-128-mp3", Emoji: "🎸", Description: "Indie pop and rock"},
	{ID: "somafm-u80s", Name: "Underground 80s", Genre: "Retro", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/u80s-128-mp3", Emoji: "📼", Description: "80s alternative and new wave"},
	{ID: "somafm-metal", Name: "Metal Detector", Genre: "Metal", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/metal-128-mp3", Emoji: "🤘", Description: "Heavy metal from all eras"},
	{ID: "somafm-poptron", Name: "PopTron", Genre: "Pop", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/poptron-128-mp3", Emoji: "✨", Description: "Electropop and indie dance"},
	{ID: "somafm-thistle", Name: "ThistleRadio", Genre: "Folk", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/thistle-128-mp3", Emoji: "🌿", Description: "Celtic and Scottish music"},
	{ID: "somafm-covers", Name: "Covers", Genre: "Eclectic", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/covers-128-mp3", Emoji: "🎤", Description: "Cover songs and remakes"},
	{ID: "somafm-bagel", Name: "BAGeL Radio", Genre: "Eclectic", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/bagel-128-mp3", Emoji: "🥯", Description: "Eclectic mix of everything"},
	{ID: "somafm-sf1033", Name: "SF 10-33", Genre: "Ambient", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/sf1033-128-mp3", Emoji: "🚔", Description: "Ambient with scanner feeds"},
	{ID: "somafm-suburbs", Name: "Suburbs of Goa", Genre: "World", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/suburbsofgoa-128-mp3", Emoji: "🕉️", Description: "Indian and world electronic"},
	{ID: "somafm-reggae", Name: "Heavyweight Reggae", Genre: "Reggae", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/reggae-128-mp3", Emoji: "🇯🇲", Description: "Roots reggae and dub"},
	{ID: "somafm-christmas", Name: "Christmas Lounge", Genre: "Holiday", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/christmas-128-mp3", Emoji: "🎄", Description: "Holiday lounge and jazz"},
	{ID: "somafm-xmasrocks", Name: "Christmas Rocks!", Genre: "Holiday", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/xmasrocks-128-mp3", Emoji: "🎅", Description: "Holiday rock music"},
	{ID: "somafm-jollysoul", Name: "Jolly Ol Soul", Genre: "Holiday", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/jollysoul-128-mp3", Emoji: "🎁", Description: "Holiday soul and R&B"},
	{ID: "somafm-fluid", Name: "Fluid", Genre: "Electronic", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/fluid-128-mp3", Emoji: "💧", Description: "Liquid sounds and chillout"},
	{ID: "somafm-scanner", Name: "Scanner", Genre: "Experimental", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/scanner-128-mp3", Emoji: "📻", Description: "Experimental and avant-garde"},
	{ID: "somafm-missioncontrol", Name: "Mission Control", Genre: "Ambient", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/missioncontrol-128-mp3", Emoji: "🌙", Description: "NASA audio and ambient"},
	{ID: "somafm-live", Name: "SomaFM Live", Genre: "Eclectic", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/live-128-mp3", Emoji: "🎙️", Description: "Live performances and events"},
	{ID: "somafm-digitalis", Name: "Digitalis", Genre: "Electronic", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/digitalis-128-mp3", Emoji: "🌺", Description: "Digitally influenced music"},
	{ID: "somafm-synphaera", Name: "Synphaera Radio", Genre: "Electronic", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/synphaera-128-mp3", Emoji: "🎹", Description: "Ambient and space music"},
	{ID: "somafm-n5md", Name: "n5MD Radio", Genre: "Electronic", City: "San Francisco", State: "CA", StreamURL: "https://ice1.somafm.com/n5md-128-mp3", Emoji: "🎵", Description: "Electronic and experimental"},

	// Radio Paradise (Paradise, CA)
	{ID: "radioparadise-main", Name: "Radio Paradise", Genre: "Eclectic", City: "Paradise", State: "CA", StreamURL: "https://stream.radioparadise.com/aac-320", Emoji: "🌴", Description: "Eclectic mix - best of all genres"},
	{ID: "radioparadise-mellow", Name: "RP Mellow", Genre: "Chill", City: "Paradise", State: "CA", StreamURL: "https://stream.radioparadise.com/mellow-320", Emoji: "😌", Description: "Mellow and relaxing mix"},
	{ID: "radioparadise-rock", Name: "RP Rock", Genre: "Rock", City: "Paradise", State: "CA", StreamURL: "https://stream.radioparadise.com/rock-320", Emoji: "🎸", Description: "Classic and modern rock"},
	{ID: "radioparadise-global", Name: "RP Global", Genre: "World", City: "Paradise", State: "CA", StreamURL: "https://stream.radioparadise.com/global-320", Emoji: "🌍", Description: "World music and global sounds"},

	// Public radio
	{ID: "kexp", Name: "KEXP 90.3", Genre: "Indie", City: "Seattle", State: "WA", StreamURL: "https://kexp-mp3-128.streamguys1.com/kexp128.mp3", Emoji: "🎸", Description: "Seattle public radio - indie & alternative"},
	{ID: "kcrw", Name: "KCRW 89.9", Genre: "Eclectic", City: "Santa Monica", State: "CA", StreamURL: "https://kcrw.streamguys1.com/kcrw_192k_mp3_e24", Emoji: "🌊", Description: "NPR affiliate with eclectic music"},
	{ID: "wfmu", Name: "WFMU", Genre: "Eclectic", City: "Jersey City", State: "NJ", StreamURL: "https://stream0.wfmu.org/freeform-128k", Emoji: "📻", Description: "Freeform radio - anything goes"},
	{ID: "jazz24", Name: "Jazz24", Genre: "Jazz", City: "Seattle", State: "WA", StreamURL: "https://live.wostreaming.net/direct/ppm-jazz24aac-ibc1", Emoji: "🎷", Description: "24/7 Jazz from KNKX"},
	{ID: "kusc", Name: "KUSC Classical", Genre: "Classical", City: "Los Angeles", State: "CA", StreamURL: "https://kusc.streamguys1.com/kusc-128k.mp3", Emoji: "🎻", Description: "Southern California classical"},
	{ID: "wqxr", Name: "WQXR", Genre: "Classical", City: "New York", State: "NY", StreamURL: "https://stream.wqxr.org/wqxr", Emoji: "🎼", Description: "New York classical music"},
	{ID: "king-fm", Name: "KING FM", Genre: "Classical", City: "Seattle", State: "WA", StreamURL: "https://classicalking.streamguys1.com/king-fm-aac", Emoji: "👑", Description: "Classical music 24/7"},
	{ID: "wwoz", Name: "WWOZ 90.7", Genre: "Jazz", City: "New Orleans", State: "LA", StreamURL: "https://wwoz-sc.streamguys1.com/wwoz-hi.mp3", Emoji: "🎺", Description: "New Orleans jazz and heritage"},
	{ID: "thecurrent", Name: "The Current", Genre: "Indie", City: "Minneapolis", State: "MN", StreamURL: "https://current.stream.publicradio.org/kcmp.mp3", Emoji: "⚡", Description: "Minnesota Public Radio indie music"},
	{ID: "wxpn", Name: "WXPN 88.5", Genre: "Eclectic", City: "Philadelphia", State: "PA", StreamURL: "https://wxpnhi.xpn.org/xpnhi", Emoji: "🌟", Description: "Adult album alternative"},
	{ID: "kutx", Name: "KUTX 98.9", Genre: "Indie", City: "Austin", State: "TX", StreamURL: "https://kut.streamguys1.com/kutx-free.aac", Emoji: "🎵", Description: "Austin indie and local music"},
	{ID: "knkx", Name: "KNKX", Genre: "Jazz", City: "Tacoma", State: "WA", StreamURL: "https://live.wostreaming.net/direct/ppm-knkxfm-ibc1", Emoji: "🎹", Description: "Jazz and blues public radio"},

	// Regional
	{ID: "wual", Name: "WUAL 91.5", Genre: "Classical", City: "Tuscaloosa", State: "AL", StreamURL: "https://stream.apr.org/wual.mp3", Emoji: "🎼", Description: "Alabama Public Radio - Classical"},
	{ID: "scpublicradio", Name: "SC Public Radio", Genre: "News", City: "Columbia", State: "SC", StreamURL: "https://playerservices.streamtheworld.com/api/livestream-redirect/WLOSFM.mp3", Emoji: "📰", Description: "South Carolina public radio"},
}
