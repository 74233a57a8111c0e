package discord

// Friendly message constants for Discord responses
const (
	MsgInvalidUsername = "❌ Please enter a valid username."
	MsgAccessDenied    = "❌ Couldn't fetch the player's data (Rec.net may be blocking access temporarily)."
	MsgPlayerNotFound  = "❌ Player not found."
	MsgErrorFormat     = "❌ Error: %s"
)

// Footer constants for standardized embed footers.
const (
	FooterAPIAndFallback = "RecCross • api.rec.net + rec.net fallback"
	FooterFallbackOnly   = "RecCross • rec.net fallback"
)

// Embed colors
const (
	ColorRecRoom = 0xe74c3c
)
