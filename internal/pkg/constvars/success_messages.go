package constvars

const (
	LoginSuccess        = "Successfully logged in"
	LogoutSuccess       = "Successfully logged out"
	RegisterSuccess     = "Successfully registered, please log in"
	MenuSuccess         = "Successfully fetched navigation menu"
	DestinationResolved = "Destination resolved"
	SessionCleared      = "Session cleared"
)
