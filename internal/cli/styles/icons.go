package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconDoctor  = "" // stethoscope
	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info
	IconDesktop = "" // desktop
	IconConfig  = "" // config
	IconWindow  = "" // window
)
