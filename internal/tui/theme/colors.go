package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorBerry   = lipgloss.Color("#8E5BD4") // brand accent, splash logo
	ColorFeed    = lipgloss.Color("#F2A65A") // last feed data
	ColorElapsed = lipgloss.Color("#EDEBE6") // elapsed counter
	ColorAhead   = lipgloss.Color("#6FBF8F") // window midpoint still ahead
	ColorPassed  = lipgloss.Color("#E06C75") // window midpoint passed
)

var (
	ColorBgDark  = lipgloss.Color("#16121F")
	ColorBgLight = lipgloss.Color("#2B2438")
)
