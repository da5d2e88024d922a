package ui

// Theme names accepted by NewTheme
const (
	ThemeCompact = "compact"
	ThemeDefault = "default"
)

// Progress bar range
const (
	ProgressMin = 0
	ProgressMax = 100
)

// Icons
const (
	IconFolder   = "📁"
	IconLanguage = "🌐"
)

// Layout sizing
const (
	MinWindowWidth  float32 = 400
	MinWindowHeight float32 = 200
)
