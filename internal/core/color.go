package core

// Color is a foreground color for a screen cell, expressed as a hex string
// ("#22d3ee"). The empty string means the terminal's default color.
type Color string

// Predefined colors for game elements.
const (
	ColorDefault Color = ""
	ColorEdge    Color = "#22d3ee"
	ColorMarker  Color = "#e5e7eb"
	ColorHUD     Color = "#67e8f9"
	ColorDim     Color = "#6b7280"
	ColorLight   Color = "#ffffff"
	ColorAlert   Color = "#f472b6"
	ColorSkyline Color = "#1e293b"
	ColorWindow  Color = "#0e7490"
)
