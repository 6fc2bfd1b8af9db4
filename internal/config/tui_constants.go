package config

// Cell geometry of the terminal canvas, in graph units.
const (
	// CellWidthUnits is how many graph units one terminal column covers.
	CellWidthUnits = 10.0

	// CellHeightUnits is how many graph units one terminal row covers.
	CellHeightUnits = 20.0
)

// Pan step for the arrow keys, in graph units.
const PanStep = 50.0

// Export canvas size, in graph units.
const (
	ExportWidth  = 1000
	ExportHeight = 700
)

// Layout constants.
const (
	// HeaderHeight is the number of rows above the active pane.
	HeaderHeight = 2

	// FooterHeight is the number of rows below the active pane.
	FooterHeight = 2

	// MinPaneWidth is the narrowest pane we try to render.
	MinPaneWidth = 20

	// TargetTitleWidth is the preferred width for task titles in the list.
	TargetTitleWidth = 40
)

// Input constraints.
const (
	// MaxTitleLength matches the service's title column.
	MaxTitleLength = 200

	// MaxDescriptionLength caps the form textarea.
	MaxDescriptionLength = 2000
)
