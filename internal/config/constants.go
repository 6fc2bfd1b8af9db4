package config

import "time"

// Graph layout.
const (
	CellSpacing = 150.0
	OriginX     = 100.0
	OriginY     = 100.0
	NodeRadius  = 30.0
	LabelSize   = 12.0
	ArrowLength = 15.0
)

// Zoom bounds and wheel factors.
const (
	MinZoom     = 0.5
	MaxZoom     = 3.0
	DefaultZoom = 1.0
	ZoomInStep  = 1.1
	ZoomOutStep = 0.9
)

// Edge strokes.
const (
	EdgeWidth            = 2.0
	HighlightedEdgeWidth = 3.0
	NodeBorderWidth      = 3.0
)

// Zoom readout position, in screen units.
const (
	ZoomLabelX = 10.0
	ZoomLabelY = 20.0
)

// Task statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusBlocked    = "blocked"
)

// Application settings.
const (
	AppName        = "taskgraph"
	CacheFileName  = "taskgraph.db"
	LogFileName    = "taskgraph.log"
	ConfigFileName = "config.yaml"
	DefaultAPIURL  = "http://localhost:8000/api"
	DefaultTheme   = "default"
	DefaultTimeout = time.Duration(0)
)
