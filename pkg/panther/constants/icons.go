package constants

// Asset keys for the embedded SVG icons.
// The asset registry rasterises each one once at startup.
const (
	IconHome     = "icon/home"     // House outline, navbar slot 1
	IconRecords  = "icon/records"  // Trophy, navbar slot 2
	IconStats    = "icon/stats"    // Bar chart, navbar slot 3
	IconTraining = "icon/training" // Running figure, start-training button
)
