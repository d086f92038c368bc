package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// AppDirName is the directory under the user config dir that holds all habitly state
	AppDirName = "habitly"

	// ConfigFileName is the YAML configuration file inside the app dir
	ConfigFileName = "config.yaml"

	// DataFileName is the local working copy of the habit dataset
	DataFileName = "habitly.json"

	// RemoteFileName is the well-known name of the synced document in the
	// remote application data scope
	RemoteFileName = "habitly-data.json"
)

// Palette is the rotation of display colors assigned to new habits.
var Palette = []string{
	"#ef4444", "#f97316", "#eab308", "#22c55e", "#06b6d4", "#6366f1", "#a855f7",
}
