package baseline

// Config holds configuration for the baseline document.
type Config struct {
	// Source selects where the baseline is read from (storage, file).
	Source string `mapstructure:"source" default:"storage"`
	// Object is the object name of the baseline document in the storage bucket.
	Object string `mapstructure:"object" default:"menu-data.json"`
	// Path is the local path of the baseline document for the file source.
	Path string `mapstructure:"path" default:"menu-data.json"`
	// Watch invalidates the cached baseline when the file source changes on disk.
	Watch bool `mapstructure:"watch" default:"true"`
	// Exporter selects where export documents go (storage, file, none).
	Exporter string `mapstructure:"exporter" default:"storage"`
	// ExportObject is the object name export documents are uploaded to.
	ExportObject string `mapstructure:"export_object" default:"exports/menu-data.json"`
	// ExportPath is the local path export documents are written to.
	ExportPath string `mapstructure:"export_path" default:"exports/menu-data.json"`
}

const (
	KindStorage = "storage"
	KindFile    = "file"
	KindNone    = "none"
)
