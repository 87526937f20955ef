package plot

// Target identifies the canvas a chart is drawn on.
type Target struct {
	ID string
}

// Handle is a live chart instance. It must be destroyed before another
// chart is created on the same target.
type Handle interface {
	Target() Target
	Config() Config
	Destroy() error
}

// Library creates live chart instances from declarative configurations
type Library interface {
	New(target Target, cfg Config) (Handle, error)
}
