package options

// EditorOptions holds the command-line flags. Pointer fields are nil-safe
// flag targets; an empty string or zero means "use the config file value".
type EditorOptions struct {
	ConfigFile *string
	Help       *bool
	Verbose    *bool
	Mode       *string
	Title      *string
	Width      *int
	Height     *int
	Selection  *string
	Snap       *string
	Adaptive   *bool
	Screenshot *string

	// Record mode
	ScriptFile *string
	Duration   *float64
	FPS        *int
	OutputFile *string
	FFMPEGPath *string
	Codec      *string
}

// Apply overrides cfg with every flag that was given a non-zero value.
func (o *EditorOptions) Apply(cfg *Config) {
	if o.Title != nil && *o.Title != "" {
		cfg.Window.Title = *o.Title
	}
	if o.Width != nil && *o.Width > 0 {
		cfg.Window.Width = *o.Width
	}
	if o.Height != nil && *o.Height > 0 {
		cfg.Window.Height = *o.Height
	}
	if o.Selection != nil && *o.Selection != "" {
		cfg.Selection.Policy = *o.Selection
	}
	if o.Snap != nil && *o.Snap != "" {
		cfg.Sampling.Snap = *o.Snap
	}
	if o.Adaptive != nil && *o.Adaptive {
		cfg.Sampling.Adaptive = true
	}
}
