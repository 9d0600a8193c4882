package graphics

// Context defines the interface for a window with a presentable surface.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	// EndFrame presents the back buffer.
	EndFrame()
	GetFramebufferSize() (int, int)
	// PollEvents processes pending window-system input and returns every
	// event queued since the previous call, oldest first. It never blocks.
	PollEvents() []Event
}

// Canvas is a pixel surface in canvas coordinates, origin at the top left.
type Canvas interface {
	Size() (int, int)
	SetDrawColor(c RGB)
	// Clear fills the whole surface with the draw color.
	Clear()
	// PlotPixel sets (x, y) to the draw color.
	PlotPixel(x, y int) error
	FilledCircle(x, y, radius int, c RGB) error
}

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{0, 0, 0}
	Red   = RGB{255, 0, 0}
	Green = RGB{0, 255, 0}
	Blue  = RGB{0, 0, 255}
)
