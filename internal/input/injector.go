package input

// Point is an absolute screen coordinate.
type Point struct {
	X int
	Y int
}

// Injector abstracts the OS input-simulation facility: pressing and
// releasing keys and mouse buttons, moving the pointer, and reading the
// live pointer position. Location must be safe to call concurrently with
// the other methods; the position tracker reads it while a run is active.
type Injector interface {
	KeyDown(code string) error
	KeyUp(code string) error
	MouseDown(button string) error
	MouseUp(button string) error
	MoveMouse(x, y int) error
	Location() Point
}
