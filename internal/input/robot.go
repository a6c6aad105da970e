package input

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// Robot is the robotgo-backed Injector used against the live desktop.
type Robot struct{}

// NewRobot creates the live injector. It fails when no display is
// addressable, since nothing below can work without one.
func NewRobot() (*Robot, error) {
	w, h := robotgo.GetScreenSize()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("input subsystem unavailable: screen size %dx%d", w, h)
	}
	return &Robot{}, nil
}

func (r *Robot) KeyDown(code string) error {
	return robotgo.KeyToggle(code, "down")
}

func (r *Robot) KeyUp(code string) error {
	return robotgo.KeyToggle(code, "up")
}

func (r *Robot) MouseDown(button string) error {
	return robotgo.Toggle(button, "down")
}

func (r *Robot) MouseUp(button string) error {
	return robotgo.Toggle(button, "up")
}

func (r *Robot) MoveMouse(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

func (r *Robot) Location() Point {
	x, y := robotgo.Location()
	return Point{X: x, Y: y}
}
