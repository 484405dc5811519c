package movement

import (
	"github.com/oomph-ac/stride/camera"
)

// updateCameraTilt rolls the camera towards the tilt of the current mode.
func (c *Controller) updateCameraTilt(dt float32) {
	tilt := camera.TiltTarget(c.state.Current == Wallrunning, c.state.WallSide, c.state.MoveInput.Y(), c.s)
	c.camera.SetRoll(camera.InterpTo(c.camera.Roll(), tilt.Angle, dt, tilt.Speed))
}

func (c *Controller) cameraBobUpdate(value float32) {
	c.camera.SetRelativeOffset(c.initialCameraOffset.Add(camera.BobOffset(value, c.s.Camera.BobDepth)))
}
