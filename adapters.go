package stride

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride/bodysim"
	"github.com/oomph-ac/stride/game"
	"github.com/sirupsen/logrus"
)

// eyeHeight is the height of the camera above the centre of the body.
const eyeHeight = 64

// viewCamera is a first person camera looking along the view rotation of a body.
type viewCamera struct {
	body   *bodysim.Body
	pitch  float32
	roll   float32
	offset mgl32.Vec3
}

func (c *viewCamera) Forward() mgl32.Vec3 {
	return game.DirectionVector(c.body.Yaw(), c.pitch)
}

func (c *viewCamera) Roll() float32 {
	return c.roll
}

func (c *viewCamera) SetRoll(degrees float32) {
	c.roll = degrees
}

func (c *viewCamera) RelativeOffset() mgl32.Vec3 {
	return c.offset
}

func (c *viewCamera) SetRelativeOffset(offset mgl32.Vec3) {
	c.offset = offset
}

// logEffects writes every effect cue to the log of its entity.
type logEffects struct {
	log *logrus.Entry
}

func (e logEffects) PlaySound(cue string) {
	e.log.Debugf("sound %q", cue)
}

func (e logEffects) SpawnParticle(cue string, location, normal mgl32.Vec3) {
	e.log.Debugf("particle %q at %v (normal %v)", cue, location, normal)
}

func (e logEffects) ShakeCamera(cue string) {
	e.log.Debugf("camera shake %q", cue)
}
