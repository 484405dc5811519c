package main

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride"
	"github.com/oomph-ac/stride/world"
)

// buildCourse adds a small parkour course to the world: a floor, a wall that can be wall-run on the
// right of the track, a low tunnel to slide under and a ledge to mantle onto at the end.
func buildCourse(w *world.World) {
	w.AddActor(world.Actor{
		Name:  "floor",
		Boxes: []cube.BBox{cube.Box(-1000, -2000, -20, 12000, 2000, 0)},
	})
	w.AddActor(world.Actor{
		Name:  "wall",
		Boxes: []cube.BBox{cube.Box(2000, 60, 0, 4000, 90, 500)},
		Tags:  []world.Tag{world.TagWallRun},
	})
	w.AddActor(world.Actor{
		Name:  "tunnel",
		Boxes: []cube.BBox{cube.Box(5500, -300, 120, 6500, 300, 200)},
	})
	w.AddActor(world.Actor{
		Name:  "ledge",
		Boxes: []cube.BBox{cube.Box(9000, -500, 0, 10000, 500, 140)},
	})
}

// step is a scripted input held from tick From until tick To. Actions are sent on tick From only,
// unless Hold is set.
type step struct {
	From, To int
	Move     mgl32.Vec2
	Actions  []stride.Action
	Hold     bool
}

// course is the input script for running the course built by buildCourse at 60 ticks per second.
var course = []step{
	{From: 0, To: 60},
	{From: 60, To: 120, Move: mgl32.Vec2{1, 0}},
	{From: 120, To: 150, Move: mgl32.Vec2{1, 0}, Actions: []stride.Action{stride.ActionRunStart}},
	{From: 150, To: 240, Move: mgl32.Vec2{1, 0.2}, Actions: []stride.Action{stride.ActionJump}},
	{From: 240, To: 330, Move: mgl32.Vec2{1, 0}, Actions: []stride.Action{stride.ActionJump}},
	{From: 330, To: 420, Move: mgl32.Vec2{1, 0}, Actions: []stride.Action{stride.ActionCrouch}},
	{From: 420, To: 480, Move: mgl32.Vec2{1, 0}, Actions: []stride.Action{stride.ActionDash}},
	{From: 480, To: 500, Move: mgl32.Vec2{1, 0}, Actions: []stride.Action{stride.ActionRunStart, stride.ActionJump}},
	{From: 500, To: 560, Move: mgl32.Vec2{1, 0}, Actions: []stride.Action{stride.ActionMantle}, Hold: true},
	{From: 560, To: 600, Actions: []stride.Action{stride.ActionRunEnd}},
}

// inputAt returns the scripted input for the tick passed.
func inputAt(script []step, tick int) stride.Input {
	for _, s := range script {
		if tick < s.From || tick >= s.To {
			continue
		}
		in := stride.Input{Move: s.Move}
		if tick == s.From || s.Hold {
			in.Actions = s.Actions
		}
		return in
	}
	return stride.Input{}
}
