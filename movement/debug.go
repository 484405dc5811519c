package movement

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/stride/utils"
)

// Debugger holds the debug topics a controller logs at debug level.
type Debugger struct {
	LogTransitions bool
	LogRejections  bool
	LogMantle      bool
	LogLanding     bool
}

// DebugInfo returns the current state of the controller as ordered key/value pairs.
func (c *Controller) DebugInfo() *orderedmap.OrderedMap[string, any] {
	st := c.state
	info := orderedmap.NewOrderedMap[string, any]()
	info.Set("mode", st.Current)
	info.Set("prev", st.Previous)
	info.Set("jumps", st.JumpCharges)
	info.Set("dashes", st.DashCharges)
	info.Set("stamina", st.RunningStamina)
	info.Set("room", st.HasRoomToStandUp)
	info.Set("stand", st.WantsToStandUp)
	if st.Current == Sliding {
		info.Set("influence", st.SlidingInfluence)
	}
	if st.WallSide != 0 {
		info.Set("wall_side", st.WallSide)
	}
	if st.MantlePhase != MantleIdle {
		info.Set("mantle", st.MantlePhase)
	}
	if last, ok := c.history.Last(); ok {
		info.Set("last_switch", last)
	}
	if playing := c.timelines.Playing(); len(playing) > 0 {
		info.Set("timelines", playing)
	}
	return info
}

func (c *Controller) debugf(enabled bool, msg string, kv ...any) {
	if !enabled {
		return
	}
	c.log.Debugf("movement: %s %s", msg, utils.OrderedMapToString(utils.KeyValsToMap(kv...)))
}
