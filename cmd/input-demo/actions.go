package main

import "github.com/lixenwraith/inputmanager/action"

type demoAction uint8

// Declaration order is clash priority under use_action_order
const (
	MoveUp demoAction = iota
	MoveDown
	MoveLeft
	MoveRight
	Jump
	Sprint
	HighJump
	Fire
	AltFire
	Pause
)

var actions = action.NewRegistry[demoAction](
	"move_up", "move_down", "move_left", "move_right",
	"jump", "sprint", "high_jump",
	"fire", "alt_fire", "pause",
)

// Owner ids travel over the wire, so they are small fixed integers
const (
	ownerPlayer uint8 = 1
	ownerUI     uint8 = 2
)

// defaultBindings carries no clash settings so engine.clash_strategy and clash_rule govern it
const defaultBindings = `
[bindings]
move_up = ["w", "up", "pad:dpad_up"]
move_down = ["s", "down", "pad:dpad_down"]
move_left = ["a", "left", "pad:dpad_left"]
move_right = ["d", "right", "pad:dpad_right"]
jump = ["space", "pad:south"]
sprint = ["lshift"]
high_jump = ["lshift+space"]
fire = ["mouse:left", "f"]
alt_fire = ["mouse:right", "lcontrol+f"]
pause = ["p", "pad:start"]
`
