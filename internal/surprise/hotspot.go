package surprise

import "time"

// Animation identifies the reveal animation bound to a hotspot.
type Animation string

const (
	AnimationPetals     Animation = "petals"
	AnimationChocolates Animation = "chocolates"
	AnimationBalloons   Animation = "balloons"
)

// Duration is how long the reveal plays before the hotspot is done.
func (a Animation) Duration() time.Duration {
	switch a {
	case AnimationPetals:
		return 2500 * time.Millisecond
	case AnimationChocolates:
		return 2000 * time.Millisecond
	case AnimationBalloons:
		return 3500 * time.Millisecond
	default:
		return 0
	}
}

// Frames are the glyphs cycled while the animation plays.
func (a Animation) Frames() []string {
	switch a {
	case AnimationPetals:
		return []string{"🌹", "🥀", "🌸"}
	case AnimationChocolates:
		return []string{"🍫", "🍬", "🍫"}
	case AnimationBalloons:
		return []string{"🎈", "❤️", "🎈"}
	default:
		return nil
	}
}

// Hotspot is one clickable spot in the car reveal.
type Hotspot struct {
	ID           string
	Title        string // heading shown while this hotspot is active
	Hint         string
	Animation    Animation
	Announcement string // status line once the hotspot has been revealed
}

// Status is the interactivity of a hotspot relative to the current step.
type Status int

const (
	StatusLocked Status = iota
	StatusActive
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusLocked:
		return "locked"
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// hotspots is the fixed reveal layout. The animation order is bound to the
// hotspot order and must not be changed independently.
var hotspots = []Hotspot{
	{
		ID:           "sunvisor",
		Title:        "Your Adventure Awaits 🚗💕",
		Hint:         "✨ Open the sun visor...",
		Animation:    AnimationPetals,
		Announcement: "Rose petals falling from sun visor",
	},
	{
		ID:           "dashboard",
		Title:        "Sweet Surprises 🍫",
		Hint:         "🍫 Check the dashboard...",
		Animation:    AnimationChocolates,
		Announcement: "Chocolates revealed on dashboard",
	},
	{
		ID:           "boot",
		Title:        "One More Gift... 🎈",
		Hint:         "🎈 Open the boot for something special...",
		Animation:    AnimationBalloons,
		Announcement: "Balloons floating from boot",
	},
}

// Hotspots returns the reveal layout in step order.
func Hotspots() []Hotspot {
	out := make([]Hotspot, len(hotspots))
	copy(out, hotspots)
	return out
}

// StepCount is the number of hotspots in the sequence.
func StepCount() int {
	return len(hotspots)
}
