package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	settleFPS       = 60
	settleFrequency = 8.0
	settleDamping   = 0.9
	settleEpsilon   = 0.25
)

// settleFrameMsg advances the settle animation by one frame.
type settleFrameMsg struct {
	id int
}

// settleAnimation eases the drawn sheet height toward a committed height.
// It is presentation only; the controller already holds the target.
type settleAnimation struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	active bool
	id     int
}

func newSettleAnimation() settleAnimation {
	return settleAnimation{
		spring: harmonica.NewSpring(harmonica.FPS(settleFPS), settleFrequency, settleDamping),
	}
}

// start begins easing from -> to and returns the first frame command. A new
// start supersedes frames still queued for an older one.
func (a *settleAnimation) start(from, to float64) tea.Cmd {
	if !a.active {
		a.pos = from
		a.vel = 0
	}
	a.target = to
	a.active = true
	a.id++
	return settleFrame(a.id)
}

// step advances one frame and reports whether another frame is needed.
func (a *settleAnimation) step() bool {
	if !a.active {
		return false
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if math.Abs(a.pos-a.target) < settleEpsilon && math.Abs(a.vel) < settleEpsilon {
		a.stop()
		return false
	}
	return true
}

func (a *settleAnimation) stop() {
	a.pos = a.target
	a.vel = 0
	a.active = false
}

func settleFrame(id int) tea.Cmd {
	return tea.Tick(time.Second/settleFPS, func(time.Time) tea.Msg {
		return settleFrameMsg{id: id}
	})
}
