package raffle

import "github.com/KirkDiggler/lootwheel/internal/models"

// FramePhase tells which animation a frame belongs to
type FramePhase string

const (
	// FramePhaseSpin is the forward spin towards the selected prize
	FramePhaseSpin FramePhase = "spin"

	// FramePhaseReturn is the return of the wheel to rest
	FramePhaseReturn FramePhase = "return"
)

// Frame is one animation step of a raffle's wheel
type Frame struct {
	Phase    FramePhase `json:"phase"`
	Angle    float64    `json:"angle"`
	Progress float64    `json:"progress"`

	// Slices is the number of in-stock prizes drawn on the wheel
	Slices int `json:"slices"`
}

// Renderer is the view of a raffle. RenderState is called after every state
// change and RenderFrame on every animation step. Implementations must not block.
type Renderer interface {
	RenderState(raffleID string, state *models.RaffleState)
	RenderFrame(raffleID string, frame *Frame)
}

// NopRenderer discards everything
type NopRenderer struct{}

func (NopRenderer) RenderState(string, *models.RaffleState) {}
func (NopRenderer) RenderFrame(string, *Frame)              {}

// MultiRenderer fans out to several renderers
type MultiRenderer []Renderer

func (m MultiRenderer) RenderState(raffleID string, state *models.RaffleState) {
	for _, r := range m {
		r.RenderState(raffleID, state)
	}
}

func (m MultiRenderer) RenderFrame(raffleID string, frame *Frame) {
	for _, r := range m {
		r.RenderFrame(raffleID, frame)
	}
}
