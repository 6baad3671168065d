package game

import (
	"github.com/Morshead-Consulting/RET/common/types"
)

// Game is what the sim server drives; one Step per tick.
type Game interface {
	ImplementsGameInterface()

	Step(ticknum int, dt float64)
	IsOver() bool

	GetScenarioInfo() *types.ScenarioInfo
	GetTps() int
	GetVizFrameJson() []byte
}
