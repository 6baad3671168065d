package simserver

import (
	"sync"

	"github.com/Morshead-Consulting/RET/common/influxdb"
	"github.com/Morshead-Consulting/RET/common/recording"
	"github.com/Morshead-Consulting/RET/common/types"
	"github.com/Morshead-Consulting/RET/game"
)

type Server struct {
	simUUID     string
	tickspersec int
	stopticking chan bool

	game     game.Game
	recorder recording.Recorder

	stateobservers []chan []byte

	tearDownCallbacks      []types.TearDownCallback
	tearDownCallbacksMutex *sync.Mutex

	stepCounter  *influxdb.Counter
	frameCounter *influxdb.Counter
}

func NewServer(simUUID string, g game.Game, recorder recording.Recorder) *Server {
	return &Server{
		simUUID:     simUUID,
		tickspersec: g.GetTps(),
		stopticking: make(chan bool),

		game:     g,
		recorder: recorder,

		stateobservers: make([]chan []byte, 0),

		tearDownCallbacks:      make([]types.TearDownCallback, 0),
		tearDownCallbacksMutex: &sync.Mutex{},

		stepCounter:  influxdb.NewCounter(),
		frameCounter: influxdb.NewCounter(),
	}
}

func (server *Server) GetGame() game.Game {
	return server.game
}

func (server *Server) GetSimUUID() string {
	return server.simUUID
}

func (server *Server) GetTicksPerSecond() int {
	return server.tickspersec
}

// SubscribeStateObservation registers an observer fed one frame JSON per
// step.
func (server *Server) SubscribeStateObservation() chan []byte {
	ch := make(chan []byte)
	server.stateobservers = append(server.stateobservers, ch)
	return ch
}
