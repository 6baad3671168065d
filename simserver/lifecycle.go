package simserver

import (
	"errors"
	"strconv"
	"time"

	notify "github.com/bitly/go-notify"

	"github.com/Morshead-Consulting/RET/common/types"
	"github.com/Morshead-Consulting/RET/common/utils"
)

func (server *Server) Start() (chan interface{}, error) {

	utils.Debug("sim-server", "Recording scenario metadata")
	err := server.recorder.RecordMetadata(server.simUUID, server.game.GetScenarioInfo())
	if err != nil {
		return nil, errors.New("Failed to record scenario metadata: " + err.Error())
	}

	block := make(chan interface{})

	server.AddTearDownCall(func() error {
		server.recorder.Close(server.simUUID)
		return nil
	})

	go func() {
		stopChannel := make(chan bool)
		server.monitoring(stopChannel)

		server.AddTearDownCall(func() error {
			stopChannel <- true
			return nil
		})
	}()

	server.startTicking(block)

	return block, nil
}

func (server *Server) Stop() {
	utils.Debug("sim-server", "TearDown from stop")
	server.TearDown()
}

func (server *Server) startTicking(block chan interface{}) {

	tickduration := time.Duration((1000000 / time.Duration(server.tickspersec)) * time.Microsecond)
	ticker := time.Tick(tickduration)

	server.AddTearDownCall(func() error {
		server.stopticking <- true
		close(server.stopticking)

		return nil
	})

	go func() {
		ticknum := 0

		for {
			select {
			case <-server.stopticking:
				{
					utils.Debug("core-loop", "Received stop ticking signal")
					notify.Post("app:stopticking", nil)
					close(block)
					return
				}
			case <-ticker:
				{
					ticknum++
					server.doTick(ticknum)

					if server.game.IsOver() {
						utils.Debug("core-loop", "Simulation reached scenario end time")
						notify.Post("app:simover", nil)
						close(block)
						return
					}
				}
			}
		}
	}()
}

func (server *Server) doTick(ticknum int) {

	dolog := (ticknum % server.tickspersec) == 0

	if dolog {
		utils.Debug("core-loop", "######## Tick ######## "+strconv.Itoa(ticknum))
	}

	server.game.Step(ticknum, 1.0/float64(server.tickspersec))
	server.stepCounter.Add(1)

	///////////////////////////////////////////////////////////////////////////
	// Persisting the frame and pushing it to live observers
	///////////////////////////////////////////////////////////////////////////

	frame := server.game.GetVizFrameJson()

	err := server.recorder.Record(server.simUUID, string(frame))
	if err != nil {
		utils.Debug("sim-server", "ERROR: could not record frame: "+err.Error())
	}
	server.frameCounter.Add(1)

	notify.PostTimeout("viz:message:"+server.simUUID, string(frame), time.Millisecond)

	for _, subscriber := range server.stateobservers {
		go func(s chan []byte) {
			s <- frame
		}(subscriber)
	}
}

func (server *Server) AddTearDownCall(fn types.TearDownCallback) {
	server.tearDownCallbacksMutex.Lock()
	defer server.tearDownCallbacksMutex.Unlock()

	server.tearDownCallbacks = append(server.tearDownCallbacks, fn)
}

func (server *Server) TearDown() {
	utils.Debug("sim-server", "teardown")

	server.tearDownCallbacksMutex.Lock()

	for i := len(server.tearDownCallbacks) - 1; i >= 0; i-- {
		utils.Debug("teardown", "Executing TearDownCallback")
		server.tearDownCallbacks[i]()
	}

	// Reset to avoid calling teardown callbacks multiple times
	server.tearDownCallbacks = server.tearDownCallbacks[:0]

	server.tearDownCallbacksMutex.Unlock()
}
