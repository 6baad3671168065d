package types

import (
	commontypes "github.com/Morshead-Consulting/RET/common/types"
	"github.com/Morshead-Consulting/RET/common/utils"
)

// VizSim is one watchable live simulation: its scenario descriptor plus the
// pool of dashboard watchers currently following it.
type VizSim struct {
	simUUID  string
	tps      int
	scenario *commontypes.ScenarioInfo
	pool     *commontypes.SyncMap[*Watcher]
}

func NewVizSim(simUUID string, tps int, scenario *commontypes.ScenarioInfo) *VizSim {
	return &VizSim{
		simUUID:  simUUID,
		tps:      tps,
		scenario: scenario,
		pool:     commontypes.NewSyncMap[*Watcher](),
	}
}

func (sim *VizSim) GetId() string {
	return sim.simUUID
}

func (sim *VizSim) GetName() string {
	return sim.scenario.Name
}

func (sim *VizSim) GetTps() int {
	return sim.tps
}

func (sim *VizSim) GetScenarioInfo() *commontypes.ScenarioInfo {
	return sim.scenario
}

type VizInitMessage struct {
	Type string                    `json:"type"`
	Data *commontypes.ScenarioInfo `json:"data"`
}

func (sim *VizSim) SetWatcher(watcher *Watcher) {
	sim.pool.Set(watcher.GetId(), watcher)

	initMsg := VizInitMessage{
		Type: "init",
		Data: sim.scenario,
	}

	err := watcher.Conn().WriteJSON(initMsg)
	if err != nil {
		utils.Debug("viz-server", "Could not send VizInitMessage JSON;"+err.Error())
	}
}

func (sim *VizSim) RemoveWatcher(watcherid string) {
	sim.pool.Remove(watcherid)
}

func (sim *VizSim) GetNumberWatchers() int {
	return sim.pool.Size()
}

// VizSimMap indexes watchable simulations by sim UUID.
type VizSimMap struct {
	*commontypes.SyncMap[*VizSim]
}

func NewVizSimMap() *VizSimMap {
	return &VizSimMap{
		commontypes.NewSyncMap[*VizSim](),
	}
}
