package main

import (
	"flag"
	"os"
	"strconv"

	bettererrors "github.com/xtuc/better-errors"

	"github.com/Morshead-Consulting/RET/common"
	"github.com/Morshead-Consulting/RET/common/healthcheck"
	"github.com/Morshead-Consulting/RET/common/recording"
	"github.com/Morshead-Consulting/RET/common/utils"
	"github.com/Morshead-Consulting/RET/game/skirmish"
	"github.com/Morshead-Consulting/RET/simserver"
	"github.com/Morshead-Consulting/RET/vizserver"
	viztypes "github.com/Morshead-Consulting/RET/vizserver/types"
)

func main() {
	env := os.Getenv("ENV")

	scenarioPath := flag.String("scenario", "", "Scenario JSON file to run")
	tps := flag.Int("tps", 10, "Ticks per second")
	recordFile := flag.String("record-file", "", "Destination archive for the playback record")
	vizport := flag.Int("viz-port", 8080, "Port of the embedded viz server")
	noviz := flag.Bool("no-viz", false, "Disable the embedded viz server")

	flag.Parse()

	if *scenarioPath == "" {
		utils.FailWith(bettererrors.New("-scenario must be set"))
	}

	scenario, err := skirmish.LoadScenario(*scenarioPath)
	if err != nil {
		utils.FailWith(bettererrors.
			New("Could not load scenario").
			SetContext("scenario", *scenarioPath).
			With(bettererrors.NewFromErr(err)))
	}

	game, err := skirmish.NewSkirmishGame(scenario, *tps)
	if err != nil {
		utils.FailWith(bettererrors.
			New("Could not build simulation").
			With(bettererrors.NewFromErr(err)))
	}

	var recorder recording.Recorder = recording.MakeEmptyRecorder()
	if *recordFile != "" {
		recorder = recording.MakeSingleSimRecorder(*recordFile)
	}

	server := simserver.NewServer(game.SimId(), game, recorder)

	var vizservice *vizserver.VizService
	if !*noviz {
		webclientpath := utils.GetExecutableDir() + "/webclient/"
		serverAddr := "0.0.0.0:" + strconv.Itoa(*vizport)

		vizservice = vizserver.NewVizService(serverAddr, webclientpath, func() ([]*viztypes.VizSim, error) {
			return []*viztypes.VizSim{
				viztypes.NewVizSim(game.SimId(), game.GetTps(), game.GetScenarioInfo()),
			}, nil
		}, recorder)

		vizservice.Start()
	}

	var hc *healthcheck.HealthCheckServer
	if env == "prod" {
		hc = healthcheck.NewHealthCheckServer("8099")
		hc.Register("sim", func() (error, bool) {
			return nil, !game.IsOver()
		})
		hc.Start()
	}

	utils.Debug("sim-server", "Running scenario "+scenario.Name+" ("+game.SimId()+")")

	block, err := server.Start()
	if err != nil {
		utils.FailWith(bettererrors.
			New("Could not start sim server").
			With(bettererrors.NewFromErr(err)))
	}

	select {
	case <-common.SignalHandler():
		utils.Debug("sighandler", "RECEIVED SHUTDOWN SIGNAL; closing.")
	case <-block:
		utils.Debug("sim-server", "Simulation complete")
	}

	server.Stop()
	recorder.Stop()

	if vizservice != nil {
		vizservice.Stop()
	}

	if hc != nil {
		hc.Stop()
	}
}
