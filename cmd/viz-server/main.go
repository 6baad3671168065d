package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/Morshead-Consulting/RET/common"
	"github.com/Morshead-Consulting/RET/common/healthcheck"
	"github.com/Morshead-Consulting/RET/common/recording"
	"github.com/Morshead-Consulting/RET/common/utils"
	"github.com/Morshead-Consulting/RET/vizserver"
	viztypes "github.com/Morshead-Consulting/RET/vizserver/types"
)

func main() {
	env := os.Getenv("ENV")

	webclientpath := utils.GetExecutableDir() + "/webclient/"

	log.Println("RetPlay Viz Server " + utils.GetVersion() + "; serving assets from " + webclientpath)

	port := flag.Int("port", 8081, "Port of the viz server")
	recordDirectory := flag.String("record-dir", "", "Directory holding playback records")

	flag.Parse()

	var recorder recording.Recorder = recording.MakeEmptyRecorder()
	if *recordDirectory != "" {
		recorder = recording.MakeMultiSimRecorder(*recordDirectory)
	}

	serverAddr := "0.0.0.0:" + strconv.Itoa(*port)

	// A standalone viz server has no live simulations; it serves the
	// records in record-dir.
	vizservice := vizserver.NewVizService(serverAddr, webclientpath, func() ([]*viztypes.VizSim, error) {
		return []*viztypes.VizSim{}, nil
	}, recorder)

	vizservice.Start()

	var hc *healthcheck.HealthCheckServer
	if env == "prod" {
		hc = healthcheck.NewHealthCheckServer("8099")
		hc.Register("viz", func() (error, bool) {
			return nil, true
		})
		hc.Start()
	}

	<-common.SignalHandler()
	utils.Debug("sighandler", "RECEIVED SHUTDOWN SIGNAL; closing.")
	vizservice.Stop()

	recorder.Stop()

	if hc != nil {
		hc.Stop()
	}
}
