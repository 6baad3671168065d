package simserver

import (
	"strconv"
	"time"

	"github.com/Morshead-Consulting/RET/common/influxdb"
	"github.com/Morshead-Consulting/RET/common/utils"
)

func (server *Server) monitoring(stopChannel chan bool) {
	monitorfreq := time.Second

	metricsClient, err := influxdb.NewClient("sim-server")
	if err != nil {
		utils.Debug("monitoring", "Could not configure influxdb client: "+err.Error())
	}
	defer metricsClient.TearDown()

	for {
		select {
		case <-stopChannel:
			{
				return
			}
		case <-time.After(monitorfreq):
			{
				stepsPerFreq := server.stepCounter.GetAndReset()
				framesPerFreq := server.frameCounter.GetAndReset()

				utils.Debug("monitoring",
					"-- MONITORING -- "+
						strconv.Itoa(stepsPerFreq)+" steps per "+monitorfreq.String()+";"+
						strconv.Itoa(framesPerFreq)+" frames per "+monitorfreq.String(),
				)

				metricsClient.WriteAppMetric("sim-server", map[string]interface{}{
					"steps-per-sec":  stepsPerFreq,
					"frames-per-sec": framesPerFreq,
				})
			}
		}
	}
}
