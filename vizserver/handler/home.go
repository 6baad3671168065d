package handler

import (
	"net/http"
	"os"
	"strconv"

	"github.com/Morshead-Consulting/RET/common/recording"
	"github.com/Morshead-Consulting/RET/vizserver/types"
)

func Home(sims *types.VizSimMap, recorder recording.Recorder) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<h2>RetPlay</h2>"))

		w.Write([]byte("<h3>Live simulations</h3>"))
		sims.Each(func(id string, sim *types.VizSim) {
			w.Write([]byte("<a href='/sim/" + sim.GetId() + "'>" + sim.GetName() + " (" + strconv.Itoa(sim.GetNumberWatchers()) + " watchers right now)</a><br />"))
		})

		w.Write([]byte("<h3>Recorded playbacks</h3>"))

		entries, err := os.ReadDir(recorder.GetDirectory())
		if err != nil {
			w.Write([]byte("No record directory"))
			return
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			w.Write([]byte("<a href='/record/" + entry.Name() + "'>" + entry.Name() + "</a><br />"))
		}
	}
}
