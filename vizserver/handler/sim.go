package handler

import (
	"html/template"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"github.com/Morshead-Consulting/RET/vizserver/types"
)

func Sim(sims *types.VizSimMap, basepath string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		sim, found := sims.Get(vars["id"])

		if !found {
			w.Write([]byte("SIM NOT FOUND !"))
			return
		}

		vizhtml, err := os.ReadFile(basepath + "index.html")
		if err != nil {
			w.Write([]byte("ERROR: could not render dashboard"))
			return
		}

		var vizhtmlTemplate = template.Must(template.New("").Parse(string(vizhtml)))
		vizhtmlTemplate.Execute(w, struct {
			WsURL string
			Rand  int64
			Tps   int
		}{
			WsURL: "ws://" + r.Host + "/sim/" + sim.GetId() + "/ws",
			Rand:  time.Now().Unix(),
			Tps:   sim.GetTps(),
		})
	}
}
