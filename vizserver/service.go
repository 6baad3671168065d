package vizserver

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/Morshead-Consulting/RET/common/recording"
	"github.com/Morshead-Consulting/RET/common/utils"
	apphandler "github.com/Morshead-Consulting/RET/vizserver/handler"
	"github.com/Morshead-Consulting/RET/vizserver/types"
)

type FetchSimsCbk func() ([]*types.VizSim, error)

// VizService serves the RetPlay dashboard: live simulations over their
// notify bus and recorded playbacks over the record directory.
type VizService struct {
	addr          string
	webclientpath string
	fetchSims     FetchSimsCbk
	recorder      recording.Recorder
	server        *http.Server
}

func NewVizService(addr string, webclientpath string, fetchSims FetchSimsCbk, recorder recording.Recorder) *VizService {
	return &VizService{
		addr:          addr,
		webclientpath: webclientpath,
		fetchSims:     fetchSims,
		recorder:      recorder,
	}
}

func (viz *VizService) Start() {
	go func() {
		err := viz.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			utils.Check(err, "VizService: server error")
		}
	}()
}

func (viz *VizService) ListenAndServe() error {

	sims, err := viz.fetchSims()
	utils.Check(err, "VizService: Could not fetch simulations")

	vizsims := types.NewVizSimMap()
	for _, sim := range sims {
		vizsims.Set(sim.GetId(), sim)
	}

	logger := os.Stdout
	router := mux.NewRouter()

	router.Handle("/", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Home(vizsims, viz.recorder)),
	)).Methods("GET")

	router.Handle("/sim/{id:[a-zA-Z0-9\\-]+}", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Sim(vizsims, viz.webclientpath)),
	)).Methods("GET")

	router.Handle("/sim/{id:[a-zA-Z0-9\\-]+}/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Websocket(vizsims)),
	)).Methods("GET")

	router.Handle("/record/{recordId:[a-zA-Z0-9\\-]+}", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Replay(viz.recorder, viz.webclientpath)),
	)).Methods("GET")

	router.Handle("/record/{recordId:[a-zA-Z0-9\\-]+}/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.ReplayWebsocket(viz.recorder, viz.webclientpath)),
	)).Methods("GET")

	// Dashboard assets (js, icons, map tiles)
	router.PathPrefix("/lib/").Handler(http.FileServer(http.Dir(viz.webclientpath)))
	router.PathPrefix("/res/").Handler(http.FileServer(http.Dir(viz.webclientpath)))

	log.Println("VIZ Listening on " + viz.addr)

	viz.server = &http.Server{
		Addr:    viz.addr,
		Handler: router,
	}

	return viz.server.ListenAndServe()
}

func (viz *VizService) Stop() {
	if viz.server != nil {
		viz.server.Close()
	}
}
