package healthcheck

import (
	"encoding/json"
	"net/http"

	"github.com/Morshead-Consulting/RET/common/utils"
)

type HealthCheckServer struct {
	checkers map[string]HealthCheckHandler
	port     string
	server   *http.Server
}

type HealthCheck struct {
	Name   string
	Status bool
}

type HealthCheckHttpResponse struct {
	Checks     []HealthCheck
	StatusCode int
}

type HealthCheckHandler func() (err error, ok bool)

func NewHealthCheckServer(port string) *HealthCheckServer {
	return &HealthCheckServer{
		checkers: make(map[string]HealthCheckHandler),
		port:     port,
	}
}

func (server *HealthCheckServer) httpHandler(w http.ResponseWriter, r *http.Request) {
	res := HealthCheckHttpResponse{
		Checks:     make([]HealthCheck, 0),
		StatusCode: 200,
	}

	for name, checker := range server.checkers {
		err, ok := checker()

		if err == nil {
			res.Checks = append(res.Checks, HealthCheck{
				Name:   name,
				Status: ok,
			})
		} else {
			res.StatusCode = http.StatusInternalServerError
		}
	}

	data, err := json.Marshal(res)
	utils.Check(err, "Failed to marshal healthcheck response")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	w.Write(data)
}

func (server *HealthCheckServer) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", server.httpHandler)

	server.server = &http.Server{
		Addr:    ":" + server.port,
		Handler: mux,
	}

	go func() {
		err := server.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			utils.Check(err, "Failed to listen on :"+server.port)
		}
	}()
}

func (server *HealthCheckServer) Stop() {
	if server.server != nil {
		server.server.Close()
	}
}

func (server *HealthCheckServer) Register(name string, handler HealthCheckHandler) {
	server.checkers[name] = handler
}
