package common

import (
	"os"
	"os/signal"
	"syscall"
)

func SignalHandler() chan bool {
	sigs := make(chan os.Signal, 2)
	done := make(chan bool, 1)

	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigs
		done <- true
	}()

	return done
}
