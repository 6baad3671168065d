package handler

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/Morshead-Consulting/RET/common/recording"
	"github.com/Morshead-Consulting/RET/common/replay"
	"github.com/Morshead-Consulting/RET/common/utils"
)

func ReplayWebsocket(recorder recording.Recorder, basepath string) func(w http.ResponseWriter, r *http.Request) {

	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		UUID := vars["recordId"]

		recordFile := recorder.GetDirectory() + "/" + UUID

		_, err := os.Stat(recordFile)

		if os.IsNotExist(err) {
			w.Write([]byte("Record not found"))
			return
		}

		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		}

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Print("upgrade:", err)
			return
		}

		defer func(c *websocket.Conn) {
			c.Close()
		}(c)

		clientclosedsocket := make(chan bool)
		c.SetCloseHandler(func(code int, text string) error {
			clientclosedsocket <- true
			return nil
		})

		// Listen to messages incoming from viz; mandatory to notice when
		// the websocket is closed client side
		incomingmsg := make(chan wsincomingmessage)
		go func(client *websocket.Conn, ch chan wsincomingmessage) {
			messageType, p, err := client.ReadMessage()
			ch <- wsincomingmessage{messageType, p, err}
		}(c, incomingmsg)

		scenariomsgchan := make(chan interface{})
		notify.Start("viz:scenario:"+UUID, scenariomsgchan)
		defer notify.Stop("viz:scenario:"+UUID, scenariomsgchan)

		debug := false

		vizmsgchan := replay.Read(recordFile, debug, UUID, onReplayScenario)

		for {
			select {
			case <-clientclosedsocket:
				{
					utils.Debug("ws", "disconnected")
					return
				}
			case vizmsg := <-vizmsgchan:
				{
					// End of the record
					if vizmsg == nil {
						return
					}

					data := fmt.Sprintf("{\"type\":\"frame\", \"data\": %s}", vizmsg.Line)

					c.WriteMessage(websocket.TextMessage, []byte(data))
					<-time.NewTimer(100 * time.Millisecond).C
				}
			case scenariomsg := <-scenariomsgchan:
				{
					scenarioString, ok := scenariomsg.(string)
					utils.Assert(ok, "Failed to cast scenario message into string")

					initMessage := "{\"type\":\"init\",\"data\": " + scenarioString + "}"
					c.WriteMessage(websocket.TextMessage, []byte(initMessage))
				}
			}
		}
	}
}

func onReplayScenario(body string, debug bool, UUID string) {
	notify.PostTimeout("viz:scenario:"+UUID, body, time.Millisecond)
}
