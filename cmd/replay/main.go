package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Morshead-Consulting/RET/common/replay"
	"github.com/Morshead-Consulting/RET/common/utils"
)

// Dumps a playback record to stdout: the scenario metadata first, then one
// frame JSON per line.
func main() {
	filename := flag.String("file", "", "Record archive to read")
	debug := flag.Bool("debug", false, "Enable debug mode")

	flag.Parse()

	utils.Assert(*filename != "", "file must be set")

	msgchan := replay.Read(*filename, *debug, "replay", onMetadata)

	for msg := range msgchan {
		// End of the record
		if msg == nil {
			return
		}

		if *debug {
			log.Println("read buffer of length: ", len(msg.Line))
		}

		fmt.Println(msg.Line)
	}
}

func onMetadata(body string, debug bool, UUID string) {
	fmt.Println(body)
}
