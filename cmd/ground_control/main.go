package main

import (
	"fmt"
	"os"

	"github.com/MilanAdd/ow-autonomy/ground"
	"github.com/MilanAdd/ow-autonomy/telemetry"
	"github.com/edwinhayes/rosgo/ros"
)

func main() {
	node, err := ros.NewNode("GroundControl", os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
	defer node.Shutdown()
	node.Logger().SetSeverity(ros.LogLevelInfo)

	relay := ground.New(node, telemetry.NewBus())
	defer relay.Shutdown()

	relay.Run()
}
