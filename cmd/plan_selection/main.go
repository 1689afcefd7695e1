package main

import (
	"fmt"
	"os"

	"github.com/MilanAdd/ow-autonomy/lander"
	"github.com/MilanAdd/ow-autonomy/planselect"
	"github.com/MilanAdd/ow-autonomy/plexil"
	"github.com/MilanAdd/ow-autonomy/telemetry"
	"github.com/edwinhayes/rosgo/ros"
	"github.com/sirupsen/logrus"
)

func main() {
	node, err := ros.NewNode("plexil_plan_selection_node", os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
	defer node.Shutdown()
	applyLogLevel(node)

	bus := telemetry.NewBus()
	iface, err := lander.New(node, bus)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
	defer iface.Shutdown()

	adapter := plexil.NewAdapter(bus)
	plexil.Bind(adapter, iface)
	iface.SetStatusFunc(adapter.Ack)

	executive := plexil.NewExternal(stringParam(node, "~plan_dir", plexil.DefaultPlanDir()))
	selection := planselect.New(node, executive, adapter,
		stringParam(node, "~plexil_config", os.Getenv("PLEXIL_CONFIG")),
		initialPlan(node.NonRosArgs()))
	defer selection.Shutdown()
	adapter.SetAckFunc(selection.CommandStatus)

	selection.Run()
}

// initialPlan reads the optional plan name argument; "None" or no
// argument means start idle.
func initialPlan(args []string) string {
	if len(args) < 2 {
		return "None"
	}
	return args[1]
}

func stringParam(node ros.Node, name, def string) string {
	ok, err := node.HasParam(name)
	if err != nil || !ok {
		return def
	}
	value, err := node.GetParam(name)
	if err != nil {
		return def
	}
	if s, ok := value.(string); ok && s != "" {
		return s
	}
	return def
}

func applyLogLevel(node ros.Node) {
	switch stringParam(node, "~log_level", "info") {
	case "debug":
		node.Logger().SetSeverity(ros.LogLevelDebug)
		logrus.SetLevel(logrus.DebugLevel)
	case "warn":
		node.Logger().SetSeverity(ros.LogLevelWarn)
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		node.Logger().SetSeverity(ros.LogLevelError)
		logrus.SetLevel(logrus.ErrorLevel)
	case "fatal":
		node.Logger().SetSeverity(ros.LogLevelFatal)
		logrus.SetLevel(logrus.FatalLevel)
	default:
		node.Logger().SetSeverity(ros.LogLevelInfo)
		logrus.SetLevel(logrus.InfoLevel)
	}
}
