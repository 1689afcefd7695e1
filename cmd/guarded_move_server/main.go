// An experimental substitute action server for MoveGuarded, which
// really belongs in the simulator.
package main

import (
	"fmt"
	"os"

	"github.com/MilanAdd/ow-autonomy/actionlib"
	"github.com/MilanAdd/ow-autonomy/msgs/ow_plexil"
	"github.com/edwinhayes/rosgo/ros"
)

const actionName = "MoveGuarded"

type moveGuardedServer struct {
	node   ros.Node
	server actionlib.SimpleActionServer
}

func (s *moveGuardedServer) execute(goal *ow_plexil.MoveGuardedGoal) {
	rate := ros.NewRate(1)
	feedback := &ow_plexil.MoveGuardedFeedback{}
	logger := s.node.Logger()
	logger.Infof("%s: Executing", actionName)

	for i := 1; i <= 100; i++ {
		if s.server.IsPreemptRequested() || !s.node.OK() {
			logger.Infof("%s: Preempted", actionName)
			if err := s.server.SetPreempted(nil, ""); err != nil {
				logger.Errorf("%s: %v", actionName, err)
			}
			return
		}
		feedback.CurrentX = float64(i)
		s.server.PublishFeedback(feedback)
		rate.Sleep()
	}

	logger.Infof("%s: Succeeded", actionName)
	result := &ow_plexil.MoveGuardedResult{Message: "Move Guarded Action succeeded!"}
	if err := s.server.SetSucceeded(result, ""); err != nil {
		logger.Errorf("%s: %v", actionName, err)
	}
}

func main() {
	node, err := ros.NewNode(actionName, os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
	defer node.Shutdown()
	node.Logger().SetSeverity(ros.LogLevelInfo)

	s := &moveGuardedServer{node: node}
	s.server = actionlib.NewSimpleActionServer(node, "/MoveGuarded", ow_plexil.ActionMoveGuarded, s.execute)
	s.server.Start()

	node.Spin()
}
