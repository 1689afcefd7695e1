package actionlib

import (
	"fmt"
	"sync"

	"github.com/edwinhayes/rosgo/ros"
)

// goalIDGenerator hands out process-unique goal ids in ROS
// actionlib's "<name>-<count>-<sec>-<nsec>" form.
type goalIDGenerator struct {
	mu    sync.Mutex
	name  string
	count int
}

func newGoalIDGenerator(name string) *goalIDGenerator {
	return &goalIDGenerator{name: name}
}

func (g *goalIDGenerator) generateID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.count++
	now := ros.Now()
	return fmt.Sprintf("%s-%d-%d-%d", g.name, g.count, now.Sec, now.NSec)
}
