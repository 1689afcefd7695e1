// Package plexil bridges the plan executive to the rest of the node:
// it drives the plexilexec process that runs compiled plans and
// dispatches the commands and lookups those plans issue.
package plexil

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "plexil"})

// Executive runs PLEXIL plans. The real one shells out to plexilexec;
// tests substitute their own.
type Executive interface {
	Initialize(configPath string) error
	RunPlan(plan string) error
	AllPlansFinished() bool
	LastPlanSucceeded() bool
	Shutdown() error
}

// External drives the plexilexec binary, one plan process at a time.
type External struct {
	planDir    string
	configPath string

	mutex   sync.Mutex
	cmd     *exec.Cmd
	running bool
	lastOK  bool
}

// NewExternal returns an executive that looks for compiled plans
// under planDir.
func NewExternal(planDir string) *External {
	return &External{planDir: planDir, lastOK: true}
}

// DefaultPlanDir resolves the plan directory from the environment,
// falling back to ./plans.
func DefaultPlanDir() string {
	if dir := os.Getenv("PLEXIL_PLAN_DIR"); dir != "" {
		return dir
	}
	return "plans"
}

// Initialize checks that plexilexec is reachable and remembers the
// interface configuration to hand it.
func (e *External) Initialize(configPath string) error {
	if _, err := exec.LookPath("plexilexec"); err != nil {
		return errors.Wrap(err, "locate plexilexec")
	}
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return errors.Wrapf(err, "interface config %s", configPath)
		}
	}
	e.configPath = configPath
	return nil
}

// RunPlan launches plexilexec on the named plan. Plan names without
// an extension get the compiled .plx suffix; relative names resolve
// against the plan directory.
func (e *External) RunPlan(plan string) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if e.running {
		return errors.New("a plan is already running")
	}

	path := plan
	if filepath.Ext(path) == "" {
		path += ".plx"
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(e.planDir, path)
	}
	if _, err := os.Stat(path); err != nil {
		return errors.Wrapf(err, "plan %s", plan)
	}

	args := []string{"-p", path}
	if e.configPath != "" {
		args = append(args, "-c", e.configPath)
	}
	cmd := exec.Command("plexilexec", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "start plan %s", plan)
	}

	log.Infof("running plan %s", path)
	e.cmd = cmd
	e.running = true
	go e.reap(plan, cmd)
	return nil
}

// reap waits out the plan process and records how it ended.
func (e *External) reap(plan string, cmd *exec.Cmd) {
	err := cmd.Wait()

	e.mutex.Lock()
	e.running = false
	e.cmd = nil
	e.lastOK = err == nil
	e.mutex.Unlock()

	if err != nil {
		log.Errorf("plan %s failed: %v", plan, err)
	} else {
		log.Infof("plan %s finished", plan)
	}
}

// AllPlansFinished reports whether no plan process is running.
func (e *External) AllPlansFinished() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return !e.running
}

// LastPlanSucceeded reports whether the most recent plan process
// exited cleanly.
func (e *External) LastPlanSucceeded() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.lastOK
}

// Shutdown kills the running plan process, if any.
func (e *External) Shutdown() error {
	e.mutex.Lock()
	cmd := e.cmd
	e.mutex.Unlock()

	if cmd == nil || cmd.Process == nil {
		return nil
	}
	if err := cmd.Process.Kill(); err != nil {
		return errors.Wrap(err, "kill plan process")
	}
	return nil
}
