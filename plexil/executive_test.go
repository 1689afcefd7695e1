package plexil

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// withStubPlexilexec drops a plexilexec stand-in onto PATH and makes
// an empty plan directory next to it.
func withStubPlexilexec(t *testing.T, script string) (planDir string, cleanup func()) {
	t.Helper()
	dir, err := ioutil.TempDir("", "plexil")
	if err != nil {
		t.Fatal(err)
	}
	bin := filepath.Join(dir, "plexilexec")
	if err := ioutil.WriteFile(bin, []byte(script), 0755); err != nil {
		os.RemoveAll(dir)
		t.Fatal(err)
	}

	oldPath := os.Getenv("PATH")
	os.Setenv("PATH", dir+string(os.PathListSeparator)+oldPath)

	planDir = filepath.Join(dir, "plans")
	if err := os.Mkdir(planDir, 0755); err != nil {
		os.Setenv("PATH", oldPath)
		os.RemoveAll(dir)
		t.Fatal(err)
	}
	return planDir, func() {
		os.Setenv("PATH", oldPath)
		os.RemoveAll(dir)
	}
}

func writePlan(t *testing.T, planDir, name string) {
	t.Helper()
	path := filepath.Join(planDir, name)
	if err := ioutil.WriteFile(path, []byte("<PlexilPlan/>\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

func waitFinished(t *testing.T, e *External) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if e.AllPlansFinished() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("plan never finished")
}

func TestExternalRunPlan(t *testing.T) {
	planDir, cleanup := withStubPlexilexec(t, "#!/bin/sh\nexit 0\n")
	defer cleanup()
	writePlan(t, planDir, "Demo.plx")

	e := NewExternal(planDir)
	if err := e.Initialize(""); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if !e.AllPlansFinished() {
		t.Error("fresh executive reports a running plan")
	}

	// Extensionless names resolve to the compiled plan.
	if err := e.RunPlan("Demo"); err != nil {
		t.Fatalf("RunPlan: %v", err)
	}
	waitFinished(t, e)
	if !e.LastPlanSucceeded() {
		t.Error("clean exit reported as a failure")
	}
}

func TestExternalPlanFailure(t *testing.T) {
	planDir, cleanup := withStubPlexilexec(t, "#!/bin/sh\nexit 3\n")
	defer cleanup()
	writePlan(t, planDir, "Broken.plx")

	e := NewExternal(planDir)
	if err := e.RunPlan("Broken.plx"); err != nil {
		t.Fatalf("RunPlan: %v", err)
	}
	waitFinished(t, e)
	if e.LastPlanSucceeded() {
		t.Error("nonzero exit reported as a success")
	}
}

func TestExternalRejectsMissingPlan(t *testing.T) {
	planDir, cleanup := withStubPlexilexec(t, "#!/bin/sh\nexit 0\n")
	defer cleanup()

	e := NewExternal(planDir)
	if err := e.RunPlan("NoSuchPlan"); err == nil {
		t.Error("missing plan accepted")
	}
	if !e.AllPlansFinished() {
		t.Error("failed dispatch left a plan running")
	}
}

func TestExternalOnePlanAtATime(t *testing.T) {
	planDir, cleanup := withStubPlexilexec(t, "#!/bin/sh\nsleep 5\n")
	defer cleanup()
	writePlan(t, planDir, "Slow.plx")

	e := NewExternal(planDir)
	if err := e.RunPlan("Slow"); err != nil {
		t.Fatalf("RunPlan: %v", err)
	}
	if err := e.RunPlan("Slow"); err == nil {
		t.Error("second plan accepted while the first was running")
	}

	if err := e.Shutdown(); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
	waitFinished(t, e)
	if e.LastPlanSucceeded() {
		t.Error("killed plan reported as a success")
	}
}

func TestInitializeWithoutBinary(t *testing.T) {
	dir, err := ioutil.TempDir("", "plexil-empty")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	oldPath := os.Getenv("PATH")
	os.Setenv("PATH", dir)
	defer os.Setenv("PATH", oldPath)

	e := NewExternal(dir)
	if err := e.Initialize(""); err == nil {
		t.Error("missing plexilexec accepted")
	}
}

func TestInitializeMissingConfig(t *testing.T) {
	planDir, cleanup := withStubPlexilexec(t, "#!/bin/sh\nexit 0\n")
	defer cleanup()

	e := NewExternal(planDir)
	if err := e.Initialize("/no/such/config.xml"); err == nil {
		t.Error("missing interface config accepted")
	}
}

func TestDefaultPlanDir(t *testing.T) {
	old := os.Getenv("PLEXIL_PLAN_DIR")
	defer os.Setenv("PLEXIL_PLAN_DIR", old)

	os.Setenv("PLEXIL_PLAN_DIR", "/opt/plans")
	if got := DefaultPlanDir(); got != "/opt/plans" {
		t.Errorf("DefaultPlanDir = %s; want /opt/plans", got)
	}

	os.Unsetenv("PLEXIL_PLAN_DIR")
	if got := DefaultPlanDir(); got != "plans" {
		t.Errorf("DefaultPlanDir = %s; want plans", got)
	}
}
