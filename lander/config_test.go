package lander

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestApplyJointLimits(t *testing.T) {
	joints := defaultJoints()
	cfg := jointLimitsConfig{Joints: map[string]jointLimitOverride{
		"j_shou_yaw": {Soft: 50, Hard: 70},
	}}

	if err := applyJointLimits(cfg, joints); err != nil {
		t.Fatalf("applyJointLimits: %v", err)
	}
	if got := joints["j_shou_yaw"]; got.soft != 50 || got.hard != 70 {
		t.Errorf("j_shou_yaw limits = %g/%g; want 50/70", got.soft, got.hard)
	}
	if got := joints["j_shou_pitch"]; got.soft != armSoftTorqueLimit || got.hard != armHardTorqueLimit {
		t.Errorf("j_shou_pitch changed without an override: %g/%g", got.soft, got.hard)
	}
}

func TestApplyJointLimitsUnknownJoint(t *testing.T) {
	cfg := jointLimitsConfig{Joints: map[string]jointLimitOverride{
		"j_wheel": {Soft: 10, Hard: 20},
	}}
	if err := applyJointLimits(cfg, defaultJoints()); err == nil {
		t.Error("override for an unknown joint accepted")
	}
}

func TestApplyJointLimitsBadRange(t *testing.T) {
	cases := []jointLimitOverride{
		{Soft: 0, Hard: 10},
		{Soft: -5, Hard: 10},
		{Soft: 20, Hard: 10},
	}
	for _, c := range cases {
		cfg := jointLimitsConfig{Joints: map[string]jointLimitOverride{"j_hand_yaw": c}}
		if err := applyJointLimits(cfg, defaultJoints()); err == nil {
			t.Errorf("limits soft=%g hard=%g accepted", c.Soft, c.Hard)
		}
	}
}

func TestLoadJointLimits(t *testing.T) {
	dir, err := ioutil.TempDir("", "lander-limits")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "limits.yaml")
	data := []byte("joints:\n  j_ant_pan:\n    soft: 10\n    hard: 20\n")
	if err := ioutil.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	joints := defaultJoints()
	if err := loadJointLimits(path, joints); err != nil {
		t.Fatalf("loadJointLimits: %v", err)
	}
	if got := joints["j_ant_pan"]; got.soft != 10 || got.hard != 20 {
		t.Errorf("j_ant_pan limits = %g/%g; want 10/20", got.soft, got.hard)
	}
}

func TestLoadJointLimitsMissingFile(t *testing.T) {
	if err := loadJointLimits("/no/such/limits.yaml", defaultJoints()); err == nil {
		t.Error("missing file did not error")
	}
}

func TestLoadJointLimitsBadYAML(t *testing.T) {
	dir, err := ioutil.TempDir("", "lander-limits")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "limits.yaml")
	if err := ioutil.WriteFile(path, []byte("joints: ["), 0644); err != nil {
		t.Fatal(err)
	}
	if err := loadJointLimits(path, defaultJoints()); err == nil {
		t.Error("malformed file did not error")
	}
}
