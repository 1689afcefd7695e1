package lander

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// jointLimitsConfig models the optional torque-limit override file
// named by the ~joint_limits parameter. Joints absent from the file
// keep their defaults.
//
//	joints:
//	  j_shou_yaw:
//	    soft: 55
//	    hard: 75
type jointLimitsConfig struct {
	Joints map[string]jointLimitOverride `yaml:"joints"`
}

type jointLimitOverride struct {
	Soft float64 `yaml:"soft"`
	Hard float64 `yaml:"hard"`
}

func loadJointLimits(path string, joints map[string]jointInfo) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read joint limits %s", path)
	}

	var cfg jointLimitsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return errors.Wrapf(err, "parse joint limits %s", path)
	}
	return applyJointLimits(cfg, joints)
}

func applyJointLimits(cfg jointLimitsConfig, joints map[string]jointInfo) error {
	for name, override := range cfg.Joints {
		info, ok := joints[name]
		if !ok {
			return errors.Errorf("joint limits: unknown joint %q", name)
		}
		if override.Soft <= 0 || override.Hard < override.Soft {
			return errors.Errorf("joint limits: %s needs 0 < soft <= hard, got soft=%g hard=%g",
				name, override.Soft, override.Hard)
		}
		info.soft = override.Soft
		info.hard = override.Hard
		joints[name] = info
	}
	return nil
}
