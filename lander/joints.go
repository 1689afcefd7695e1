package lander

import "math"

// Degree/radian conversion factors. Plans speak degrees, the position
// controllers speak radians.
const (
	d2r = math.Pi / 180.0
	r2d = 180.0 / math.Pi
)

// Default torque limits in newton-meters. Only the magnitude of the
// reported effort is compared against them.
const (
	armSoftTorqueLimit     = 60.0
	armHardTorqueLimit     = 80.0
	antennaSoftTorqueLimit = 30.0
	antennaHardTorqueLimit = 30.0
)

// jointInfo ties a /joint_states name to the name the plan executive
// uses for the joint and to its torque limits.
type jointInfo struct {
	plexilName string
	soft       float64
	hard       float64
}

// jointTelemetry is the last reported state of one joint.
type jointTelemetry struct {
	position float64
	velocity float64
	effort   float64
}

// defaultJoints returns a fresh joint table so per-interface limit
// overrides never touch a shared copy.
func defaultJoints() map[string]jointInfo {
	return map[string]jointInfo{
		"j_shou_yaw":   {"ShoulderYaw", armSoftTorqueLimit, armHardTorqueLimit},
		"j_shou_pitch": {"ShoulderPitch", armSoftTorqueLimit, armHardTorqueLimit},
		"j_prox_pitch": {"ProximalPitch", armSoftTorqueLimit, armHardTorqueLimit},
		"j_dist_pitch": {"DistalPitch", armSoftTorqueLimit, armHardTorqueLimit},
		"j_hand_yaw":   {"HandYaw", armSoftTorqueLimit, armHardTorqueLimit},
		"j_scoop_yaw":  {"ScoopYaw", armSoftTorqueLimit, armHardTorqueLimit},
		"j_ant_pan":    {"AntennaPan", antennaSoftTorqueLimit, antennaHardTorqueLimit},
		"j_ant_tilt":   {"AntennaTilt", antennaSoftTorqueLimit, antennaHardTorqueLimit},
	}
}

// checkTorque latches the joint into the limit sets. A joint at the
// hard limit stays latched until its torque falls back below the soft
// limit.
func (iface *Interface) checkTorque(info jointInfo, effort float64) {
	torque := math.Abs(effort)

	iface.faultMutex.Lock()
	defer iface.faultMutex.Unlock()
	switch {
	case torque >= info.hard:
		iface.hardTorque[info.plexilName] = struct{}{}
	case torque >= info.soft:
		iface.softTorque[info.plexilName] = struct{}{}
	default:
		delete(iface.hardTorque, info.plexilName)
		delete(iface.softTorque, info.plexilName)
	}
}

// HardTorqueLimitReached reports whether the named joint is at or past
// its hard torque limit.
func (iface *Interface) HardTorqueLimitReached(jointName string) bool {
	iface.faultMutex.Lock()
	defer iface.faultMutex.Unlock()
	_, ok := iface.hardTorque[jointName]
	return ok
}

// SoftTorqueLimitReached reports whether the named joint is at or past
// its soft torque limit.
func (iface *Interface) SoftTorqueLimitReached(jointName string) bool {
	iface.faultMutex.Lock()
	defer iface.faultMutex.Unlock()
	_, ok := iface.softTorque[jointName]
	return ok
}
