// Package device supplies one concrete vfs.ExternalInterface (§3, §4.6),
// standing in for the original firmware's ADC/DAC/pin peripherals without
// importing any actual hardware-specific node (an explicit Non-goal).
package device

import (
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/vfs"
)

// Thermostat is a sample device exposing two parameters behind the
// device-parameter node machinery: "temperature" (read-only, simulated)
// and "setpoint" (read-write, drives the simulation), grounded on the
// original's InterfaceParameters contract (get/set by named kind).
type Thermostat struct {
	setpoint    int64
	temperature int64
}

// NewThermostat constructs a thermostat starting at 20 degrees with a
// setpoint equal to its starting temperature.
func NewThermostat() *Thermostat {
	return &Thermostat{setpoint: 20, temperature: 20}
}

// GetParameter implements vfs.ExternalInterface.
func (t *Thermostat) GetParameter(kind string) (int64, errkind.Kind) {
	switch kind {
	case "temperature":
		return t.temperature, errkind.Ok
	case "setpoint":
		return t.setpoint, errkind.Ok
	default:
		return 0, errkind.Invalid
	}
}

// SetParameter implements vfs.ExternalInterface. "temperature" is
// read-only; writing it fails Access.
func (t *Thermostat) SetParameter(kind string, value int64) errkind.Kind {
	switch kind {
	case "setpoint":
		t.setpoint = value
		t.step()
		return errkind.Ok
	case "temperature":
		return errkind.Access
	default:
		return errkind.Invalid
	}
}

// step nudges the simulated temperature one degree toward the setpoint,
// standing in for a hardware control loop tick the original runs on a
// timer interrupt.
func (t *Thermostat) step() {
	switch {
	case t.temperature < t.setpoint:
		t.temperature++
	case t.temperature > t.setpoint:
		t.temperature--
	}
}

// Node builds the vfs.Device exposing this thermostat's parameters under
// name, for mounting under /dev.
func (t *Thermostat) Node(name string) *vfs.Device {
	return vfs.NewDevice(name, t, []string{"temperature", "setpoint"})
}
