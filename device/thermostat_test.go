package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stxent/vfsshell/errkind"
)

func TestThermostatStartsAtTwentyDegrees(t *testing.T) {
	therm := NewThermostat()
	temp, kind := therm.GetParameter("temperature")
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, int64(20), temp)
}

func TestThermostatStepsTowardSetpointOneDegreePerWrite(t *testing.T) {
	therm := NewThermostat()
	require.Equal(t, errkind.Ok, therm.SetParameter("setpoint", 25))
	temp, _ := therm.GetParameter("temperature")
	assert.Equal(t, int64(21), temp)

	for i := 0; i < 10; i++ {
		require.Equal(t, errkind.Ok, therm.SetParameter("setpoint", 25))
	}
	temp, _ = therm.GetParameter("temperature")
	assert.Equal(t, int64(25), temp)
}

func TestThermostatStepsDownwardTowardLowerSetpoint(t *testing.T) {
	therm := NewThermostat()
	require.Equal(t, errkind.Ok, therm.SetParameter("setpoint", 10))
	for i := 0; i < 15; i++ {
		therm.SetParameter("setpoint", 10)
	}
	temp, _ := therm.GetParameter("temperature")
	assert.Equal(t, int64(10), temp)
}

func TestThermostatTemperatureIsReadOnly(t *testing.T) {
	therm := NewThermostat()
	assert.Equal(t, errkind.Access, therm.SetParameter("temperature", 99))
}

func TestThermostatUnknownParameterFails(t *testing.T) {
	therm := NewThermostat()
	_, kind := therm.GetParameter("humidity")
	assert.Equal(t, errkind.Invalid, kind)
	assert.Equal(t, errkind.Invalid, therm.SetParameter("humidity", 1))
}

func TestThermostatNodeExposesBothParameters(t *testing.T) {
	node := NewThermostat().Node("thermostat")
	require.Equal(t, "thermostat", node.Name())

	cur, kind := node.Head()
	require.Equal(t, errkind.Ok, kind)
	names := []string{cur.Node.Name()}
	for {
		cur, kind = node.Fetch(cur)
		if kind != errkind.Ok {
			break
		}
		names = append(names, cur.Node.Name())
	}
	assert.ElementsMatch(t, []string{"temperature", "setpoint"}, names)
}
