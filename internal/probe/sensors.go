package probe

import (
	"context"

	"github.com/shirou/gopsutil/v4/sensors"

	"github.com/rileyhilliard/sysview/internal/errors"
	"github.com/rileyhilliard/sysview/internal/snapshot"
)

// Sensors reads every thermal sensor. Some platforms return readings
// together with warnings for sensors they could not read; the readings are
// kept.
func (h *Host) Sensors(ctx context.Context) (snapshot.SensorInfo, error) {
	temps, err := sensors.TemperaturesWithContext(ctx)
	if err != nil {
		if len(temps) == 0 {
			return snapshot.SensorInfo{}, errors.Wrap(err, "Cannot read temperature sensors")
		}
		h.log.Debug("partial sensor readings: %v", err)
	}
	return snapshot.SensorInfo{Components: components(temps)}, nil
}

func components(temps []sensors.TemperatureStat) []snapshot.Component {
	out := make([]snapshot.Component, 0, len(temps))
	for _, t := range temps {
		out = append(out, snapshot.Component{
			Label:        t.SensorKey,
			TemperatureC: t.Temperature,
			MaxC:         t.High,
			CriticalC:    t.Critical,
		})
	}
	return out
}
