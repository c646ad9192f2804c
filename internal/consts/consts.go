package consts

const (
	DefaultTolerance = 0.6 // Terminal merge radius (board units)

	DefaultResistorOhms = 100.0
	DefaultLampOhms     = 10.0
	DefaultBatteryVolts = 9.0

	DiodeDropVolts  = 0.7
	DiodeSeriesOhms = 10.0
	LedDropVolts    = 2.0
	LedSeriesOhms   = 50.0

	ReverseBiasVolts = -0.01 // Polarity issue threshold
	FlowMinAmps      = 1e-6  // Animation gate threshold
)
