package types

// StressWindow is a named closed date interval, typically a historical
// market crisis.
type StressWindow struct {
	Name  string
	Start Day
	End   Day
}

// StressReport is the drawdown outcome of one stress window. A nil figure
// means the window had fewer than 2 simulated samples, so the drawdown is
// undefined rather than zero.
type StressReport struct {
	Window    StressWindow
	Portfolio *float64
	Benchmark *float64
}
