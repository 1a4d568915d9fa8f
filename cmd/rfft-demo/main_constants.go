package main

// Default command-line flag values
const (
	defaultSignalLen = 128 // Samples in the ramp test signal
	defaultWarpSize  = 0   // Zero uses the device warp size
	defaultDevice    = 0
)

// Input sources
const (
	inputRamp = "ramp"
	inputSine = "sine"
)

const defaultSineCycles = 4.0 // Periods of the sine test signal
