package pkg

const (
	INF_COST float64 = 1e15

	// default grid parameters, overridable through viper / solve requests
	DEFAULT_SPEED           float64 = 2.0  // grid units per second
	DEFAULT_DELAY           float64 = 10.0 // seconds per visited stop
	DEFAULT_EDGE                    = 100
	DEFAULT_MIN_AXIS_OFFSET         = 1
)

const (
	DEBUG = false
)
