package domain

// EmotionalSignal captures emotional-content detection output for a message.
type EmotionalSignal struct {
	HasEmotionalContent bool
	Indicators          []string
	Severity            float64 // [0,1]
}

// TimeHorizon is an extracted time reference. Months is set for
// "N months" / "N years" phrases; Ref covers the fixed buckets.
type TimeHorizon struct {
	Ref    Timeframe
	Months int
}

// Entities holds everything extracted from a message. Each field is only
// populated when the corresponding pattern matched.
type Entities struct {
	Skills            []string
	CareerFields      []string
	Timeframe         *TimeHorizon
	YearsOfExperience *int
	Emotional         *EmotionalSignal
}

type Intent struct {
	Type       IntentType
	Confidence float64 // [0,1]
	Entities   Entities
}
