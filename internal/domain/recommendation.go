package domain

import "time"

type CareerPath struct {
	ID               string
	Title            string
	Description      string
	Reasoning        string // non-empty, ends with terminal punctuation
	FitScore         float64
	RequiredSkills   []string
	TimeToTransition string // range string, e.g. "6-12 months"
	GrowthPotential  float64
}

type SkillRecommendation struct {
	Skill             string
	Priority          float64
	Reasoning         string
	LearningResources []string
	EstimatedTime     string
	Dependencies      []string
	CurrentLevel      int
	TargetLevel       int
}

type ActionStep struct {
	ID          string
	Description string
	Timeframe   Timeframe
	Category    ActionCategory
	Completed   bool
	DueDate     *time.Time
}
