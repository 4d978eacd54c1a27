package domain

import "time"

// PlanAction is an action inside a growth-plan phase. Objective links the
// action back to one of the phase's objectives and is never empty.
type PlanAction struct {
	ID          string
	Description string
	Objective   string
	DueDate     time.Time
	Completed   bool
}

type Phase struct {
	Name       string
	Duration   string // e.g. "3 months"
	Objectives []string
	Skills     []string
	Actions    []PlanAction
}

type GrowthPlan struct {
	ID          string
	UserID      string
	CareerPath  CareerPath
	Timeline    string
	Phases      []Phase
	Milestones  []Milestone // each targetDate 3-12 months from CreatedAt
	CreatedAt   time.Time
	LastUpdated time.Time
}
