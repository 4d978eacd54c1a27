package domain

type TransferableSkill struct {
	Name            string
	Level           int
	Transferability float64 // [0,1]
	Reasoning       string
}

type SkillToAcquire struct {
	Name      string
	Reasoning string
}

type TransitionPhase struct {
	Name            string
	Duration        string
	Focus           string
	Actions         []string
	SuccessCriteria []string
}

type TransitionPlan struct {
	SourceField        string
	TargetField        string
	TransferableSkills []TransferableSkill
	SkillsToAcquire    []SkillToAcquire
	Phases             []TransitionPhase
	EstimatedDuration  string // ±3-month range, e.g. "9-15 months"
	Difficulty         DifficultyLevel
	Risks              []string
	SuccessFactors     []string
}
