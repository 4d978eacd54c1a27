package domain

type GoalType string

const (
	GoalShortTerm GoalType = "short_term"
	GoalLongTerm  GoalType = "long_term"
)

type ChallengeType string

const (
	ChallengeDirection  ChallengeType = "direction"
	ChallengeSkills     ChallengeType = "skills"
	ChallengeConfidence ChallengeType = "confidence"
	ChallengeOverwhelm  ChallengeType = "overwhelm"
	ChallengeTransition ChallengeType = "transition"
	ChallengeStagnation ChallengeType = "stagnation"
)

type IntentType string

const (
	IntentProfileBuilding    IntentType = "profile_building"
	IntentCareerClarity      IntentType = "career_clarity"
	IntentSkillGuidance      IntentType = "skill_guidance"
	IntentActionPlanning     IntentType = "action_planning"
	IntentMindsetSupport     IntentType = "mindset_support"
	IntentGrowthPlanning     IntentType = "growth_planning"
	IntentTransitionGuidance IntentType = "transition_guidance"
	IntentProgressCheck      IntentType = "progress_check"
)

type Timeframe string

const (
	TimeframeToday     Timeframe = "today"
	TimeframeThisWeek  Timeframe = "this_week"
	TimeframeThisMonth Timeframe = "this_month"
)

type ActionCategory string

const (
	CategoryLearning    ActionCategory = "learning"
	CategoryNetworking  ActionCategory = "networking"
	CategoryApplication ActionCategory = "application"
	CategoryReflection  ActionCategory = "reflection"
)

type DifficultyLevel string

const (
	DifficultyEasy        DifficultyLevel = "easy"
	DifficultyModerate    DifficultyLevel = "moderate"
	DifficultyChallenging DifficultyLevel = "challenging"
)

type CareerStage string

const (
	StageEarly  CareerStage = "early"
	StageMid    CareerStage = "mid"
	StageSenior CareerStage = "senior"
)

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ValidChallengeTypes is the canonical set of accepted challenge type
// strings. Stored profile documents are filtered against it on load.
var ValidChallengeTypes = map[string]bool{
	"direction": true, "skills": true, "confidence": true,
	"overwhelm": true, "transition": true, "stagnation": true,
}
