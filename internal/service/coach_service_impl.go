package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jmallard/compass/internal/actions"
	"github.com/jmallard/compass/internal/analyzer"
	"github.com/jmallard/compass/internal/contract"
	"github.com/jmallard/compass/internal/conversation"
	"github.com/jmallard/compass/internal/domain"
	"github.com/jmallard/compass/internal/growth"
	"github.com/jmallard/compass/internal/inrole"
	"github.com/jmallard/compass/internal/intent"
	"github.com/jmallard/compass/internal/paths"
	"github.com/jmallard/compass/internal/skills"
	"github.com/jmallard/compass/internal/transition"
)

// Engines bundles the recommendation engines the coach draws on.
type Engines struct {
	Paths      *paths.Engine
	Skills     *skills.Recommender
	Actions    *actions.Generator
	Growth     *growth.Builder
	Transition *transition.Advisor
	InRole     *inrole.Advisor
}

type coachService struct {
	store      Store
	manager    *conversation.Manager
	formatter  *conversation.Formatter
	recognizer *intent.Recognizer
	engines    Engines
	cfg        conversation.Config
	clock      domain.Clock
	validate   *validator.Validate
	observer   UseCaseObserver
}

// NewCoachService wires the conversational entry point.
func NewCoachService(
	store Store,
	manager *conversation.Manager,
	formatter *conversation.Formatter,
	recognizer *intent.Recognizer,
	engines Engines,
	cfg conversation.Config,
	clock domain.Clock,
	observers ...UseCaseObserver,
) CoachService {
	return &coachService{
		store:      store,
		manager:    manager,
		formatter:  formatter,
		recognizer: recognizer,
		engines:    engines,
		cfg:        cfg,
		clock:      clock,
		validate:   validator.New(),
		observer:   useCaseObserverOrNoop(observers),
	}
}

// ProcessRequest runs one conversational turn: classify the message,
// load whatever context is available, run the engines the intent calls
// for, and compose a reply. Storage failures degrade to generic
// coaching; only caller misuse (bad request, unknown session) returns
// an error.
func (c *coachService) ProcessRequest(ctx context.Context, req contract.ChatRequest) (resp *contract.ChatResponse, err error) {
	started := c.clock.Now()
	var intentType domain.IntentType
	defer func() {
		c.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "process_request",
			UserID:    req.UserID,
			Intent:    intentType,
			Duration:  time.Since(started),
			Success:   err == nil,
			Err:       err,
			StartedAt: started,
		})
	}()

	if req.Message == "" {
		return nil, contract.NewChatError(contract.CodeEmptyMessage, "message must not be empty")
	}
	if vErr := c.validate.Struct(req); vErr != nil {
		return nil, contract.NewChatError(contract.CodeInvalidRequest, "invalid request: %v", vErr)
	}

	session, chatErr := c.resolveSession(ctx, req)
	if chatErr != nil {
		return nil, chatErr
	}

	// Profile unavailable is not fatal: engines degrade to generic
	// output on a nil profile.
	profile, pErr := c.store.GetUserProfile(ctx, req.UserID)
	if pErr != nil {
		profile = nil
	}

	in := c.recognizer.Recognize(req.Message)
	intentType = in.Type
	now := c.clock.Now()

	userMsg := domain.Message{Role: domain.RoleUser, Content: req.Message, Timestamp: now}
	session.Append(userMsg)
	session.Context.CurrentIntent = &in

	recs := c.recommend(profile, in)
	ack := c.progressAcknowledgment(ctx, req.UserID, profile, in)
	body := c.formatSafe(recs, ack)
	if in.Type == domain.IntentProfileBuilding {
		body = profilePrompt(profile)
	}
	content := c.manager.ComposeReply(session, profile, in, body)
	if content == "" {
		content = conversation.FallbackMessage
	}

	reply := domain.Message{Role: domain.RoleAssistant, Content: content, Timestamp: c.clock.Now()}
	session.Append(reply)

	// Best effort: a write failure must not cost the user their reply.
	_ = c.store.SaveConversation(ctx, session.ID, []domain.Message{userMsg, reply})
	// A profile record comes into being on the first profile-building
	// turn, not as a side effect of any question.
	if profile == nil && pErr == nil && in.Type == domain.IntentProfileBuilding {
		_ = c.store.SaveUserProfile(ctx, &domain.UserProfile{UserID: req.UserID})
	}

	if recs.Empty() {
		recs = nil
	}
	return &contract.ChatResponse{
		Content:         content,
		SessionID:       session.ID,
		Timestamp:       reply.Timestamp,
		Intent:          in,
		Recommendations: recs,
	}, nil
}

// CompleteAction records a completed action step and returns a short
// acknowledgment.
func (c *coachService) CompleteAction(ctx context.Context, userID, actionID string) (string, error) {
	if err := c.store.TrackActionCompletion(ctx, userID, actionID); err != nil {
		return "", fmt.Errorf("tracking action completion: %w", err)
	}
	profile, err := c.store.GetUserProfile(ctx, userID)
	if err != nil || profile == nil {
		profile = &domain.UserProfile{UserID: userID}
	}
	done := []domain.ActionStep{{ID: actionID, Category: domain.CategoryApplication, Completed: true}}
	return actions.GenerateProgressAcknowledgment(done, profile), nil
}

// EndSession persists nothing further and drops the live session.
func (c *coachService) EndSession(ctx context.Context, sessionID string) error {
	if _, ok := c.manager.Resume(sessionID); !ok {
		return contract.NewChatError(contract.CodeSessionNotFound, "unknown session %q", sessionID)
	}
	c.manager.EndSession(sessionID)
	return nil
}

func (c *coachService) resolveSession(ctx context.Context, req contract.ChatRequest) (*domain.Session, *contract.ChatError) {
	if req.SessionID != "" {
		s, ok := c.manager.Resume(req.SessionID)
		if !ok {
			return nil, contract.NewChatError(contract.CodeSessionNotFound, "unknown session %q", req.SessionID)
		}
		return s, nil
	}

	s := c.manager.StartSession(req.UserID)
	// Association failures degrade to an unpersisted session.
	_ = c.store.AssociateSessionWithUser(ctx, s.ID, req.UserID)
	return s, nil
}

// recommend maps the classified intent onto engines. Each engine runs
// behind a recover barrier: one misbehaving engine costs its own field,
// never the turn.
func (c *coachService) recommend(p *domain.UserProfile, in domain.Intent) *contract.RecommendationSet {
	set := &contract.RecommendationSet{}

	switch in.Type {
	case domain.IntentCareerClarity:
		set.CareerPaths = c.safePaths(p)

	case domain.IntentSkillGuidance:
		set.Skills = c.safeSkills(p, currentPath(p))
		if len(set.Skills) == 0 {
			set.CareerPaths = c.safePaths(p)
		}

	case domain.IntentActionPlanning:
		path := currentPath(p)
		recs := c.safeSkills(p, path)
		set.Actions = c.safeActions(p, path, recs)

	case domain.IntentGrowthPlanning:
		candidates := c.safePaths(p)
		if len(candidates) > 0 {
			set.GrowthPlan = c.safeGrowth(p, candidates[0])
		}

	case domain.IntentTransitionGuidance:
		if target := targetField(p, in); target != "" {
			set.Transition = c.safeTransition(sourceField(p), target, p)
		}
		if set.Transition == nil {
			set.CareerPaths = c.safePaths(p)
		}

	case domain.IntentProgressCheck:
		set.InRole = c.safeInRole(p)

	case domain.IntentMindsetSupport:
		// Mindset turns lead with validation; a light set of paths
		// gives the follow-up question something concrete.
		set.CareerPaths = c.safePaths(p)

	default: // profile_building
		// No engine output; the reply asks for what's missing.
	}

	return set
}

// progressAcknowledgment checks for completions since the last profile
// update and produces the returning-user note.
func (c *coachService) progressAcknowledgment(ctx context.Context, userID string, p *domain.UserProfile, in domain.Intent) string {
	if p == nil {
		return ""
	}
	if in.Type != domain.IntentProgressCheck && len(p.Progress.CompletedActions) == 0 {
		return ""
	}

	events, err := c.store.GetProgressHistory(ctx, userID)
	if err != nil {
		return ""
	}
	window := analyzer.Window{
		Start: c.clock.Now().AddDate(0, 0, -c.cfg.RecentUpdateDays),
		End:   c.clock.Now(),
	}
	report := analyzer.TrackProgress(p, events, window)
	if report.CompletedActions == 0 {
		return ""
	}

	recent := make([]domain.ActionStep, report.CompletedActions)
	for i := range recent {
		recent[i] = domain.ActionStep{Category: domain.CategoryApplication, Completed: true}
	}
	return actions.GenerateProgressAcknowledgment(recent, p)
}

// formatSafe guards against formatting panics with the generic message.
func (c *coachService) formatSafe(recs *contract.RecommendationSet, ack string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = conversation.FallbackMessage
		}
	}()
	return c.formatter.Format(recs, ack)
}

func (c *coachService) safePaths(p *domain.UserProfile) (out []domain.CareerPath) {
	defer func() { recover() }()
	return paths.IdentifyTradeOffs(c.engines.Paths.GeneratePaths(p))
}

func (c *coachService) safeSkills(p *domain.UserProfile, path *domain.CareerPath) (out []domain.SkillRecommendation) {
	defer func() { recover() }()
	return c.engines.Skills.RecommendSkills(p, path)
}

func (c *coachService) safeActions(p *domain.UserProfile, path *domain.CareerPath, recs []domain.SkillRecommendation) (out []domain.ActionStep) {
	defer func() { recover() }()
	var goals []domain.Goal
	if p != nil {
		goals = p.Career.Goals
	}
	return c.engines.Actions.GenerateActionSteps(p, goals, path, recs)
}

func (c *coachService) safeGrowth(p *domain.UserProfile, path domain.CareerPath) (out *domain.GrowthPlan) {
	defer func() { recover() }()
	plan := c.engines.Growth.BuildGrowthPlan(p, path)
	return &plan
}

func (c *coachService) safeTransition(source, target string, p *domain.UserProfile) (out *domain.TransitionPlan) {
	defer func() { recover() }()
	plan := c.engines.Transition.GenerateTransitionPlan(source, target, p)
	return &plan
}

func (c *coachService) safeInRole(p *domain.UserProfile) (out *domain.InRoleAnalysis) {
	defer func() { recover() }()
	analysis := c.engines.InRole.AnalyzeInRoleGrowth(p)
	return &analysis
}

// profilePrompt asks for whatever the profile is still missing.
func profilePrompt(p *domain.UserProfile) string {
	completeness := analyzer.CheckProfileCompleteness(p)
	if completeness.IsComplete {
		return "Thanks — I have a good picture of where you are. What would you like to work on: direction, skills, or a concrete plan?"
	}

	questions := map[string]string{
		"currentRole": "What role are you in right now?",
		"goals":       "What's one career goal you'd like to work toward?",
		"interests":   "What kinds of work genuinely interest you?",
		"struggles":   "What's the biggest thing you're wrestling with at the moment?",
	}
	for _, field := range completeness.MissingFields {
		if q, ok := questions[field]; ok {
			return "To give you useful guidance I'd like to know a bit more. " + q
		}
	}
	return conversation.FallbackMessage
}

func currentPath(p *domain.UserProfile) *domain.CareerPath {
	if p == nil {
		return nil
	}
	return p.Career.CurrentPath
}

func sourceField(p *domain.UserProfile) string {
	if p == nil {
		return ""
	}
	if p.Personal.Industry != "" {
		return p.Personal.Industry
	}
	return p.Personal.CurrentRole
}

// targetField prefers an explicitly mentioned field, then the user's
// leading interest.
func targetField(p *domain.UserProfile, in domain.Intent) string {
	if len(in.Entities.CareerFields) > 0 {
		return in.Entities.CareerFields[0]
	}
	if p != nil && len(p.Career.Interests) > 0 {
		return p.Career.Interests[0]
	}
	return ""
}
