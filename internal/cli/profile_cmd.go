package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jmallard/compass/internal/cli/formatter"
	"github.com/jmallard/compass/internal/domain"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage your coaching profile",
	}

	cmd.AddCommand(
		newProfileInitCmd(app),
		newProfileShowCmd(app),
	)

	return cmd
}

// profileInput holds the raw form answers before they are parsed into a
// domain profile.
type profileInput struct {
	Role      string
	Years     string
	Industry  string
	Skills    string // "SQL:4, Python:2"
	Interests string // comma-separated
	Goal      string
	GoalKind  domain.GoalType
	Struggle  domain.ChallengeType // empty when nothing is weighing on the user
}

func newProfileInitCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create or replace your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := profileInput{GoalKind: domain.GoalShortTerm}

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Current role").
						Placeholder("Software Engineer").
						Value(&in.Role),
					huh.NewInput().
						Title("Years of experience").
						Placeholder("4").
						Value(&in.Years).
						Validate(validateOptionalInt),
					huh.NewInput().
						Title("Industry (blank if unsure)").
						Value(&in.Industry),
				),
				huh.NewGroup(
					huh.NewInput().
						Title("Skills with level 0-10 (name:level, comma-separated)").
						Placeholder("SQL:4, Python:2").
						Value(&in.Skills),
					huh.NewInput().
						Title("Interests (comma-separated)").
						Placeholder("data, design").
						Value(&in.Interests),
				),
				huh.NewGroup(
					huh.NewInput().
						Title("What are you working toward?").
						Placeholder("Move into data analysis").
						Value(&in.Goal),
					huh.NewSelect[domain.GoalType]().
						Title("Goal horizon").
						Options(
							huh.NewOption("Within a year", domain.GoalShortTerm),
							huh.NewOption("Longer term", domain.GoalLongTerm),
						).
						Value(&in.GoalKind),
					huh.NewSelect[domain.ChallengeType]().
						Title("Anything weighing on you right now?").
						Options(
							huh.NewOption("Nothing in particular", domain.ChallengeType("")),
							huh.NewOption("Unsure of my direction", domain.ChallengeDirection),
							huh.NewOption("Low confidence", domain.ChallengeConfidence),
							huh.NewOption("Feeling overwhelmed", domain.ChallengeOverwhelm),
							huh.NewOption("Stuck where I am", domain.ChallengeStagnation),
						).
						Value(&in.Struggle),
				),
			).WithTheme(compassHuhTheme()).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}

			p := buildProfile(userID, in, time.Now().UTC())
			if err := app.Store.SaveUserProfile(cmd.Context(), p); err != nil {
				return fmt.Errorf("saving profile: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Profile saved for %s\n", userID)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show your stored profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Store.GetUserProfile(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("loading profile: %w", err)
			}
			if p == nil {
				fmt.Fprintf(cmd.OutOrStdout(),
					"No profile yet. Run \"compass profile init --user %s\" to create one.\n", userID)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// buildProfile turns raw form answers into a normalized domain profile.
func buildProfile(userID string, in profileInput, now time.Time) *domain.UserProfile {
	p := &domain.UserProfile{
		UserID: userID,
		Personal: domain.PersonalInfo{
			CurrentRole: strings.TrimSpace(in.Role),
			Industry:    strings.TrimSpace(in.Industry),
		},
	}
	if n, err := strconv.Atoi(strings.TrimSpace(in.Years)); err == nil {
		p.Personal.YearsOfExperience = n
	}
	p.Skills.Current = parseSkills(in.Skills)
	p.Career.Interests = splitCSV(in.Interests)
	if goal := strings.TrimSpace(in.Goal); goal != "" {
		p.Career.Goals = append(p.Career.Goals, domain.Goal{
			ID:          uuid.New().String(),
			Description: goal,
			Type:        in.GoalKind,
			Priority:    5,
		})
	}
	if in.Struggle != "" {
		p.Career.Struggles = append(p.Career.Struggles, domain.Challenge{
			Type:     in.Struggle,
			Severity: 0.5,
		})
	}
	p.NormalizeSkills()
	p.Touch(now)
	return p
}

// parseSkills parses "SQL:4, Python" into skills; a missing or invalid
// level defaults to 1.
func parseSkills(raw string) []domain.Skill {
	var out []domain.Skill
	for _, part := range splitCSV(raw) {
		name, levelStr, found := strings.Cut(part, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		level := 1
		if found {
			if n, err := strconv.Atoi(strings.TrimSpace(levelStr)); err == nil {
				level = n
			}
		}
		out = append(out, domain.Skill{Name: name, Level: domain.ClampSkillLevel(level)})
	}
	return out
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validateOptionalInt accepts blank or a non-negative integer.
func validateOptionalInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}
