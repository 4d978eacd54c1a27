// Package knowledge holds the static lookup tables the recommendation
// engines consume: career path templates, per-skill learning metadata, and
// field profiles. Tables are parsed once from embedded YAML and treated as
// immutable after construction; engines receive a *Base, never globals.
package knowledge

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/paths.yaml data/skills.yaml data/fields.yaml
var dataFS embed.FS

// PathTemplate describes one candidate career path.
type PathTemplate struct {
	ID               string   `yaml:"id"`
	Title            string   `yaml:"title"`
	Description      string   `yaml:"description"`
	Keywords         []string `yaml:"keywords"`
	RelatedSkills    []string `yaml:"related_skills"`
	RequiredSkills   []string `yaml:"required_skills"`
	GrowthPotential  float64  `yaml:"growth_potential"`
	TimeToTransition string   `yaml:"time_to_transition"`
	Industries       []string `yaml:"industries"`
}

// SkillMeta carries learning metadata for one skill.
type SkillMeta struct {
	Name               string   `yaml:"name"`
	Category           string   `yaml:"category"`
	Dependencies       []string `yaml:"dependencies"`
	BaseLearningMonths int      `yaml:"base_learning_months"`
	Impact             float64  `yaml:"impact"`
	Resources          []string `yaml:"resources"`
}

// FieldMeta describes a career field for transition planning.
type FieldMeta struct {
	Name         string   `yaml:"name"`
	CoreSkills   []string `yaml:"core_skills"`
	TypicalRoles []string `yaml:"typical_roles"`
}

type Base struct {
	Paths           []PathTemplate
	UniversalSkills []string

	skills map[string]SkillMeta
	fields map[string]FieldMeta
}

type skillsFile struct {
	Universal []string    `yaml:"universal"`
	Skills    []SkillMeta `yaml:"skills"`
}

type fieldsFile struct {
	Fields []FieldMeta `yaml:"fields"`
}

type pathsFile struct {
	Paths []PathTemplate `yaml:"paths"`
}

// Load parses the embedded tables into an immutable Base.
func Load() (*Base, error) {
	var pf pathsFile
	if err := decode("data/paths.yaml", &pf); err != nil {
		return nil, err
	}
	var sf skillsFile
	if err := decode("data/skills.yaml", &sf); err != nil {
		return nil, err
	}
	var ff fieldsFile
	if err := decode("data/fields.yaml", &ff); err != nil {
		return nil, err
	}

	b := &Base{
		Paths:           pf.Paths,
		UniversalSkills: sf.Universal,
		skills:          make(map[string]SkillMeta, len(sf.Skills)),
		fields:          make(map[string]FieldMeta, len(ff.Fields)),
	}
	for _, s := range sf.Skills {
		b.skills[strings.ToLower(s.Name)] = s
	}
	for _, f := range ff.Fields {
		b.fields[strings.ToLower(f.Name)] = f
	}
	return b, nil
}

// MustLoad panics on a malformed embedded table. Embedded data is fixed at
// build time, so a failure here is a programming error.
func MustLoad() *Base {
	b, err := Load()
	if err != nil {
		panic(err)
	}
	return b
}

func decode(path string, out any) error {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Skill returns metadata for a named skill, falling back to generic
// metadata when the skill is unknown. The bool reports a table hit.
func (b *Base) Skill(name string) (SkillMeta, bool) {
	if m, ok := b.skills[strings.ToLower(name)]; ok {
		return m, true
	}
	return GenericSkill(name), false
}

// Field returns metadata for a named field, falling back to a generic
// field profile when unrecognized. The bool reports a table hit.
func (b *Base) Field(name string) (FieldMeta, bool) {
	if m, ok := b.fields[strings.ToLower(name)]; ok {
		return m, true
	}
	return GenericField(name), false
}

// IsUniversalSkill reports whether the skill transfers across fields
// (communication, leadership, and friends).
func (b *Base) IsUniversalSkill(name string) bool {
	for _, u := range b.UniversalSkills {
		if strings.EqualFold(u, name) {
			return true
		}
	}
	return false
}

// SkillNames returns the canonical names of all skills in the table.
func (b *Base) SkillNames() []string {
	names := make([]string, 0, len(b.skills))
	for _, m := range b.skills {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names
}

// FieldNames returns the canonical names of all fields in the table.
func (b *Base) FieldNames() []string {
	names := make([]string, 0, len(b.fields))
	for _, m := range b.fields {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names
}

// GenericSkill is the fallback metadata for skills absent from the table.
func GenericSkill(name string) SkillMeta {
	return SkillMeta{
		Name:               name,
		Category:           "general",
		BaseLearningMonths: 3,
		Impact:             0.5,
		Resources:          []string{"Online courses", "Practice projects", "Community forums"},
	}
}

// GenericField is the fallback profile for unrecognized fields.
func GenericField(name string) FieldMeta {
	return FieldMeta{
		Name:         name,
		CoreSkills:   []string{"Communication", "Problem Solving", "Project Management"},
		TypicalRoles: []string{"Specialist", "Coordinator", "Manager"},
	}
}
