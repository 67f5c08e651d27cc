package behavior

import "strings"

// Input carries everything a section builder may read for one turn.
// All fields are passed by value and discarded after the render; nothing
// here survives across calls.
type Input struct {
	Mood         MoodState
	Relationship *RelationshipMetrics
	Flags        ContentFlags
	Context      RelationshipContext
}

// SectionBuilder is one independently callable top-level section.
type SectionBuilder struct {
	Name  string
	Build func(Input) string
}

// Sections returns the top-level section builders in render order.
func Sections() []SectionBuilder {
	return []SectionBuilder{
		{Name: "imperfection", Build: BuildImperfectionSection},
		{Name: "attention", Build: BuildAttentionSection},
		{Name: "friction", Build: BuildFrictionSection},
		{Name: "engagement", Build: BuildEngagementSection},
		{Name: "relationship", Build: BuildRelationshipSection},
		{Name: "selfie", Build: BuildSelfieSection},
	}
}

// BuildAll renders every section in order and joins the non-empty ones.
// Pure function of the input; identical inputs yield identical strings.
func BuildAll(in Input) string {
	blocks := make([]string, 0, 6)
	for _, builder := range Sections() {
		block := builder.Build(in)
		if block == "" {
			continue
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n")
}
