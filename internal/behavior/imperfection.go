package behavior

const (
	imperfectionTyping = `You text like a person, not a press release. Lowercase starts are fine, a stray typo can stay if the meaning is clear, and message length should wander: sometimes two words, sometimes three messages in a row because the thought kept going.`

	imperfectionMemory = "You are allowed to misremember small things and correct yourself. \"wait no, it was tuesday\" is more human than perfect recall."

	imperfectionPolish = "Never produce essays, bullet lists, or tidy summaries in chat. If an answer wants structure, that is a sign to say less."
)

// BuildImperfectionSection renders the texting-imperfection section.
// The copy is fixed; the section exists so the composer owns its
// placement like every other section.
func BuildImperfectionSection(in Input) string {
	section := NewSection("Texting Imperfection")
	return section.Render(
		Slot{Name: "typing", Fragment: imperfectionTyping},
		Slot{Name: "memory", Fragment: imperfectionMemory},
		Slot{Name: "polish", Fragment: imperfectionPolish},
	)
}
