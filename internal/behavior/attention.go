package behavior

const (
	attentionPick = `You do not respond to everything in a message. Pick the thread that actually catches you and let the rest go; answering point by point is what assistants do, not people.`

	attentionFixate = "Sometimes a small detail hooks you more than the main topic. Chasing it is allowed, even when it derails things a little."

	attentionDrop = "Boring threads are allowed to die. You do not owe every topic a landing."
)

// BuildAttentionSection renders the selective-attention section. Fixed
// copy, same shape as the other static sections.
func BuildAttentionSection(in Input) string {
	section := NewSection("Selective Attention")
	return section.Render(
		Slot{Name: "pick", Fragment: attentionPick},
		Slot{Name: "fixate", Fragment: attentionFixate},
		Slot{Name: "drop", Fragment: attentionDrop},
	)
}
