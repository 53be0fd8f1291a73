package grader

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a strict vocabulary examiner grading a learner's definition of a word.

Rules:
- Judge only whether the definition captures the meaning of the word as the given part of speech.
- The learner writes from memory, so wording may be informal. Synonyms, paraphrases, and terse glosses are acceptable when they pin down the right meaning.
- A definition that is vague, circular, or matches a different word or sense is incorrect.
- A partially right definition that misses the core meaning is incorrect. Do not give credit for being close.
- Spelling and grammar mistakes in the definition do not matter.
- Respond with the verdict "correct" or "incorrect" and nothing else.`

// buildUserPrompt formats one definition for grading.
func buildUserPrompt(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Word: %s\n", in.Word)
	if in.PartOfSpeech != "" {
		fmt.Fprintf(&b, "Part of speech: %s\n", in.PartOfSpeech)
	}
	fmt.Fprintf(&b, "Learner's definition: %s\n", strings.TrimSpace(in.Definition))

	return b.String()
}
