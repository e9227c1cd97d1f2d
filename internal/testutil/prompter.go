package testutil

import (
	"io"
	"strings"
)

// ScriptedPrompter answers prompts from a fixed list and returns io.EOF once
// the list is exhausted.
type ScriptedPrompter struct {
	Answers []string
	Asked   []string
}

func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{Answers: answers}
}

func (p *ScriptedPrompter) Ask(label, def string) (string, error) {
	p.Asked = append(p.Asked, label)
	if len(p.Answers) == 0 {
		return "", io.EOF
	}
	answer := strings.TrimSpace(p.Answers[0])
	p.Answers = p.Answers[1:]
	if answer == "" {
		return def, nil
	}
	return answer, nil
}
