package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-test-prep/internal/testsession"
	"github.com/MKhiriev/go-test-prep/models"
)

func questionTypeLabel(t models.QuestionType) string {
	switch t {
	case models.MultipleChoice:
		return "choose all that apply"
	case models.SingleChoice:
		return "choose one"
	case models.TextQuestion:
		return "type your answer"
	case models.CodeQuestion:
		return "write code"
	default:
		return "unknown"
	}
}

// shownSelection is the draft selection, or the recorded one when the draft
// is empty and the question was already answered.
func shownSelection(st testsession.UIState, q models.Question) []int {
	if len(st.Draft.SelectedOptions) > 0 {
		return st.Draft.SelectedOptions
	}
	if st.Session == nil {
		return nil
	}
	if a, ok := st.Session.Answers[q.ID]; ok {
		return a.SelectedOptions
	}
	return nil
}

func renderOptions(b *strings.Builder, st testsession.UIState, q models.Question, cursor int) {
	selected := shownSelection(st, q)
	for i, option := range q.Options {
		mark := "[ ]"
		if q.Type == models.SingleChoice {
			mark = "( )"
		}
		if slices.Contains(selected, i) {
			mark = "[x]"
			if q.Type == models.SingleChoice {
				mark = "(•)"
			}
		}

		line := fmt.Sprintf("%s %s %c) %s", cursorMark(i == cursor), mark, 'a'+rune(i%26), option)
		if i == cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}

func renderVerdict(b *strings.Builder, st testsession.UIState, q models.Question) {
	if !st.IsAnswered(q.ID) {
		return
	}

	b.WriteString("\n")
	correct, graded := st.Correctness[q.ID]
	switch {
	case !graded:
		b.WriteString(pendingStyle.Render("Answer saved, waiting for review"))
	case correct:
		b.WriteString(correctStyle.Render("Correct"))
	default:
		b.WriteString(incorrectStyle.Render("Incorrect"))
	}
	b.WriteString("\n")

	reveal, ok := st.Revealed[q.ID]
	if !ok {
		return
	}
	if reveal.Feedback != "" {
		b.WriteString("Feedback: ")
		b.WriteString(reveal.Feedback)
		b.WriteString("\n")
	}
	if reveal.Explanation != "" {
		b.WriteString("Explanation: ")
		b.WriteString(reveal.Explanation)
		b.WriteString("\n")
	}
}

// recordedText returns the submitted free-form answer for q, if any.
func recordedText(st testsession.UIState, q models.Question) (string, bool) {
	if st.Session == nil {
		return "", false
	}
	a, ok := st.Session.Answers[q.ID]
	if !ok {
		return "", false
	}
	switch {
	case a.TextAnswer != nil:
		return *a.TextAnswer, true
	case a.CodeAnswer != nil:
		return *a.CodeAnswer, true
	default:
		return "", false
	}
}
