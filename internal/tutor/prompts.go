package tutor

import (
	"fmt"
	"strings"
)

// NextObjectivePrefix starts the transition message appended after an
// objective is completed. The teaching phase also uses it to recognize
// that the conversation just moved to a new objective.
const NextObjectivePrefix = "Let's move to the next objective:"

const allObjectivesDoneMessage = "Great job! You've mastered all the objectives for this node. Let's move to the testing phase!"

const recapPromptTemplate = `You are a friendly, rigorous tutor helping a learner warm up before new material.

The learner previously covered these topics:
%s

The next topic will be: %s

Run a short recap conversation: ask one or two quick questions that check the learner still remembers the earlier topics, give brief corrective feedback, and keep it light. Do not start teaching the next topic yet.

%s%s
When the learner has answered your recap questions satisfactorily, include this exact fragment at the end of your reply:
<control>{"prereq_complete": true}</control>

The fragment is machine-read and hidden from the learner. Emit it only when the recap is genuinely done.`

const teachingPromptTemplate = `You are a patient, engaging tutor teaching one objective at a time.

Current objective (%s): %s

Topics the learner already knows: %s
Objectives still to come (do not teach these yet): %s

Teach the current objective conversationally: explain, give an example, then check understanding with a question. Adapt to the learner's replies. Cite resources as [rid] §section when you reference them.

%s%s
When the learner has demonstrated understanding of the current objective, include this exact fragment at the end of your reply:
<control>{"objective_complete": true}</control>

The fragment is machine-read and hidden from the learner. Emit it only when the learner has actually shown mastery, not merely read your explanation.`

// recapPrompt builds the system prompt for the prerequisite recap phase.
func recapPrompt(recentTopics []string, nextObjective string, resources []Resource, learnerProfile string) string {
	return fmt.Sprintf(recapPromptTemplate,
		bulletList(recentTopics),
		nextObjective,
		resourceSection(resources),
		profileSection(learnerProfile),
	)
}

// teachingPrompt builds the system prompt for teaching one objective.
func teachingPrompt(obj Objective, recentTopics, remaining []string, resources []Resource, learnerProfile string) string {
	return fmt.Sprintf(teachingPromptTemplate,
		obj.Key,
		obj.Description,
		joinOrNone(recentTopics),
		joinOrNone(remaining),
		resourceSection(resources),
		profileSection(learnerProfile),
	)
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return "- (none)"
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, "; ")
}

func resourceSection(resources []Resource) string {
	if len(resources) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Available resources:\n")
	for _, r := range resources {
		b.WriteString(fmt.Sprintf("• [%s] %s\n", r.RID, r.Title))
	}
	b.WriteString("\n")
	return b.String()
}

func profileSection(learnerProfile string) string {
	if learnerProfile == "" {
		return ""
	}
	return learnerProfile + "\n\n"
}
