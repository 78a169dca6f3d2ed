package tutor

import "testing"

func TestNormalizeAnswer_Numbered(t *testing.T) {
	question := "Which object did the cow jump over?\n1. Cow\n2. Moon"

	if got := NormalizeAnswer("1", question); got != "Cow" {
		t.Errorf("expected 'Cow', got %q", got)
	}
	if got := NormalizeAnswer("2", question); got != "Moon" {
		t.Errorf("expected 'Moon', got %q", got)
	}
}

func TestNormalizeAnswer_Lettered(t *testing.T) {
	question := "Is the statement true?\nA) Always\nB) Only sometimes"

	if got := NormalizeAnswer("b", question); got != "Only sometimes" {
		t.Errorf("expected 'Only sometimes' for 'b', got %q", got)
	}
	if got := NormalizeAnswer("B", question); got != "Only sometimes" {
		t.Errorf("expected 'Only sometimes' for 'B', got %q", got)
	}
	if got := NormalizeAnswer("a", question); got != "Always" {
		t.Errorf("expected 'Always' for 'a', got %q", got)
	}
}

func TestNormalizeAnswer_LetteredWithDots(t *testing.T) {
	question := "Pick one:\nA. Red\nB. Blue"

	if got := NormalizeAnswer("a", question); got != "Red" {
		t.Errorf("expected 'Red', got %q", got)
	}
}

func TestNormalizeAnswer_InvalidChoiceUnchanged(t *testing.T) {
	question := "1. Cow\n2. Moon"

	if got := NormalizeAnswer("3", question); got != "3" {
		t.Errorf("expected '3' unchanged, got %q", got)
	}
}

func TestNormalizeAnswer_MultiCharUnchanged(t *testing.T) {
	question := "1. Cow\n2. Moon"

	if got := NormalizeAnswer("I think cow", question); got != "I think cow" {
		t.Errorf("expected multi-character answer unchanged, got %q", got)
	}
}

func TestNormalizeAnswer_NoPatternDetected(t *testing.T) {
	if got := NormalizeAnswer("b", "What is your favorite color?"); got != "b" {
		t.Errorf("expected 'b' unchanged, got %q", got)
	}
}

func TestNormalizeAnswer_TrimAsymmetry(t *testing.T) {
	question := "1. Cow\n2. Moon"

	// A matching key is compared after trimming and the option text comes
	// back trimmed.
	if got := NormalizeAnswer(" 1 ", question); got != "Cow" {
		t.Errorf("expected 'Cow' for padded match, got %q", got)
	}

	// A non-matching single character comes back exactly as typed.
	if got := NormalizeAnswer(" 9 ", question); got != " 9 " {
		t.Errorf("expected padded input returned as given, got %q", got)
	}
}

func TestNormalizeAnswer_InlineOptions(t *testing.T) {
	question := "Pick: 1. Cow 2. Moon"

	if got := NormalizeAnswer("2", question); got != "Moon" {
		t.Errorf("expected 'Moon' from inline options, got %q", got)
	}
}

func TestNormalizeAnswer_NumberedWinsOverLettered(t *testing.T) {
	question := "1. Option one\n2. Option two\nA) Stray letter option"

	if got := NormalizeAnswer("1", question); got != "Option one" {
		t.Errorf("expected numbered extraction to win, got %q", got)
	}
}
