package tutor

import (
	"strings"
	"testing"
)

func TestExtractControl_Valid(t *testing.T) {
	text := `Nice work on that one! <control>{"objective_complete": true}</control>`

	ctrl := ExtractControl(text, TeachingControlSchema)
	if ctrl == nil {
		t.Fatal("expected control block to be extracted")
	}
	if !controlFlag(ctrl, "objective_complete") {
		t.Error("expected objective_complete to be true")
	}
}

func TestExtractControl_Absent(t *testing.T) {
	if ctrl := ExtractControl("Just some teaching text.", TeachingControlSchema); ctrl != nil {
		t.Errorf("expected nil for text without control block, got %v", ctrl)
	}
}

func TestExtractControl_MalformedJSON(t *testing.T) {
	text := `Done! <control>{objective_complete: yes}</control>`

	if ctrl := ExtractControl(text, TeachingControlSchema); ctrl != nil {
		t.Errorf("expected nil for malformed control block, got %v", ctrl)
	}
}

func TestExtractControl_SchemaViolation(t *testing.T) {
	// Wrong field for this schema.
	text := `Done! <control>{"prereq_complete": true}</control>`

	if ctrl := ExtractControl(text, TeachingControlSchema); ctrl != nil {
		t.Errorf("expected nil for schema-violating control block, got %v", ctrl)
	}
}

func TestExtractControl_RecapSchema(t *testing.T) {
	text := `You remembered everything. <control>{"prereq_complete": true}</control>`

	ctrl := ExtractControl(text, RecapControlSchema)
	if !controlFlag(ctrl, "prereq_complete") {
		t.Error("expected prereq_complete to be true")
	}
}

func TestStripControlBlocks(t *testing.T) {
	text := "Great answer!\n\n<control>{\"objective_complete\": true}</control>"

	got := StripControlBlocks(text)
	if strings.Contains(got, "<control>") {
		t.Errorf("control block not stripped: %q", got)
	}
	if got != "Great answer!" {
		t.Errorf("expected surrounding prose preserved and trimmed, got %q", got)
	}
}

func TestStripControlBlocks_MidText(t *testing.T) {
	text := `Before. <control>{"objective_complete": false}</control> After.`

	got := StripControlBlocks(text)
	if !strings.Contains(got, "Before.") || !strings.Contains(got, "After.") {
		t.Errorf("prose around control block disturbed: %q", got)
	}
	if strings.Contains(got, "control") {
		t.Errorf("control fragment leaked into user-facing text: %q", got)
	}
}

func TestCleanCitations(t *testing.T) {
	resources := []Resource{
		{RID: "linear_maps", Title: "Linear Maps and Matrices"},
	}

	got := CleanCitations("As shown in [linear_maps], a matrix represents a map.", resources)
	if strings.Contains(got, "[linear_maps]") {
		t.Errorf("raw citation not cleaned: %q", got)
	}
	if !strings.Contains(got, "research on Linear Maps and Matrices") {
		t.Errorf("expected readable reference, got %q", got)
	}
}

func TestCleanCitations_UnknownRIDDropped(t *testing.T) {
	resources := []Resource{{RID: "known", Title: "Known"}}

	got := CleanCitations("See [mystery_ref] for details.", resources)
	if strings.Contains(got, "mystery_ref") {
		t.Errorf("unknown citation not dropped: %q", got)
	}
}

func TestCleanCitations_ProperCitationKept(t *testing.T) {
	resources := []Resource{{RID: "alg", Title: "Algebra"}}

	got := CleanCitations("See [alg] §2.3 for the proof.", resources)
	if !strings.Contains(got, "[alg] §2.3") {
		t.Errorf("proper sectioned citation should be untouched, got %q", got)
	}
}

func TestCleanCitations_NoResourcesPassthrough(t *testing.T) {
	text := "Raw [whatever] stays."
	if got := CleanCitations(text, nil); got != text {
		t.Errorf("expected passthrough without resources, got %q", got)
	}
}
