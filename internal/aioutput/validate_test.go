package aioutput

import (
	"errors"
	"testing"

	"github.com/skillpath/skillpath-backend/internal/types"
)

func TestValidateInsightDefaults(t *testing.T) {
	cases := []struct {
		name  string
		value map[string]any
	}{
		{
			name: "missing_trend_and_skill_arrays",
			value: map[string]any{
				"actionableFeedback": "Learn Go.",
			},
		},
		{
			name: "wrong_types_for_arrays",
			value: map[string]any{
				"industryTrends":     "not an array",
				"inDemandSkills":     42,
				"actionableFeedback": "Learn Go.",
			},
		},
		{
			name: "gap_subobject_missing_missing_skills",
			value: map[string]any{
				"skillGapAnalysis":   map[string]any{"matchedSkills": []any{"go"}},
				"actionableFeedback": "Learn Go.",
			},
		},
		{
			name: "gap_subobject_absent",
			value: map[string]any{
				"industryTrends":     []any{"ai everywhere"},
				"actionableFeedback": "Learn Go.",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateInsight(tc.value)
			if err != nil {
				t.Fatalf("ValidateInsight returned error: %v", err)
			}
			if got.IndustryTrends == nil || got.InDemandSkills == nil {
				t.Fatal("sequence fields must default to empty, not nil")
			}
			if got.SkillGapAnalysis.MatchedSkills == nil || got.SkillGapAnalysis.MissingSkills == nil {
				t.Fatal("skill gap fields must default to empty, not nil")
			}
			if got.ActionableFeedback == "" {
				t.Fatal("actionableFeedback lost during validation")
			}
		})
	}
}

func TestValidateInsightRequiresFeedback(t *testing.T) {
	for _, value := range []map[string]any{
		{},
		{"actionableFeedback": ""},
		{"actionableFeedback": "   "},
		{"actionableFeedback": 7},
	} {
		_, err := ValidateInsight(value)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("ValidateInsight(%v) err=%v, want *ValidationError", value, err)
		}
		if vErr.Field != "actionableFeedback" {
			t.Fatalf("ValidateInsight(%v) failed on field %q, want actionableFeedback", value, vErr.Field)
		}
	}
}

func TestValidateInsightKeepsGapContents(t *testing.T) {
	got, err := ValidateInsight(map[string]any{
		"industryTrends": []any{"trend1", "trend2"},
		"inDemandSkills": []any{"go", "sql"},
		"skillGapAnalysis": map[string]any{
			"matchedSkills": []any{"go"},
			"missingSkills": []any{"sql", "docker"},
		},
		"actionableFeedback": "Close the gap.",
	})
	if err != nil {
		t.Fatalf("ValidateInsight returned error: %v", err)
	}
	if len(got.IndustryTrends) != 2 || len(got.InDemandSkills) != 2 {
		t.Fatalf("arrays not preserved: %+v", got)
	}
	if len(got.SkillGapAnalysis.MatchedSkills) != 1 || len(got.SkillGapAnalysis.MissingSkills) != 2 {
		t.Fatalf("gap arrays not preserved: %+v", got.SkillGapAnalysis)
	}
}

func TestValidateMilestonesTopLevel(t *testing.T) {
	if _, err := ValidateMilestones(nil); err == nil {
		t.Fatal("nil value must fail validation")
	}
	if _, err := ValidateMilestones([]any{}); err == nil {
		t.Fatal("empty array must fail validation")
	}

	got, err := ValidateMilestones([]any{map[string]any{"id": "x", "label": "X"}})
	if err != nil {
		t.Fatalf("single minimal milestone rejected: %v", err)
	}
	m := got[0]
	if m.Difficulty != types.DifficultyBeginner {
		t.Fatalf("difficulty=%q, want default Beginner", m.Difficulty)
	}
	if m.Resources == nil || len(m.Resources) != 0 {
		t.Fatalf("resources=%v, want empty slice", m.Resources)
	}
	if m.Subtasks == nil || len(m.Subtasks) != 0 {
		t.Fatalf("subtasks=%v, want empty slice", m.Subtasks)
	}
}

func TestValidateMilestonesRepairsDuplicateIDs(t *testing.T) {
	got, err := ValidateMilestones([]any{
		map[string]any{"id": "react", "label": "React"},
		map[string]any{"id": "react", "label": "React again"},
		map[string]any{"id": "react", "label": "React a third time"},
	})
	if err != nil {
		t.Fatalf("ValidateMilestones returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("array length changed from 3 to %d during id repair", len(got))
	}
	seen := map[string]bool{}
	for _, m := range got {
		if seen[m.ID] {
			t.Fatalf("duplicate id %q survived repair", m.ID)
		}
		seen[m.ID] = true
	}
	if got[0].ID != "react" || got[1].ID != "react-2" || got[2].ID != "react-3" {
		t.Fatalf("suffixing not deterministic: %q %q %q", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestValidateMilestonesSuffixAvoidsExistingID(t *testing.T) {
	got, err := ValidateMilestones([]any{
		map[string]any{"id": "react", "label": "React"},
		map[string]any{"id": "react-2", "label": "Already suffixed"},
		map[string]any{"id": "react", "label": "Duplicate"},
	})
	if err != nil {
		t.Fatalf("ValidateMilestones returned error: %v", err)
	}
	if got[2].ID != "react-3" {
		t.Fatalf("collision with pre-existing suffix not handled, got %q", got[2].ID)
	}
}

func TestValidateMilestonesRepairsFields(t *testing.T) {
	got, err := ValidateMilestones([]any{
		map[string]any{
			"id":         "docker",
			"label":      "Docker",
			"difficulty": "intermediate",
			"resources": []any{
				map[string]any{"title": "Docs", "url": "https://docs.docker.com"},
				"not a resource object",
				map[string]any{},
			},
			"subtasks": []any{"images", "volumes", 42},
		},
		"not an object",
		map[string]any{"id": "", "label": "no id"},
		map[string]any{"id": "no-label"},
	})
	if err != nil {
		t.Fatalf("ValidateMilestones returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d milestones, want 1 (hopeless elements dropped)", len(got))
	}
	m := got[0]
	if m.Difficulty != types.DifficultyIntermediate {
		t.Fatalf("difficulty=%q, want Intermediate", m.Difficulty)
	}
	if len(m.Resources) != 1 || m.Resources[0].URL != "https://docs.docker.com" {
		t.Fatalf("resources not repaired: %+v", m.Resources)
	}
	if len(m.Subtasks) != 2 {
		t.Fatalf("subtasks=%v, want the two string entries", m.Subtasks)
	}
}

func TestValidateMilestonesAllHopeless(t *testing.T) {
	_, err := ValidateMilestones([]any{"a", 1, map[string]any{"id": ""}})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err=%v, want *ValidationError when nothing is salvageable", err)
	}
}
