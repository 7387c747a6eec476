package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/skillpath/skillpath-backend/internal/aioutput"
	"github.com/skillpath/skillpath-backend/internal/repos"
	"github.com/skillpath/skillpath-backend/internal/types"
)

func newInsightService(t *testing.T, ai AIClient) (InsightService, *gorm.DB) {
	t.Helper()
	gdb := newTestDB(t)
	log := newTestLogger()
	svc := NewInsightService(gdb, log, repos.NewCareerInsightRepo(gdb, log), ai)
	return svc, gdb
}

var validInsightJSON = `{
  "industryTrends": ["serverless everywhere", "ai tooling"],
  "inDemandSkills": ["go", "kubernetes"],
  "skillGapAnalysis": {"matchedSkills": ["go"], "missingSkills": ["kubernetes"]},
  "actionableFeedback": "Focus on container orchestration next."
}`

func testProfile() ProfileInput {
	return ProfileInput{
		Industry:    "Software",
		CurrentRole: "Backend Developer",
		DesiredRole: "Platform Engineer",
		Skills:      []string{"go", "sql"},
	}
}

func TestGenerateInsightPipeline(t *testing.T) {
	ai := &fakeAIClient{response: "Sure, here it is:\n```json\n" + validInsightJSON + "\n```"}
	svc, gdb := newInsightService(t, ai)
	userID := seedUser(t, gdb)

	record, err := svc.GenerateInsight(context.Background(), userID, testProfile())
	if err != nil {
		t.Fatalf("GenerateInsight failed: %v", err)
	}
	if record.TargetRole != "Platform Engineer" {
		t.Fatalf("target role=%q, want Platform Engineer", record.TargetRole)
	}
	if record.ActionableFeedback == "" {
		t.Fatal("actionable feedback lost in pipeline")
	}
	if record.GeneratedAt.IsZero() {
		t.Fatal("generatedAt not stamped")
	}

	var gap types.SkillGapAnalysis
	if err := json.Unmarshal(record.SkillGapAnalysis, &gap); err != nil {
		t.Fatalf("stored skill gap is not valid JSON: %v", err)
	}
	if len(gap.MissingSkills) != 1 || gap.MissingSkills[0] != "kubernetes" {
		t.Fatalf("skill gap not preserved: %+v", gap)
	}
}

func TestGenerateInsightUpsertIdempotence(t *testing.T) {
	ai := &fakeAIClient{response: validInsightJSON}
	svc, gdb := newInsightService(t, ai)
	userID := seedUser(t, gdb)

	first, err := svc.GenerateInsight(context.Background(), userID, testProfile())
	if err != nil {
		t.Fatalf("first GenerateInsight failed: %v", err)
	}
	second, err := svc.GenerateInsight(context.Background(), userID, testProfile())
	if err != nil {
		t.Fatalf("second GenerateInsight failed: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("regeneration created a new row: %s vs %s", first.ID, second.ID)
	}
	var count int64
	if err := gdb.Model(&types.CareerInsight{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("got %d rows for (user, role), want exactly 1", count)
	}
}

func TestGenerateInsightSeparateRowsPerRole(t *testing.T) {
	ai := &fakeAIClient{response: validInsightJSON}
	svc, gdb := newInsightService(t, ai)
	userID := seedUser(t, gdb)

	profile := testProfile()
	if _, err := svc.GenerateInsight(context.Background(), userID, profile); err != nil {
		t.Fatalf("GenerateInsight failed: %v", err)
	}
	profile.DesiredRole = "Engineering Manager"
	if _, err := svc.GenerateInsight(context.Background(), userID, profile); err != nil {
		t.Fatalf("GenerateInsight for second role failed: %v", err)
	}

	records, err := svc.ListInsights(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListInsights failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d insight rows, want one per distinct role (2)", len(records))
	}
}

func TestGenerateInsightFailureLeavesPriorRecord(t *testing.T) {
	ai := &fakeAIClient{response: validInsightJSON}
	svc, gdb := newInsightService(t, ai)
	userID := seedUser(t, gdb)

	if _, err := svc.GenerateInsight(context.Background(), userID, testProfile()); err != nil {
		t.Fatalf("GenerateInsight failed: %v", err)
	}

	cases := []struct {
		name     string
		response string
	}{
		{name: "no_json", response: "I cannot help with that."},
		{name: "invalid_json", response: "{broken json"},
		{name: "missing_feedback", response: `{"industryTrends": []}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ai.response = tc.response
			if _, err := svc.GenerateInsight(context.Background(), userID, testProfile()); err == nil {
				t.Fatal("generation must fail")
			}
			stored, err := svc.GetInsight(context.Background(), userID, "Platform Engineer")
			if err != nil {
				t.Fatalf("GetInsight failed: %v", err)
			}
			if stored == nil || stored.ActionableFeedback == "" {
				t.Fatal("failed generation clobbered the prior record")
			}
		})
	}
}

func TestGenerateInsightErrorTaxonomy(t *testing.T) {
	svc, gdb := newInsightService(t, &fakeAIClient{response: "no json here"})
	userID := seedUser(t, gdb)

	_, err := svc.GenerateInsight(context.Background(), userID, testProfile())
	var extErr *aioutput.ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("err=%v, want *ExtractionError for non-JSON output", err)
	}

	svc2, gdb2 := newInsightService(t, &fakeAIClient{response: `{"industryTrends": []}`})
	userID2 := seedUser(t, gdb2)
	_, err = svc2.GenerateInsight(context.Background(), userID2, testProfile())
	var vErr *aioutput.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err=%v, want *ValidationError for missing feedback", err)
	}

	svc3, gdb3 := newInsightService(t, &fakeAIClient{err: ErrAIUnavailable})
	userID3 := seedUser(t, gdb3)
	_, err = svc3.GenerateInsight(context.Background(), userID3, testProfile())
	if !errors.Is(err, ErrAIUnavailable) {
		t.Fatalf("err=%v, want ErrAIUnavailable", err)
	}
}

func TestGetInsightIsPureRead(t *testing.T) {
	ai := &fakeAIClient{response: validInsightJSON}
	svc, gdb := newInsightService(t, ai)
	userID := seedUser(t, gdb)

	got, err := svc.GetInsight(context.Background(), userID, "Platform Engineer")
	if err != nil {
		t.Fatalf("GetInsight failed: %v", err)
	}
	if got != nil {
		t.Fatalf("GetInsight returned a record for an empty store: %+v", got)
	}
	if ai.calls != 0 {
		t.Fatal("GetInsight invoked the AI client")
	}
}
