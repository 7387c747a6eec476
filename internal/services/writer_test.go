package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func newWriterService(ai *fakeAIClient) WriterService {
	return NewWriterService(newTestLogger(), ai)
}

func TestGenerateResumeSummary(t *testing.T) {
	ai := &fakeAIClient{response: "Seasoned fintech engineer with a decade of Go experience."}
	svc := newWriterService(ai)

	got, err := svc.GenerateResumeSummary(context.Background(), uuid.New(), "  fintech  ", "Go, SQL")
	if err != nil {
		t.Fatalf("GenerateResumeSummary returned error: %v", err)
	}
	if got != ai.response {
		t.Fatalf("summary = %q, want model text verbatim", got)
	}
	if !strings.Contains(ai.lastPrompt, "fintech industry") {
		t.Fatalf("prompt missing trimmed industry: %q", ai.lastPrompt)
	}
	if !strings.Contains(ai.lastPrompt, "Go, SQL") {
		t.Fatalf("prompt missing skills: %q", ai.lastPrompt)
	}
}

func TestGenerateResumeBulletsKeepsOnlyBulletLines(t *testing.T) {
	ai := &fakeAIClient{response: strings.Join([]string{
		"Here are three options:",
		"",
		"* Led migration of billing pipeline, cutting latency 40%",
		"  * Automated deployment checks across 12 services",
		"Some trailing commentary.",
		"* Mentored four junior engineers on Go best practices",
	}, "\n")}
	svc := newWriterService(ai)

	bullets, err := svc.GenerateResumeBullets(context.Background(), uuid.New(), "migrated billing", "Go, CI")
	if err != nil {
		t.Fatalf("GenerateResumeBullets returned error: %v", err)
	}
	want := []string{
		"* Led migration of billing pipeline, cutting latency 40%",
		"* Automated deployment checks across 12 services",
		"* Mentored four junior engineers on Go best practices",
	}
	if len(bullets) != len(want) {
		t.Fatalf("got %d bullets, want %d: %v", len(bullets), len(want), bullets)
	}
	for i := range want {
		if bullets[i] != want[i] {
			t.Fatalf("bullet[%d] = %q, want %q", i, bullets[i], want[i])
		}
	}
}

func TestGenerateResumeBulletsRequiresInput(t *testing.T) {
	cases := []struct {
		name           string
		accomplishment string
		skills         string
	}{
		{"blank_accomplishment", "   ", "Go"},
		{"blank_skills", "shipped a feature", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ai := &fakeAIClient{response: "* something"}
			svc := newWriterService(ai)
			if _, err := svc.GenerateResumeBullets(context.Background(), uuid.New(), tc.accomplishment, tc.skills); err == nil {
				t.Fatal("expected error for missing input")
			}
			if ai.calls != 0 {
				t.Fatalf("model called %d times for invalid input, want 0", ai.calls)
			}
		})
	}
}

func TestGenerateCoverLetter(t *testing.T) {
	ai := &fakeAIClient{response: "Dear Hiring Manager,\n\nI am excited to apply..."}
	svc := newWriterService(ai)

	got, err := svc.GenerateCoverLetter(context.Background(), uuid.New(), "Build Go services", "Go, Postgres", "Acme")
	if err != nil {
		t.Fatalf("GenerateCoverLetter returned error: %v", err)
	}
	if got != ai.response {
		t.Fatalf("letter = %q, want model text verbatim", got)
	}
	for _, fragment := range []string{"Acme", "Build Go services", "Go, Postgres"} {
		if !strings.Contains(ai.lastPrompt, fragment) {
			t.Fatalf("prompt missing %q: %q", fragment, ai.lastPrompt)
		}
	}
}

func TestGenerateCoverLetterRequiresInput(t *testing.T) {
	ai := &fakeAIClient{response: "Dear Hiring Manager,"}
	svc := newWriterService(ai)
	if _, err := svc.GenerateCoverLetter(context.Background(), uuid.New(), "desc", "skills", "  "); err == nil {
		t.Fatal("expected error for blank company name")
	}
	if ai.calls != 0 {
		t.Fatalf("model called %d times for invalid input, want 0", ai.calls)
	}
}

func TestWriterSurfacesModelUnavailability(t *testing.T) {
	modelErr := fmt.Errorf("%w: quota exceeded", ErrAIUnavailable)
	svc := newWriterService(&fakeAIClient{err: modelErr})
	userID := uuid.New()

	if _, err := svc.GenerateResumeSummary(context.Background(), userID, "tech", "Go"); !errors.Is(err, ErrAIUnavailable) {
		t.Fatalf("summary error = %v, want ErrAIUnavailable", err)
	}
	if _, err := svc.GenerateResumeBullets(context.Background(), userID, "did a thing", "Go"); !errors.Is(err, ErrAIUnavailable) {
		t.Fatalf("bullets error = %v, want ErrAIUnavailable", err)
	}
	if _, err := svc.GenerateCoverLetter(context.Background(), userID, "desc", "Go", "Acme"); !errors.Is(err, ErrAIUnavailable) {
		t.Fatalf("letter error = %v, want ErrAIUnavailable", err)
	}
}
