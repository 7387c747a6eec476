package aioutput

import (
	"fmt"
	"strings"

	"github.com/skillpath/skillpath-backend/internal/types"
)

// InsightPayload is the validated, defaulted shape of a career-insight
// generation. It is the only typed value downstream code ever sees.
type InsightPayload struct {
	IndustryTrends     []string
	InDemandSkills     []string
	SkillGapAnalysis   types.SkillGapAnalysis
	ActionableFeedback string
}

// ValidateInsight coerces a parsed model object into an InsightPayload.
// Every sequence field soft-defaults to empty on absence or type mismatch.
// The only hard requirement is a non-empty actionableFeedback: an insight
// with no feedback text has nothing to show the user.
func ValidateInsight(value map[string]any) (*InsightPayload, error) {
	feedback, _ := value["actionableFeedback"].(string)
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return nil, &ValidationError{Field: "actionableFeedback", Reason: "missing or empty"}
	}

	payload := &InsightPayload{
		IndustryTrends:     stringSlice(value["industryTrends"]),
		InDemandSkills:     stringSlice(value["inDemandSkills"]),
		ActionableFeedback: feedback,
	}
	payload.SkillGapAnalysis = types.SkillGapAnalysis{
		MatchedSkills: []string{},
		MissingSkills: []string{},
	}
	if gap, ok := value["skillGapAnalysis"].(map[string]any); ok {
		payload.SkillGapAnalysis.MatchedSkills = stringSlice(gap["matchedSkills"])
		payload.SkillGapAnalysis.MissingSkills = stringSlice(gap["missingSkills"])
	}
	return payload, nil
}

// ValidateMilestones coerces a parsed model array into roadmap milestones.
// Regeneration is rate-limited and slow, so the validator salvages a usable
// roadmap whenever the shape is even approximately right: element-level
// problems are repaired (defaulted difficulty, dropped malformed resources,
// deduplicated ids), and only an unusable top level is rejected.
func ValidateMilestones(value []any) ([]types.Milestone, error) {
	if len(value) == 0 {
		return nil, &ValidationError{Field: "milestones", Reason: "must be a non-empty array"}
	}

	out := make([]types.Milestone, 0, len(value))
	seen := make(map[string]bool, len(value))
	for _, el := range value {
		obj, ok := el.(map[string]any)
		if !ok {
			continue
		}
		id, _ := obj["id"].(string)
		id = strings.TrimSpace(id)
		label, _ := obj["label"].(string)
		label = strings.TrimSpace(label)
		if id == "" || label == "" {
			continue
		}

		// Duplicate ids get a deterministic numeric suffix instead of
		// rejecting the whole roadmap.
		if seen[id] {
			base := id
			for n := 2; ; n++ {
				candidate := fmt.Sprintf("%s-%d", base, n)
				if !seen[candidate] {
					id = candidate
					break
				}
			}
		}
		seen[id] = true

		out = append(out, types.Milestone{
			ID:         id,
			Label:      label,
			Difficulty: normalizeDifficulty(obj["difficulty"]),
			Resources:  resourceSlice(obj["resources"]),
			Subtasks:   stringSlice(obj["subtasks"]),
		})
	}

	if len(out) == 0 {
		return nil, &ValidationError{Field: "milestones", Reason: "no usable elements"}
	}
	return out, nil
}

func normalizeDifficulty(v any) string {
	s, _ := v.(string)
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "intermediate":
		return types.DifficultyIntermediate
	case "advanced":
		return types.DifficultyAdvanced
	case "beginner":
		return types.DifficultyBeginner
	default:
		return types.DifficultyBeginner
	}
}

func stringSlice(v any) []string {
	out := []string{}
	arr, ok := v.([]any)
	if !ok {
		return out
	}
	for _, el := range arr {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func resourceSlice(v any) []types.MilestoneResource {
	out := []types.MilestoneResource{}
	arr, ok := v.([]any)
	if !ok {
		return out
	}
	for _, el := range arr {
		obj, ok := el.(map[string]any)
		if !ok {
			continue
		}
		title, _ := obj["title"].(string)
		url, _ := obj["url"].(string)
		if title == "" && url == "" {
			continue
		}
		out = append(out, types.MilestoneResource{Title: title, URL: url})
	}
	return out
}
