package progression

import (
	"strings"
	"testing"
)

func TestBuildPrompt_IncludesJourneyAttributes(t *testing.T) {
	req := BuildPrompt(PromptInput{
		Skill:          "Public Speaking",
		Level:          "Intermediate",
		TimeCommitment: "1 hour",
		Goal:           "give a conference talk",
		LevelNumber:    4,
	})

	if req.System == "" {
		t.Fatal("system prompt should be set")
	}
	for _, want := range []string{
		"Skill: Public Speaking",
		"Experience level: Intermediate",
		"Time available: 1 hour",
		"Personal goal: give a conference talk",
		"This is level 4 of their journey.",
		"completable in 1 hour by a Intermediate level learner",
	} {
		if !strings.Contains(req.Prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, req.Prompt)
		}
	}
}

func TestBuildPrompt_Defaults(t *testing.T) {
	req := BuildPrompt(PromptInput{
		Skill:       "Chess",
		Level:       "Beginner",
		LevelNumber: 1,
	})

	if !strings.Contains(req.Prompt, "Time available: 15 minutes") {
		t.Fatalf("expected default time commitment:\n%s", req.Prompt)
	}
	if !strings.Contains(req.Prompt, "Personal goal: master this skill") {
		t.Fatalf("expected default goal:\n%s", req.Prompt)
	}
}

func TestBuildPrompt_FirstTaskDigest(t *testing.T) {
	req := BuildPrompt(PromptInput{
		Skill:       "Chess",
		Level:       "Beginner",
		LevelNumber: 1,
	})

	if !strings.Contains(req.Prompt, "This is their first task.") {
		t.Fatalf("expected first-task digest:\n%s", req.Prompt)
	}
	if !strings.Contains(req.Prompt, "Start with a beginner-friendly task.") {
		t.Fatalf("expected beginner-friendly instruction:\n%s", req.Prompt)
	}
}

func TestBuildPrompt_DigestCapsAtThreeMostRecent(t *testing.T) {
	prior := []PriorLevel{
		{Number: 5, Task: "task five", Rating: intPtr(3)},
		{Number: 4, Task: "task four", Rating: intPtr(2)},
		{Number: 3, Task: "task three", Rating: nil},
		{Number: 2, Task: "task two", Rating: intPtr(4)},
		{Number: 1, Task: "task one", Rating: intPtr(1)},
	}
	req := BuildPrompt(PromptInput{
		Skill:       "Chess",
		Level:       "Beginner",
		LevelNumber: 6,
		Prior:       prior,
		LastRating:  intPtr(3),
	})

	for _, want := range []string{
		"Level 5: task five (difficulty: 3)",
		"Level 4: task four (difficulty: 2)",
		"Level 3: task three (difficulty: not rated)",
	} {
		if !strings.Contains(req.Prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, req.Prompt)
		}
	}
	for _, reject := range []string{"task two", "task one"} {
		if strings.Contains(req.Prompt, reject) {
			t.Fatalf("prompt should not include %q:\n%s", reject, req.Prompt)
		}
	}
}

func TestAdjustmentFor(t *testing.T) {
	tests := []struct {
		name   string
		rating *int
		want   string
	}{
		{"no rating", nil, "beginner-friendly"},
		{"very easy", intPtr(1), "significantly more challenging"},
		{"easy", intPtr(2), "slightly more challenging"},
		{"just right", intPtr(3), "similar difficulty"},
		{"hard", intPtr(4), "slightly easier"},
		{"very hard", intPtr(5), "significantly easier"},
		{"out of range", intPtr(9), "similar difficulty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adjustmentFor(tt.rating)
			if !strings.Contains(got, tt.want) {
				t.Fatalf("expected %q in %q", tt.want, got)
			}
		})
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	in := PromptInput{
		Skill:       "Chess",
		Level:       "Beginner",
		LevelNumber: 2,
		Prior:       []PriorLevel{{Number: 1, Task: "learn the moves", Rating: intPtr(2)}},
		LastRating:  intPtr(2),
	}
	a := BuildPrompt(in)
	b := BuildPrompt(in)
	if a.Prompt != b.Prompt || a.System != b.System {
		t.Fatal("identical input must produce identical prompts")
	}
}
