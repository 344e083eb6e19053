package progression

import (
	"fmt"
	"strings"

	"github.com/iamtheretronerd/levelup/internal/llm"
)

const systemPrompt = `You are a skill learning coach creating personalized practice challenges.

Rules:
- Generate ONE specific, actionable task for the learner's skill, experience level, and available time.
- The task must be concrete and measurable: the learner should know exactly when they have completed it.
- The task should build on previous tasks when any are listed.
- Respond with ONLY the task description in 1-2 sentences. Do not include level numbers, greetings, or explanations.

Examples of good tasks:
- "Cook scrambled eggs with three ingredients and serve with toast"
- "Practice speaking for 60 seconds about your day without using filler words"
- "Build a simple paper airplane that can fly at least 10 feet"`

const (
	defaultTimeCommitment = "15 minutes"
	defaultGoal           = "master this skill"

	// maxPriorTasks bounds the prior-task digest in the prompt.
	maxPriorTasks = 3
)

// PriorLevel is the slice of a past level that feeds the prompt digest.
type PriorLevel struct {
	Number int
	Task   string
	Rating *int
}

// PromptInput holds everything the prompt builder needs. Prior must be
// ordered most-recent first; LastRating is the most recent level's
// difficulty rating, or nil before the first level.
type PromptInput struct {
	Skill          string
	Level          string
	TimeCommitment string
	Goal           string
	LevelNumber    int
	Prior          []PriorLevel
	LastRating     *int
}

// BuildPrompt constructs the generation request for the next level.
// Pure function of its input; the difficulty-adjustment policy is exact
// and deterministic.
func BuildPrompt(in PromptInput) llm.Request {
	timeCommitment := in.TimeCommitment
	if timeCommitment == "" {
		timeCommitment = defaultTimeCommitment
	}
	goal := in.Goal
	if goal == "" {
		goal = defaultGoal
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Skill: %s\n", in.Skill)
	fmt.Fprintf(&b, "Experience level: %s\n", in.Level)
	fmt.Fprintf(&b, "Time available: %s\n", timeCommitment)
	fmt.Fprintf(&b, "Personal goal: %s\n", goal)
	fmt.Fprintf(&b, "This is level %d of their journey.\n", in.LevelNumber)

	b.WriteString("\n")
	b.WriteString(buildPriorDigest(in.Prior))

	b.WriteString("\n\n")
	b.WriteString(adjustmentFor(in.LastRating))
	b.WriteString("\n")
	fmt.Fprintf(&b, "The task must be completable in %s by a %s level learner.\n", timeCommitment, in.Level)

	return llm.Request{
		System: systemPrompt,
		Prompt: b.String(),
	}
}

// buildPriorDigest formats up to maxPriorTasks previous tasks with their
// ratings, most recent first.
func buildPriorDigest(prior []PriorLevel) string {
	if len(prior) == 0 {
		return "This is their first task."
	}

	if len(prior) > maxPriorTasks {
		prior = prior[:maxPriorTasks]
	}

	var b strings.Builder
	b.WriteString("Previous tasks, most recent first:\n")
	for _, p := range prior {
		rating := "not rated"
		if p.Rating != nil {
			rating = fmt.Sprintf("%d", *p.Rating)
		}
		fmt.Fprintf(&b, "Level %d: %s (difficulty: %s)\n", p.Number, p.Task, rating)
	}
	return strings.TrimRight(b.String(), "\n")
}

// adjustmentFor maps the last difficulty rating to the challenge
// adjustment instruction for the next task.
func adjustmentFor(last *int) string {
	if last == nil {
		return "Start with a beginner-friendly task."
	}
	switch *last {
	case 1:
		return "The last task was rated very easy. Make this next task significantly more challenging than the previous one."
	case 2:
		return "The last task was rated easy. Make this next task slightly more challenging."
	case 3:
		return "The last task was rated just right. Keep a similar difficulty level."
	case 4:
		return "The last task was rated hard. Make this next task slightly easier."
	case 5:
		return "The last task was rated very hard. Make this next task significantly easier."
	default:
		return "Keep a similar difficulty level."
	}
}
