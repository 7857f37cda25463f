package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/LeoWherle/ranker/internal/core"
)

// Oracle answers comparisons with an LLM instead of a human, judging
// the two candidates against a free-text criterion.
type Oracle struct {
	LLM Client
}

func NewOracle(client Client) *Oracle {
	return &Oracle{LLM: client}
}

// Decide returns the id of the preferred candidate.
// The response must name candidate 1 or 2; anything else is an error,
// since guessing a winner would silently corrupt the ranking.
func (o *Oracle) Decide(ctx context.Context, criterion string, cmp core.Comparison) (string, error) {
	prompt := fmt.Sprintf(`You are ranking items pairwise.
Criterion: %s

[1] %s
[2] %s

Which item better matches the criterion?
Output ONLY the number 1 or 2. Do not output any other text.`,
		criterion, describe(cmp.A.Title, cmp.A.Description), describe(cmp.B.Title, cmp.B.Description))

	resp, err := o.LLM.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("oracle generation failed: %w", err)
	}

	switch firstDigit(resp) {
	case "1":
		return cmp.A.ID, nil
	case "2":
		return cmp.B.ID, nil
	}
	return "", fmt.Errorf("oracle answer %q names neither candidate", strings.TrimSpace(resp))
}

func describe(title, description string) string {
	if description == "" {
		return title
	}
	// Truncate very long descriptions
	if len(description) > 200 {
		description = description[:200] + "..."
	}
	return fmt.Sprintf("%s: %s", title, description)
}

var digitRe = regexp.MustCompile(`[12]`)

func firstDigit(s string) string {
	return digitRe.FindString(s)
}
