package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testJob() JobContext {
	three := 3
	return JobContext{
		Id:             "job-1",
		Title:          "Senior Platform Engineer",
		Description:    "Run the core platform.",
		Requirements:   []string{"Go experience"},
		Locations:      []LocationContext{{City: "Austin", State: "TX"}},
		RemotePolicy:   "hybrid",
		EmploymentType: "full_time",
		DaysPerWeek:    &three,
		TechStack:      []string{"Go", "PostgreSQL"},
	}
}

func testCompany() CompanyContext {
	return CompanyContext{
		Id:            "co-1",
		Name:          "TechFlow Analytics",
		Description:   "Analytics platform.",
		CompanySize:   "50-200",
		OwnershipType: "private",
		FundingType:   "venture",
	}
}

func TestBuildContainsFacts(t *testing.T) {
	b := NewBuilder(testJob(), testCompany(), nil, "Is this role remote?")
	out := b.Build()

	assert.Contains(t, out, "Senior Platform Engineer")
	assert.Contains(t, out, "TechFlow Analytics")
	assert.Contains(t, out, "PostgreSQL")
	assert.Contains(t, out, "User: Is this role remote?")
	assert.Contains(t, out, "No previous conversation yet.")
	assert.True(t, strings.HasSuffix(out, "Assistant:"))
}

func TestBuildRendersHistoryInOrder(t *testing.T) {
	history := []HistoryEntry{
		{Role: "user", Content: "What is the tech stack?"},
		{Role: "assistant", Content: "Go and PostgreSQL."},
	}
	b := NewBuilder(testJob(), testCompany(), history, "And the salary?")
	out := b.Build()

	uIdx := strings.Index(out, "User: What is the tech stack?")
	aIdx := strings.Index(out, "Assistant: Go and PostgreSQL.")
	qIdx := strings.Index(out, "User: And the salary?")

	assert.Greater(t, uIdx, -1)
	assert.Greater(t, aIdx, uIdx)
	assert.Greater(t, qIdx, aIdx)
	assert.NotContains(t, out, "No previous conversation yet.")

	// The current turn appears once, not duplicated into the history block.
	assert.Equal(t, 1, strings.Count(out, "User: And the salary?"))
}

func TestBuildStatesGroundingRules(t *testing.T) {
	out := NewBuilder(testJob(), testCompany(), nil, "hi").Build()
	assert.Contains(t, out, "answers questions about job postings")
	assert.Contains(t, out, "If you don't have information to answer a question, say so clearly.")
}
