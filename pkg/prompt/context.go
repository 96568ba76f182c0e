package prompt

import "time"

// JobContext and CompanyContext are the immutable records handed to the
// prompt builder. Domain entities never cross the collaborator boundary;
// callers construct these explicitly so the prompt contract stays stable
// under internal refactors.

type LocationContext struct {
	City  string `json:"city"`
	State string `json:"state"`
}

type JobContext struct {
	Id               string            `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Requirements     []string          `json:"requirements"`
	Responsibilities []string          `json:"responsibilities"`
	Perks            []string          `json:"perks"`
	Benefits         []string          `json:"benefits"`
	Locations        []LocationContext `json:"locations"`
	Url              string            `json:"url"`
	RemotePolicy     string            `json:"remotePolicy"`
	EmploymentType   string            `json:"employmentType"`
	DaysPerWeek      *int              `json:"daysPerWeek"`
	TechStack        []string          `json:"techStack"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        *time.Time        `json:"updatedAt"`
}

type CompanyContext struct {
	Id              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Locations       []LocationContext `json:"locations"`
	Url             string            `json:"url"`
	CompanySize     string            `json:"companySize"`
	OwnershipType   string            `json:"ownershipType"`
	FundingType     string            `json:"fundingType"`
	AmountRaised    string            `json:"amountRaised,omitempty"`
	LastRoundLetter string            `json:"lastRoundLetter,omitempty"`
}

// HistoryEntry is one prior turn in the conversation.
type HistoryEntry struct {
	Role    string
	Content string
}
