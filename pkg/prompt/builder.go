// Package prompt composes the single text prompt sent to the LLM
// collaborator for a chat turn: assistant persona, job and company facts,
// prior conversation, and the current question.
package prompt

import (
	"encoding/json"
	"strings"
)

// Builder assembles a job Q&A prompt.
type Builder struct {
	job     JobContext
	company CompanyContext
	history []HistoryEntry
	query   string
}

func NewBuilder(job JobContext, company CompanyContext, history []HistoryEntry, query string) *Builder {
	return &Builder{
		job:     job,
		company: company,
		history: history,
		query:   query,
	}
}

// Build creates the full prompt for one turn.
func (b *Builder) Build() string {
	var prompt strings.Builder

	b.writePersona(&prompt)
	b.writeJobInformation(&prompt)
	b.writeCompanyInformation(&prompt)
	b.writeConversation(&prompt)
	b.writeUserQuery(&prompt)

	return prompt.String()
}

func (b *Builder) writePersona(prompt *strings.Builder) {
	prompt.WriteString("You are a helpful assistant that answers questions about job postings. Your task is to help job seekers understand:\n\n")
	prompt.WriteString("1. The job requirements, responsibilities, and expectations\n")
	prompt.WriteString("2. Employment type (full-time, part-time, contract, temporary, internship)\n")
	prompt.WriteString("3. Details about the company, culture, benefits, and perks\n")
	prompt.WriteString("4. Technical requirements and skills needed\n")
	prompt.WriteString("5. Location and remote work policies\n")
	prompt.WriteString("6. Any other relevant information about the position or company\n\n")
	prompt.WriteString("You should be friendly, professional, and provide accurate information based solely on the job and company information provided to you. If you don't have information to answer a question, say so clearly.\n\n")
}

func (b *Builder) writeJobInformation(prompt *strings.Builder) {
	prompt.WriteString("Job Information:\n")
	if data, err := json.MarshalIndent(b.job, "", "  "); err == nil {
		prompt.Write(data)
	}
	prompt.WriteString("\n\n")
}

func (b *Builder) writeCompanyInformation(prompt *strings.Builder) {
	prompt.WriteString("Company Information:\n")
	if data, err := json.MarshalIndent(b.company, "", "  "); err == nil {
		prompt.Write(data)
	}
	prompt.WriteString("\n\n")
}

func (b *Builder) writeConversation(prompt *strings.Builder) {
	prompt.WriteString("Previous Conversation:\n")
	if len(b.history) == 0 {
		prompt.WriteString("No previous conversation yet.\n\n")
		return
	}
	for _, entry := range b.history {
		speaker := "Assistant"
		if entry.Role == "user" {
			speaker = "User"
		}
		prompt.WriteString(speaker)
		prompt.WriteString(": ")
		prompt.WriteString(entry.Content)
		prompt.WriteString("\n")
	}
	prompt.WriteString("\n")
}

func (b *Builder) writeUserQuery(prompt *strings.Builder) {
	prompt.WriteString("Now answer the user's question based on this context.\n\n")
	prompt.WriteString("User: ")
	prompt.WriteString(b.query)
	prompt.WriteString("\n\nAssistant:")
}
