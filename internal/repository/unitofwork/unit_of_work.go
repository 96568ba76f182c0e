package unitofwork

import (
	"context"

	"jobboard-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CompanyRepository() contract.CompanyRepository
	JobRepository() contract.JobRepository
	ConversationRepository() contract.ConversationRepository
	MessageRepository() contract.MessageRepository
}
