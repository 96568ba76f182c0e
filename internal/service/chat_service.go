package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobboard-be/internal/config"
	"jobboard-be/internal/constant"
	"jobboard-be/internal/dto"
	"jobboard-be/internal/entity"
	"jobboard-be/internal/pkg/apperror"
	"jobboard-be/internal/pkg/logger"
	"jobboard-be/internal/repository/memory"
	"jobboard-be/internal/repository/specification"
	"jobboard-be/internal/repository/unitofwork"
	"jobboard-be/pkg/events"
	"jobboard-be/pkg/llm"
	pktNats "jobboard-be/pkg/nats"
	"jobboard-be/pkg/prompt"
)

type IChatService interface {
	GetHistory(ctx context.Context, jobId uuid.UUID, sessionId string) (*dto.ChatHistoryResponse, error)
	PostMessage(ctx context.Context, jobId uuid.UUID, sessionId string, text string) (*dto.SendMessageResponse, error)
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	lockRepo         *memory.LockRepository
	llmProvider      llm.LLMProvider
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	cfg              config.ChatConfig
	log              logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	lockRepo *memory.LockRepository,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	cfg config.ChatConfig,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		lockRepo:         lockRepo,
		llmProvider:      llmProvider,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		cfg:              cfg,
		log:              log,
	}
}

func (s *chatService) GetHistory(ctx context.Context, jobId uuid.UUID, sessionId string) (*dto.ChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByJobAndSession{
		JobID:     jobId,
		SessionID: sessionId,
	})
	if err != nil {
		return nil, apperror.Internal("failed to load conversation", err)
	}
	if conversation == nil {
		// Never started chatting here, or an unknown job: an empty thread
		// either way.
		return &dto.ChatHistoryResponse{Messages: []dto.MessageResponse{}}, nil
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversation.Id},
		specification.HistoryOrder{},
	)
	if err != nil {
		return nil, apperror.Internal("failed to load messages", err)
	}

	return &dto.ChatHistoryResponse{Messages: dto.NewMessageResponses(messages)}, nil
}

func (s *chatService) PostMessage(ctx context.Context, jobId uuid.UUID, sessionId string, text string) (*dto.SendMessageResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperror.InvalidInput("message is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	job, err := uow.JobRepository().FindOne(ctx, specification.ByID{ID: jobId}, specification.WithCompany{})
	if err != nil {
		return nil, apperror.Internal("failed to load job", err)
	}
	if job == nil {
		return nil, apperror.NotFound("job not found")
	}
	if job.Company == nil {
		return nil, apperror.Internal("job has no company", nil)
	}

	// One turn at a time per conversation: a second post to the same
	// (job, session) pair waits for the first to finish.
	lock := s.lockRepo.Get(jobId.String() + ":" + sessionId)
	lock.Lock()
	defer lock.Unlock()

	if s.cfg.RollbackUserTurn {
		if err := uow.Begin(ctx); err != nil {
			return nil, apperror.Internal("failed to start transaction", err)
		}
	}

	assistantMsg, err := s.recordTurn(ctx, uow, job, sessionId, text)
	if err != nil {
		if s.cfg.RollbackUserTurn {
			if rbErr := uow.Rollback(); rbErr != nil {
				s.log.Error("chat_service", "rollback failed", map[string]interface{}{
					"error": rbErr.Error(),
				})
			}
		}
		return nil, err
	}

	if s.cfg.RollbackUserTurn {
		if err := uow.Commit(); err != nil {
			return nil, apperror.Internal("failed to commit chat turn", err)
		}
	}

	s.publishTurn(ctx, assistantMsg)

	resp := dto.NewMessageResponse(assistantMsg)
	return &dto.SendMessageResponse{Message: resp}, nil
}

// recordTurn runs the storage-and-collaborator part of a chat turn against
// the given unit of work (plain or transactional).
func (s *chatService) recordTurn(ctx context.Context, uow unitofwork.UnitOfWork, job *entity.Job, sessionId, text string) (*entity.Message, error) {
	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByJobAndSession{
		JobID:     job.Id,
		SessionID: sessionId,
	})
	if err != nil {
		return nil, apperror.Internal("failed to load conversation", err)
	}
	if conversation == nil {
		conversation = &entity.Conversation{
			Id:        uuid.New(),
			JobId:     job.Id,
			SessionId: sessionId,
			CreatedAt: time.Now(),
		}
		if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
			return nil, apperror.Internal("failed to create conversation", err)
		}
	}

	history, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversation.Id},
		specification.HistoryOrder{},
	)
	if err != nil {
		return nil, apperror.Internal("failed to load messages", err)
	}

	userMsg := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           constant.RoleUser,
		Content:        text,
		CreatedAt:      time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, userMsg); err != nil {
		return nil, apperror.Internal("failed to store message", err)
	}

	answer, err := s.askAssistant(ctx, job, history, text)
	if err != nil {
		s.log.Error("chat_service", "assistant call failed", map[string]interface{}{
			"job_id": job.Id.String(),
			"error":  err.Error(),
		})
		return nil, apperror.Collaborator("failed to process chat message", err)
	}

	assistantMsg := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           constant.RoleAssistant,
		Content:        answer,
		CreatedAt:      time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, assistantMsg); err != nil {
		return nil, apperror.Internal("failed to store message", err)
	}

	return assistantMsg, nil
}

func (s *chatService) askAssistant(ctx context.Context, job *entity.Job, history []*entity.Message, text string) (string, error) {
	if s.cfg.HistoryLimit > 0 && len(history) > s.cfg.HistoryLimit {
		history = history[len(history)-s.cfg.HistoryLimit:]
	}

	entries := make([]prompt.HistoryEntry, 0, len(history))
	for _, m := range history {
		entries = append(entries, prompt.HistoryEntry{Role: m.Role, Content: m.Content})
	}

	builder := prompt.NewBuilder(newJobContext(job), newCompanyContext(job.Company), entries, text)

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.ReplyTimeout)
	defer cancel()

	return s.llmProvider.Generate(callCtx, builder.Build())
}

// publishTurn fires the recorded-turn event on both buses. Failures are
// logged, never surfaced: the reply is already durable.
func (s *chatService) publishTurn(ctx context.Context, msg *entity.Message) {
	payload := dto.ChatTurnRecordedMessage{
		ConversationId: msg.ConversationId,
		MessageId:      msg.Id,
	}

	if raw, err := json.Marshal(payload); err == nil {
		if err := s.publisherService.Publish(ctx, raw); err != nil {
			s.log.Warn("chat_service", "failed to publish turn on bus", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	event := events.BaseEvent{
		Type: constant.EventChatTurnRecorded,
		Data: map[string]interface{}{
			"conversationId": msg.ConversationId.String(),
			"messageId":      msg.Id.String(),
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.log.Warn("chat_service", "failed to publish turn to nats", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func newJobContext(job *entity.Job) prompt.JobContext {
	return prompt.JobContext{
		Id:               job.Id.String(),
		Title:            job.Title,
		Description:      job.Description,
		Requirements:     job.Requirements,
		Responsibilities: job.Responsibilities,
		Perks:            job.Perks,
		Benefits:         job.Benefits,
		Locations:        newLocationContexts(job.Locations),
		Url:              job.Url,
		RemotePolicy:     job.RemotePolicy,
		EmploymentType:   job.EmploymentType,
		DaysPerWeek:      job.DaysPerWeek,
		TechStack:        job.TechStack,
		CreatedAt:        job.CreatedAt,
		UpdatedAt:        job.UpdatedAt,
	}
}

func newCompanyContext(company *entity.Company) prompt.CompanyContext {
	ctx := prompt.CompanyContext{
		Id:            company.Id.String(),
		Name:          company.Name,
		Description:   company.Description,
		Locations:     newLocationContexts(company.Locations),
		Url:           company.Url,
		CompanySize:   company.CompanySize,
		OwnershipType: company.OwnershipType,
		FundingType:   company.FundingType,
	}
	if company.AmountRaised != nil {
		ctx.AmountRaised = formatAmountRaised(*company.AmountRaised)
	}
	if company.LastRoundLetter != nil {
		ctx.LastRoundLetter = *company.LastRoundLetter
	}
	return ctx
}

func formatAmountRaised(amount int64) string {
	return "$" + strconv.FormatInt(amount, 10)
}

func newLocationContexts(locs []entity.Location) []prompt.LocationContext {
	out := make([]prompt.LocationContext, 0, len(locs))
	for _, l := range locs {
		out = append(out, prompt.LocationContext{City: l.City, State: l.State})
	}
	return out
}
