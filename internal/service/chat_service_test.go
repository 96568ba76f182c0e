package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-be/internal/config"
	"jobboard-be/internal/constant"
	"jobboard-be/internal/entity"
	"jobboard-be/internal/pkg/apperror"
	"jobboard-be/internal/repository/contract"
	"jobboard-be/internal/repository/memory"
	"jobboard-be/internal/repository/specification"
	"jobboard-be/internal/repository/unitofwork"
	"jobboard-be/pkg/llm"
)

// --- In-memory fakes ------------------------------------------------------

type fakeStore struct {
	jobs          map[uuid.UUID]*entity.Job
	conversations []*entity.Conversation
	messages      []*entity.Message
	seq           int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{jobs: make(map[uuid.UUID]*entity.Job)}
}

func (s *fakeStore) snapshot() ([]*entity.Conversation, []*entity.Message, int64) {
	convs := append([]*entity.Conversation{}, s.conversations...)
	msgs := append([]*entity.Message{}, s.messages...)
	return convs, msgs, s.seq
}

type fakeJobRepo struct{ store *fakeStore }

func (r *fakeJobRepo) Create(_ context.Context, job *entity.Job) error {
	r.store.jobs[job.Id] = job
	return nil
}

func (r *fakeJobRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Job, error) {
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			return r.store.jobs[byID.ID], nil
		}
	}
	return nil, nil
}

func (r *fakeJobRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.Job, error) {
	var out []*entity.Job
	for _, j := range r.store.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (r *fakeJobRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.store.jobs)), nil
}

type fakeConversationRepo struct{ store *fakeStore }

func (r *fakeConversationRepo) Create(_ context.Context, c *entity.Conversation) error {
	r.store.conversations = append(r.store.conversations, c)
	return nil
}

func (r *fakeConversationRepo) Update(_ context.Context, c *entity.Conversation) error {
	for i, existing := range r.store.conversations {
		if existing.Id == c.Id {
			r.store.conversations[i] = c
			return nil
		}
	}
	return nil
}

func (r *fakeConversationRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByJobAndSession:
			for _, c := range r.store.conversations {
				if c.JobId == sp.JobID && c.SessionId == sp.SessionID {
					return c, nil
				}
			}
			return nil, nil
		case specification.ByID:
			for _, c := range r.store.conversations {
				if c.Id == sp.ID {
					return c, nil
				}
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *fakeConversationRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.store.conversations)), nil
}

type fakeMessageRepo struct{ store *fakeStore }

func (r *fakeMessageRepo) Create(_ context.Context, m *entity.Message) error {
	r.store.seq++
	m.Seq = r.store.seq
	r.store.messages = append(r.store.messages, m)
	return nil
}

func (r *fakeMessageRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	var conversationId uuid.UUID
	for _, spec := range specs {
		if sp, ok := spec.(specification.ByConversationID); ok {
			conversationId = sp.ConversationID
		}
	}

	var out []*entity.Message
	for _, m := range r.store.messages {
		if m.ConversationId == conversationId {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Seq < out[j].Seq
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeMessageRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.store.messages)), nil
}

type fakeUnitOfWork struct {
	store *fakeStore

	txConvs []*entity.Conversation
	txMsgs  []*entity.Message
	txSeq   int64
	inTx    bool
}

func (u *fakeUnitOfWork) Begin(_ context.Context) error {
	u.txConvs, u.txMsgs, u.txSeq = u.store.snapshot()
	u.inTx = true
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	u.inTx = false
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	if u.inTx {
		u.store.conversations = u.txConvs
		u.store.messages = u.txMsgs
		u.store.seq = u.txSeq
		u.inTx = false
	}
	return nil
}

func (u *fakeUnitOfWork) CompanyRepository() contract.CompanyRepository { return nil }
func (u *fakeUnitOfWork) JobRepository() contract.JobRepository         { return &fakeJobRepo{u.store} }
func (u *fakeUnitOfWork) ConversationRepository() contract.ConversationRepository {
	return &fakeConversationRepo{u.store}
}
func (u *fakeUnitOfWork) MessageRepository() contract.MessageRepository {
	return &fakeMessageRepo{u.store}
}

type fakeFactory struct{ store *fakeStore }

func (f *fakeFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

type fakeLLM struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeLLM) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return f.reply, f.err
}

func (f *fakeLLM) Generate(_ context.Context, prompt string, _ ...llm.Option) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

type fakeBusPublisher struct{ payloads [][]byte }

func (f *fakeBusPublisher) Publish(_ context.Context, payload []byte) error {
	f.payloads = append(f.payloads, payload)
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

// --- Fixtures -------------------------------------------------------------

func seedJobFixture(store *fakeStore) *entity.Job {
	company := &entity.Company{
		Id:          uuid.New(),
		Name:        "TechFlow Analytics",
		Description: "Analytics platform.",
	}
	job := &entity.Job{
		Id:             uuid.New(),
		Title:          "Senior Platform Engineer",
		Description:    "Run the platform.",
		CompanyId:      company.Id,
		RemotePolicy:   entity.RemotePolicyRemote,
		EmploymentType: entity.EmploymentFullTime,
		TechStack:      []string{"Go"},
		CreatedAt:      time.Now(),
		Company:        company,
	}
	store.jobs[job.Id] = job
	return job
}

func newChatServiceForTest(store *fakeStore, provider llm.LLMProvider, bus IPublisherService, cfg config.ChatConfig) IChatService {
	if cfg.ReplyTimeout == 0 {
		cfg.ReplyTimeout = time.Second
	}
	return NewChatService(
		&fakeFactory{store: store},
		memory.NewLockRepository(),
		provider,
		bus,
		nil, // no external broker in tests
		cfg,
		noopLogger{},
	)
}

// --- Tests ----------------------------------------------------------------

func TestPostMessageRecordsOrderedTurns(t *testing.T) {
	store := newFakeStore()
	job := seedJobFixture(store)
	provider := &fakeLLM{reply: "the assistant answer"}
	bus := &fakeBusPublisher{}
	svc := newChatServiceForTest(store, provider, bus, config.ChatConfig{})

	ctx := context.Background()
	sessionId := uuid.NewString()

	first, err := svc.PostMessage(ctx, job.Id, sessionId, "What is the stack?")
	require.NoError(t, err)
	assert.Equal(t, constant.RoleAssistant, first.Message.Role)
	assert.Equal(t, "the assistant answer", first.Message.Content)

	_, err = svc.PostMessage(ctx, job.Id, sessionId, "Is it remote?")
	require.NoError(t, err)

	history, err := svc.GetHistory(ctx, job.Id, sessionId)
	require.NoError(t, err)
	require.Len(t, history.Messages, 4)

	var roles, contents []string
	for _, m := range history.Messages {
		roles = append(roles, m.Role)
		contents = append(contents, m.Content)
	}
	assert.Equal(t, []string{
		constant.RoleUser, constant.RoleAssistant, constant.RoleUser, constant.RoleAssistant,
	}, roles)
	assert.Equal(t, "What is the stack?", contents[0])
	assert.Equal(t, "Is it remote?", contents[2])

	// Both turns landed in the same conversation.
	assert.Len(t, store.conversations, 1)

	// One bus event per recorded turn.
	assert.Len(t, bus.payloads, 2)
}

func TestPostMessageUnknownJob(t *testing.T) {
	store := newFakeStore()
	seedJobFixture(store)
	svc := newChatServiceForTest(store, &fakeLLM{reply: "x"}, &fakeBusPublisher{}, config.ChatConfig{})

	_, err := svc.PostMessage(context.Background(), uuid.New(), uuid.NewString(), "hello")
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeNotFound))

	// No conversation or message may exist for the unknown job.
	assert.Empty(t, store.conversations)
	assert.Empty(t, store.messages)
}

func TestPostMessageBlankMessage(t *testing.T) {
	store := newFakeStore()
	job := seedJobFixture(store)
	provider := &fakeLLM{reply: "x"}
	svc := newChatServiceForTest(store, provider, &fakeBusPublisher{}, config.ChatConfig{})

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.PostMessage(context.Background(), job.Id, uuid.NewString(), text)
		require.Error(t, err)
		assert.True(t, apperror.IsCode(err, apperror.CodeInvalidInput))
	}

	assert.Empty(t, store.messages)
	assert.Empty(t, provider.prompts, "collaborator must not be called for blank input")
}

func TestPostMessageCollaboratorFailureKeepsUserTurn(t *testing.T) {
	store := newFakeStore()
	job := seedJobFixture(store)
	provider := &fakeLLM{err: errors.New("upstream 503")}
	svc := newChatServiceForTest(store, provider, &fakeBusPublisher{}, config.ChatConfig{})

	_, err := svc.PostMessage(context.Background(), job.Id, uuid.NewString(), "hello")
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeCollaborator))

	// Default policy: the question stays even though no answer arrived.
	require.Len(t, store.messages, 1)
	assert.Equal(t, constant.RoleUser, store.messages[0].Role)
	assert.Len(t, store.conversations, 1)
}

func TestPostMessageCollaboratorFailureRollsBackWhenConfigured(t *testing.T) {
	store := newFakeStore()
	job := seedJobFixture(store)
	provider := &fakeLLM{err: errors.New("upstream 503")}
	svc := newChatServiceForTest(store, provider, &fakeBusPublisher{}, config.ChatConfig{
		RollbackUserTurn: true,
	})

	_, err := svc.PostMessage(context.Background(), job.Id, uuid.NewString(), "hello")
	require.Error(t, err)

	assert.Empty(t, store.messages)
	assert.Empty(t, store.conversations)
}

func TestPostMessagePromptCarriesContextAndHistory(t *testing.T) {
	store := newFakeStore()
	job := seedJobFixture(store)
	provider := &fakeLLM{reply: "answer one"}
	svc := newChatServiceForTest(store, provider, &fakeBusPublisher{}, config.ChatConfig{})

	ctx := context.Background()
	sessionId := uuid.NewString()

	_, err := svc.PostMessage(ctx, job.Id, sessionId, "first question")
	require.NoError(t, err)
	_, err = svc.PostMessage(ctx, job.Id, sessionId, "second question")
	require.NoError(t, err)

	require.Len(t, provider.prompts, 2)
	assert.Contains(t, provider.prompts[0], "Senior Platform Engineer")
	assert.Contains(t, provider.prompts[0], "TechFlow Analytics")
	assert.Contains(t, provider.prompts[0], "No previous conversation yet.")

	// The second prompt sees the first exchange but not its own question
	// duplicated into the history block.
	assert.Contains(t, provider.prompts[1], "first question")
	assert.Contains(t, provider.prompts[1], "answer one")
}

func TestGetHistoryWithoutConversation(t *testing.T) {
	store := newFakeStore()
	job := seedJobFixture(store)
	svc := newChatServiceForTest(store, &fakeLLM{reply: "x"}, &fakeBusPublisher{}, config.ChatConfig{})

	history, err := svc.GetHistory(context.Background(), job.Id, uuid.NewString())
	require.NoError(t, err)
	assert.NotNil(t, history.Messages)
	assert.Empty(t, history.Messages)

	// Unknown jobs are indistinguishable from never-chatted ones.
	history, err = svc.GetHistory(context.Background(), uuid.New(), uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, history.Messages)
}

func TestDistinctSessionsGetDistinctConversations(t *testing.T) {
	store := newFakeStore()
	job := seedJobFixture(store)
	svc := newChatServiceForTest(store, &fakeLLM{reply: "x"}, &fakeBusPublisher{}, config.ChatConfig{})

	ctx := context.Background()
	_, err := svc.PostMessage(ctx, job.Id, "session-a", "hello from a")
	require.NoError(t, err)
	_, err = svc.PostMessage(ctx, job.Id, "session-b", "hello from b")
	require.NoError(t, err)

	assert.Len(t, store.conversations, 2)

	historyA, err := svc.GetHistory(ctx, job.Id, "session-a")
	require.NoError(t, err)
	require.Len(t, historyA.Messages, 2)
	assert.Equal(t, "hello from a", historyA.Messages[0].Content)
}
