package dispatcher

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"proposal_governance_system/internal/governance"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingDispatcher struct {
	outcomes []Outcome
	err      error
}

func (d *recordingDispatcher) Dispatch(_ context.Context, outcome Outcome) error {
	d.outcomes = append(d.outcomes, outcome)
	return d.err
}

type recordingNotifier struct {
	calls int
	err   error
}

func (n *recordingNotifier) Notify(context.Context, Outcome) error {
	n.calls++
	return n.err
}

var approved = Outcome{
	ProposalID: "3f1c2a5e-8a0d-4a53-9a51-2c0c0f6f7d10",
	Subject:    "shared-drive",
	Decision:   governance.DecisionApproved,
	Method:     governance.MethodExecutiveConsensus,
	Reasoning:  "Executive consensus: 3 of 5 executives approved.",
}

func TestFunctionFor(t *testing.T) {
	assert.Equal(t, FunctionImplementApproved, FunctionFor(governance.DecisionApproved))
	assert.Equal(t, FunctionRejectionFeedback, FunctionFor(governance.DecisionRejected))
}

func TestFunctionsDispatcher_Dispatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/"+FunctionImplementApproved, r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, approved.ProposalID, body["proposal_id"])
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	err := NewFunctionsDispatcher(server.URL+"/", "token").Dispatch(context.Background(), approved)
	assert.NoError(t, err)
}

func TestFunctionsDispatcher_RetriesThenFails(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	dispatcher := NewFunctionsDispatcher(server.URL, "")
	dispatcher.retryDelay = time.Millisecond

	err := dispatcher.Dispatch(context.Background(), approved)
	assert.Error(t, err)
	assert.Equal(t, int32(functionAttempts), atomic.LoadInt32(&calls))
}

func TestFunctionsDispatcher_ClientErrorIsFinal(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	dispatcher := NewFunctionsDispatcher(server.URL, "")
	dispatcher.retryDelay = time.Millisecond

	assert.Error(t, dispatcher.Dispatch(context.Background(), approved))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestChain_NotifierFailureDoesNotFailDispatch(t *testing.T) {
	collaborator := &recordingDispatcher{}
	failing := &recordingNotifier{err: errors.New("chat unavailable")}
	working := &recordingNotifier{}

	chain := NewChain(collaborator, zap.NewNop().Sugar(), failing, working)

	require.NoError(t, chain.Dispatch(context.Background(), approved))
	assert.Len(t, collaborator.outcomes, 1)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, working.calls)
}

func TestChain_CollaboratorFailureSkipsNotifiers(t *testing.T) {
	collaborator := &recordingDispatcher{err: errors.New("downstream down")}
	notifier := &recordingNotifier{}

	chain := NewChain(collaborator, zap.NewNop().Sugar(), notifier)

	assert.Error(t, chain.Dispatch(context.Background(), approved))
	assert.Equal(t, 0, notifier.calls)
}

type fakeTelegram struct {
	sent []tgbotapi.Chattable
}

func (f *fakeTelegram) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func TestTelegramNotifier_Notify(t *testing.T) {
	bot := &fakeTelegram{}
	notifier := &TelegramNotifier{bot: bot, chatID: -100}

	require.NoError(t, notifier.Notify(context.Background(), approved))
	require.Len(t, bot.sent, 1)

	message := bot.sent[0].(tgbotapi.MessageConfig)
	assert.Equal(t, int64(-100), message.ChatID)
	assert.Contains(t, message.Text, "Proposal shared-drive: Approved (executive_consensus)")
}

func TestDiscordNotifier_Notify(t *testing.T) {
	var channel, content string
	notifier := &DiscordNotifier{
		send: func(channelID, text string) error {
			channel, content = channelID, text
			return nil
		},
		channelID: "42",
	}

	require.NoError(t, notifier.Notify(context.Background(), approved))
	assert.Equal(t, "42", channel)
	assert.Contains(t, content, approved.Reasoning)
}

type fakeStream struct {
	args *redis.XAddArgs
}

func (f *fakeStream) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.args = a
	return redis.NewStringResult("1-0", nil)
}

func TestRedisNotifier_Notify(t *testing.T) {
	stream := &fakeStream{}
	notifier := &RedisNotifier{client: stream, stream: "governance.decisions"}

	require.NoError(t, notifier.Notify(context.Background(), approved))
	require.NotNil(t, stream.args)
	assert.Equal(t, "governance.decisions", stream.args.Stream)

	values := stream.args.Values.(map[string]interface{})
	assert.Equal(t, "approved", values["decision"])
	assert.Equal(t, approved.ProposalID, values["proposal_id"])
}
