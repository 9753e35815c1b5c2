package handler

import (
	"context"
	"testing"

	"jeopardy/internal/domain"
	"jeopardy/internal/service"
	"jeopardy/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

// fakeContext implements the parts of tele.Context the cell handlers use
type fakeContext struct {
	tele.Context
	chat      *tele.Chat
	sender    *tele.User
	callback  *tele.Callback
	edits     []interface{}
	sent      []interface{}
	responses []*tele.CallbackResponse
}

func (f *fakeContext) Chat() *tele.Chat         { return f.chat }
func (f *fakeContext) Sender() *tele.User       { return f.sender }
func (f *fakeContext) Callback() *tele.Callback { return f.callback }

func (f *fakeContext) Edit(what interface{}, opts ...interface{}) error {
	f.edits = append(f.edits, what)
	return nil
}

func (f *fakeContext) Send(what interface{}, opts ...interface{}) error {
	f.sent = append(f.sent, what)
	return nil
}

func (f *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	f.responses = append(f.responses, resp...)
	return nil
}

func newCellContext(data string) *fakeContext {
	return &fakeContext{
		chat:     &tele.Chat{ID: 7},
		sender:   &tele.User{ID: 7},
		callback: &tele.Callback{ID: "cb", Unique: btnCell.Unique, Data: data},
	}
}

func newTestHandler(t *testing.T, started bool) *Handler {
	t.Helper()
	logger := testutil.NewTestLogger()

	source := new(testutil.MockCategorySource)
	source.On("SelectCategoryIdentifiers", 1).Return([]int{1})
	source.On("FetchCategory", mock.Anything, 1).Return(domain.NewCategory(1, "Math", []domain.ClueData{
		{Question: "2+2", Answer: "4"},
	}), nil)

	repo := new(testutil.MockGameRepository)
	repo.On("RecordGame", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	games := service.NewGameService(source, service.NewBoardService(source, 2, logger), repo, 1, logger)
	if started {
		_, err := games.Start(context.Background(), ownerKey(7))
		require.NoError(t, err)
	}

	return NewHandler(nil, nil, games, logger)
}

func TestHandleCell_RevealSequence(t *testing.T) {
	h := newTestHandler(t, true)

	c := newCellContext("0|0")
	require.NoError(t, h.handleCell(c))
	require.Len(t, c.edits, 1)
	assert.Contains(t, c.edits[0], "❔ Question: 2+2")

	c = newCellContext("0|0")
	require.NoError(t, h.handleCell(c))
	require.Len(t, c.edits, 1)
	assert.Contains(t, c.edits[0], "✅ Answer: 4")

	c = newCellContext("0|0")
	require.NoError(t, h.handleCell(c))
	assert.Empty(t, c.edits)
	require.Len(t, c.responses, 1)
	assert.Equal(t, "Already answered", c.responses[0].Text)
}

func TestHandleCell_Errors(t *testing.T) {
	tests := []struct {
		name     string
		started  bool
		data     string
		expected string
	}{
		{name: "bad payload", started: true, data: "x", expected: "Unknown cell"},
		{name: "missing clue", started: true, data: "1|0", expected: "No clue here"},
		{name: "outside board", started: true, data: "9|9", expected: "No clue here"},
		{name: "no session", started: false, data: "0|0", expected: "This board has expired, tap Restart"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, tt.started)
			c := newCellContext(tt.data)

			require.NoError(t, h.handleCell(c))
			assert.Empty(t, c.edits)
			require.Len(t, c.responses, 1)
			assert.Equal(t, tt.expected, c.responses[0].Text)
		})
	}
}

func TestHandleTitle(t *testing.T) {
	h := newTestHandler(t, true)

	c := newCellContext("0")
	c.callback.Unique = btnTitle.Unique
	require.NoError(t, h.handleTitle(c))
	require.Len(t, c.responses, 1)
	assert.Equal(t, "Math", c.responses[0].Text)
	assert.True(t, c.responses[0].ShowAlert)
}
