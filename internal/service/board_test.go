package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"jeopardy/internal/domain"
	"jeopardy/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBoardService_BuildBoard(t *testing.T) {
	ids := []int{10, 20, 30, 40, 50, 60}

	source := new(testutil.MockCategorySource)
	var order []int
	for _, id := range ids {
		id := id
		source.On("FetchCategory", mock.Anything, id).
			Run(func(args mock.Arguments) { order = append(order, id) }).
			Return(testutil.NewTestCategory(id, fmt.Sprintf("cat %d", id), 5), nil).
			Once()
	}

	service := NewBoardService(source, 5, testutil.NewTestLogger())

	board, err := service.BuildBoard(context.Background(), ids)
	require.NoError(t, err)
	require.NotNil(t, board)

	assert.Equal(t, 6, board.Width())
	assert.Equal(t, 5, board.Height())
	assert.Equal(t, ids, board.CategoryIDs())
	assert.Equal(t, ids, order)

	for col := 0; col < board.Width(); col++ {
		for row := 0; row < board.Height(); row++ {
			clue, err := board.CellAt(row, col)
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("q%d-%d", ids[col], row), clue.Question)
			assert.Equal(t, domain.RevealHidden, clue.Showing)
		}
	}

	source.AssertExpectations(t)
}

func TestBoardService_BuildBoardFailure(t *testing.T) {
	ids := []int{1, 2, 3, 4, 5, 6}
	fetchErr := &domain.FetchError{CategoryID: 3, Err: errors.New("boom")}

	source := new(testutil.MockCategorySource)
	source.On("FetchCategory", mock.Anything, 1).Return(testutil.NewTestCategory(1, "one", 5), nil)
	source.On("FetchCategory", mock.Anything, 2).Return(testutil.NewTestCategory(2, "two", 5), nil)
	source.On("FetchCategory", mock.Anything, 3).Return(nil, fetchErr)

	service := NewBoardService(source, 5, testutil.NewTestLogger())

	board, err := service.BuildBoard(context.Background(), ids)
	assert.Nil(t, board)

	var buildErr *domain.BoardBuildError
	require.True(t, errors.As(err, &buildErr))
	assert.Equal(t, 2, buildErr.Column)

	var gotFetch *domain.FetchError
	require.True(t, errors.As(err, &gotFetch))
	assert.Equal(t, 3, gotFetch.CategoryID)

	source.AssertExpectations(t)
	source.AssertNotCalled(t, "FetchCategory", mock.Anything, 4)
}

func TestBoardService_BuildBoardShortCategory(t *testing.T) {
	source := new(testutil.MockCategorySource)
	source.On("FetchCategory", mock.Anything, 1).Return(testutil.NewTestCategory(1, "full", 5), nil)
	source.On("FetchCategory", mock.Anything, 2).Return(testutil.NewTestCategory(2, "short", 2), nil)

	service := NewBoardService(source, 5, testutil.NewTestLogger())

	board, err := service.BuildBoard(context.Background(), []int{1, 2})
	require.NoError(t, err)

	_, err = board.CellAt(4, 0)
	assert.NoError(t, err)
	_, err = board.CellAt(1, 1)
	assert.NoError(t, err)
	_, err = board.CellAt(2, 1)
	var idxErr *domain.IndexError
	assert.True(t, errors.As(err, &idxErr))
}

func TestBoardService_BuildBoardDuplicateIDs(t *testing.T) {
	source := new(testutil.MockCategorySource)
	source.On("FetchCategory", mock.Anything, 7).Return(testutil.NewTestCategory(7, "same", 5), nil).Twice()

	service := NewBoardService(source, 5, testutil.NewTestLogger())

	board, err := service.BuildBoard(context.Background(), []int{7, 7})
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7}, board.CategoryIDs())

	// Columns are independent even when they share an identifier
	clue, err := board.CellAt(0, 0)
	require.NoError(t, err)
	clue.Reveal()

	other, err := board.CellAt(0, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.RevealHidden, other.Showing)

	source.AssertExpectations(t)
}
