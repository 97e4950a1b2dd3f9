package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoster/internal/domain"
	"todoster/internal/testutil"
)

func str(s string) *string {
	return &s
}

func TestEditTask_Execute_UpdateText(t *testing.T) {
	repo := testutil.NewMockTaskRepository(domain.NewTask("Original text", days(2)))
	uc := NewEditTask(repo, &testutil.MockClock{NowTime: testNow})

	out, err := uc.Execute(context.Background(), EditTaskInput{
		Index: 0,
		Text:  str("Updated text"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Updated text", out.Task.Text)
	require.NotNil(t, out.Task.RepeatDays, "repeat untouched when not supplied")
	assert.Equal(t, int64(2), *out.Task.RepeatDays)
	assert.Equal(t, "Updated text", repo.Items[0].Text)
}

func TestEditTask_Execute_UpdateRepeat(t *testing.T) {
	repo := testutil.NewMockTaskRepository(domain.NewTask("task", nil))
	uc := NewEditTask(repo, &testutil.MockClock{NowTime: testNow})

	out, err := uc.Execute(context.Background(), EditTaskInput{
		Index:      0,
		RepeatDays: days(7),
	})

	require.NoError(t, err)
	require.NotNil(t, out.Task.RepeatDays)
	assert.Equal(t, int64(7), *out.Task.RepeatDays)
	assert.Equal(t, "task", out.Task.Text, "text untouched when not supplied")
}

func TestEditTask_Execute_ClearRepeat(t *testing.T) {
	repo := testutil.NewMockTaskRepository(domain.NewTask("task", days(3)))
	uc := NewEditTask(repo, &testutil.MockClock{NowTime: testNow})

	out, err := uc.Execute(context.Background(), EditTaskInput{
		Index:       0,
		ClearRepeat: true,
	})

	require.NoError(t, err)
	assert.Nil(t, out.Task.RepeatDays)
	assert.Nil(t, repo.Items[0].RepeatDays)
}

func TestEditTask_Execute_ClearRepeatWinsOverNewRepeat(t *testing.T) {
	repo := testutil.NewMockTaskRepository(domain.NewTask("task", days(3)))
	uc := NewEditTask(repo, &testutil.MockClock{NowTime: testNow})

	out, err := uc.Execute(context.Background(), EditTaskInput{
		Index:       0,
		RepeatDays:  days(7),
		ClearRepeat: true,
	})

	require.NoError(t, err)
	assert.Nil(t, out.Task.RepeatDays)
}

func TestEditTask_Execute_RejectsNonPositiveRepeat(t *testing.T) {
	repo := testutil.NewMockTaskRepository(domain.NewTask("task", nil))
	uc := NewEditTask(repo, &testutil.MockClock{NowTime: testNow})

	_, err := uc.Execute(context.Background(), EditTaskInput{
		Index:      0,
		RepeatDays: days(0),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRepeat)
	assert.False(t, repo.Saved)
}

func TestEditTask_Execute_OutOfRange(t *testing.T) {
	repo := testutil.NewMockTaskRepository(domain.NewTask("only", nil))
	uc := NewEditTask(repo, &testutil.MockClock{NowTime: testNow})

	_, err := uc.Execute(context.Background(), EditTaskInput{
		Index: 3,
		Text:  str("nope"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	assert.Equal(t, "only", repo.Items[0].Text)
	assert.False(t, repo.Saved)
}
