package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listOf(texts ...string) *TaskList {
	list := &TaskList{}
	for _, text := range texts {
		list.Add(text, nil)
	}
	return list
}

func TestTaskList_Add(t *testing.T) {
	list := &TaskList{}
	list.Add("first", nil)
	list.Add("", days(2)) // empty text is permitted

	require.Equal(t, 2, list.Len())
	assert.Equal(t, "first", list.Items[0].Text)
	assert.Equal(t, "", list.Items[1].Text)
	assert.Equal(t, int64(2), *list.Items[1].RepeatDays)
}

func TestTaskList_Delete_RemovesInDescendingOrder(t *testing.T) {
	tests := []struct {
		name    string
		indices []int
		want    []string
	}{
		{name: "ascending input", indices: []int{0, 2}, want: []string{"b", "d"}},
		{name: "descending input", indices: []int{2, 0}, want: []string{"b", "d"}},
		{name: "adjacent", indices: []int{1, 2}, want: []string{"a", "d"}},
		{name: "everything", indices: []int{0, 1, 2, 3}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := listOf("a", "b", "c", "d")
			list.Delete(tt.indices)

			got := make([]string, 0, list.Len())
			for _, task := range list.Items {
				got = append(got, task.Text)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaskList_AutoResetRepeating(t *testing.T) {
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.Local)

	list := &TaskList{}
	list.Add("due repeat", days(2))
	list.Add("fresh repeat", days(2))
	list.Add("one-off", nil)
	list.Items[0].MarkComplete(now.AddDate(0, 0, -3))
	list.Items[1].MarkComplete(now)
	list.Items[2].MarkComplete(now.AddDate(0, 0, -3))

	list.AutoResetRepeating(now)

	assert.False(t, list.Items[0].Complete, "overdue repeating task resets")
	assert.True(t, list.Items[1].Complete, "freshly completed repeating task stays done")
	assert.True(t, list.Items[2].Complete, "non-repeating task is untouched")
}
