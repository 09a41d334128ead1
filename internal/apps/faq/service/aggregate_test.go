package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int    { return &v }

func row(id uint, title string, catID *uint, heading string, pri *int) QuestionRow {
	return QuestionRow{
		ID:               id,
		Title:            title,
		Description:      "answer to " + title,
		CategoryID:       catID,
		CategoryHeading:  heading,
		CategoryPriority: pri,
	}
}

func TestAggregate_GroupingDeterminism(t *testing.T) {
	rows := []QuestionRow{
		row(1, "q1", uintPtr(10), "A", intPtr(2)),
		row(2, "q2", uintPtr(20), "B", intPtr(1)),
		row(3, "q3", uintPtr(10), "A", intPtr(2)),
	}

	buckets := Aggregate(rows, true)
	require.Len(t, buckets, 2)

	assert.Equal(t, "B", buckets[0].Category)
	assert.Equal(t, 1, buckets[0].Priority)

	assert.Equal(t, "A", buckets[1].Category)
	require.Len(t, buckets[1].Items, 2)
	assert.Equal(t, "q1", buckets[1].Items[0].Question)
	assert.Equal(t, "q3", buckets[1].Items[1].Question)
}

func TestAggregate_NullCategory(t *testing.T) {
	rows := []QuestionRow{
		row(1, "q1", nil, "", nil),
		row(2, "q2", uintPtr(10), "Admissions", intPtr(1)),
	}

	buckets := Aggregate(rows, true)
	require.Len(t, buckets, 2)

	assert.Equal(t, "Admissions", buckets[0].Category)

	uncat := buckets[1]
	assert.Equal(t, UncategorizedHeading, uncat.Category)
	assert.Equal(t, "uncategorized", uncat.CatID)
	assert.Equal(t, 999, uncat.Priority)
	require.Len(t, uncat.Items, 1)
	assert.Equal(t, "q1", uncat.Items[0].Question)
}

func TestAggregate_StableTieOrder(t *testing.T) {
	rows := []QuestionRow{
		row(1, "q1", uintPtr(1), "First Seen", intPtr(5)),
		row(2, "q2", uintPtr(2), "Second Seen", intPtr(5)),
		row(3, "q3", uintPtr(3), "Wins", intPtr(1)),
	}

	buckets := Aggregate(rows, true)
	require.Len(t, buckets, 3)
	assert.Equal(t, "Wins", buckets[0].Category)
	assert.Equal(t, "First Seen", buckets[1].Category)
	assert.Equal(t, "Second Seen", buckets[2].Category)
}

func TestAggregate_InsertionOrderWithoutPriority(t *testing.T) {
	rows := []QuestionRow{
		row(1, "q1", uintPtr(2), "Zeta", nil),
		row(2, "q2", uintPtr(1), "Alpha", nil),
	}

	buckets := Aggregate(rows, false)
	require.Len(t, buckets, 2)
	assert.Equal(t, "Zeta", buckets[0].Category)
	assert.Equal(t, "Alpha", buckets[1].Category)
}

// Two category rows sharing a heading used to merge when grouping was keyed
// by label. Grouping by id keeps them separate.
func TestAggregate_DuplicateHeadingsStaySeparate(t *testing.T) {
	rows := []QuestionRow{
		row(1, "q1", uintPtr(10), "Fees", intPtr(1)),
		row(2, "q2", uintPtr(20), "Fees", intPtr(2)),
	}

	buckets := Aggregate(rows, true)
	require.Len(t, buckets, 2)
	assert.Equal(t, "Fees", buckets[0].Category)
	assert.Equal(t, "Fees", buckets[1].Category)
	assert.Equal(t, "fees", buckets[0].CatID)
}

func TestAggregate_SlugAndEmptyInput(t *testing.T) {
	t.Run("slug collapses whitespace runs", func(t *testing.T) {
		rows := []QuestionRow{
			row(1, "q1", uintPtr(1), "  Placement   And\tSalary  ", intPtr(1)),
		}
		buckets := Aggregate(rows, true)
		require.Len(t, buckets, 1)
		assert.Equal(t, "placement-and-salary", buckets[0].CatID)
	})

	t.Run("no rows yields no buckets", func(t *testing.T) {
		assert.Empty(t, Aggregate(nil, true))
	})
}
