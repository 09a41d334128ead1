package service

import (
	"sort"
	"strings"

	"eduportal-backend/internal/apps/faq/models"
)

// UncategorizedHeading labels the bucket that collects questions with no
// category reference.
const UncategorizedHeading = "Uncategorized"

// QuestionRow is one join-denormalized row feeding the aggregator. Category
// fields are nil when the question has no (or an orphaned) category.
type QuestionRow struct {
	ID               uint
	Title            string
	Description      string
	CategoryID       *uint
	CategoryHeading  string
	CategoryPriority *int
}

// FaqItem is one question/answer pair in a bucket
type FaqItem struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CategoryBucket is a category-grouped, client-ready collection of FAQ items
type CategoryBucket struct {
	Category string    `json:"category"`
	CatID    string    `json:"cat_id"`
	Priority int       `json:"priority"`
	Items    []FaqItem `json:"items"`
}

// slugify lower-cases a heading and collapses runs of whitespace to single
// hyphens. Deliberately ASCII-oriented; not a full normalizer.
func slugify(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

// Aggregate folds flat question rows into category buckets. Buckets are
// created lazily, so a category with no questions never appears. Grouping is
// keyed by category id (nil collapses into the synthetic Uncategorized
// bucket), with the heading carried as a display attribute; item order within
// a bucket preserves row order. When sortByPriority is set, buckets are
// stably sorted ascending by priority, ties keeping first-encountered order;
// otherwise bucket order is insertion order.
func Aggregate(rows []QuestionRow, sortByPriority bool) []CategoryBucket {
	// Key 0 is reserved for the uncategorized bucket; real ids start at 1.
	index := make(map[uint]int)
	buckets := make([]CategoryBucket, 0)

	for _, row := range rows {
		var key uint
		heading := UncategorizedHeading
		priority := models.DefaultPriority

		if row.CategoryID != nil {
			key = *row.CategoryID
			heading = row.CategoryHeading
			if heading == "" {
				heading = UncategorizedHeading
			}
			if row.CategoryPriority != nil {
				priority = *row.CategoryPriority
			}
		}

		pos, ok := index[key]
		if !ok {
			pos = len(buckets)
			index[key] = pos
			buckets = append(buckets, CategoryBucket{
				Category: heading,
				CatID:    slugify(heading),
				Priority: priority,
				Items:    []FaqItem{},
			})
		}

		buckets[pos].Items = append(buckets[pos].Items, FaqItem{
			ID:       row.ID,
			Question: row.Title,
			Answer:   row.Description,
		})
	}

	if sortByPriority {
		sort.SliceStable(buckets, func(i, j int) bool {
			return buckets[i].Priority < buckets[j].Priority
		})
	}

	return buckets
}
