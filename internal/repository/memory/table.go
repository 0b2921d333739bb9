package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"character-chat-be/internal/pkg/apperror"
	"character-chat-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// table adapts one cache to insert / selectWhere / updateWhere over model values of type M.
type table[M any] struct {
	store   *Store
	cache   *cache.Cache
	journal *Journal

	key func(*M) string
	row func(*M) specification.Row
	set func(m *M, column string, value interface{}) error

	// parent, when set, must contain parentKey(m) for an insert to succeed
	parent    *cache.Cache
	parentKey func(*M) string

	onInsert func(m *M, seq int64)
}

func (t *table[M]) insert(ctx context.Context, m *M) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if t.parent != nil {
		if _, found := t.parent.Get(t.parentKey(m)); !found {
			return fmt.Errorf("%w: parent %s", apperror.ErrConstraintViolation, t.parentKey(m))
		}
	}

	seq := t.store.sequence.Add(1)
	if t.onInsert != nil {
		t.onInsert(m, seq)
	}

	key := t.key(m)
	if err := t.cache.Add(key, &entry[M]{seq: seq, value: *m}, cache.NoExpiration); err != nil {
		return fmt.Errorf("duplicate key %s", key)
	}
	t.journal.record(func() { t.cache.Delete(key) })
	return nil
}

func (t *table[M]) updateWhere(ctx context.Context, columns map[string]interface{}, specs ...specification.Specification) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(specs) == 0 {
		return 0, fmt.Errorf("update requires at least one condition")
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	matched := t.scan(specs...)

	// apply every column to a copy first so a bad column leaves the table untouched
	updated := make([]*entry[M], 0, len(matched))
	for _, e := range matched {
		next := &entry[M]{seq: e.seq, value: e.value}
		for column, value := range columns {
			if err := t.set(&next.value, column, value); err != nil {
				return 0, err
			}
		}
		updated = append(updated, next)
	}

	for i, next := range updated {
		previous := matched[i]
		key := t.key(&next.value)
		t.cache.Set(key, next, cache.NoExpiration)
		t.journal.record(func() { t.cache.Set(key, previous, cache.NoExpiration) })
	}
	return int64(len(updated)), nil
}

func (t *table[M]) findAll(ctx context.Context, specs ...specification.Specification) ([]*M, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matched := t.scan(specs...)
	result := make([]*M, len(matched))
	for i, e := range matched {
		value := e.value
		result[i] = &value
	}
	return result, nil
}

func (t *table[M]) findOne(ctx context.Context, specs ...specification.Specification) (*M, error) {
	all, err := t.findAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

// scan returns matching entries in insertion order, then sorted by any OrderBy specs.
func (t *table[M]) scan(specs ...specification.Specification) []*entry[M] {
	items := t.cache.Items()
	matched := make([]*entry[M], 0, len(items))
	for _, item := range items {
		e := item.Object.(*entry[M])
		if specification.SatisfiesAll(t.row(&e.value), specs...) {
			matched = append(matched, e)
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].seq < matched[j].seq })

	var orders []specification.OrderBy
	for _, spec := range specs {
		if o, ok := spec.(specification.OrderBy); ok {
			orders = append(orders, o)
		}
	}
	if len(orders) > 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			a, b := t.row(&matched[i].value), t.row(&matched[j].value)
			for _, o := range orders {
				c := compareValues(a[o.Field], b[o.Field])
				if c == 0 {
					continue
				}
				if o.Desc {
					return c > 0
				}
				return c < 0
			}
			return false
		})
	}
	return matched
}

// compareValues orders column values the way Postgres does for ascending sorts: NULLs last.
func compareValues(a, b interface{}) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return 1
		default:
			return -1
		}
	}

	switch av := a.(type) {
	case time.Time:
		return av.Compare(b.(time.Time))
	case string:
		return strings.Compare(av, b.(string))
	case int64:
		bv := b.(int64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case bool:
		bv := b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		}
		return 1
	case uuid.UUID:
		return strings.Compare(av.String(), b.(uuid.UUID).String())
	}
	return 0
}
