package transcript

import (
	"container/heap"
	"time"
)

// Merge combines tables into one chronological table. Rows with equal
// timestamps keep the order of the tables as given, and rows within a
// table keep their original order. The result is re-indexed from zero.
func Merge(tables ...*Table) *Table {
	if len(tables) == 1 && tables[0] != nil {
		return &Table{
			Source: tables[0].Source,
			Rows:   append([]Row(nil), tables[0].Rows...),
		}
	}

	total := 0
	h := &rowHeap{}
	for i, t := range tables {
		if t == nil || len(t.Rows) == 0 {
			continue
		}
		total += len(t.Rows)
		*h = append(*h, &heapItem{table: i, ts: t.Rows[0].Timestamp})
	}
	heap.Init(h)

	merged := &Table{Rows: make([]Row, 0, total)}
	for h.Len() > 0 {
		item := (*h)[0]
		rows := tables[item.table].Rows
		merged.Rows = append(merged.Rows, rows[item.pos])

		// Advance the cursor, or drop it once its table is exhausted.
		item.pos++
		if item.pos < len(rows) {
			item.ts = rows[item.pos].Timestamp
			heap.Fix(h, 0)
		} else {
			heap.Pop(h)
		}
	}
	merged.reindex()

	return merged
}

// heapItem is a cursor into one table.
type heapItem struct {
	table int
	pos   int
	ts    time.Time
}

// rowHeap orders cursors by the timestamp of their current row, then by table.
type rowHeap []*heapItem

func (h rowHeap) Len() int { return len(h) }

func (h rowHeap) Less(i, j int) bool {
	if !h[i].ts.Equal(h[j].ts) {
		return h[i].ts.Before(h[j].ts)
	}
	return h[i].table < h[j].table
}

func (h rowHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *rowHeap) Push(x interface{}) {
	*h = append(*h, x.(*heapItem))
}

func (h *rowHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}
