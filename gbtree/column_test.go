package gbtree

import (
	"reflect"
	"testing"
)

func TestColumnBuilderRoundTrip(t *testing.T) {
	b := newColumnBuilder(4)
	b.InitBudget(4)

	rows := map[int][]SCEntry{
		0: {{FValue: 1, RIndex: 0}, {FValue: 2, RIndex: 3}},
		2: {{FValue: 5, RIndex: 1}},
	}
	for f, entries := range rows {
		for range entries {
			b.AddBudget(f)
		}
	}
	b.InitStorage()
	for f, entries := range rows {
		for _, e := range entries {
			b.PushElem(f, e)
		}
	}

	if got := b.Column(0); !reflect.DeepEqual(got, rows[0]) {
		t.Fatalf("column 0 = %+v, want %+v", got, rows[0])
	}
	if got := b.Column(2); !reflect.DeepEqual(got, rows[2]) {
		t.Fatalf("column 2 = %+v, want %+v", got, rows[2])
	}
	if len(b.Column(1)) != 0 {
		t.Fatalf("column 1 should be empty, got %+v", b.Column(1))
	}

	active := b.ActiveFeatures()
	if len(active) != 2 {
		t.Fatalf("expected 2 active columns, got %d: %v", len(active), active)
	}
}

func TestColumnBuilderCleanupOnlyTouchesActive(t *testing.T) {
	b := newColumnBuilder(3)
	b.InitBudget(3)
	b.AddBudget(1)
	b.InitStorage()
	b.PushElem(1, SCEntry{FValue: 9, RIndex: 7})
	start, end := b.ColumnRange(1)
	if start != 0 || end != 1 {
		t.Fatalf("range = (%d,%d), want (0,1)", start, end)
	}
	b.Cleanup()
	if len(b.active) != 0 {
		t.Fatalf("expected active to be cleared, got %v", b.active)
	}
	if b.rptr[1] != 0 || b.start[1] != 0 {
		t.Fatalf("expected column 1 cursors reset, got rptr=%d start=%d", b.rptr[1], b.start[1])
	}
}

func TestColumnBuilderReuseAcrossInvocations(t *testing.T) {
	b := newColumnBuilder(2)

	b.InitBudget(2)
	b.AddBudget(0)
	b.AddBudget(0)
	b.InitStorage()
	b.PushElem(0, SCEntry{FValue: 1, RIndex: 0})
	b.PushElem(0, SCEntry{FValue: 2, RIndex: 1})
	b.Cleanup()

	b.InitBudget(2)
	b.AddBudget(1)
	b.InitStorage()
	b.PushElem(1, SCEntry{FValue: 3, RIndex: 2})

	if got := b.Column(1); len(got) != 1 || got[0].RIndex != 2 {
		t.Fatalf("column 1 = %+v, want single entry with RIndex 2", got)
	}
	if len(b.Column(0)) != 0 {
		t.Fatalf("column 0 should be empty after cleanup, got %+v", b.Column(0))
	}
}
