package history

import "testing"

func TestAddAndLast(t *testing.T) {
	l := New(10)

	if _, ok := l.Last(); ok {
		t.Error("empty log should have no last entry")
	}

	l.Add("first")
	l.Add("second")

	last, ok := l.Last()
	if !ok || last.Text != "second" {
		t.Errorf("Last() = %+v, want second", last)
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
}

func TestConsecutiveRepeatsCollapse(t *testing.T) {
	l := New(10)

	l.Add("saving...")
	l.Add("saving...")
	l.Add("saving...")

	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 collapsed entry", l.Len())
	}
	last, _ := l.Last()
	if last.Repeats != 3 {
		t.Errorf("Repeats = %d, want 3", last.Repeats)
	}
}

func TestNonConsecutiveRepeatsDoNotCollapse(t *testing.T) {
	l := New(10)

	l.Add("a")
	l.Add("b")
	l.Add("a")

	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	l := New(2)

	l.Add("one")
	l.Add("two")
	l.Add("three")

	all := l.All()
	if len(all) != 2 {
		t.Fatalf("len(All()) = %d, want 2", len(all))
	}
	if all[0].Text != "two" || all[1].Text != "three" {
		t.Errorf("All() = %v, want oldest evicted", all)
	}
}

func TestEmptyTextIgnored(t *testing.T) {
	l := New(10)
	l.Add("")
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}
