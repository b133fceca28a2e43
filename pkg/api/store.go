package api

// recordStore accumulates records for one retrieval chain, keyed by fully
// qualified name. It lives for a single List call and is discarded when
// the call returns.
type recordStore struct {
	byName map[string]Record
	order  []string
}

func newRecordStore() *recordStore {
	return &recordStore{
		byName: make(map[string]Record),
	}
}

// add inserts rec unless a record with the same name was already captured.
// A later page never overwrites an entry from an earlier page.
func (s *recordStore) add(rec Record) bool {
	if _, exists := s.byName[rec.Name]; exists {
		return false
	}
	s.byName[rec.Name] = rec
	s.order = append(s.order, rec.Name)
	return true
}

// records returns the accumulated records in first-seen order.
func (s *recordStore) records() []Record {
	out := make([]Record, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}
	return out
}

func (s *recordStore) len() int {
	return len(s.order)
}
