package history

// Entry is the serializable snapshot stored per navigation. It carries
// entity references by id or name only; display-only fields such as
// playlist icons are deliberately absent so an entry restored later is
// always safe to apply.
type Entry struct {
	View         string
	ProjectID    string
	PlaylistName string
	Company      string
	Domain       string
	SearchQuery  string
}

// Stack is a linear history with a cursor, matching the browser contract:
// pushing while back-navigated discards the forward tail, replace swaps the
// current entry in place, and stepping past either end yields no entry.
//
// The zero value is an empty, ready-to-use stack.
type Stack struct {
	entries []Entry
	cur     int // index of current entry; -1 when empty
}

// New returns an empty history stack.
func New() *Stack {
	return &Stack{cur: -1}
}

// Push appends a new entry after the current position, dropping any
// forward entries.
func (s *Stack) Push(e Entry) {
	if s.cur < len(s.entries)-1 {
		s.entries = s.entries[:s.cur+1]
	}
	s.entries = append(s.entries, e)
	s.cur = len(s.entries) - 1
}

// Replace swaps the current entry in place. On an empty stack it behaves
// like Push; that is the first-load synthesis case.
func (s *Stack) Replace(e Entry) {
	if s.cur < 0 || s.cur >= len(s.entries) {
		s.Push(e)
		return
	}
	s.entries[s.cur] = e
}

// Back moves the cursor one entry backwards and returns the restored entry.
// At the oldest entry (or on an empty stack) it reports false and does not
// move, which callers treat as the absent-state reset case.
func (s *Stack) Back() (Entry, bool) {
	if s.cur <= 0 {
		return Entry{}, false
	}
	s.cur--
	return s.entries[s.cur], true
}

// Forward moves the cursor one entry forwards and returns the restored
// entry, reporting false at the newest entry.
func (s *Stack) Forward() (Entry, bool) {
	if s.cur < 0 || s.cur >= len(s.entries)-1 {
		return Entry{}, false
	}
	s.cur++
	return s.entries[s.cur], true
}

// Current returns the entry at the cursor.
func (s *Stack) Current() (Entry, bool) {
	if s.cur < 0 || s.cur >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[s.cur], true
}

// Len returns the number of entries on the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}
