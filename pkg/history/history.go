package history

// DefaultMaxSize is the number of entries kept when no size is configured
const DefaultMaxSize = 50

// notNavigating marks that no entry is currently recalled
const notNavigating = -1

// Store is a bounded, oldest-first log of submitted lines with a recall
// cursor. It lives for the whole process and is not persisted.
type Store struct {
	entries []string
	maxSize int
	nav     int
}

// New creates an empty store holding at most maxSize entries. Values below 1
// fall back to DefaultMaxSize.
func New(maxSize int) *Store {
	if maxSize < 1 {
		maxSize = DefaultMaxSize
	}
	return &Store{
		entries: make([]string, 0, maxSize),
		maxSize: maxSize,
		nav:     notNavigating,
	}
}

// Add records a submitted line. A line equal to the newest entry is not
// appended again. When the store overflows the oldest entry is evicted and
// the recall cursor follows it down, except at 0 where it stays and so now
// refers to the new oldest entry. Recall stops once the recalled entry no
// longer matches the committed line.
func (s *Store) Add(text string) {
	if len(s.entries) == 0 || s.entries[len(s.entries)-1] != text {
		s.entries = append(s.entries, text)
	}

	if len(s.entries) > s.maxSize {
		s.entries = s.entries[1:]
		if s.nav > 0 {
			s.nav--
		}
	}

	if s.nav != notNavigating && s.entries[s.nav] != text {
		s.nav = notNavigating
	}
}

// Previous steps towards older entries. It returns false when the store is
// empty or the oldest entry is already recalled.
func (s *Store) Previous() (string, bool) {
	if len(s.entries) == 0 || s.nav == 0 {
		return "", false
	}
	if s.nav == notNavigating {
		s.nav = len(s.entries)
	}
	s.nav--
	return s.entries[s.nav], true
}

// Next steps towards newer entries. Stepping past the newest entry, or
// calling it while not navigating, ends recall and returns false.
func (s *Store) Next() (string, bool) {
	if s.nav == notNavigating || s.nav >= len(s.entries)-1 {
		s.nav = notNavigating
		return "", false
	}
	s.nav++
	return s.entries[s.nav], true
}

// Navigating reports whether an entry is currently recalled
func (s *Store) Navigating() bool {
	return s.nav != notNavigating
}

// Reset ends recall without touching the entries
func (s *Store) Reset() {
	s.nav = notNavigating
}

// Entries returns a copy of the entries, oldest first
func (s *Store) Entries() []string {
	result := make([]string, len(s.entries))
	copy(result, s.entries)
	return result
}

// Len returns the number of stored entries
func (s *Store) Len() int {
	return len(s.entries)
}

// MaxSize returns the configured bound
func (s *Store) MaxSize() int {
	return s.maxSize
}
