package prompt

// Session owns the editable values of one interactive session and keeps the
// composed prompt fresh relative to them. It is meant to be driven from a
// single goroutine, such as a Bubble Tea update loop.
type Session struct {
	values  Values
	prompt  string
	stale   bool
	nextID  int
	watches map[int]func(string)
}

func NewSession(initial Values) *Session {
	return &Session{
		values:  initial,
		stale:   true,
		watches: map[int]func(string){},
	}
}

// Values returns a copy of the current values.
func (s *Session) Values() Values {
	return s.values
}

func (s *Session) Get(k Key) string {
	return s.values.Get(k)
}

// Set replaces the value for k and reports whether it changed.
func (s *Session) Set(k Key, value string) bool {
	if !k.Valid() || s.values[k] == value {
		return false
	}
	s.values[k] = value
	s.changed()
	return true
}

// Reset replaces every value at once.
func (s *Session) Reset(v Values) {
	if s.values == v {
		return
	}
	s.values = v
	s.changed()
}

// Prompt returns the prompt composed from the current values.
func (s *Session) Prompt() string {
	if s.stale {
		s.prompt = Compose(s.values)
		s.stale = false
	}
	return s.prompt
}

// Subscribe registers fn to receive the fresh prompt after every change.
// The returned func removes the subscription.
func (s *Session) Subscribe(fn func(prompt string)) func() {
	id := s.nextID
	s.nextID++
	s.watches[id] = fn
	return func() { delete(s.watches, id) }
}

func (s *Session) changed() {
	s.stale = true
	if len(s.watches) == 0 {
		return
	}
	p := s.Prompt()
	for _, fn := range s.watches {
		fn(p)
	}
}
