package magickit

import "sync"

// mockIdentifier is a test double counting calls and mapping inputs to
// canned libmagic descriptions.
type mockIdentifier struct {
	mu        sync.Mutex
	fileCalls int
	bufCalls  int
	describe  func(path string) (string, error)
}

func (m *mockIdentifier) File(path string) (string, error) {
	m.mu.Lock()
	m.fileCalls++
	m.mu.Unlock()
	return m.describe(path)
}

func (m *mockIdentifier) Buffer(data []byte) (string, error) {
	m.mu.Lock()
	m.bufCalls++
	m.mu.Unlock()
	return m.describe(string(data))
}

func (m *mockIdentifier) Close() error {
	return nil
}

func (m *mockIdentifier) calls() (files, buffers int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fileCalls, m.bufCalls
}

var _ Identifier = (*mockIdentifier)(nil)
