package termcore

// BellProvider handles bell events triggered by BEL (0x07) characters.
// The bell never consumes a buffer cell.
type BellProvider interface {
	// Ring is called once per bell character.
	Ring()
}

// NoopBell ignores all bell events.
type NoopBell struct{}

func (NoopBell) Ring() {}

// --- Recording Provider ---

// RecordingProvider captures the raw character stream before it is
// interpreted. Useful for replay, debugging, and regression tests.
type RecordingProvider interface {
	// Record is called with each chunk fed to the terminal.
	Record(data []byte)
	// Data returns everything captured since the last Clear.
	Data() []byte
	// Clear discards the captured data.
	Clear()
}

// NoopRecording discards all recorded data.
type NoopRecording struct{}

func (NoopRecording) Record(data []byte) {}
func (NoopRecording) Data() []byte       { return nil }
func (NoopRecording) Clear()             {}

// MemoryRecording buffers the raw stream in memory.
type MemoryRecording struct {
	buf []byte
}

func (m *MemoryRecording) Record(data []byte) {
	m.buf = append(m.buf, data...)
}

func (m *MemoryRecording) Data() []byte {
	return m.buf
}

func (m *MemoryRecording) Clear() {
	m.buf = nil
}
