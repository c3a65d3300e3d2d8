package cpu

const (
	MEMORY_WORDS = 256 // Default memory size, in words.
)

// Memory is a flat word-addressed data memory. A nil Memory has no words.
type Memory struct {
	Data []int32
}

// NewMemory creates a zeroed memory of the given size in words. A negative
// size is treated as zero.
func NewMemory(words int) *Memory {
	return &Memory{Data: make([]int32, max(words, 0))}
}

// Size returns the number of words.
func (m *Memory) Size() int {
	if m == nil {
		return 0
	}
	return len(m.Data)
}

// Contains reports if the address is inside the memory.
func (m *Memory) Contains(address int64) bool {
	return address >= 0 && address < int64(m.Size())
}

// Read returns the word at address.
func (m *Memory) Read(address int64) (value int32, err error) {
	if !m.Contains(address) {
		err = ErrAddress(address)
		return
	}

	value = m.Data[address]
	return
}

// Write sets the word at address.
func (m *Memory) Write(address int64, value int32) (err error) {
	if !m.Contains(address) {
		err = ErrAddress(address)
		return
	}

	m.Data[address] = value
	return
}

// Reset zeros every word.
func (m *Memory) Reset() {
	if m == nil {
		return
	}
	clear(m.Data)
}
