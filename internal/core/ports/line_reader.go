package ports

// LineReader shows the prompt and returns one logical line of input.
// ReadLine returns io.EOF once the input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}
