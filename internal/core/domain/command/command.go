/*
Package command defines the core domain entities produced by the parser
and consumed by the pipeline executor.
*/
package command

/*
Command is one program invocation taken from an input line.
Args[0] is the executable name; the remaining entries are passed as its
arguments. The pipe flags describe how the command's standard streams are
connected to its neighbours in the Pipeline.
*/
type Command struct {
	Args          []string
	ReadsFromPipe bool // stdin is the previous command's pipe
	WritesToPipe  bool // stdout feeds the next command's pipe
}

// Name returns the executable name, or "" for a command without arguments.
func (c Command) Name() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// Pipeline is the ordered list of commands parsed from a single line.
// Order is the left-to-right textual order and determines pipe wiring.
type Pipeline []Command
