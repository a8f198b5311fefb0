package zw

// Source delivers debounced change batches for a single directory.
// The channel is closed when the source shuts down.
type Source interface {
	Watch() <-chan Batch
	Close()
}

// Batch is either a group of changes observed within one debounce window
// or, when Errs is non-empty, the errors the watcher reported in it.
type Batch struct {
	Changes []Change
	Errs    []error
}

type Change struct {
	Path string
	Op   Op
}

type Op uint32

//go:generate stringer -type=Op -trimprefix=Op
const (
	OpOther Op = iota
	OpChanged
)
