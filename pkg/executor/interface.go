package executor

import "context"

// Executor runs external commands. The interface exists so adapters
// that shell out can be tested with a fake.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	LookPath(name string) (string, error)
}
