package lifecycle

import "sync"

// inFlight allows one outstanding operation per target.
type inFlight struct {
	mu      sync.Mutex
	targets map[string]struct{}
}

func newInFlight() *inFlight {
	return &inFlight{targets: make(map[string]struct{})}
}

// acquire returns a release func, or ErrInFlight if target is busy.
func (g *inFlight) acquire(target string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.targets[target]; busy {
		return nil, ErrInFlight
	}
	g.targets[target] = struct{}{}
	return func() {
		g.mu.Lock()
		delete(g.targets, target)
		g.mu.Unlock()
	}, nil
}
