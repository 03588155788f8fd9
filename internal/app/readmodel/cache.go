package readmodel

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"ruangobat-admin/internal/infra/logger"
	"ruangobat-admin/internal/infra/ruangobat"
)

type Lister interface {
	ListVideocourseAccesses(ctx context.Context, token string, q ruangobat.ListQuery) (*ruangobat.AccessPage, error)
}

type Page struct {
	Rows          []Row `json:"accesses"`
	Page          int   `json:"page"`
	TotalAccesses int   `json:"total_accesses"`
	TotalPages    int   `json:"total_pages"`
}

const defaultFetchTimeout = 30 * time.Second

type entry struct {
	page      Page
	expiresAt time.Time
}

// AccessList caches decorated access pages per query. Mutations never patch
// entries; they call Invalidate and the next read refetches.
type AccessList struct {
	lister Lister
	log    logger.Logger
	ttl    time.Duration
	now    func() time.Time

	fetchTimeout time.Duration

	group singleflight.Group

	mu         sync.RWMutex
	entries    map[ruangobat.ListQuery]entry
	generation uint64
}

func NewAccessList(lister Lister, log logger.Logger, ttl time.Duration) *AccessList {
	return &AccessList{
		lister:       lister,
		log:          log,
		ttl:          ttl,
		now:          time.Now,
		fetchTimeout: defaultFetchTimeout,
		entries:      make(map[ruangobat.ListQuery]entry),
	}
}

func (l *AccessList) Get(ctx context.Context, token string, q ruangobat.ListQuery) (Page, error) {
	if q.Page < 1 {
		q.Page = 1
	}

	l.mu.RLock()
	e, ok := l.entries[q]
	gen := l.generation
	l.mu.RUnlock()
	if ok && l.now().Before(e.expiresAt) {
		return e.page, nil
	}

	// generation is part of the flight key so reads started after an
	// invalidation never join a fetch that began before it. The token is
	// left out on purpose: every admin sees the same backend list.
	flightKey := fmt.Sprintf("%d|%q|%q|%q|%d", gen, q.Q, q.Filter, q.Sort, q.Page)
	ch := l.group.DoChan(flightKey, func() (interface{}, error) {
		// The fetch is shared, so it must outlive the caller that started it.
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.fetchTimeout)
		defer cancel()

		raw, err := l.lister.ListVideocourseAccesses(fetchCtx, token, q)
		if err != nil {
			return nil, err
		}
		page := l.decorate(raw)

		l.mu.Lock()
		if l.generation == gen {
			l.entries[q] = entry{page: page, expiresAt: l.now().Add(l.ttl)}
		}
		l.mu.Unlock()
		return page, nil
	})

	select {
	case <-ctx.Done():
		return Page{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Page{}, res.Err
		}
		return res.Val.(Page), nil
	}
}

// Invalidate drops every cached page.
func (l *AccessList) Invalidate() {
	l.mu.Lock()
	l.generation++
	l.entries = make(map[ruangobat.ListQuery]entry)
	l.mu.Unlock()
}

func (l *AccessList) decorate(raw *ruangobat.AccessPage) Page {
	page := Page{
		Rows:          make([]Row, 0, len(raw.Accesses)),
		Page:          raw.Page,
		TotalAccesses: raw.TotalAccesses,
		TotalPages:    raw.TotalPages,
	}
	for _, a := range raw.Accesses {
		page.Rows = append(page.Rows, PresentAccess(a, l.log))
	}
	return page
}
