package fetch

import (
	"context"
	"sync"
)

// Status is the lifecycle of one URL in a batch fetch.
type Status int

const (
	StatusPending Status = iota
	StatusFetching
	StatusDone
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusFetching:
		return "fetching"
	case StatusDone:
		return "done"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one URL in a batch fetch. Exactly one of
// Resource and Err is set.
type Result struct {
	URL      string
	Resource *Resource
	Err      error
}

// Pool fetches batches of URLs with bounded concurrency, tracking the
// status of each URL while the batch runs.
type Pool struct {
	fetcher *Fetcher
	workers int

	mu     sync.Mutex
	status map[string]Status
}

// NewPool returns a Pool running at most workers fetches at once. A
// workers value below 1 is treated as 1.
func NewPool(fetcher *Fetcher, workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		fetcher: fetcher,
		workers: workers,
		status:  make(map[string]Status),
	}
}

// Status reports where a URL of the current batch is in its lifecycle.
// URLs never given to FetchAll are pending.
func (p *Pool) Status(url string) Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status[url]
}

func (p *Pool) setStatus(url string, s Status) {
	p.mu.Lock()
	p.status[url] = s
	p.mu.Unlock()
}

// FetchAll fetches every URL and returns one Result per URL, in the
// order given. A failed URL produces a Result with Err set; it does not
// stop the batch. Cancelling ctx fails the fetches still in flight.
func (p *Pool) FetchAll(ctx context.Context, urls []string) []Result {
	results := make([]Result, len(urls))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				url := urls[i]
				p.setStatus(url, StatusFetching)
				res, err := p.fetcher.Fetch(ctx, url)
				if err != nil {
					p.setStatus(url, StatusFailed)
					results[i] = Result{URL: url, Err: err}
					continue
				}
				p.setStatus(url, StatusDone)
				results[i] = Result{URL: url, Resource: res}
			}
		}()
	}

	for i, url := range urls {
		p.setStatus(url, StatusPending)
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
