// Package loadgen drives a Store from many goroutines at once and checks that
// every value a reader materializes is complete and belongs to its key.
package loadgen

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/unkn0wn-root/sharedstore"
	"golang.org/x/sync/errgroup"
)

var ErrTorn = errors.New("loadgen: torn or foreign value")

// Document is the value written under each key. Checksum lets a reader
// detect a partially built value.
type Document struct {
	ID       string            `json:"id" cbor:"id" msgpack:"id"`
	Rev      int               `json:"rev" cbor:"rev" msgpack:"rev"`
	Tags     []string          `json:"tags" cbor:"tags" msgpack:"tags"`
	Attrs    map[string]string `json:"attrs" cbor:"attrs" msgpack:"attrs"`
	Checksum int               `json:"checksum" cbor:"checksum" msgpack:"checksum"`
}

func NewDocument(id string, rev int) Document {
	d := Document{
		ID:    id,
		Rev:   rev,
		Tags:  []string{"rev-" + strconv.Itoa(rev), id},
		Attrs: map[string]string{"owner": id, "rev": strconv.Itoa(rev)},
	}
	d.Checksum = d.sum()
	return d
}

func (d Document) sum() int {
	return len(d.ID) + d.Rev + len(d.Tags) + len(d.Attrs)
}

// Valid reports whether d is a complete document written for key.
func (d Document) Valid(key string) bool {
	return d.ID == key && d.Checksum == d.sum() && d.Attrs["owner"] == key
}

type Config struct {
	Workers    int
	Keys       int
	Ops        int     // total across workers
	WriteRatio float64 // share of ops that are Set
	ClearEvery int     // worker 0 clears every N of its ops; 0 disables
	Seed       int64
}

type Report struct {
	Sets    uint64
	Gets    uint64
	Hits    uint64
	Misses  uint64
	Clears  uint64
	Elapsed time.Duration
}

func (r *Report) add(o Report) {
	r.Sets += o.Sets
	r.Gets += o.Gets
	r.Hits += o.Hits
	r.Misses += o.Misses
	r.Clears += o.Clears
}

func Key(i int) string { return "doc:" + strconv.Itoa(i) }

// Run executes cfg.Ops operations split across cfg.Workers goroutines.
// It stops at the first store error, torn value or context cancellation.
func Run(ctx context.Context, store sharedstore.Store[Document], cfg Config) (Report, error) {
	if cfg.Workers <= 0 || cfg.Keys <= 0 {
		return Report{}, fmt.Errorf("loadgen: workers and keys must be positive")
	}

	start := time.Now()
	reports := make([]Report, cfg.Workers)
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < cfg.Workers; w++ {
		ops := cfg.Ops / cfg.Workers
		if w < cfg.Ops%cfg.Workers {
			ops++
		}
		g.Go(func() error {
			return work(ctx, store, cfg, w, ops, &reports[w])
		})
	}

	err := g.Wait()

	var total Report
	for _, r := range reports {
		total.add(r)
	}
	total.Elapsed = time.Since(start)
	return total, err
}

func work(ctx context.Context, store sharedstore.Store[Document], cfg Config, worker, ops int, rep *Report) error {
	rnd := rand.New(rand.NewSource(cfg.Seed + int64(worker)))

	for i := 0; i < ops; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if worker == 0 && cfg.ClearEvery > 0 && i > 0 && i%cfg.ClearEvery == 0 {
			store.Clear()
			rep.Clears++
		}

		key := Key(rnd.Intn(cfg.Keys))
		if rnd.Float64() < cfg.WriteRatio {
			if err := store.Set(key, NewDocument(key, i)); err != nil {
				return err
			}
			rep.Sets++
			continue
		}

		doc, ok, err := store.Get(key)
		rep.Gets++
		if err != nil {
			return err
		}
		if !ok {
			rep.Misses++
			continue
		}
		rep.Hits++
		if !doc.Valid(key) {
			return fmt.Errorf("%w: key %q got %+v", ErrTorn, key, doc)
		}
	}
	return nil
}

// Seed writes one document per key so reads start warm.
func Seed(store sharedstore.Store[Document], keys int) error {
	for i := 0; i < keys; i++ {
		k := Key(i)
		if err := store.Set(k, NewDocument(k, 0)); err != nil {
			return err
		}
	}
	return nil
}
