package plot

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/tidwall/buntdb"
)

const keyPrefix = "chart:"

var (
	// ErrTargetInUse is returned when a chart is created on a target whose
	// previous instance was never destroyed.
	ErrTargetInUse = errors.New("target already holds a live chart")
	ErrNilTargetID = errors.New("chart target has no id")
)

// Surface is the Library backing the served page: every live instance is
// kept in an in-memory buntdb keyed by its canvas id until destroyed.
type Surface struct {
	lastSeq int64
	db      *buntdb.DB
}

// Published is a live chart as sent to the page.
type Published struct {
	Target string          `json:"target"`
	Config json.RawMessage `json:"config"`
}

type record struct {
	Seq    int64  `json:"seq"`
	Config Config `json:"config"`
}

// NewSurface opens an empty in-memory surface.
func NewSurface() (*Surface, error) {
	db, err := buntdb.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open surface: %w", err)
	}

	return newSurface(db)
}

// newSurface indexes db and wraps it. db is closed when indexing fails.
func newSurface(db *buntdb.DB) (*Surface, error) {
	if err := db.CreateIndex("seq", keyPrefix+"*", buntdb.IndexJSON("seq")); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to create index: %w", err), db.Close())
	}

	return &Surface{db: db}, nil
}

// New implements Library.
func (s *Surface) New(target Target, cfg Config) (Handle, error) {
	if target.ID == "" {
		return nil, ErrNilTargetID
	}

	seq := atomic.AddInt64(&s.lastSeq, 1)
	content, err := json.Marshal(record{Seq: seq, Config: cfg})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chart %s: %w", target.ID, err)
	}

	err = s.db.Update(func(tx *buntdb.Tx) error {
		if _, err := tx.Get(keyPrefix + target.ID); err == nil {
			return fmt.Errorf("%w: %s", ErrTargetInUse, target.ID)
		}
		_, _, err := tx.Set(keyPrefix+target.ID, string(content), nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &instance{surface: s, target: target, config: cfg, seq: seq}, nil
}

// Snapshot lists the live charts in creation order.
func (s *Surface) Snapshot() ([]Published, error) {
	published := make([]Published, 0)

	err := s.db.View(func(tx *buntdb.Tx) error {
		var decodeErr error
		err := tx.Ascend("seq", func(key, value string) bool {
			var raw struct {
				Config json.RawMessage `json:"config"`
			}
			if decodeErr = json.Unmarshal([]byte(value), &raw); decodeErr != nil {
				return false
			}
			published = append(published, Published{
				Target: key[len(keyPrefix):],
				Config: raw.Config,
			})
			return true
		})
		if err != nil {
			return err
		}
		return decodeErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read surface: %w", err)
	}

	return published, nil
}

// Live reports whether the target currently holds a chart.
func (s *Surface) Live(target Target) bool {
	err := s.db.View(func(tx *buntdb.Tx) error {
		_, err := tx.Get(keyPrefix + target.ID)
		return err
	})
	return err == nil
}

func (s *Surface) Close() error {
	return s.db.Close()
}

// destroy removes the target's record if it still belongs to seq.
func (s *Surface) destroy(target Target, seq int64) error {
	return s.db.Update(func(tx *buntdb.Tx) error {
		value, err := tx.Get(keyPrefix + target.ID)
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		var current struct {
			Seq int64 `json:"seq"`
		}
		if err := json.Unmarshal([]byte(value), &current); err != nil {
			return fmt.Errorf("failed to decode chart %s: %w", target.ID, err)
		}
		if current.Seq != seq {
			return nil
		}

		_, err = tx.Delete(keyPrefix + target.ID)
		return err
	})
}

type instance struct {
	surface   *Surface
	target    Target
	config    Config
	seq       int64
	destroyed atomic.Bool
}

func (i *instance) Target() Target { return i.target }
func (i *instance) Config() Config { return i.config }

// Destroy releases the canvas. Destroying twice is a no-op.
func (i *instance) Destroy() error {
	if i.destroyed.Swap(true) {
		return nil
	}
	return i.surface.destroy(i.target, i.seq)
}
