// Package singleton implements the chocolate boiler: a single shared
// instance behind a lazy accessor. Go's sync.Once replaces the
// double-checked-locking idiom other languages need for this.
package singleton

import (
	"errors"
	"sync"
)

// ChocolateBoiler mixes and boils chocolate. Factories only ever have one,
// so all callers must share the same instance.
type ChocolateBoiler struct {
	mu     sync.Mutex
	empty  bool
	boiled bool

	fills  int
	boils  int
	drains int
}

var (
	// ErrNotEmpty is returned when filling a boiler that already has a batch.
	ErrNotEmpty = errors.New("boiler is not empty")
	// ErrEmpty is returned when boiling or draining with nothing inside.
	ErrEmpty = errors.New("boiler is empty")
	// ErrAlreadyBoiled is returned when boiling a finished batch again.
	ErrAlreadyBoiled = errors.New("batch is already boiled")
	// ErrNotBoiled is returned when draining an unboiled batch.
	ErrNotBoiled = errors.New("batch has not been boiled")
)

var (
	instance *ChocolateBoiler
	once     sync.Once
)

// GetBoiler returns the shared boiler, creating it on first use. Safe for
// concurrent callers; every caller sees the same instance.
func GetBoiler() *ChocolateBoiler {
	once.Do(func() {
		instance = &ChocolateBoiler{empty: true}
	})
	return instance
}

// ResetForTest discards the shared instance so each test starts from an
// empty boiler.
func ResetForTest() {
	instance = nil
	once = sync.Once{}
}

// Fill starts a new batch. The boiler must be empty.
func (b *ChocolateBoiler) Fill() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.empty {
		return ErrNotEmpty
	}
	b.empty = false
	b.boiled = false
	b.fills++
	return nil
}

// Boil boils the current batch. The boiler must be full and the batch
// not yet boiled.
func (b *ChocolateBoiler) Boil() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.empty {
		return ErrEmpty
	}
	if b.boiled {
		return ErrAlreadyBoiled
	}
	b.boiled = true
	b.boils++
	return nil
}

// Drain empties a boiled batch out of the boiler.
func (b *ChocolateBoiler) Drain() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.empty {
		return ErrEmpty
	}
	if !b.boiled {
		return ErrNotBoiled
	}
	b.empty = true
	b.boiled = false
	b.drains++
	return nil
}

// Empty reports whether the boiler has no batch in it.
func (b *ChocolateBoiler) Empty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.empty
}

// Boiled reports whether the current batch has been boiled.
func (b *ChocolateBoiler) Boiled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.boiled
}

// Batches returns how many complete fill/boil/drain cycles have finished.
func (b *ChocolateBoiler) Batches() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.drains
}
