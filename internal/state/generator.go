// Package state holds the view state of both applications as explicit stores.
// Stores change only through Dispatch, which runs a pure reducer and then
// notifies subscribers so front-ends can re-render.
package state

import (
	"sync"

	"github.com/colorpass/colorpass-go/internal/crypto"
)

// GeneratorAction is a user event understood by the Generator store.
type GeneratorAction interface {
	reduce(crypto.GeneratorOptions) crypto.GeneratorOptions
}

// SetLength moves the length slider. Values outside the slider range are clamped.
type SetLength struct{ N int }

// ToggleDigits flips the digits checkbox.
type ToggleDigits struct{}

// ToggleSymbols flips the symbols checkbox.
type ToggleSymbols struct{}

// SetDigits sets the digits checkbox.
type SetDigits struct{ On bool }

// SetSymbols sets the symbols checkbox.
type SetSymbols struct{ On bool }

// Regenerate draws a new password without touching the options.
type Regenerate struct{}

func (a SetLength) reduce(o crypto.GeneratorOptions) crypto.GeneratorOptions {
	o.Length = crypto.Clamp(a.N)
	return o
}

func (ToggleDigits) reduce(o crypto.GeneratorOptions) crypto.GeneratorOptions {
	o.Digits = !o.Digits
	return o
}

func (ToggleSymbols) reduce(o crypto.GeneratorOptions) crypto.GeneratorOptions {
	o.Symbols = !o.Symbols
	return o
}

func (a SetDigits) reduce(o crypto.GeneratorOptions) crypto.GeneratorOptions {
	o.Digits = a.On
	return o
}

func (a SetSymbols) reduce(o crypto.GeneratorOptions) crypto.GeneratorOptions {
	o.Symbols = a.On
	return o
}

func (Regenerate) reduce(o crypto.GeneratorOptions) crypto.GeneratorOptions {
	return o
}

// PasswordSnapshot is the full state of the password generator view.
type PasswordSnapshot struct {
	Options  crypto.GeneratorOptions
	Password string
}

// Generator is the password generator view state.
type Generator struct {
	mu        sync.Mutex
	gen       *crypto.Generator
	snap      PasswordSnapshot
	listeners []func(PasswordSnapshot)
}

// NewGenerator creates the store and draws the first password for opts.
// opts.Length is clamped into the slider range.
func NewGenerator(gen *crypto.Generator, opts crypto.GeneratorOptions) (*Generator, error) {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	opts.Length = crypto.Clamp(opts.Length)

	password, err := gen.Generate(opts)
	if err != nil {
		return nil, err
	}

	return &Generator{
		gen:  gen,
		snap: PasswordSnapshot{Options: opts, Password: password},
	}, nil
}

// Snapshot returns the current state.
func (g *Generator) Snapshot() PasswordSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snap
}

// OnChange registers fn to be called after every successful Dispatch.
func (g *Generator) OnChange(fn func(PasswordSnapshot)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, fn)
}

// Dispatch applies the actions in order and regenerates the password once.
// The password is replaced, never appended to. On failure the previous state is kept.
func (g *Generator) Dispatch(actions ...GeneratorAction) (PasswordSnapshot, error) {
	g.mu.Lock()

	opts := g.snap.Options
	for _, a := range actions {
		opts = a.reduce(opts)
	}

	password, err := g.gen.Generate(opts)
	if err != nil {
		snap := g.snap
		g.mu.Unlock()
		return snap, err
	}

	g.snap = PasswordSnapshot{Options: opts, Password: password}
	snap := g.snap
	listeners := append([]func(PasswordSnapshot){}, g.listeners...)
	g.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
	return snap, nil
}
