package service

import (
	"github.com/colorpass/colorpass-go/internal/clipboard"
	"github.com/colorpass/colorpass-go/internal/crypto"
	"github.com/colorpass/colorpass-go/internal/model"
	"github.com/colorpass/colorpass-go/internal/state"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen      *crypto.Generator
	store    *state.Generator
	clip     clipboard.Writer
	defaults crypto.GeneratorOptions
}

// NewGeneratorService creates a new GeneratorService whose view starts at defaults.
func NewGeneratorService(gen *crypto.Generator, defaults crypto.GeneratorOptions, clip clipboard.Writer) (*GeneratorService, error) {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	if clip == nil {
		clip = clipboard.System{}
	}
	defaults.Length = crypto.Clamp(defaults.Length)

	store, err := state.NewGenerator(gen, defaults)
	if err != nil {
		return nil, err
	}

	return &GeneratorService{
		gen:      gen,
		store:    store,
		clip:     clip,
		defaults: defaults,
	}, nil
}

// Generate produces a one-off password based on the given request without
// touching the view state.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:  req.Length,
		Digits:  boolOrDefault(req.Digits, s.defaults.Digits),
		Symbols: boolOrDefault(req.Symbols, s.defaults.Symbols),
	}

	if opts.Length == 0 {
		opts.Length = s.defaults.Length
	}

	password, err := s.gen.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}, nil
}

// State returns the generator view.
func (s *GeneratorService) State() model.PasswordState {
	return toPasswordState(s.store.Snapshot())
}

// Configure applies the set fields of req and regenerates the password.
// Length is clamped into the slider range.
func (s *GeneratorService) Configure(req model.ConfigureRequest) (model.PasswordState, error) {
	var actions []state.GeneratorAction
	if req.Length != nil {
		actions = append(actions, state.SetLength{N: *req.Length})
	}
	if req.Digits != nil {
		actions = append(actions, state.SetDigits{On: *req.Digits})
	}
	if req.Symbols != nil {
		actions = append(actions, state.SetSymbols{On: *req.Symbols})
	}

	snap, err := s.store.Dispatch(actions...)
	if err != nil {
		return model.PasswordState{}, err
	}
	return toPasswordState(snap), nil
}

// Dispatch forwards raw UI actions to the view state.
func (s *GeneratorService) Dispatch(actions ...state.GeneratorAction) (model.PasswordState, error) {
	snap, err := s.store.Dispatch(actions...)
	if err != nil {
		return model.PasswordState{}, err
	}
	return toPasswordState(snap), nil
}

// Regenerate draws a new password with the current options.
func (s *GeneratorService) Regenerate() (model.PasswordState, error) {
	return s.Dispatch(state.Regenerate{})
}

// Copy sends the current password to the clipboard without waiting for the result.
func (s *GeneratorService) Copy() model.PasswordState {
	st := s.State()
	clipboard.CopyAsync(s.clip, st.Password)
	return st
}

// OnChange subscribes fn to view updates.
func (s *GeneratorService) OnChange(fn func(model.PasswordState)) {
	s.store.OnChange(func(snap state.PasswordSnapshot) {
		fn(toPasswordState(snap))
	})
}

func toPasswordState(snap state.PasswordSnapshot) model.PasswordState {
	return model.PasswordState{
		Password: snap.Password,
		Length:   snap.Options.Length,
		Digits:   snap.Options.Digits,
		Symbols:  snap.Options.Symbols,
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
