//go:build !linux

package internal

// InputReaders is a no-op outside linux.
type InputReaders struct{}

// StartInput fails when any device is configured.
func StartInput(cfg InputConfig) (*InputReaders, error) {
	if !cfg.IsZero() {
		return nil, ErrInputUnsupported
	}
	return &InputReaders{}, nil
}

func (r *InputReaders) Events() <-chan Event { return nil }

func (r *InputReaders) Close() error { return nil }
