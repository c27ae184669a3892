package bbcode

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	osc8     bool
	softWrap bool
	maxInput int64
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithOSC8 enables or disables OSC 8 hyperlinks in terminal output.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}

// WithSoftWrap breaks words longer than the terminal width instead of
// letting them overflow.
func WithSoftWrap(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.softWrap = enabled
	}
}

// WithMaxInputBytes rejects inputs larger than n bytes with
// ErrInputTooLarge. Zero or less means no limit.
func WithMaxInputBytes(n int64) RenderOption {
	return func(cfg *renderConfig) {
		cfg.maxInput = n
	}
}
