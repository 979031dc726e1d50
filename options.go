package fa

const (
	DefaultTrapState = "trap"
	DefaultPrefix    = "q"
)

type options struct {
	workLimit int    // 0 表示不限制
	trapState string // 补全时添加的陷阱状态名
	prefix    string // 重编号前缀
}

func newOptions(opts ...Option) *options {
	o := &options{
		trapState: DefaultTrapState,
		prefix:    DefaultPrefix,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(*options)

// WithWorkLimit bounds the number of states subset construction and the
// product constructor may materialize. A limit of 0 disables the check.
func WithWorkLimit(limit int) Option {
	return func(o *options) {
		if limit < 0 {
			limit = 0
		}
		o.workLimit = limit
	}
}

// WithTrapState sets the base name of the trap state added by completion.
// A numeric suffix is appended when the name is already taken.
func WithTrapState(name string) Option {
	return func(o *options) {
		if name != "" {
			o.trapState = name
		}
	}
}

// WithPrefix sets the prefix of the names assigned by renumbering.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// spend charges n units of work, failing once the limit is passed.
func (o *options) spend(work *int, n int, what string) error {
	*work += n
	if o.workLimit > 0 && *work > o.workLimit {
		return newError(ErrTooComplex, "%s exceeded work limit %d", what, o.workLimit)
	}
	return nil
}
