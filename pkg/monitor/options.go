package monitor

import "time"

// Option 配置选项函数类型
type Option func(*Options)

// Options 监视器配置
type Options struct {
	// PollInterval 武装状态下的轮询间隔
	PollInterval time.Duration
	// FailureCap 连续采样失败多少次后中止会话
	FailureCap int
}

// DefaultOptions 默认配置
func DefaultOptions() *Options {
	return &Options{
		PollInterval: 20 * time.Millisecond,
		FailureCap:   50,
	}
}

// applyOptions 应用配置选项
func applyOptions(opts ...Option) *Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithPollInterval 设置轮询间隔
func WithPollInterval(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.PollInterval = d
		}
	}
}

// WithFailureCap 设置连续失败上限
func WithFailureCap(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.FailureCap = n
		}
	}
}
