// Package monitor 实现按住触发键期间的颜色变化监视状态机
//
// 会话生命周期：触发键按下时捕获基线快照并进入 Armed，
// 按固定节奏轮询比对，检测到任何颜色变化即合成一次按键，
// 触发键松开时丢弃基线回到 Idle。
package monitor

import (
	"sync/atomic"
	"time"

	"github.com/littlchuckles777/Change-Click/internal/logger"
	"github.com/littlchuckles777/Change-Click/pkg/sampler"
)

// Sampler 屏幕采样能力
type Sampler interface {
	Sample() (sampler.Snapshot, error)
}

// KeySender 按键合成能力
type KeySender interface {
	Tap() error
}

// State 监视会话状态
type State int32

const (
	// StateIdle 空闲，无活动会话
	StateIdle State = iota
	// StateArmed 已捕获基线，轮询中
	StateArmed
	// StateTriggered 检测到变化，按键进行中
	StateTriggered
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateArmed:
		return "Armed"
	case StateTriggered:
		return "Triggered"
	default:
		return "Unknown"
	}
}

type eventKind int

const (
	eventPress eventKind = iota
	eventRelease
)

// Monitor 变化监视器
//
// 所有状态转移都发生在 Run 的单一 goroutine 内；
// Press/Release 只向控制通道投递事件，不直接读写基线或状态。
// 因此 Release 被处理之后不会再有任何轮询被执行。
type Monitor struct {
	sampler Sampler
	sender  KeySender
	opts    *Options

	events chan eventKind
	done   chan struct{}
	state  atomic.Int32
}

// New 创建监视器，Run 启动前处于 Idle
func New(s Sampler, k KeySender, opts ...Option) *Monitor {
	return &Monitor{
		sampler: s,
		sender:  k,
		opts:    applyOptions(opts...),
		events:  make(chan eventKind, 8),
		done:    make(chan struct{}),
	}
}

// State 返回当前会话状态，可被任意 goroutine 读取
func (m *Monitor) State() State {
	return State(m.state.Load())
}

// Press 投递触发键按下事件
func (m *Monitor) Press() {
	m.post(eventPress)
}

// Release 投递触发键松开事件
func (m *Monitor) Release() {
	m.post(eventRelease)
}

func (m *Monitor) post(ev eventKind) {
	select {
	case m.events <- ev:
	case <-m.done:
	}
}

// Close 终止控制循环，Run 随之返回；Close 之后 Monitor 不可复用
func (m *Monitor) Close() {
	close(m.done)
}

// Run 运行控制循环直到 Close，应在独立 goroutine 中调用
func (m *Monitor) Run() {
	var (
		baseline sampler.Snapshot
		ticker   *time.Ticker
		tick     <-chan time.Time
		failures int
	)

	// endSession 丢弃基线、停止轮询并回到 Idle
	endSession := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			tick = nil
		}
		baseline = nil
		failures = 0
		m.state.Store(int32(StateIdle))
	}
	defer endSession()

	for {
		select {
		case <-m.done:
			return

		case ev := <-m.events:
			switch ev {
			case eventPress:
				if m.State() != StateIdle {
					// 重复的按下事件（如系统重复投递）按幂等空操作处理
					logger.Debug("会话已在进行中, 忽略重复的按下事件")
					continue
				}
				snap, err := m.sampler.Sample()
				if err != nil {
					// 没有基线不进入 Armed，保持 Idle 等待下一次按下
					logger.Error("基线采样失败, 本次会话未启动: %v", err)
					continue
				}
				baseline = snap
				failures = 0
				ticker = time.NewTicker(m.opts.PollInterval)
				tick = ticker.C
				m.state.Store(int32(StateArmed))
				logger.Debug("会话启动, 基线含 %d 个采样点", len(baseline))

			case eventRelease:
				if m.State() == StateIdle {
					continue
				}
				endSession()
				logger.Debug("触发键松开, 会话结束")
			}

		case <-tick:
			current, err := m.sampler.Sample()
			if err != nil {
				failures++
				logger.Warn("轮询采样失败 (连续 %d 次): %v", failures, err)
				if failures >= m.opts.FailureCap {
					logger.Error("采样连续失败 %d 次, 中止会话", failures)
					endSession()
				}
				continue
			}
			failures = 0

			if !sampler.Changed(baseline, current) {
				continue
			}

			// 一次变化事件只触发一次按键，无论几个采样点发生变化。
			// 基线保持会话开始时的快照不变，后续轮询仍与原基线比对。
			m.state.Store(int32(StateTriggered))
			if err := m.sender.Tap(); err != nil {
				logger.Warn("按键合成失败, 继续轮询: %v", err)
			}
			m.state.Store(int32(StateArmed))
		}
	}
}
