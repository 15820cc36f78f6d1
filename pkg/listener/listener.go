// Package listener 订阅全局鼠标按键事件，驱动监视器的启停
package listener

import (
	"errors"
	"fmt"

	hook "github.com/robotn/gohook"
)

// ErrHook 全局事件钩子不可用
var ErrHook = errors.New("全局事件钩子不可用")

// MouseButton5 鼠标侧键 (XButton2)，默认触发键
const MouseButton5 uint16 = 5

// Trigger 触发键监听器
// 回调只负责投递事件，不做任何耗时操作，避免阻塞系统事件分发
type Trigger struct {
	button    uint16
	onPress   func()
	onRelease func()
}

// NewTrigger 创建监听指定鼠标按键的触发器
func NewTrigger(button uint16, onPress, onRelease func()) *Trigger {
	return &Trigger{
		button:    button,
		onPress:   onPress,
		onRelease: onRelease,
	}
}

// Run 注册全局钩子并阻塞处理事件，直到 Stop 被调用或进程退出
// 钩子注册失败返回 ErrHook，此时整个工具无法工作
func (t *Trigger) Run() error {
	hook.Register(hook.MouseDown, []string{}, func(e hook.Event) {
		t.handleDown(e)
	})
	hook.Register(hook.MouseUp, []string{}, func(e hook.Event) {
		t.handleUp(e)
	})

	events := hook.Start()
	if events == nil {
		return fmt.Errorf("%w: 事件流启动失败", ErrHook)
	}
	<-hook.Process(events)
	return nil
}

// Stop 结束全局钩子，Run 随之返回
func (t *Trigger) Stop() {
	hook.End()
}

func (t *Trigger) handleDown(e hook.Event) {
	if e.Button == t.button {
		t.onPress()
	}
}

func (t *Trigger) handleUp(e hook.Event) {
	if e.Button == t.button {
		t.onRelease()
	}
}
