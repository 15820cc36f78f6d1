package listener

import (
	"testing"

	hook "github.com/robotn/gohook"
)

func TestHandleDispatch(t *testing.T) {
	var presses, releases int
	trig := NewTrigger(MouseButton5,
		func() { presses++ },
		func() { releases++ },
	)

	// 目标按键的按下/松开各转发一次
	trig.handleDown(hook.Event{Button: MouseButton5})
	trig.handleUp(hook.Event{Button: MouseButton5})

	if presses != 1 || releases != 1 {
		t.Errorf("目标按键应各转发一次: presses=%d releases=%d", presses, releases)
	}

	// 其他按键一律忽略
	for _, b := range []uint16{1, 2, 3, 4} {
		trig.handleDown(hook.Event{Button: b})
		trig.handleUp(hook.Event{Button: b})
	}

	if presses != 1 || releases != 1 {
		t.Errorf("非目标按键不应转发: presses=%d releases=%d", presses, releases)
	}
}

func TestHandleRepeatedEvents(t *testing.T) {
	var presses, releases int
	trig := NewTrigger(MouseButton5,
		func() { presses++ },
		func() { releases++ },
	)

	// 监听器原样转发重复事件, 幂等处理由监视器负责
	trig.handleDown(hook.Event{Button: MouseButton5})
	trig.handleDown(hook.Event{Button: MouseButton5})
	trig.handleUp(hook.Event{Button: MouseButton5})

	if presses != 2 {
		t.Errorf("重复按下应照常转发: presses=%d", presses)
	}
	if releases != 1 {
		t.Errorf("releases=%d, want 1", releases)
	}
}
