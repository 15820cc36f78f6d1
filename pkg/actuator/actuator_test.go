package actuator

import (
	"errors"
	"testing"
	"time"
)

// newTestSender 构造 Sender，按键调用与延时全部记录在内存中
func newTestSender(toggleErr map[string]error) (*Sender, *[]string, *[]time.Duration) {
	var seq []string
	var sleeps []time.Duration

	s := NewSender("x")
	s.toggle = func(key, direction string) error {
		seq = append(seq, key+":"+direction)
		if toggleErr != nil {
			return toggleErr[direction]
		}
		return nil
	}
	s.sleep = func(d time.Duration) {
		sleeps = append(sleeps, d)
	}
	return s, &seq, &sleeps
}

func TestTapSequence(t *testing.T) {
	s, seq, sleeps := newTestSender(nil)

	if err := s.Tap(); err != nil {
		t.Fatalf("Tap() 失败: %v", err)
	}

	if len(*seq) != 2 || (*seq)[0] != "x:down" || (*seq)[1] != "x:up" {
		t.Errorf("按键序列错误: %v", *seq)
	}
	if len(*sleeps) != 2 {
		t.Fatalf("延时次数应为 2, 实际为 %d", len(*sleeps))
	}
}

func TestTapTimingBounds(t *testing.T) {
	s, _, sleeps := newTestSender(nil)

	const n = 200
	for i := 0; i < n; i++ {
		if err := s.Tap(); err != nil {
			t.Fatalf("Tap() 失败: %v", err)
		}
	}

	holds := make([]time.Duration, 0, n)
	for i, d := range *sleeps {
		if i%2 == 0 {
			// 按下前延时
			if d < minPressDelay || d >= maxPressDelay {
				t.Errorf("按下前延时 %v 超出 [%v, %v)", d, minPressDelay, maxPressDelay)
			}
		} else {
			// 按住时长
			if d < minHold || d >= maxHold {
				t.Errorf("按住时长 %v 超出 [%v, %v)", d, minHold, maxHold)
			}
			holds = append(holds, d)
		}
	}

	// 按住时长必须有统计波动，不能恒定
	allEqual := true
	for _, d := range holds[1:] {
		if d != holds[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		t.Errorf("%d 次按键的按住时长全部相同 (%v), 缺少随机性", n, holds[0])
	}
}

func TestTapPressError(t *testing.T) {
	s, seq, _ := newTestSender(map[string]error{"down": errors.New("输入合成不可用")})

	err := s.Tap()
	if !errors.Is(err, ErrActuation) {
		t.Errorf("错误应包装 ErrActuation, 实际为 %v", err)
	}
	// 按下失败后不应再尝试松开
	if len(*seq) != 1 {
		t.Errorf("按键序列错误: %v", *seq)
	}
}

func TestTapReleaseError(t *testing.T) {
	s, seq, _ := newTestSender(map[string]error{"up": errors.New("输入合成不可用")})

	err := s.Tap()
	if !errors.Is(err, ErrActuation) {
		t.Errorf("错误应包装 ErrActuation, 实际为 %v", err)
	}
	if len(*seq) != 2 {
		t.Errorf("按键序列错误: %v", *seq)
	}
}

func TestRandDuration(t *testing.T) {
	for i := 0; i < 1000; i++ {
		d := randDuration(minHold, maxHold)
		if d < minHold || d >= maxHold {
			t.Fatalf("randDuration = %v, 超出 [%v, %v)", d, minHold, maxHold)
		}
	}
}

func TestKey(t *testing.T) {
	s := NewSender("space")
	if s.Key() != "space" {
		t.Errorf("Key() = %s, want space", s.Key())
	}
}
