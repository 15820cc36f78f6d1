// Package actuator 提供拟人化的单次按键合成功能
package actuator

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/go-vgo/robotgo"
)

// ErrActuation 按键合成失败
var ErrActuation = errors.New("按键合成失败")

// 随机延时范围，避免固定节奏的机械特征
const (
	minPressDelay = 30 * time.Millisecond
	maxPressDelay = 80 * time.Millisecond
	minHold       = 10 * time.Millisecond
	maxHold       = 40 * time.Millisecond
)

// Sender 按键发送器
// Tap 全程持锁，两次触发不会交叠各自的按下/松开事件
type Sender struct {
	key    string
	mu     sync.Mutex
	toggle func(key, direction string) error
	sleep  func(d time.Duration)
}

// NewSender 创建指定按键的发送器
func NewSender(key string) *Sender {
	return &Sender{
		key: key,
		toggle: func(key, direction string) error {
			return robotgo.KeyToggle(key, direction)
		},
		sleep: time.Sleep,
	}
}

// Key 返回配置的按键名
func (s *Sender) Key() string {
	return s.key
}

// Tap 按下并松开目标键
// 按下前与按住时长均做随机抖动
func (s *Sender) Tap() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sleep(randDuration(minPressDelay, maxPressDelay))
	if err := s.toggle(s.key, "down"); err != nil {
		return fmt.Errorf("%w: 按下 %s: %v", ErrActuation, s.key, err)
	}
	s.sleep(randDuration(minHold, maxHold))
	if err := s.toggle(s.key, "up"); err != nil {
		return fmt.Errorf("%w: 松开 %s: %v", ErrActuation, s.key, err)
	}
	return nil
}

// randDuration 在 [min, max) 区间内取随机时长
func randDuration(min, max time.Duration) time.Duration {
	return min + time.Duration(rand.Int63n(int64(max-min)))
}
