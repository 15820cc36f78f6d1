package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/littlchuckles777/Change-Click/internal/logger"
	"github.com/littlchuckles777/Change-Click/pkg/actuator"
	"github.com/littlchuckles777/Change-Click/pkg/diag"
	"github.com/littlchuckles777/Change-Click/pkg/listener"
	"github.com/littlchuckles777/Change-Click/pkg/monitor"
	"github.com/littlchuckles777/Change-Click/pkg/permissions"
	"github.com/littlchuckles777/Change-Click/pkg/sampler"
)

// 版本信息 (可通过 ldflags 注入)
var Version = "1.0.0"

// triggerKey 检测到颜色变化时合成的按键
const triggerKey = "x"

func main() {
	fmt.Println("========================================")
	fmt.Printf("  Change-Click v%s\n", Version)
	fmt.Println("========================================")
	fmt.Println("按住鼠标侧键 (Mouse 5) 开始监视屏幕中心颜色")
	fmt.Printf("检测到颜色变化时自动按一次 %s 键\n", triggerKey)
	fmt.Println("按 Ctrl+C 退出")
	fmt.Println()

	// macOS 权限检查
	if runtime.GOOS == "darwin" {
		checkMacOSPermissions()
	}

	if info, err := diag.Self(); err == nil {
		logger.Info("进程: %s", info)
	} else {
		logger.Warn("采集进程诊断信息失败: %v", err)
	}

	screen, err := sampler.NewScreen()
	if err != nil {
		logger.Error("初始化采样器失败: %v", err)
		os.Exit(1)
	}
	logger.Info("采样点已就绪: %d 个 (主显示器中心)", len(screen.Points()))

	mon := monitor.New(screen, actuator.NewSender(triggerKey))
	go mon.Run()
	defer mon.Close()

	trig := listener.NewTrigger(listener.MouseButton5, mon.Press, mon.Release)

	hookErr := make(chan error, 1)
	go func() {
		hookErr <- trig.Run()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-hookErr:
		if err != nil {
			// 没有全局事件订阅整个工具无法工作
			logger.Error("全局事件监听不可用: %v", err)
			os.Exit(1)
		}
		logger.Info("事件监听已结束, 退出")
	case <-sigCh:
		fmt.Println()
		logger.Info("正在退出...")
		trig.Stop()
	}
}

// checkMacOSPermissions 检查 macOS 权限
func checkMacOSPermissions() {
	status := permissions.CheckPermissions()
	if status.AllGranted {
		logger.Info("macOS 权限检查通过")
		return
	}

	logger.Warn("辅助功能权限: %v, 屏幕录制权限: %v",
		status.Accessibility, status.ScreenRecording)
	fmt.Println(permissions.GetPermissionInstructions(status))
}
