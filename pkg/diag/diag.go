// Package diag 提供启动时的自身进程诊断信息
package diag

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/process"
)

// SelfInfo 当前进程概况
type SelfInfo struct {
	PID  int    `json:"pid"`
	Name string `json:"name"`
	RSS  uint64 `json:"rss"`
	CPUs int    `json:"cpus"`
}

// Self 采集当前进程的诊断信息
func Self() (*SelfInfo, error) {
	pid := os.Getpid()
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return nil, fmt.Errorf("获取进程信息失败: %w", err)
	}

	info := &SelfInfo{
		PID:  pid,
		CPUs: runtime.NumCPU(),
	}
	if name, err := proc.Name(); err == nil {
		info.Name = name
	}
	if mem, err := proc.MemoryInfo(); err == nil && mem != nil {
		info.RSS = mem.RSS
	}
	return info, nil
}

func (s *SelfInfo) String() string {
	return fmt.Sprintf("PID=%d Name=%s RSS=%.1fMB CPU=%d核",
		s.PID, s.Name, float64(s.RSS)/(1<<20), s.CPUs)
}
