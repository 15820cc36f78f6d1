//go:build !darwin

// Package permissions 提供系统权限检查功能
package permissions

// PermissionStatus 权限状态
type PermissionStatus struct {
	Accessibility   bool `json:"accessibility"`
	ScreenRecording bool `json:"screen_recording"`
	AllGranted      bool `json:"all_granted"`
}

// CheckPermissions 检查所需权限
// 非 macOS 系统通常不需要特殊权限
func CheckPermissions() *PermissionStatus {
	return &PermissionStatus{
		Accessibility:   true,
		ScreenRecording: true,
		AllGranted:      true,
	}
}

// GetPermissionInstructions 获取权限说明
func GetPermissionInstructions(status *PermissionStatus) string {
	return ""
}
