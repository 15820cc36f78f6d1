//go:build darwin

// Package permissions 提供系统权限检查功能（macOS 专用）
package permissions

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa -framework ApplicationServices -framework CoreGraphics
#import <Cocoa/Cocoa.h>
#import <ApplicationServices/ApplicationServices.h>
#import <CoreGraphics/CoreGraphics.h>

int checkAccessibilityPermission() {
    NSDictionary *options = @{(__bridge NSString *)kAXTrustedCheckOptionPrompt: @NO};
    return AXIsProcessTrustedWithOptions((__bridge CFDictionaryRef)options) ? 1 : 0;
}

int checkScreenRecordingPermission() {
    if (@available(macOS 10.15, *)) {
        CFArrayRef windowList = CGWindowListCopyWindowInfo(
            kCGWindowListOptionOnScreenOnly | kCGWindowListExcludeDesktopElements,
            kCGNullWindowID
        );

        if (windowList == NULL) {
            return 0;
        }

        CFIndex count = CFArrayGetCount(windowList);
        int hasNames = 0;

        for (CFIndex i = 0; i < count; i++) {
            CFDictionaryRef window = (CFDictionaryRef)CFArrayGetValueAtIndex(windowList, i);
            CFStringRef name = (CFStringRef)CFDictionaryGetValue(window, kCGWindowName);
            if (name != NULL && CFStringGetLength(name) > 0) {
                hasNames = 1;
                break;
            }
        }

        CFRelease(windowList);
        return (count == 0 || hasNames) ? 1 : 0;
    }
    return 1;
}
*/
import "C"

// PermissionStatus 权限状态
type PermissionStatus struct {
	Accessibility   bool `json:"accessibility"`
	ScreenRecording bool `json:"screen_recording"`
	AllGranted      bool `json:"all_granted"`
}

// CheckPermissions 检查所需权限（不触发弹窗）
// 辅助功能用于全局鼠标钩子与按键合成，屏幕录制用于像素采样
func CheckPermissions() *PermissionStatus {
	accessibility := C.checkAccessibilityPermission() == 1
	screenRecording := C.checkScreenRecordingPermission() == 1

	return &PermissionStatus{
		Accessibility:   accessibility,
		ScreenRecording: screenRecording,
		AllGranted:      accessibility && screenRecording,
	}
}

// GetPermissionInstructions 获取权限说明
func GetPermissionInstructions(status *PermissionStatus) string {
	if status.AllGranted {
		return ""
	}

	msg := "需要授权以下权限才能正常工作:\n\n"

	if !status.Accessibility {
		msg += "1. 辅助功能权限 (用于监听鼠标侧键和合成按键)\n"
		msg += "   系统设置 > 隐私与安全性 > 辅助功能\n\n"
	}

	if !status.ScreenRecording {
		msg += "2. 屏幕录制权限 (用于采样屏幕中心像素)\n"
		msg += "   系统设置 > 隐私与安全性 > 屏幕录制\n\n"
	}

	msg += "授权后需要重启应用才能生效。"

	return msg
}
