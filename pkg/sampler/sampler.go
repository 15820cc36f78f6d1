// Package sampler 提供主显示器中心像素簇的颜色采样功能
package sampler

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-vgo/robotgo"
	"github.com/kbinani/screenshot"
)

// ErrCapture 屏幕采样失败
var ErrCapture = errors.New("屏幕采样失败")

// SamplePoint 屏幕上的一个采样点坐标
type SamplePoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RGB 单个像素的三通道颜色值
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Snapshot 一次采样得到的颜色序列，顺序与采样点集一一对应
type Snapshot []RGB

// Changed 判断两次快照是否存在差异
// 任一索引上任一通道不同即视为变化；长度不同也视为变化
func Changed(baseline, current Snapshot) bool {
	if len(baseline) != len(current) {
		return true
	}
	for i := range baseline {
		if baseline[i] != current[i] {
			return true
		}
	}
	return false
}

// clusterOffsets 以屏幕中心为原点的 10 个采样偏移，覆盖中心小范围区域
var clusterOffsets = [...][2]int{
	{0, 0},
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
	{-1, -1},
	{1, -1},
	{-1, 1},
	{1, 1},
	{0, 2},
}

// Screen 对主显示器中心像素簇进行采样
// 采样点集在构造时生成一次，进程生命周期内不变
type Screen struct {
	points []SamplePoint
	region image.Rectangle
}

// NewScreen 根据主显示器几何信息生成固定采样点集
func NewScreen() (*Screen, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return nil, fmt.Errorf("%w: 未检测到可用显示器", ErrCapture)
	}
	bounds := screenshot.GetDisplayBounds(0)
	centreX := bounds.Min.X + bounds.Dx()/2
	centreY := bounds.Min.Y + bounds.Dy()/2
	points := clusterAround(centreX, centreY)
	return &Screen{
		points: points,
		region: boundingRect(points),
	}, nil
}

// Points 返回采样点集
func (s *Screen) Points() []SamplePoint {
	return s.points
}

// Sample 采集当前快照
// 一次性截取覆盖全部采样点的最小区域再逐点取色，
// 避免逐点截屏带来的点与点之间的时间偏差
func (s *Screen) Sample() (Snapshot, error) {
	img, err := robotgo.CaptureImg(s.region.Min.X, s.region.Min.Y, s.region.Dx(), s.region.Dy())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapture, err)
	}
	return snapshotAt(img, s.points, s.region.Min), nil
}

// clusterAround 生成以 (cx, cy) 为中心的采样点集
func clusterAround(cx, cy int) []SamplePoint {
	points := make([]SamplePoint, 0, len(clusterOffsets))
	for _, off := range clusterOffsets {
		points = append(points, SamplePoint{X: cx + off[0], Y: cy + off[1]})
	}
	return points
}

// boundingRect 计算覆盖全部采样点的最小矩形
func boundingRect(points []SamplePoint) image.Rectangle {
	rect := image.Rect(points[0].X, points[0].Y, points[0].X+1, points[0].Y+1)
	for _, p := range points[1:] {
		rect = rect.Union(image.Rect(p.X, p.Y, p.X+1, p.Y+1))
	}
	return rect
}

// snapshotAt 从截取图像中按采样点顺序提取颜色
// origin 为截取区域左上角在屏幕坐标系中的位置
func snapshotAt(img image.Image, points []SamplePoint, origin image.Point) Snapshot {
	snap := make(Snapshot, 0, len(points))
	min := img.Bounds().Min
	for _, p := range points {
		r, g, b, _ := img.At(min.X+p.X-origin.X, min.Y+p.Y-origin.Y).RGBA()
		snap = append(snap, RGB{
			R: uint8(r >> 8),
			G: uint8(g >> 8),
			B: uint8(b >> 8),
		})
	}
	return snap
}
