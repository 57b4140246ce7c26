package entity

import (
	"errors"
	"fmt"
)

// SegmentInfo запись о сегменте из результата паноптической сегментации
type SegmentInfo struct {
	ID         int32 `json:"id" msgpack:"id"`
	CategoryID int   `json:"category_id" msgpack:"category_id"`
	IsThing    bool  `json:"isthing" msgpack:"isthing"`
}

// SegmentationResult хранит ответ сегментатора для одного изображения
type SegmentationResult struct {
	Width        int           `json:"width" msgpack:"width"`
	Height       int           `json:"height" msgpack:"height"`
	SegmentMap   []int32       `json:"segment_map" msgpack:"segment_map"` // id сегмента для каждого пикселя, построчно
	Segments     []SegmentInfo `json:"segments_info" msgpack:"segments_info"`
	ThingClasses []string      `json:"thing_classes" msgpack:"thing_classes"`
	StuffClasses []string      `json:"stuff_classes" msgpack:"stuff_classes"`
}

// Mask пиксельная маска сегмента, 1 означает пиксель сегмента
type Mask struct {
	Width  int
	Height int
	Pix    []uint8
}

// Contains проверяет принадлежность пикселя маске
func (m Mask) Contains(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.Pix[y*m.Width+x] != 0
}

// Segment один обнаруженный объект или область
type Segment struct {
	ID           int32
	Class        string
	IsBackground bool
	Mask         Mask
}

// Validate проверяет согласованность размеров карты сегментов
func (r *SegmentationResult) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("invalid segmentation size %dx%d", r.Width, r.Height)
	}
	if len(r.SegmentMap) != r.Width*r.Height {
		return fmt.Errorf("segment map has %d pixels, expected %d", len(r.SegmentMap), r.Width*r.Height)
	}
	return nil
}

// ClassName определяет имя класса по таблице своей таксономии
func (r *SegmentationResult) ClassName(info SegmentInfo) (string, error) {
	classes := r.StuffClasses
	if info.IsThing {
		classes = r.ThingClasses
	}
	if info.CategoryID < 0 || info.CategoryID >= len(classes) {
		return "", fmt.Errorf("segment %d: category %d out of range (thing=%t)", info.ID, info.CategoryID, info.IsThing)
	}
	return classes[info.CategoryID], nil
}

// MaskFor строит маску пикселей сегмента с заданным id
func (r *SegmentationResult) MaskFor(id int32) Mask {
	pix := make([]uint8, len(r.SegmentMap))
	for i, v := range r.SegmentMap {
		if v == id {
			pix[i] = 1
		}
	}
	return Mask{Width: r.Width, Height: r.Height, Pix: pix}
}

// Resolve превращает записи сегментатора в сегменты в исходном порядке.
// Маски строятся только для классов, прошедших keep, при nil остаются все.
func (r *SegmentationResult) Resolve(keep func(class string) bool) ([]Segment, error) {
	if r == nil {
		return nil, errors.New("nil segmentation result")
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, len(r.Segments))
	for _, info := range r.Segments {
		name, err := r.ClassName(info)
		if err != nil {
			return nil, err
		}
		if keep != nil && !keep(name) {
			continue
		}
		segments = append(segments, Segment{
			ID:           info.ID,
			Class:        name,
			IsBackground: !info.IsThing,
			Mask:         r.MaskFor(info.ID),
		})
	}
	return segments, nil
}
