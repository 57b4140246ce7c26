package entity

import "sort"

// ReferenceTables справочные данные: высоты объектов, исключённые классы, опасные поверхности.
// После создания не изменяется.
type ReferenceTables struct {
	heights  map[string]float64
	excluded map[string]struct{}
	surfaces map[string]struct{}
}

// NewReferenceTables создаёт справочник из копий переданных данных
func NewReferenceTables(heights map[string]float64, excluded, surfaces []string) *ReferenceTables {
	t := &ReferenceTables{
		heights:  make(map[string]float64, len(heights)),
		excluded: make(map[string]struct{}, len(excluded)),
		surfaces: make(map[string]struct{}, len(surfaces)),
	}
	for class, h := range heights {
		t.heights[class] = h
	}
	for _, class := range excluded {
		t.excluded[class] = struct{}{}
	}
	for _, class := range surfaces {
		t.surfaces[class] = struct{}{}
	}
	return t
}

// DefaultReferenceTables справочник со значениями по умолчанию
func DefaultReferenceTables() *ReferenceTables {
	return NewReferenceTables(defaultObjectHeights, defaultExcludedClasses, defaultSurfaceClasses)
}

// Merge возвращает новый справочник: значения overrides дополняют и заменяют текущие
func (t *ReferenceTables) Merge(heights map[string]float64, excluded, surfaces []string) *ReferenceTables {
	merged := NewReferenceTables(t.heights, t.ExcludedClasses(), t.SurfaceClasses())
	for class, h := range heights {
		merged.heights[class] = h
	}
	for _, class := range excluded {
		merged.excluded[class] = struct{}{}
	}
	for _, class := range surfaces {
		merged.surfaces[class] = struct{}{}
	}
	return merged
}

// Height ожидаемая физическая высота класса в метрах
func (t *ReferenceTables) Height(class string) (float64, bool) {
	h, ok := t.heights[class]
	return h, ok
}

// IsExcluded класс не попадает в результаты
func (t *ReferenceTables) IsExcluded(class string) bool {
	_, ok := t.excluded[class]
	return ok
}

// IsSurface класс является поверхностью, требующей осторожности
func (t *ReferenceTables) IsSurface(class string) bool {
	_, ok := t.surfaces[class]
	return ok
}

// ExcludedClasses отсортированный список исключённых классов
func (t *ReferenceTables) ExcludedClasses() []string {
	return sortedKeys(t.excluded)
}

// SurfaceClasses отсортированный список опасных поверхностей
func (t *ReferenceTables) SurfaceClasses() []string {
	return sortedKeys(t.surfaces)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var defaultExcludedClasses = []string{"sky", "ceiling"}

var defaultSurfaceClasses = []string{
	"bridge", "blanket", "floor-wood", "gravel", "road", "snow", "sand",
	"stairs", "pavement", "floor", "rug", "grass", "dirt",
}

// Высоты в метрах для классов COCO panoptic
var defaultObjectHeights = map[string]float64{
	"person": 1.7, "bicycle": 1.0, "car": 1.5, "motorcycle": 1.1, "airplane": 19.4,
	"bus": 3.5, "train": 4.5, "truck": 4.0, "boat": 2.5, "traffic light": 4.5,
	"fire hydrant": 0.8, "stop sign": 2.3, "parking meter": 1.2, "bench": 0.7,
	"bird": 0.3, "cat": 0.25, "dog": 0.5, "horse": 1.6, "sheep": 0.9, "cow": 1.5,
	"elephant": 3.2, "bear": 2.8, "zebra": 1.65, "giraffe": 5.5, "backpack": 0.5,
	"umbrella": 0.9, "handbag": 0.3, "tie": 1.4, "suitcase": 0.55, "frisbee": 0.025,
	"skis": 1.7, "snowboard": 1.6, "sports ball": 0.24, "kite": 1.0, "baseball bat": 0.85,
	"baseball glove": 0.3, "skateboard": 0.8, "surfboard": 2.2, "tennis racket": 0.68,
	"bottle": 0.3, "wine glass": 0.2, "cup": 0.1, "fork": 0.2, "knife": 0.23, "spoon": 0.2,
	"bowl": 0.07, "banana": 0.19, "apple": 0.1, "sandwich": 0.05, "orange": 0.1, "broccoli": 0.18,
	"carrot": 0.2, "hot dog": 0.15, "pizza": 0.4, "donut": 0.1, "cake": 0.18, "chair": 0.9,
	"couch": 1.0, "potted plant": 0.65, "bed": 0.6, "dining table": 0.78, "toilet": 0.45,
	"tv": 0.75, "laptop": 0.025, "mouse": 0.04, "remote": 0.2, "keyboard": 0.017,
	"cell phone": 0.018, "microwave": 0.3, "oven": 0.9, "toaster": 0.25, "sink": 0.18,
	"refrigerator": 1.7, "book": 0.03, "clock": 0.4, "vase": 0.4, "scissors": 0.2,
	"teddy bear": 0.5, "hair drier": 0.2, "toothbrush": 0.18, "banner": 1.0, "blanket": 0.02,
	"bridge": 10.0, "cardboard": 0.02, "counter": 0.9, "curtain": 2.0, "door-stuff": 2.1,
	"flower": 0.3, "house": 5.0, "mirror-stuff": 1.5, "pillow": 0.2, "platform": 1.0,
	"shelf": 1.8, "stairs": 0.2, "tent": 2.5, "tree": 10.0, "fence": 1.2,
	"cabinet": 1.5, "table": 0.75, "mountain": 1000.0,
	"building": 10.0, "wall": 3.0,
}
