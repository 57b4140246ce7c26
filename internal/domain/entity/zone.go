package entity

import "fmt"

// Zone одна из 9 областей кадра (сетка 3x3: Far/Mid/Near x Left/Center/Right)
type Zone int

const (
	ZoneFarLeft Zone = iota
	ZoneFarCenter
	ZoneFarRight
	ZoneMidLeft
	ZoneMidCenter
	ZoneMidRight
	ZoneNearLeft
	ZoneNearCenter
	ZoneNearRight
)

// GridSize количество строк и столбцов сетки
const GridSize = 3

var zoneLabels = [...]string{
	"Far-Left", "Far-Center", "Far-Right",
	"Mid-Left", "Mid-Center", "Mid-Right",
	"Near-Left", "Near-Center", "Near-Right",
}

// ZoneAt возвращает зону по строке и столбцу сетки
func ZoneAt(row, col int) (Zone, error) {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		return 0, fmt.Errorf("zone index out of grid: row=%d col=%d", row, col)
	}
	return Zone(row*GridSize + col), nil
}

// Zones возвращает все зоны в порядке сетки
func Zones() []Zone {
	zones := make([]Zone, len(zoneLabels))
	for i := range zones {
		zones[i] = Zone(i)
	}
	return zones
}

// ParseZone разбирает текстовую метку зоны
func ParseZone(label string) (Zone, error) {
	for i, l := range zoneLabels {
		if l == label {
			return Zone(i), nil
		}
	}
	return 0, fmt.Errorf("unknown zone %q", label)
}

// Valid проверяет, что значение входит в сетку
func (z Zone) Valid() bool {
	return z >= ZoneFarLeft && z <= ZoneNearRight
}

// Row строка сетки: 0 Far, 2 Near
func (z Zone) Row() int { return int(z) / GridSize }

// Col столбец сетки: 0 Left, 2 Right
func (z Zone) Col() int { return int(z) % GridSize }

func (z Zone) String() string {
	if !z.Valid() {
		return fmt.Sprintf("Zone(%d)", int(z))
	}
	return zoneLabels[z]
}

// MarshalText сериализует зону её меткой
func (z Zone) MarshalText() ([]byte, error) {
	if !z.Valid() {
		return nil, fmt.Errorf("invalid zone %d", int(z))
	}
	return []byte(zoneLabels[z]), nil
}

// UnmarshalText разбирает зону из метки
func (z *Zone) UnmarshalText(text []byte) error {
	parsed, err := ParseZone(string(text))
	if err != nil {
		return err
	}
	*z = parsed
	return nil
}
