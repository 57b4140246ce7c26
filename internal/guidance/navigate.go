package guidance

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"vision-nav/internal/domain/entity"
)

const (
	msgNoCommands = "No navigation commands generated."
	msgNoObjects  = "No objects detected."
)

// ZoneObject обнаружение вместе с классом, разложенное по зонам
type ZoneObject struct {
	Class     string
	Detection entity.Detection
}

// ZoneState объекты и ближайшее препятствие в каждой зоне
type ZoneState struct {
	objects map[entity.Zone][]ZoneObject
	nearest map[entity.Zone]float64
}

// BuildZoneState раскладывает сводку по зонам. Поверхности и объекты без оценки
// расстояния не учитываются в ближайшем препятствии.
func BuildZoneState(agg *entity.Aggregation, tables *entity.ReferenceTables) *ZoneState {
	s := &ZoneState{
		objects: make(map[entity.Zone][]ZoneObject),
		nearest: make(map[entity.Zone]float64),
	}

	for _, summary := range agg.Summaries() {
		for _, det := range summary.Detections {
			s.objects[det.Zone] = append(s.objects[det.Zone], ZoneObject{Class: summary.Class, Detection: det})

			r, ok := det.Range()
			if !ok || tables.IsSurface(summary.Class) {
				continue
			}
			if cur, seen := s.nearest[det.Zone]; !seen || r.DistanceM < cur {
				s.nearest[det.Zone] = r.DistanceM
			}
		}
	}

	return s
}

// Objects объекты в зоне
func (s *ZoneState) Objects(z entity.Zone) []ZoneObject {
	return s.objects[z]
}

// Nearest минимальное расстояние до препятствия в зоне
func (s *ZoneState) Nearest(z entity.Zone) (float64, bool) {
	d, ok := s.nearest[z]
	return d, ok
}

// Clearance свободное расстояние в зоне, +Inf если препятствий нет
func (s *ZoneState) Clearance(z entity.Zone) float64 {
	if d, ok := s.nearest[z]; ok {
		return d
	}
	return math.Inf(1)
}

// Clearances расстояния, по которым принимается решение
type Clearances struct {
	CenterBlocked bool    // в Near-Center есть препятствие с известным расстоянием
	Center        float64 // расстояние до него
	NearLeft      float64
	MidLeft       float64
	NearRight     float64
	MidRight      float64
}

// ClearancesFrom собирает расстояния для решения из состояния зон
func ClearancesFrom(s *ZoneState) Clearances {
	center, blocked := s.Nearest(entity.ZoneNearCenter)
	return Clearances{
		CenterBlocked: blocked,
		Center:        center,
		NearLeft:      s.Clearance(entity.ZoneNearLeft),
		MidLeft:       s.Clearance(entity.ZoneMidLeft),
		NearRight:     s.Clearance(entity.ZoneNearRight),
		MidRight:      s.Clearance(entity.ZoneMidRight),
	}
}

// Decide выбирает направление. Сторона свободна, если обе её зоны (Near и Mid)
// дальше препятствия по центру; при двух свободных сторонах выигрывает большее
// расстояние в Near, при равенстве левая.
func Decide(c Clearances) entity.Direction {
	if !c.CenterBlocked {
		return entity.DirectionContinue
	}

	leftClear := c.NearLeft > c.Center && c.MidLeft > c.Center
	rightClear := c.NearRight > c.Center && c.MidRight > c.Center
	leftBlocked := c.NearLeft <= c.Center || c.MidLeft <= c.Center
	rightBlocked := c.NearRight <= c.Center || c.MidRight <= c.Center

	switch {
	case leftClear && rightClear:
		if c.NearLeft >= c.NearRight {
			return entity.DirectionLeft
		}
		return entity.DirectionRight
	case leftClear:
		return entity.DirectionLeft
	case rightClear:
		return entity.DirectionRight
	case leftBlocked && rightBlocked:
		return entity.DirectionSlowDown
	case leftBlocked:
		return entity.DirectionRight
	case rightBlocked:
		return entity.DirectionLeft
	default:
		return entity.DirectionNoPath
	}
}

// Navigator строит навигационные подсказки по сводке обнаружений
type Navigator struct {
	tables *entity.ReferenceTables
	logger *zap.Logger
}

// NewNavigator создаёт навигатор
func NewNavigator(tables *entity.ReferenceTables, logger *zap.Logger) *Navigator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Navigator{tables: tables, logger: logger}
}

// Navigate никогда не возвращает ошибку: при отсутствии данных выдаётся
// «продолжайте движение» или заглушка.
func (n *Navigator) Navigate(agg *entity.Aggregation) entity.NavigationReport {
	state := BuildZoneState(agg, n.tables)

	cautions := n.cautions(state)

	c := ClearancesFrom(state)
	n.logger.Debug("zone clearances",
		zap.Bool("near_center_blocked", c.CenterBlocked),
		zap.Float64("near_center", c.Center),
		zap.Float64("near_left", c.NearLeft),
		zap.Float64("mid_left", c.MidLeft),
		zap.Float64("near_right", c.NearRight),
		zap.Float64("mid_right", c.MidRight),
	)
	direction := Decide(c)

	minimal := append(append([]string{}, cautions...), direction.Message())
	if len(minimal) == 0 {
		minimal = []string{msgNoCommands}
	}

	maximal := DescribeNavigation(agg)
	if len(maximal) == 0 {
		maximal = []string{msgNoObjects}
	}

	return entity.NavigationReport{
		Direction: direction,
		Cautions:  cautions,
		Minimal:   minimal,
		Maximal:   maximal,
	}
}

func (n *Navigator) cautions(state *ZoneState) []string {
	var out []string
	if surfaces := n.surfacesIn(state, entity.ZoneNearCenter); len(surfaces) > 0 {
		out = append(out, fmt.Sprintf("Caution: Currently walking on %s at %s.", strings.Join(surfaces, ", "), entity.ZoneNearCenter))
	}
	if surfaces := n.surfacesIn(state, entity.ZoneMidCenter); len(surfaces) > 0 {
		out = append(out, fmt.Sprintf("Caution: Currently close to %s at %s.", strings.Join(surfaces, ", "), entity.ZoneMidCenter))
	}
	return out
}

func (n *Navigator) surfacesIn(state *ZoneState, z entity.Zone) []string {
	return lo.FilterMap(state.Objects(z), func(obj ZoneObject, _ int) (string, bool) {
		return obj.Class, n.tables.IsSurface(obj.Class)
	})
}
