package entity

// RangeEstimate оценка расстояния до объекта
type RangeEstimate struct {
	DistanceM float64 // метры, 2 знака после запятой
	Steps     int     // шаги по 0.75 м
}

// Detection положение одного объекта в кадре
type Detection struct {
	Zone     Zone
	Estimate *RangeEstimate // nil, если высота класса неизвестна
}

// Range возвращает оценку расстояния, если она есть
func (d Detection) Range() (RangeEstimate, bool) {
	if d.Estimate == nil {
		return RangeEstimate{}, false
	}
	return *d.Estimate, true
}

// ClassSummary все обнаружения одного класса в порядке обработки
type ClassSummary struct {
	Class      string
	Detections []Detection
}

// Count количество обнаружений класса
func (s *ClassSummary) Count() int {
	return len(s.Detections)
}

// HasRange сообщает, есть ли у класса хотя бы одна оценка расстояния
func (s *ClassSummary) HasRange() bool {
	for _, d := range s.Detections {
		if d.Estimate != nil {
			return true
		}
	}
	return false
}

// Aggregation сводка обнаружений по классам в порядке первого появления
type Aggregation struct {
	order   []string
	byClass map[string]*ClassSummary
}

// NewAggregation создаёт пустую сводку
func NewAggregation() *Aggregation {
	return &Aggregation{byClass: make(map[string]*ClassSummary)}
}

// Add добавляет обнаружение к сводке класса, создавая её при необходимости
func (a *Aggregation) Add(class string, det Detection) {
	summary, ok := a.byClass[class]
	if !ok {
		summary = &ClassSummary{Class: class}
		a.byClass[class] = summary
		a.order = append(a.order, class)
	}
	summary.Detections = append(summary.Detections, det)
}

// Get возвращает сводку класса
func (a *Aggregation) Get(class string) (*ClassSummary, bool) {
	s, ok := a.byClass[class]
	return s, ok
}

// Summaries возвращает сводки в порядке первого появления классов
func (a *Aggregation) Summaries() []*ClassSummary {
	out := make([]*ClassSummary, 0, len(a.order))
	for _, class := range a.order {
		out = append(out, a.byClass[class])
	}
	return out
}

// Len количество классов
func (a *Aggregation) Len() int {
	return len(a.order)
}

// Empty сообщает, что ничего не найдено
func (a *Aggregation) Empty() bool {
	return a.Len() == 0
}
