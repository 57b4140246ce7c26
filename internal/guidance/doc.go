// Package guidance превращает результат сегментации в подсказки для передвижения:
// зона объекта в кадре, оценка расстояния и шагов, сводка по классам,
// рекомендация направления и текстовые отчёты.
//
// Все функции пакета чистые и не изменяют общее состояние, справочник
// entity.ReferenceTables только читается.
package guidance
