package entity

// UserState состояние пользователя в диалоге
type UserState string

const (
	StateMainMenu      UserState = "main_menu"      // В главном меню
	StateAwaitingPhoto UserState = "awaiting_photo" // Ожидание фото
	StateProcessing    UserState = "processing"     // Обработка изображения
)

// UserMode режим обработки фотографий
type UserMode string

const (
	ModeNavigate UserMode = "navigate" // Подсказка направления
	ModeDetect   UserMode = "detect"   // Поиск объектов
)

// User представляет пользователя бота
type User struct {
	ID            int64     // Telegram User ID
	ChatID        int64     // Telegram Chat ID
	State         UserState // Текущее состояние пользователя
	Mode          UserMode  // Режим обработки фото
	FocalLengthPx float64   // Фокусное расстояние камеры в пикселях, 0 — не задано
	ObjectName    string    // Искомый класс в режиме поиска, пусто — все объекты
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
		Mode:   ModeNavigate,
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
}

// SetMode переключает режим и искомый объект
func (u *User) SetMode(mode UserMode, objectName string) {
	u.Mode = mode
	if mode == ModeDetect {
		u.ObjectName = objectName
	} else {
		u.ObjectName = ""
	}
}

// FocalLength возвращает фокусное расстояние пользователя или значение по умолчанию
func (u *User) FocalLength(fallback float64) float64 {
	if u.FocalLengthPx > 0 {
		return u.FocalLengthPx
	}
	return fallback
}
