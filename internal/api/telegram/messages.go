package telegram

const (
	msgStart = `👋 Привет! Я помогаю ориентироваться по фотографии: подсказываю, куда идти, и ищу предметы вокруг.

📸 Отправьте фото того, что перед вами.

📋 Команды:
/navigate — подсказка направления
/find [объект] — найти объект (например, /find chair)
/focal <px> — фокусное расстояние камеры в пикселях
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Один раз задайте фокусное расстояние камеры: /focal 1400
2️⃣ Выберите режим: /navigate или /find [объект]
3️⃣ Отправьте фото, снятое на уровне груди по направлению движения
4️⃣ Бот ответит, куда идти, и перечислит объекты с расстоянием в метрах и шагах

💡 Расстояние оценивается по известной высоте объекта, поэтому для части объектов будет указана только зона кадра.

📋 Команды:
/navigate — подсказка направления
/find [объект] — найти объект
/focal <px> — фокусное расстояние
/cancel — отменить операцию`

	msgNavigateMode    = "🧭 Режим навигации. Отправьте фото того, что перед вами."
	msgFindAllMode     = "🔎 Режим поиска. Отправьте фото, и я перечислю все объекты."
	msgFindObjectMode  = "🔎 Ищу «%s». Отправьте фото."
	msgFocalSet        = "📐 Фокусное расстояние: %s px."
	msgFocalCurrent    = "📐 Текущее фокусное расстояние: %s px. Изменить: /focal <px>"
	msgFocalUnset      = "📐 Фокусное расстояние не задано. Укажите его: /focal <px>"
	msgBadFocal        = "⚠️ Фокусное расстояние должно быть положительным числом, например /focal 1400"
	msgNeedFocal       = "📐 Сначала задайте фокусное расстояние камеры: /focal <px>"
	msgCancelled       = "❌ Операция отменена. Отправьте /navigate или /find для новой проверки."
	msgSendPhoto       = "📸 Пожалуйста, отправьте фото."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Обрабатываю изображение..."
	msgBadImage        = "⚠️ Не удалось прочитать изображение. Попробуйте отправить другое фото."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте позже."
)
