package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	app "vision-nav/internal/application"
	"vision-nav/internal/container"
	"vision-nav/internal/domain/entity"
)

// maxPhotoSize Telegram отдаёт ботам файлы до 20 МБ
const maxPhotoSize = 20 << 20

// GuidanceService то, что боту нужно от слоя приложения
type GuidanceService interface {
	Detect(ctx context.Context, imageData []byte, focalLengthPx float64, objectName string) (*app.DetectOutput, error)
	Navigate(ctx context.Context, imageData []byte, focalLengthPx float64) (*app.NavigateOutput, error)
}

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type fileLinker interface {
	GetFileDirectURL(fileID string) (string, error)
}

// Bot представляет Telegram-бота
type Bot struct {
	api          *tgbotapi.BotAPI
	sender       sender
	files        fileLinker
	http         *http.Client
	users        *app.UserService
	guidance     GuidanceService
	defaultFocal float64
	logger       *zap.Logger
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container, defaultFocal float64, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	b := newBot(api, api, c.UserService, c.GuidanceService, defaultFocal, logger)
	b.api = api
	b.logger.Info("authorized", zap.String("account", api.Self.UserName))

	return b, nil
}

func newBot(s sender, files fileLinker, users *app.UserService, guidance GuidanceService, defaultFocal float64, logger *zap.Logger) *Bot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bot{
		sender:       s,
		files:        files,
		http:         &http.Client{Timeout: time.Minute},
		users:        users,
		guidance:     guidance,
		defaultFocal: defaultFocal,
		logger:       logger.With(zap.String("component", "telegram")),
	}
}

// Run запускает основной цикл обработки сообщений до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}

	user, err := b.users.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		b.logger.Error("get user", zap.Int64("user_id", msg.From.ID), zap.Error(err))
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg, user)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	chatID := msg.Chat.ID

	var err error
	switch msg.Command() {
	case "start":
		_, err = b.users.Cancel(ctx, user.ID, chatID)
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "navigate":
		_, err = b.users.BeginNavigate(ctx, user.ID, chatID)
		b.sendMessage(chatID, msgNavigateMode)

	case "find":
		objectName := parseObjectName(msg.CommandArguments())
		_, err = b.users.BeginDetect(ctx, user.ID, chatID, objectName)
		if objectName == "" {
			b.sendMessage(chatID, msgFindAllMode)
		} else {
			b.sendMessage(chatID, fmt.Sprintf(msgFindObjectMode, objectName))
		}

	case "focal":
		err = b.handleFocal(ctx, msg, user)

	case "cancel":
		_, err = b.users.Cancel(ctx, user.ID, chatID)
		b.sendMessage(chatID, msgCancelled)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}

	if err != nil {
		b.logger.Error("update user", zap.Int64("user_id", user.ID), zap.String("command", msg.Command()), zap.Error(err))
	}
}

func (b *Bot) handleFocal(ctx context.Context, msg *tgbotapi.Message, user *entity.User) error {
	chatID := msg.Chat.ID

	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		if focal := user.FocalLength(b.defaultFocal); focal > 0 {
			b.sendMessage(chatID, fmt.Sprintf(msgFocalCurrent, formatFocal(focal)))
		} else {
			b.sendMessage(chatID, msgFocalUnset)
		}
		return nil
	}

	focal, err := parseFocal(args)
	if err != nil {
		b.sendMessage(chatID, msgBadFocal)
		return nil
	}

	if _, err := b.users.SetFocalLength(ctx, user.ID, chatID, focal); err != nil {
		if errors.Is(err, app.ErrInvalidFocalLength) {
			b.sendMessage(chatID, msgBadFocal)
			return nil
		}
		return err
	}

	b.sendMessage(chatID, fmt.Sprintf(msgFocalSet, formatFocal(focal)))
	return nil
}

// handlePhoto обрабатывает входящее фото в текущем режиме пользователя
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	chatID := msg.Chat.ID
	logger := b.logger.With(zap.Int64("user_id", user.ID), zap.String("mode", string(user.Mode)))

	focal := user.FocalLength(b.defaultFocal)
	if focal <= 0 {
		b.sendMessage(chatID, msgNeedFocal)
		return
	}

	b.setState(ctx, user, entity.StateProcessing)
	defer b.setState(ctx, user, entity.StateMainMenu)

	b.sendMessage(chatID, msgProcessing)

	// Берём файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(ctx, photo.FileID)
	if err != nil {
		logger.Error("download photo", zap.Error(err))
		b.sendMessage(chatID, msgProcessingError)
		return
	}

	reply, err := b.process(ctx, user, imageData, focal)
	switch {
	case errors.Is(err, app.ErrInvalidImage):
		logger.Warn("invalid photo", zap.Error(err))
		b.sendMessage(chatID, msgBadImage)
	case err != nil:
		logger.Error("process photo", zap.Error(err))
		b.sendMessage(chatID, msgProcessingError)
	default:
		logger.Info("photo processed", zap.Int("bytes", len(imageData)), zap.Float64("focal_length_px", focal))
		b.sendMessage(chatID, reply)
	}
}

func (b *Bot) process(ctx context.Context, user *entity.User, imageData []byte, focal float64) (string, error) {
	if user.Mode == entity.ModeDetect {
		out, err := b.guidance.Detect(ctx, imageData, focal, user.ObjectName)
		if err != nil {
			return "", err
		}
		return formatLines(out.Results), nil
	}

	out, err := b.guidance.Navigate(ctx, imageData, focal)
	if err != nil {
		return "", err
	}
	return formatLines(out.Navigation.Minimal) + "\n\n" + formatLines(out.Navigation.Maximal), nil
}

func (b *Bot) setState(ctx context.Context, user *entity.User, state entity.UserState) {
	if _, err := b.users.SetState(ctx, user.ID, user.ChatID, state); err != nil {
		b.logger.Error("set state", zap.Int64("user_id", user.ID), zap.Error(err))
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	fileURL, err := b.files.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPhotoSize))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error("send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// parseFocal разбирает аргумент /focal; запятая допускается как десятичный разделитель
func parseFocal(args string) (float64, error) {
	fields := strings.Fields(args)
	if len(fields) != 1 {
		return 0, fmt.Errorf("expected one value, got %d", len(fields))
	}
	raw := strings.TrimSuffix(strings.ToLower(fields[0]), "px")
	return cast.ToFloat64E(strings.ReplaceAll(raw, ",", "."))
}

// parseObjectName приводит имя класса к виду из таблиц сегментатора
func parseObjectName(args string) string {
	return strings.Join(strings.Fields(strings.ToLower(args)), " ")
}

func formatFocal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatLines(lines []string) string {
	return strings.Join(lines, "\n")
}
