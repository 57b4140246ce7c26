package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"vision-nav/internal/domain/entity"
	"vision-nav/internal/domain/port"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteUserRepository хранит настройки пользователей в SQLite, переживает перезапуск
type SQLiteUserRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteUserRepository открывает базу и применяет миграции
func NewSQLiteUserRepository(path string, logger *zap.Logger) (*SQLiteUserRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite не любит параллельную запись
	db.SetMaxOpenConns(1)

	repo := &SQLiteUserRepository{db: db, logger: logger}
	if err := repo.migrateUp(); err != nil {
		db.Close()
		return nil, err
	}

	return repo, nil
}

func (r *SQLiteUserRepository) migrateUp() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	m.Log = &migrateLogger{logger: r.logger}

	// m.Close не вызываем: он закрыл бы общее соединение с базой
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// Get возвращает пользователя по ID, создаёт нового если не найден
func (r *SQLiteUserRepository) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	var (
		user  entity.User
		state string
		mode  string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, chat_id, state, mode, focal_length_px, object_name
		FROM users WHERE user_id = ?`, userID,
	).Scan(&user.ID, &user.ChatID, &state, &mode, &user.FocalLengthPx, &user.ObjectName)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		newUser := entity.NewUser(userID, chatID)
		if err := r.Save(ctx, newUser); err != nil {
			return nil, err
		}
		return newUser, nil
	case err != nil:
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}

	user.State = entity.UserState(state)
	user.Mode = entity.UserMode(mode)
	return &user, nil
}

// Save сохраняет состояние и настройки пользователя
func (r *SQLiteUserRepository) Save(ctx context.Context, user *entity.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (user_id, chat_id, state, mode, focal_length_px, object_name, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			chat_id = excluded.chat_id,
			state = excluded.state,
			mode = excluded.mode,
			focal_length_px = excluded.focal_length_px,
			object_name = excluded.object_name,
			updated_at = CURRENT_TIMESTAMP`,
		user.ID, user.ChatID, string(user.State), string(user.Mode), user.FocalLengthPx, user.ObjectName,
	)
	if err != nil {
		return fmt.Errorf("save user %d: %w", user.ID, err)
	}
	return nil
}

// UpdateState обновляет состояние пользователя
func (r *SQLiteUserRepository) UpdateState(ctx context.Context, userID int64, state entity.UserState) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET state = ?, updated_at = CURRENT_TIMESTAMP WHERE user_id = ?`,
		string(state), userID,
	)
	if err != nil {
		return fmt.Errorf("update state of user %d: %w", userID, err)
	}
	return nil
}

// Close закрывает соединение с базой
func (r *SQLiteUserRepository) Close() error {
	return r.db.Close()
}

// migrateLogger реализует migrate.Logger
type migrateLogger struct {
	logger *zap.Logger
}

func (l *migrateLogger) Printf(format string, v ...interface{}) {
	l.logger.Sugar().Infof("[migrate] "+format, v...)
}

func (l *migrateLogger) Verbose() bool {
	return false
}

// Проверка реализации интерфейса
var _ port.UserRepository = (*SQLiteUserRepository)(nil)
