package container

import (
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	app "vision-nav/internal/application"
	"vision-nav/internal/domain/entity"
	"vision-nav/internal/domain/port"
)

type Container struct {
	UserService     *app.UserService
	GuidanceService *app.GuidanceService

	closers []io.Closer
}

// Deps внешние зависимости сервисов
type Deps struct {
	Users     port.UserRepository
	Segmenter port.Segmenter
	Decoder   port.ImageDecoder
	Contours  port.ContourFinder
	Tables    *entity.ReferenceTables
	Logger    *zap.Logger
}

func New(deps Deps) *Container {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tables := deps.Tables
	if tables == nil {
		tables = entity.DefaultReferenceTables()
	}

	c := &Container{
		UserService:     app.NewUserService(deps.Users),
		GuidanceService: app.NewGuidanceService(deps.Segmenter, deps.Decoder, deps.Contours, tables, logger.Named("guidance")),
	}

	// зависимости, которые держат ресурсы, закрываются вместе с контейнером
	for _, dep := range []any{deps.Users, deps.Segmenter} {
		if closer, ok := dep.(io.Closer); ok {
			c.closers = append(c.closers, closer)
		}
	}

	return c
}

// Close закрывает ресурсы в обратном порядке и собирает все ошибки
func (c *Container) Close() error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, c.closers[i].Close())
	}
	c.closers = nil
	return err
}
