package segmenter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	"vision-nav/internal/domain/entity"
	"vision-nav/internal/domain/port"
)

// Codec формат ответа сервиса сегментации
type Codec string

const (
	CodecJSON    Codec = "json"
	CodecMsgpack Codec = "msgpack"
)

const (
	contentTypeJSON    = "application/json"
	contentTypeMsgpack = "application/msgpack"
)

// maxResponseSize карта сегментов Full HD в JSON укладывается с запасом
const maxResponseSize = 256 << 20

// ParseCodec разбирает название формата
func ParseCodec(s string) (Codec, error) {
	switch Codec(s) {
	case "", CodecJSON:
		return CodecJSON, nil
	case CodecMsgpack:
		return CodecMsgpack, nil
	default:
		return "", fmt.Errorf("unknown segmenter codec %q", s)
	}
}

func (c Codec) contentType() string {
	if c == CodecMsgpack {
		return contentTypeMsgpack
	}
	return contentTypeJSON
}

// Config настройки клиента
type Config struct {
	URL     string
	Codec   Codec
	Timeout time.Duration
}

// Client HTTP-клиент внешнего сервиса паноптической сегментации
type Client struct {
	url    string
	codec  Codec
	http   *http.Client
	logger *zap.Logger
}

// NewClient создаёт клиент сервиса сегментации
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("segmenter url is required")
	}
	codec, err := ParseCodec(string(cfg.Codec))
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		url:    cfg.URL,
		codec:  codec,
		http:   &http.Client{Timeout: timeout},
		logger: logger.With(zap.String("component", "segmenter.client")),
	}, nil
}

// Segment отправляет изображение в сервис и разбирает карту сегментов
func (c *Client) Segment(ctx context.Context, imageData []byte) (*entity.SegmentationResult, error) {
	start := time.Now()

	body, contentType, err := multipartImage(imageData)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", c.codec.contentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("segmenter request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseError(resp)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	result, err := decodeResult(resp.Header.Get("Content-Type"), data)
	if err != nil {
		return nil, err
	}
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("invalid segmentation: %w", err)
	}

	c.logger.Debug("segmentation done",
		zap.Int("segments", len(result.Segments)),
		zap.Int("width", result.Width),
		zap.Int("height", result.Height),
		zap.Duration("latency", time.Since(start)),
	)

	return result, nil
}

func multipartImage(imageData []byte) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", "frame.jpg")
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(imageData); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// decodeResult выбирает кодек по Content-Type ответа
func decodeResult(contentType string, data []byte) (*entity.SegmentationResult, error) {
	mediaType, _, _ := mime.ParseMediaType(contentType)

	var result entity.SegmentationResult
	switch mediaType {
	case contentTypeMsgpack, "application/x-msgpack":
		if err := msgpack.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("decode msgpack response: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("decode json response: %w", err)
		}
	}
	return &result, nil
}

func parseError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return fmt.Errorf("segmenter returned %d: %s", resp.StatusCode, payload.Error)
	}
	return fmt.Errorf("segmenter returned %d", resp.StatusCode)
}

// Проверка реализации интерфейса
var _ port.Segmenter = (*Client)(nil)
