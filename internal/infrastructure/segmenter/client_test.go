package segmenter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"vision-nav/internal/domain/entity"
)

func sampleResult() entity.SegmentationResult {
	return entity.SegmentationResult{
		Width:        2,
		Height:       2,
		SegmentMap:   []int32{1, 1, 0, 2},
		Segments:     []entity.SegmentInfo{{ID: 1, CategoryID: 0, IsThing: true}, {ID: 2, CategoryID: 0}},
		ThingClasses: []string{"person"},
		StuffClasses: []string{"floor"},
	}
}

func newServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_SegmentJSON(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, contentTypeJSON, r.Header.Get("Accept"))

		file, _, err := r.FormFile("image")
		if assert.NoError(t, err) {
			data, _ := io.ReadAll(file)
			assert.Equal(t, "jpeg-bytes", string(data))
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(sampleResult())
	})

	c, err := NewClient(Config{URL: srv.URL}, nil)
	require.NoError(t, err)

	res, err := c.Segment(context.Background(), []byte("jpeg-bytes"))
	require.NoError(t, err)
	require.Equal(t, sampleResult(), *res)
}

func TestClient_SegmentMsgpack(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, contentTypeMsgpack, r.Header.Get("Accept"))
		data, err := msgpack.Marshal(sampleResult())
		assert.NoError(t, err)
		w.Header().Set("Content-Type", contentTypeMsgpack)
		_, _ = w.Write(data)
	})

	c, err := NewClient(Config{URL: srv.URL, Codec: CodecMsgpack}, nil)
	require.NoError(t, err)

	res, err := c.Segment(context.Background(), []byte("jpeg-bytes"))
	require.NoError(t, err)
	require.Equal(t, sampleResult(), *res)
}

func TestClient_ErrorPayload(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"CUDA out of memory"}`))
	})

	c, err := NewClient(Config{URL: srv.URL}, nil)
	require.NoError(t, err)

	_, err = c.Segment(context.Background(), []byte("x"))
	require.ErrorContains(t, err, "CUDA out of memory")
}

func TestClient_InvalidSegmentation(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		bad := sampleResult()
		bad.SegmentMap = bad.SegmentMap[:3]
		w.Header().Set("Content-Type", contentTypeJSON)
		_ = json.NewEncoder(w).Encode(bad)
	})

	c, err := NewClient(Config{URL: srv.URL}, nil)
	require.NoError(t, err)

	_, err = c.Segment(context.Background(), []byte("x"))
	require.ErrorContains(t, err, "invalid segmentation")
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Config{}, nil)
	require.Error(t, err)

	_, err = NewClient(Config{URL: "http://localhost", Codec: "protobuf"}, nil)
	require.Error(t, err)
}
