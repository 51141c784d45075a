package classify_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"orderflow/internal/adapters/out/classify"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Classify(t *testing.T) {
	t.Run("should return envelope when service responds with success", func(t *testing.T) {
		// Given
		orderID := kernel.NewUUID()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, fmt.Sprintf("/api/v1/classifications/%s", orderID), r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"status":"success","data":72.5}`)
		}))
		defer server.Close()
		client := classify.NewClient(server.URL)

		// When
		result, err := client.Classify(context.Background(), orderID)

		// Then
		require.NoError(t, err)
		assert.True(t, result.Succeeded())
		assert.Equal(t, 72.5, result.Data)
	})

	t.Run("should return non-success envelope without error", func(t *testing.T) {
		// Given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status":"rejected","data":0}`)
		}))
		defer server.Close()
		client := classify.NewClient(server.URL)

		// When
		result, err := client.Classify(context.Background(), kernel.NewUUID())

		// Then
		require.NoError(t, err)
		assert.False(t, result.Succeeded())
	})

	t.Run("should wrap non-ok http status as classification failure", func(t *testing.T) {
		// Given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()
		client := classify.NewClient(server.URL)

		// When
		_, err := client.Classify(context.Background(), kernel.NewUUID())

		// Then
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrClassificationFailed)
	})

	t.Run("should wrap transport failure as classification failure", func(t *testing.T) {
		// Given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()
		client := classify.NewClient(server.URL)

		// When
		_, err := client.Classify(context.Background(), kernel.NewUUID())

		// Then
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrClassificationFailed)
	})

	t.Run("should wrap malformed body as classification failure", func(t *testing.T) {
		// Given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `not json`)
		}))
		defer server.Close()
		client := classify.NewClient(server.URL)

		// When
		_, err := client.Classify(context.Background(), kernel.NewUUID())

		// Then
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrClassificationFailed)
	})

	t.Run("should return validation error for unconstructed order id", func(t *testing.T) {
		// Given
		client := classify.NewClient("http://localhost:1")

		// When
		_, err := client.Classify(context.Background(), kernel.UUID{})

		// Then
		require.Error(t, err)
		assert.NotErrorIs(t, err, errs.ErrClassificationFailed)
	})
}
