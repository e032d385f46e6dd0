package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_PostsEmbedPayload(t *testing.T) {
	var got Payload
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(time.Second)
	err := client.Send(context.Background(), srv.URL, Embed{
		Title:     "Check In",
		Color:     ColorGreen,
		Fields:    []Field{{Name: "Employee", Value: "Budi", Inline: true}},
		Timestamp: "2024-03-01T01:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json", contentType)
	require.Len(t, got.Embeds, 1)
	assert.Equal(t, "Check In", got.Embeds[0].Title)
	assert.Equal(t, ColorGreen, got.Embeds[0].Color)
	assert.Equal(t, "Budi", got.Embeds[0].Fields[0].Value)
	assert.Equal(t, "2024-03-01T01:00:00Z", got.Embeds[0].Timestamp)
}

func TestSend_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	err := NewClient(time.Second).Send(context.Background(), srv.URL, Embed{Title: "x"})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "rate limited")
}

func TestSend_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	err := NewClient(50*time.Millisecond).Send(context.Background(), srv.URL, Embed{Title: "x"})
	assert.Error(t, err)
}
