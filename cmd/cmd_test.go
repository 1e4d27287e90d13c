package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jmehdipour/notify-gateway/internal/config"
	"github.com/jmehdipour/notify-gateway/internal/dispatcher"
	"github.com/jmehdipour/notify-gateway/internal/logger"
	"github.com/jmehdipour/notify-gateway/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prev := logger.Log
	t.Cleanup(func() { logger.Log = prev })

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(append([]string{"--config", ""}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestSendEmail_DevelopmentPrintsPlaceholder(t *testing.T) {
	t.Setenv("NOTIFY_ENV", "development")

	out, err := run(t, "send", "email", "--to", "user@example.com", "--subject", "Hi", "--body", "hello")
	require.NoError(t, err)

	var r model.Receipt
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, model.Receipt{ID: dispatcher.DevEmailID, Channel: model.ChannelEmail}, r)
}

func TestSendSMS_DevelopmentPrintsPlaceholder(t *testing.T) {
	t.Setenv("NOTIFY_ENV", "development")

	out, err := run(t, "send", "sms", "--to", "+447911123456", "--text", "code 1234")
	require.NoError(t, err)

	var r model.Receipt
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, model.Receipt{ID: dispatcher.DevMessageID, Channel: model.ChannelSMS}, r)
}

func TestPing_BadURI(t *testing.T) {
	t.Setenv("NOTIFY_MONGO_URI", "not-a-uri")

	_, err := run(t, "ping")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo connect")
}

func TestDispatcherOpts(t *testing.T) {
	cfg := config.Config{
		Env:   "development",
		Email: config.EmailConfig{From: "no-reply@example.com"},
		AWS:   config.AWSConfig{Region: "eu-west-1", AccessKeyID: "id", SecretAccessKey: "secret"},
	}
	opts := dispatcherOpts(cfg)

	assert.True(t, opts.Development)
	assert.Equal(t, "no-reply@example.com", opts.From)
	assert.Equal(t, dispatcher.AWSConfig{Region: "eu-west-1", AccessKeyID: "id", SecretAccessKey: "secret"}, opts.AWS)
}
