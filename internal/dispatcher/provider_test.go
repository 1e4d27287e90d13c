package dispatcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateAWSEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", dir+"/config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", dir+"/credentials")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	t.Setenv("AWS_PROFILE", "")
}

func TestNew_DevelopmentHasNoClients(t *testing.T) {
	s, err := New(context.Background(), Options{Development: true, From: "a@example.com"})
	require.NoError(t, err)

	require.NotNil(t, s.Email)
	require.NotNil(t, s.SMS)
	assert.Nil(t, s.Email.client)
	assert.Nil(t, s.SMS.client)
	assert.True(t, s.Email.dev)
	assert.True(t, s.SMS.dev)
}

func TestNew_ProductionBuildsClients(t *testing.T) {
	isolateAWSEnv(t)

	s, err := New(context.Background(), Options{
		From: "no-reply@example.com",
		AWS:  AWSConfig{Region: "eu-west-1", AccessKeyID: "AKIDEXAMPLE", SecretAccessKey: "secret"},
	})
	require.NoError(t, err)

	assert.NotNil(t, s.Email.client)
	assert.NotNil(t, s.SMS.client)
	assert.False(t, s.Email.dev)
	assert.Equal(t, "no-reply@example.com", s.Email.from)
}

func TestLoadAWSConfig_StaticCredentials(t *testing.T) {
	isolateAWSEnv(t)

	cfg, err := LoadAWSConfig(context.Background(), AWSConfig{
		Region:          "ap-south-1",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "ap-south-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKIDEXAMPLE", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}

func TestLoadAWSConfig_DefaultRegion(t *testing.T) {
	isolateAWSEnv(t)

	cfg, err := LoadAWSConfig(context.Background(), AWSConfig{})
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg.Region)
}
