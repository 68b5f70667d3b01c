package awsconf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = []byte(`
region: eu-central-1
url: http://localhost:9000
accesskey: test-user
secretkey: test-secret
`)

func TestParseOption(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBuffer(testConfig)))

	o := ParseOption(v)

	assert.Equal(t, "eu-central-1", o.Region)
	assert.Equal(t, "http://localhost:9000", o.URL)
	assert.Equal(t, "test-user", o.AccessKey)
	assert.Equal(t, "test-secret", o.SecretKey)
}

func TestParseOptionEmpty(t *testing.T) {
	o := ParseOption(viper.New())

	assert.Empty(t, o.Region)
	assert.Empty(t, o.URL)
	assert.Empty(t, o.AccessKey)
	assert.Empty(t, o.SecretKey)
}

func TestLoadRegionPrecedence(t *testing.T) {
	o := &Option{Region: "eu-central-1"}

	cfg, err := o.Load(context.TODO(), "ap-southeast-2")
	require.NoError(t, err)
	assert.Equal(t, "ap-southeast-2", cfg.Region, "argument wins over option")

	cfg, err = o.Load(context.TODO(), "")
	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", cfg.Region)

	cfg, err = (&Option{}).Load(context.TODO(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultRegion, cfg.Region)
}

func TestBackoffDelayCapped(t *testing.T) {
	b := NewExponentialJitterBackoff(25 * time.Millisecond)

	d, err := b.BackoffDelay(30, nil)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, d)

	d, err = b.BackoffDelay(0, nil)
	require.NoError(t, err)
	assert.Less(t, d, time.Second)
}
