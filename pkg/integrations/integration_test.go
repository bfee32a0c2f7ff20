package integrations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/BuzzLog/pkg/integrations"
	"droscher.com/BuzzLog/pkg/integrations/untappd-web"
)

func TestGetIntegration(t *testing.T) {
	assert.NotNil(t, integrations.GetIntegration(untappdweb.IntegrationName, zap.NewNop()))
	assert.Nil(t, integrations.GetIntegration("ratebeer", zap.NewNop()))
}

func TestFromConfig_SkipsUnknown(t *testing.T) {
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)

	found := integrations.FromConfig([]string{"ratebeer", untappdweb.IntegrationName}, zap.New(observedZapCore))

	assert.Len(t, found, 1)
	assert.Equal(t, 1, observedLogs.FilterMessage("unknown integration").Len())
}
