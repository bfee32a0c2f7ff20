package cmd

import (
	"go.uber.org/zap"

	"droscher.com/BuzzLog/pkg/integrations"
)

func (l *LookupCmd) LookupWith(ctx *Context, lookups []integrations.Integration, logger *zap.Logger) error {
	return l.lookup(ctx, lookups, logger)
}
