package utils

import (
	"strings"

	"go.uber.org/zap"
)

// LogEvent writes a standardized line with module/action/request_id.
// Avoid logging sensitive payload; pass summarized fields only.
func LogEvent(log *zap.Logger, requestID, module, action string, fields ...zap.Field) {
	if log == nil {
		return
	}
	base := []zap.Field{
		zap.String("module", strings.ToLower(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
	}
	log.Info(module+"."+action, append(base, fields...)...)
}
