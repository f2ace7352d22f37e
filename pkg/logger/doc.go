// Package logger builds *slog.Logger instances from functional options and
// injects values stored in context.Context into every record.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format and wraps it with LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks before delegating to the underlying handler.
// Logs go to stderr unless WithOutput says otherwise, so command output on
// stdout stays clean.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "bili"),
//	    logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//	    logger.WithAttr(logger.Component("cli")),
//	    logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//	        name, ok := ctx.Value(operationKey{}).(string)
//	        return logger.Operation(name), ok
//	    }),
//	)
//
//	log.DebugContext(ctx, "inputs sanitized",
//	    logger.Count(len(inputs)),
//	    logger.Duration(time.Since(start)),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// without a nil check.
package logger
