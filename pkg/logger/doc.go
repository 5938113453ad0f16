// Package logger builds *slog.Logger instances configured with functional
// options and decorated with context extractors.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format, adds static attributes and, when context extractors are given,
// wraps the result so that attributes pulled from the context (for example
// the request id) are added to every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "rowfilter"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "rows filtered",
//	    logger.Query(q),
//	    logger.FilterStats(stats.Shown, stats.Hidden, stats.Skipped),
//	)
//
// Attribute helpers such as Error return an empty slog.Attr for nil input,
// so they can be passed unconditionally.
package logger
