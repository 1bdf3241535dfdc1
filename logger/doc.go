// Package logger provides structured logging for the contract agent using
// zerolog.
//
// The agent-wide log level comes from the configuration's five-value enum
// (DEBUG, INFO, WARNING, ERROR, CRITICAL) and is mapped onto zerolog
// levels. Output is JSON by default, or a console format for interactive
// use.
//
// # Usage
//
//	log := logger.New(logger.Config{Level: cfg.LogLevel})
//	log.WithComponent("drive").Info("processing cycle started")
package logger
