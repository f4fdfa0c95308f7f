/*
Package log provides structured logging for Plfanzen using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging with
component-specific loggers, configurable log levels, and helper functions for
common logging patterns. All logs include timestamps and support filtering by
severity level for production debugging.

# Core Components

Global Logger:
  - Package-level zerolog.Logger instance
  - Initialized once via log.Init()
  - Accessible from all Plfanzen packages
  - Thread-safe concurrent writes

Log Levels:
  - Debug: Detailed debugging information
  - Info: General informational messages
  - Warn: Warning messages (potential issues)
  - Error: Error messages (operation failed)
  - Fatal: Critical errors (process exits)

Configuration:
  - Level: Filter messages below threshold
  - JSONOutput: JSON vs human-readable console
  - Output: io.Writer for log destination (stdout, file)

Context Loggers:
  - WithComponent: Add component name to all logs
  - WithChallengeID: Add challenge ID context
  - WithActorID: Add actor ID context
  - WithInstanceID: Add instance ID context

# Usage

Initializing the Logger:

	import "github.com/plfanzen/plfanzen/pkg/log"

	// JSON output (production)
	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
		Output:     os.Stdout,
	})

	// Console output (development)
	log.Init(log.Config{
		Level:      log.DebugLevel,
		JSONOutput: false,
		Output:     os.Stdout,
	})

Simple Logging:

	log.Info("Challenge repository synced")
	log.Debug("Checking instance state")
	log.Warn("Challenge dropped from listing")
	log.Error("Failed to reach Kubernetes API")
	log.Fatal("Cannot start without EXPOSED_DOMAIN") // Exits process

Structured Logging:

	log.Logger.Info().
		Str("challenge_id", "buffer-overflow-101").
		Int("exposed_ports", 2).
		Msg("Instance created")

	log.Logger.Error().
		Err(err).
		Str("namespace", "challenge-web-instance-3f2a9c1b04de").
		Msg("Deployment apply failed")

Component Loggers:

	// Create component-specific logger
	loaderLog := log.WithComponent("challenge-loader")
	loaderLog.Info().Msg("Starting full reload")
	loaderLog.Debug().Str("challenge_id", "pwn-me").Msg("Parsing metadata")

Context Logger Helpers:

	// Challenge-specific logs
	chLog := log.WithChallengeID("web-intro")
	chLog.Info().Msg("Flag validation script compiled")

	// Actor-specific logs
	actorLog := log.WithActorID("9f6c2a71-6f0e-4f61-86d1-a4c33a6d2f1c")
	actorLog.Info().Msg("Instance requested")

# Integration Points

This package integrates with:

  - pkg/manager: Logs facade operations and repository syncs
  - pkg/challenge: Logs loading, rendering, and validation failures
  - pkg/instance: Logs instance lifecycle transitions
  - pkg/gateway: Logs SSH sessions and backend registry changes
  - pkg/api: Logs gRPC requests and errors

# Design Patterns

Global Logger Pattern:
  - Single package-level Logger instance
  - Initialized once at application start
  - Accessible from all packages without passing
  - Simplifies logging in deeply nested calls

Context Logger Pattern:
  - Create child loggers with context fields
  - Pass context loggers to functions
  - Automatically includes context in all logs
  - Avoids repetitive field specification

Error Logging Pattern:
  - Always use .Err(err) for error objects
  - Enables error tracking and alerting
  - Consistent error format across codebase

# Security

Log Content:
  - Never log flags, validation scripts, or instance passwords
  - Redact tokens and SSH keys
  - Use typed fields (.Str, .Int) for user data
  - User-controlled strings go through structured fields, never format strings

# See Also

  - Zerolog documentation: https://github.com/rs/zerolog
  - 12-Factor App Logs: https://12factor.net/logs
*/
package log
