package subscribers

import (
	"encoding/json"

	"github.com/mitchelldurbincs/CrystalCaves/internal/game/events"
	"github.com/rs/zerolog"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	logEvent := eventLogger.WithLevel(ls.level(event))

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("rows", e.Rows).
			Int("cols", e.Cols).
			Str("exit", e.Exit.String()).
			Str("player", e.Player.String()).
			Str("mirror_relation", e.Relation).
			Str("level", e.Level)

	case *events.CrystalToggledEvent:
		logEvent.
			Str("cell", e.Cell.String()).
			Bool("placed", e.Placed).
			Int("reflected", e.Reflected).
			Int("turn", e.Metadata.Turn)

	case *events.PlayerMovedEvent:
		logEvent.
			Str("from", e.From.String()).
			Str("to", e.To.String()).
			Bool("trail_placed", e.TrailPlaced).
			Int("turn", e.Metadata.Turn).
			Int("moves", e.Metadata.Moves)

	case *events.RolloverEvent:
		logEvent.
			Int("rollover", e.Rollover).
			Str("old_exit", e.OldExit.String()).
			Str("new_exit", e.NewExit.String()).
			Int("obstacles", len(e.Obstacles)).
			Int("demoted", e.Demoted)

	case *events.ExitReachedEvent:
		logEvent.
			Str("cell", e.Cell.String()).
			Int("moves", e.Metadata.Moves)

	case *events.PathSolvedEvent:
		logEvent.
			Bool("found", e.Found).
			Int("length", e.Length).
			Str("exit", e.Exit.String())
		if e.Found {
			logEvent.Str("start", e.Start.String())
		}

	case *events.BoardClearedEvent:
		logEvent.Int("cleared", e.Cleared)

	case *events.BoardExportedEvent:
		logEvent.Str("destination", e.Destination)

	case *events.ExportFailedEvent:
		logEvent.
			Str("destination", e.Destination).
			Err(e.Err)

	case *events.CommandRejectedEvent:
		logEvent.
			Str("command", e.Command).
			Str("reason", e.Reason)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from", e.FromPhase).
			Str("to", e.ToPhase).
			Str("reason", e.Reason)
	}

	// In dev mode, also log the full event as JSON
	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}

// level returns the configured level, raised to warn for failures
func (ls *LoggerSubscriber) level(event events.Event) zerolog.Level {
	switch ls.logLevel {
	case zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel, zerolog.ErrorLevel:
	default:
		return zerolog.InfoLevel
	}
	if event.Type() == events.TypeExportFailed && ls.logLevel < zerolog.WarnLevel {
		return zerolog.WarnLevel
	}
	return ls.logLevel
}
