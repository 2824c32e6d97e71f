package utils

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Log layers. Each component tags its events with one of these so the
// console writer can prefix and colour them.
const (
	LayerMain   = "MAIN"
	LayerSource = "SOURCE"
	LayerShamir = "SHAMIR"
)

// SetupLogger configures the global zerolog logger. With pretty set the
// output is a coloured console format with the "layer" field moved to the
// front of the message; otherwise events are written as JSON lines.
func SetupLogger(out io.Writer, level zerolog.Level, pretty bool) zerolog.Logger {
	if !pretty {
		log.Logger = zerolog.New(out).With().Timestamp().Logger().Level(level)
		return log.Logger
	}

	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	output.FormatPrepare = func(evt map[string]interface{}) error {
		layer, ok := evt["layer"].(string)
		if !ok {
			return nil
		}
		var color string
		switch layer {
		case LayerMain:
			color = "\x1b[35m" // Magenta
		case LayerSource:
			color = "\x1b[36m" // Cyan
		case LayerShamir:
			color = "\x1b[32m" // Green
		default:
			color = "\x1b[37m" // White
		}
		prefix := fmt.Sprintf("%s[%-6s]\x1b[0m", color, layer)
		if msg, ok := evt["message"].(string); ok {
			evt["message"] = prefix + " " + msg
		} else {
			evt["message"] = prefix
		}
		delete(evt, "layer")
		return nil
	}

	log.Logger = log.Output(output).Level(level)
	return log.Logger
}

// Layer returns a child of logger tagged with the given layer.
func Layer(logger zerolog.Logger, layer string) zerolog.Logger {
	return logger.With().Str("layer", layer).Logger()
}
