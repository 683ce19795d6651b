package client

import (
	"fmt"

	"github.com/Alarksharma15/travelchatbot/domain/entities"
)

// Fuse merges a weather snapshot into the text sent to the language model.
// With no snapshot the message is returned unchanged, byte for byte. The
// annotation only ever decorates the transmitted payload; displayed turns
// always carry the raw message.
func Fuse(message string, snapshot *entities.WeatherSnapshot) string {
	if snapshot == nil {
		return message
	}
	return fmt.Sprintf("%s\n\n[Current weather in %s: %v°C, %v%% humidity]",
		message,
		snapshot.Location.Name,
		snapshot.Current.Temperature,
		snapshot.Current.Humidity)
}
