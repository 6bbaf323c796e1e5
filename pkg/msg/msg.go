package msg

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

var messages map[string]string

// Init loads the message catalog from the given YAML file. It must be
// called once before GetMessage, typically from main. Before Init (or
// if a key is missing) GetMessage falls back to a placeholder text.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read messages: %w", err)
	}

	messages = make(map[string]string)
	parseMessageMap("", v.AllSettings(), messages)
	return nil
}

// parseMessageMap flattens the YAML tree into dotted message keys.
func parseMessageMap(prefix string, data map[string]any, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			parseMessageMap(fullKey, v, result)
		}
	}
}

// GetMessage resolves a message by key and substitutes {0}, {1}, ...
// placeholders with the given arguments.
func GetMessage(key string, args ...any) string {
	message, exists := messages[key]
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		message = strings.ReplaceAll(message, placeholder, argToString(arg))
	}
	return message
}

func argToString(arg any) string {
	switch v := arg.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case error:
		return v.Error()
	default:
		if jsonBytes, err := json.Marshal(arg); err == nil {
			return string(jsonBytes)
		}
		return fmt.Sprintf("%v", arg)
	}
}
