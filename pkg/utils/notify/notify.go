package notify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/devantler-tech/tfinfra/pkg/utils/timer"
	fcolor "github.com/fatih/color"
)

// MessageType selects the symbol and colour of a message.
type MessageType int

const (
	// ErrorType is printed red with a ✗ symbol.
	ErrorType MessageType = iota
	// WarningType is printed yellow with a ⚠ symbol.
	WarningType
	// ActivityType is printed uncoloured with a ► symbol.
	ActivityType
	// SuccessType is printed green with a ✔ symbol.
	SuccessType
	// InfoType is printed blue with a ℹ symbol.
	InfoType
	// TitleType is printed bold behind an emoji.
	TitleType
)

// Message is one line (or block) shown to the user.
type Message struct {
	Type    MessageType
	Content string
	Args    []any
	// Timer is only honoured for SuccessType.
	Timer timer.Timer
	// Emoji is only honoured for TitleType.
	Emoji string
	// Writer defaults to os.Stdout.
	Writer io.Writer
}

// Errorf writes an error message.
func Errorf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ErrorType, Content: format, Args: args, Writer: writer})
}

// Warningf writes a warning message.
func Warningf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: WarningType, Content: format, Args: args, Writer: writer})
}

// Activityf writes a progress message.
func Activityf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ActivityType, Content: format, Args: args, Writer: writer})
}

// Successf writes a success message.
func Successf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: SuccessType, Content: format, Args: args, Writer: writer})
}

// SuccessWithTimerf writes a success message followed by the stage and total duration.
func SuccessWithTimerf(writer io.Writer, tmr timer.Timer, format string, args ...any) {
	WriteMessage(Message{Type: SuccessType, Content: format, Args: args, Timer: tmr, Writer: writer})
}

// Infof writes an informational message.
func Infof(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: InfoType, Content: format, Args: args, Writer: writer})
}

// Titlef writes a bold title behind emoji.
func Titlef(writer io.Writer, emoji, format string, args ...any) {
	WriteMessage(Message{Type: TitleType, Content: fmt.Sprintf(format, args...), Emoji: emoji, Writer: writer})
}

// WriteMessage renders msg. Multi-line content is indented under the first line.
func WriteMessage(msg Message) {
	if msg.Writer == nil {
		msg.Writer = os.Stdout
	}

	content := msg.Content
	if len(msg.Args) > 0 {
		content = fmt.Sprintf(msg.Content, msg.Args...)
	}

	style := styleFor(msg.Type)

	if msg.Type == TitleType {
		emoji := msg.Emoji
		if emoji == "" {
			emoji = "ℹ️"
		}

		report(style.color.Fprintf(msg.Writer, "%s %s\n", emoji, content))

		return
	}

	report(style.color.Fprintf(msg.Writer, "%s%s\n", style.symbol, indent(content, style.symbol)))

	if msg.Type == SuccessType && msg.Timer != nil {
		total, stage := msg.Timer.GetTiming()

		report(style.color.Fprintf(msg.Writer, "⏲ current: %s\n", stage.String()))
		report(style.color.Fprintf(msg.Writer, "  total:  %s\n", total.String()))
	}
}

type style struct {
	symbol string
	color  *fcolor.Color
}

func styleFor(msgType MessageType) style {
	switch msgType {
	case ErrorType:
		return style{symbol: "✗ ", color: fcolor.New(fcolor.FgRed)}
	case WarningType:
		return style{symbol: "⚠ ", color: fcolor.New(fcolor.FgYellow)}
	case ActivityType:
		return style{symbol: "► ", color: fcolor.New(fcolor.Reset)}
	case SuccessType:
		return style{symbol: "✔ ", color: fcolor.New(fcolor.FgGreen)}
	case InfoType:
		return style{symbol: "ℹ ", color: fcolor.New(fcolor.FgBlue)}
	case TitleType:
		return style{color: fcolor.New(fcolor.Reset, fcolor.Bold)}
	default:
		return style{color: fcolor.New(fcolor.Reset)}
	}
}

// report prints write failures to stderr; a broken stdout must not abort a command.
func report(_ int, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "notify: failed to print message: %v\n", err)
	}
}

func indent(content, symbol string) string {
	if symbol == "" || !strings.Contains(content, "\n") {
		return content
	}

	pad := strings.Repeat(" ", len([]rune(symbol)))
	lines := strings.Split(content, "\n")

	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = pad + lines[i]
		}
	}

	return strings.Join(lines, "\n")
}
