package flow

// Button is one pressable option. Data is the callback payload for inline
// buttons; reply-keyboard buttons carry only a label.
type Button struct {
	Label string
	Data  string
}

// Message is a single transport-independent outbound message. The telegram
// handler renders it; nothing in this package knows about chat APIs.
type Message struct {
	Text     string
	PhotoURL string
	HTML     bool

	Inline [][]Button
	Reply  [][]Button
	// ContactButton marks the first reply button as a contact-share request.
	ContactButton bool
	RemoveReply   bool
	// EditMarkup replaces the keyboard of the message the user just pressed
	// instead of sending a new one.
	EditMarkup bool
}

// Reply is everything a step wants sent back to the user.
type Reply struct {
	Messages []Message
}

func reply(messages ...Message) *Reply {
	return &Reply{Messages: messages}
}

func textMessage(text string) Message {
	return Message{Text: text}
}

func (r *Reply) append(other *Reply) *Reply {
	r.Messages = append(r.Messages, other.Messages...)
	return r
}

// grid chunks buttons into rows of rowSize.
func grid(buttons []Button, rowSize int) [][]Button {
	var rows [][]Button
	for i := 0; i < len(buttons); i += rowSize {
		end := i + rowSize
		if end > len(buttons) {
			end = len(buttons)
		}
		rows = append(rows, buttons[i:end])
	}
	return rows
}
