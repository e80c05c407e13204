package realtime

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownEvent is returned for inbound event names outside the protocol.
var ErrUnknownEvent = errors.New("unknown event")

// Frame is the JSON envelope used on the socket in both directions.
type Frame struct {
	Event string          `json:"event"`
	ID    string          `json:"id,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// DecodeInbound maps an envelope onto its typed inbound event.
// joinChat, leaveChat and markAsRead accept either a bare room ID string or {"chatId": "..."}.
func DecodeInbound(frame Frame) (InboundEvent, error) {
	switch frame.Event {
	case EventJoinChat:
		id, err := decodeChatID(frame.Data)

		return JoinChat{ChatID: id}, err
	case EventLeaveChat:
		id, err := decodeChatID(frame.Data)

		return LeaveChat{ChatID: id}, err
	case EventMarkAsRead:
		id, err := decodeChatID(frame.Data)

		return MarkAsRead{ChatID: id}, err
	case EventSendMessage:
		var e SendMessage
		if err := json.Unmarshal(frame.Data, &e); err != nil {
			return nil, errors.Wrap(err, "decode sendMessage")
		}

		return e, nil
	case EventTyping:
		var e Typing
		if err := json.Unmarshal(frame.Data, &e); err != nil {
			return nil, errors.Wrap(err, "decode typing")
		}

		return e, nil
	default:
		return nil, errors.Wrapf(ErrUnknownEvent, "%q", frame.Event)
	}
}

// EncodeOutbound wraps a push in its envelope.
func EncodeOutbound(event OutboundEvent) ([]byte, error) {
	data, err := json.Marshal(event.Payload())
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", event.Name())
	}

	return json.Marshal(Frame{Event: event.Name(), Data: data})
}

// EncodeAck wraps an ack in its envelope, echoing the request ID.
func EncodeAck(requestID string, ack Ack) ([]byte, error) {
	data, err := json.Marshal(ack)
	if err != nil {
		return nil, errors.Wrap(err, "encode ack")
	}

	return json.Marshal(Frame{Event: EventAck, ID: requestID, Data: data})
}

func decodeChatID(data json.RawMessage) (string, error) {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		return strings.TrimSpace(id), nil
	}

	var obj struct {
		ChatID string `json:"chatId"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", errors.Wrap(err, "decode chat id")
	}

	return strings.TrimSpace(obj.ChatID), nil
}
