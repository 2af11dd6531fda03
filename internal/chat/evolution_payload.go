package chat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"agilefinance/internal/common"
)

const (
	eventMessagesUpsert = "messages.upsert"
	eventMessagesUpdate = "messages.update"
)

// EvolutionEvent is either an *InboundMessage or a *StatusEvent.
type EvolutionEvent interface {
	InstanceName() string
}

// Payload is the canonical body of a message regardless of the provider
// shape it arrived in.
type Payload struct {
	Content      string
	ContentType  common.ContentType
	FileURL      string
	FileMetadata map[string]interface{}
	Base64       string
}

type InboundMessage struct {
	Instance  string
	ServerURL string
	APIKey    string
	RemoteJID string
	FromMe    bool
	MessageID string
	PushName  string
	SentAt    time.Time
	Payload   Payload
}

func (m *InboundMessage) InstanceName() string { return m.Instance }

type StatusEvent struct {
	Instance   string
	APIKey     string
	MessageID  string
	Status     common.MessageStatus
	OccurredAt time.Time
}

func (e *StatusEvent) InstanceName() string { return e.Instance }

type envelope struct {
	Event     string          `json:"event"`
	Type      string          `json:"type"`
	Instance  string          `json:"instance"`
	ServerURL string          `json:"server_url"`
	APIKey    string          `json:"apikey"`
	DateTime  string          `json:"date_time"`
	Data      json.RawMessage `json:"data"`

	// flat relay shape, everything at the top level
	ID          string          `json:"id"`
	RemoteJID   string          `json:"remoteJid"`
	Text        string          `json:"text"`
	MessageType string          `json:"messageType"`
	FromMe      bool            `json:"fromMe"`
	PushName    string          `json:"pushName"`
	Base64      string          `json:"base64"`
	Status      json.RawMessage `json:"status"`
}

type messageKey struct {
	RemoteJID string `json:"remoteJid"`
	FromMe    bool   `json:"fromMe"`
	ID        string `json:"id"`
}

type upsertData struct {
	Key              messageKey      `json:"key"`
	PushName         string          `json:"pushName"`
	Message          *messageContent `json:"message"`
	MessageType      string          `json:"messageType"`
	MessageTimestamp flexInt         `json:"messageTimestamp"`
	Base64           string          `json:"base64"`
}

type updateData struct {
	KeyID     string          `json:"keyId"`
	ID        string          `json:"id"`
	Key       *messageKey     `json:"key"`
	Status    json.RawMessage `json:"status"`
	DateTime  string          `json:"date_time"`
	Timestamp flexInt         `json:"messageTimestamp"`
	Update    *struct {
		Status json.RawMessage `json:"status"`
	} `json:"update"`
}

type mediaMessage struct {
	URL        string          `json:"url"`
	Mimetype   string          `json:"mimetype"`
	Caption    string          `json:"caption"`
	FileName   string          `json:"fileName"`
	FileLength json.RawMessage `json:"fileLength"`
	Seconds    int             `json:"seconds"`
	PTT        bool            `json:"ptt"`
}

type messageContent struct {
	Conversation        string `json:"conversation"`
	ExtendedTextMessage *struct {
		Text string `json:"text"`
	} `json:"extendedTextMessage"`
	ImageMessage               *mediaMessage `json:"imageMessage"`
	VideoMessage               *mediaMessage `json:"videoMessage"`
	AudioMessage               *mediaMessage `json:"audioMessage"`
	DocumentMessage            *mediaMessage `json:"documentMessage"`
	StickerMessage             *mediaMessage `json:"stickerMessage"`
	DocumentWithCaptionMessage *struct {
		Message *messageContent `json:"message"`
	} `json:"documentWithCaptionMessage"`
	LocationMessage *struct {
		DegreesLatitude  float64 `json:"degreesLatitude"`
		DegreesLongitude float64 `json:"degreesLongitude"`
		Name             string  `json:"name"`
		Address          string  `json:"address"`
	} `json:"locationMessage"`
	ContactMessage *struct {
		DisplayName string `json:"displayName"`
		Vcard       string `json:"vcard"`
	} `json:"contactMessage"`
	Base64 string `json:"base64"`
}

// flexInt accepts numbers and numeric strings.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(n)
	return nil
}

// ParseEvolutionEvents accepts a single webhook object or an array of them.
// Elements that cannot be parsed are returned in skipped.
func ParseEvolutionEvents(raw []byte) (events []EvolutionEvent, skipped []error, err error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", common.ErrUnrecognizedPayload, err)
		}
		for _, item := range items {
			ev, err := ParseEvolutionEvent(item)
			if err != nil {
				skipped = append(skipped, err)
				continue
			}
			events = append(events, ev)
		}
		if len(events) == 0 {
			return nil, skipped, fmt.Errorf("%w: no usable event in batch", common.ErrUnrecognizedPayload)
		}
		return events, skipped, nil
	}

	ev, err := ParseEvolutionEvent(trimmed)
	if err != nil {
		return nil, nil, err
	}
	return []EvolutionEvent{ev}, nil, nil
}

// ParseEvolutionEvent maps one webhook object to an InboundMessage or a
// StatusEvent. Unknown events and unknown message shapes produce
// common.ErrUnrecognizedPayload.
func ParseEvolutionEvent(raw []byte) (EvolutionEvent, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnrecognizedPayload, err)
	}

	event := normalizeEventName(env.Event)
	if event == "" {
		event = normalizeEventName(env.Type)
	}
	hasData := len(env.Data) > 0 && string(env.Data) != "null"

	switch {
	case event == eventMessagesUpsert && hasData:
		return parseUpsert(env)
	case event == eventMessagesUpdate && hasData:
		return parseUpdate(env)
	case event == eventMessagesUpdate:
		return parseFlatUpdate(env)
	case (event == "" || event == eventMessagesUpsert) && env.RemoteJID != "":
		return parseFlatMessage(env)
	case event == "":
		return nil, fmt.Errorf("%w: missing event", common.ErrUnrecognizedPayload)
	default:
		return nil, fmt.Errorf("%w: event %q", common.ErrUnrecognizedPayload, event)
	}
}

func normalizeEventName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", ".")
}

func parseUpsert(env envelope) (*InboundMessage, error) {
	var data upsertData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnrecognizedPayload, err)
	}
	if err := checkJID(data.Key.RemoteJID); err != nil {
		return nil, err
	}
	if data.Message == nil {
		return nil, fmt.Errorf("%w: message body missing", common.ErrUnrecognizedPayload)
	}

	payload, err := extractPayload(data.Message)
	if err != nil {
		return nil, err
	}
	switch {
	case data.Message.Base64 != "":
		payload.Base64 = data.Message.Base64
	case data.Base64 != "":
		payload.Base64 = data.Base64
	}

	sentAt := parseDateTime(env.DateTime)
	if data.MessageTimestamp > 0 {
		sentAt = time.Unix(int64(data.MessageTimestamp), 0).UTC()
	}

	return &InboundMessage{
		Instance:  env.Instance,
		ServerURL: env.ServerURL,
		APIKey:    env.APIKey,
		RemoteJID: data.Key.RemoteJID,
		FromMe:    data.Key.FromMe,
		MessageID: data.Key.ID,
		PushName:  data.PushName,
		SentAt:    sentAt,
		Payload:   payload,
	}, nil
}

func parseFlatMessage(env envelope) (*InboundMessage, error) {
	if err := checkJID(env.RemoteJID); err != nil {
		return nil, err
	}
	if env.Text == "" && env.Base64 == "" {
		return nil, fmt.Errorf("%w: message body missing", common.ErrUnrecognizedPayload)
	}

	payload := Payload{Content: env.Text, ContentType: common.ContentTypeText, Base64: env.Base64}
	if env.MessageType != "" && env.MessageType != "text" && env.MessageType != "conversation" {
		ct := common.ContentType(strings.TrimSuffix(env.MessageType, "Message"))
		if !ct.IsValid() {
			return nil, fmt.Errorf("%w: message type %q", common.ErrUnrecognizedPayload, env.MessageType)
		}
		payload.ContentType = ct
	}

	return &InboundMessage{
		Instance:  env.Instance,
		ServerURL: env.ServerURL,
		APIKey:    env.APIKey,
		RemoteJID: env.RemoteJID,
		FromMe:    env.FromMe,
		MessageID: env.ID,
		PushName:  env.PushName,
		SentAt:    parseDateTime(env.DateTime),
		Payload:   payload,
	}, nil
}

func parseUpdate(env envelope) (*StatusEvent, error) {
	var data updateData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnrecognizedPayload, err)
	}

	id := data.KeyID
	if id == "" && data.Key != nil {
		id = data.Key.ID
	}
	if id == "" {
		id = data.ID
	}
	if id == "" {
		return nil, fmt.Errorf("%w: status update without message id", common.ErrUnrecognizedPayload)
	}

	rawStatus := data.Status
	if len(rawStatus) == 0 && data.Update != nil {
		rawStatus = data.Update.Status
	}
	status, err := mapProviderStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	occurredAt := parseDateTime(data.DateTime)
	if occurredAt.IsZero() {
		occurredAt = parseDateTime(env.DateTime)
	}
	if occurredAt.IsZero() && data.Timestamp > 0 {
		occurredAt = time.Unix(int64(data.Timestamp), 0).UTC()
	}

	return &StatusEvent{
		Instance:   env.Instance,
		APIKey:     env.APIKey,
		MessageID:  id,
		Status:     status,
		OccurredAt: occurredAt,
	}, nil
}

func parseFlatUpdate(env envelope) (*StatusEvent, error) {
	if env.ID == "" {
		return nil, fmt.Errorf("%w: status update without message id", common.ErrUnrecognizedPayload)
	}
	status, err := mapProviderStatus(env.Status)
	if err != nil {
		return nil, err
	}
	return &StatusEvent{
		Instance:   env.Instance,
		APIKey:     env.APIKey,
		MessageID:  env.ID,
		Status:     status,
		OccurredAt: parseDateTime(env.DateTime),
	}, nil
}

// mapProviderStatus understands both the named statuses and the numeric
// acks some provider versions send.
func mapProviderStatus(raw json.RawMessage) (common.MessageStatus, error) {
	value := strings.ToUpper(strings.Trim(strings.TrimSpace(string(raw)), `"`))
	switch value {
	case "SERVER_ACK", "PENDING", "SENT", "1", "2":
		return common.MessageStatusSent, nil
	case "DELIVERY_ACK", "RECEIVED", "DELIVERED", "3":
		return common.MessageStatusDelivered, nil
	case "READ", "PLAYED", "4", "5":
		return common.MessageStatusRead, nil
	}
	return "", fmt.Errorf("%w: status %q", common.ErrUnrecognizedPayload, value)
}

func checkJID(jid string) error {
	if jid == "" {
		return fmt.Errorf("%w: remoteJid missing", common.ErrUnrecognizedPayload)
	}
	if strings.HasSuffix(jid, "@g.us") {
		return fmt.Errorf("%w: group chats are not supported", common.ErrUnrecognizedPayload)
	}
	return nil
}

func extractPayload(m *messageContent) (Payload, error) {
	switch {
	case m.Conversation != "":
		return Payload{Content: m.Conversation, ContentType: common.ContentTypeText}, nil
	case m.ExtendedTextMessage != nil && m.ExtendedTextMessage.Text != "":
		return Payload{Content: m.ExtendedTextMessage.Text, ContentType: common.ContentTypeText}, nil
	case m.ImageMessage != nil:
		return mediaPayload(m.ImageMessage, common.ContentTypeImage), nil
	case m.VideoMessage != nil:
		return mediaPayload(m.VideoMessage, common.ContentTypeVideo), nil
	case m.AudioMessage != nil:
		return mediaPayload(m.AudioMessage, common.ContentTypeAudio), nil
	case m.DocumentMessage != nil:
		return mediaPayload(m.DocumentMessage, common.ContentTypeDocument), nil
	case m.DocumentWithCaptionMessage != nil && m.DocumentWithCaptionMessage.Message != nil &&
		m.DocumentWithCaptionMessage.Message.DocumentMessage != nil:
		return mediaPayload(m.DocumentWithCaptionMessage.Message.DocumentMessage, common.ContentTypeDocument), nil
	case m.StickerMessage != nil:
		return mediaPayload(m.StickerMessage, common.ContentTypeSticker), nil
	case m.LocationMessage != nil:
		loc := m.LocationMessage
		return Payload{
			Content:     fmt.Sprintf("%f,%f", loc.DegreesLatitude, loc.DegreesLongitude),
			ContentType: common.ContentTypeLocation,
			FileMetadata: map[string]interface{}{
				"latitude":  loc.DegreesLatitude,
				"longitude": loc.DegreesLongitude,
				"name":      loc.Name,
				"address":   loc.Address,
			},
		}, nil
	case m.ContactMessage != nil:
		return Payload{
			Content:      m.ContactMessage.DisplayName,
			ContentType:  common.ContentTypeContact,
			FileMetadata: map[string]interface{}{"vcard": m.ContactMessage.Vcard},
		}, nil
	}
	return Payload{}, fmt.Errorf("%w: unknown message shape", common.ErrUnrecognizedPayload)
}

func mediaPayload(media *mediaMessage, ct common.ContentType) Payload {
	meta := map[string]interface{}{}
	if media.Mimetype != "" {
		meta["mimetype"] = media.Mimetype
	}
	if media.FileName != "" {
		meta["fileName"] = media.FileName
	}
	if n := parseFileLength(media.FileLength); n > 0 {
		meta["fileLength"] = n
	}
	if media.Seconds > 0 {
		meta["seconds"] = media.Seconds
	}
	if media.PTT {
		meta["ptt"] = true
	}

	content := media.Caption
	if content == "" && ct == common.ContentTypeDocument {
		content = media.FileName
	}
	return Payload{
		Content:      content,
		ContentType:  ct,
		FileURL:      media.URL,
		FileMetadata: meta,
	}
}

// parseFileLength handles numbers, numeric strings and {low, high} pairs.
func parseFileLength(raw json.RawMessage) int64 {
	if len(raw) == 0 {
		return 0
	}
	var f flexInt
	if err := f.UnmarshalJSON(raw); err == nil && f > 0 {
		return int64(f)
	}
	var pair struct {
		Low  int64 `json:"low"`
		High int64 `json:"high"`
	}
	if err := json.Unmarshal(raw, &pair); err == nil {
		return pair.High<<32 | (pair.Low & 0xffffffff)
	}
	return 0
}

func parseDateTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.000Z", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
