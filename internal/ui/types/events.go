package types

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventKeys
	UIEventQuit
)

type KeysData struct {
	Keys []rune
}
