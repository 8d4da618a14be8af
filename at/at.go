package at

const (
	// Terminal Control
	CRLF   = "\r\n"
	Prefix = "at+"

	// Response tokens
	OK     = "OK"
	OKInit = "Initialization OK"
	Error  = "ERROR:"

	// Event lines (downlink data, join results, TX confirmations)
	EventPrefix = "at+recv="
)

type ResponseType int

const (
	TypeOK    ResponseType = iota // OK, Initialization OK
	TypeError                     // ERROR:<code>
	TypeEvent                     // at+recv=... asynchronous notifications
	TypeInfo                      // anything else (help text, status dumps, boot banner)
)
