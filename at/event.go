package at

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Event is a parsed "at+recv=" line.
//
// Wire format: at+recv=<status>,<port>[,<rssi>][,<snr>],<len>[,<data>]
// Downlink data events carry all fields; pure status events (join results,
// TX confirmations) carry only the status and zero-filled remainder.
type Event struct {
	Status EventCode
	Port   int
	RSSI   int
	SNR    int
	Data   []byte
}

// IsDownlink reports whether the event carries application data.
func (e Event) IsDownlink() bool {
	return e.Status == EventRecvData && len(e.Data) > 0
}

// ParseEvent parses an "at+recv=" line into an Event.
func ParseEvent(line string) (Event, error) {
	payload, found := strings.CutPrefix(line, EventPrefix)
	if !found {
		return Event{}, fmt.Errorf("not an event line: %q", line)
	}

	fields := strings.Split(payload, ",")
	status, err := strconv.Atoi(fields[0])
	if err != nil {
		return Event{}, fmt.Errorf("event status %q: %w", fields[0], err)
	}

	ev := Event{Status: EventCode(status)}

	// Everything after the status is optional. The last two fields, when
	// present, are <len>,<data>; the fields between status and length are
	// <port>[,<rssi>][,<snr>].
	rest := fields[1:]
	if len(rest) > 0 && looksLikeData(rest) {
		data, err := hex.DecodeString(rest[len(rest)-1])
		if err != nil {
			return Event{}, fmt.Errorf("event data %q: %w", rest[len(rest)-1], err)
		}
		ev.Data = data
		rest = rest[:len(rest)-2]
	} else if len(rest) > 0 {
		// Trailing <len> with no data (len == 0).
		rest = rest[:len(rest)-1]
	}

	ints := make([]int, 0, len(rest))
	for _, f := range rest {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Event{}, fmt.Errorf("event field %q: %w", f, err)
		}
		ints = append(ints, v)
	}

	switch len(ints) {
	case 0:
	case 1:
		ev.Port = ints[0]
	case 2:
		ev.Port, ev.RSSI = ints[0], ints[1]
	default:
		ev.Port, ev.RSSI, ev.SNR = ints[0], ints[1], ints[2]
	}

	return ev, nil
}

// looksLikeData reports whether the trailing fields are a non-empty
// <len>,<data> pair.
func looksLikeData(fields []string) bool {
	if len(fields) < 2 {
		return false
	}
	n, err := strconv.Atoi(fields[len(fields)-2])
	return err == nil && n > 0 && fields[len(fields)-1] != ""
}
