package at

import (
	"bufio"
	"bytes"
	"strings"
)

// Splitter is used for tokenizing RAK811 module output. It uses the
// signature of bufio.SplitFunc so it can be directly used with bufio.Scanner.
//
// The RAK811 terminates every line with CRLF and has no interactive prompt,
// so splitting is purely line oriented. The module does not echo commands.
//
// The atEOF parameter indicates whether any more data will be available.
// When true, any remaining data is returned as the final token.
func Splitter(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.Index(data, []byte(CRLF)); i >= 0 {
		return i + len(CRLF), data[0:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

var _ bufio.SplitFunc = Splitter

// Classify identifies the nature of a module output line.
func Classify(line string) ResponseType {
	switch {
	case strings.HasPrefix(line, OK), strings.HasPrefix(line, OKInit):
		return TypeOK
	case strings.HasPrefix(line, Error):
		return TypeError
	case strings.HasPrefix(line, EventPrefix):
		return TypeEvent
	default:
		return TypeInfo
	}
}
